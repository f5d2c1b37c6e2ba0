package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Staff roles. The kitchen display and the delivery panel each require the
// matching role; admin can open both.
const (
	RoleKitchen  = "kitchen"
	RoleDelivery = "delivery"
	RoleAdmin    = "admin"
)

// ErrInvalidCredentials is returned when the username or password does not
// match. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is one staff member of the fixed roster.
type User struct {
	Username     string
	PasswordHash []byte
	Role         string
}

// UserStore authenticates staff against an in-memory roster. There is no
// registration: the roster is fixed at construction.
type UserStore struct {
	users map[string]User
}

// RosterEntry is one staff member as configured at startup.
type RosterEntry struct {
	Username string
	Password string
	Role     string
}

// NewUserStore creates a store with the given roster. Passwords arrive in
// plain text here and are hashed immediately; only hashes are kept.
func NewUserStore(roster []RosterEntry) (*UserStore, error) {
	users := make(map[string]User, len(roster))
	for _, entry := range roster {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users[entry.Username] = User{
			Username:     entry.Username,
			PasswordHash: hash,
			Role:         entry.Role,
		}
	}

	return &UserStore{users: users}, nil
}

// Authenticate checks a username and password pair, returning the matched
// user on success and ErrInvalidCredentials otherwise.
func (s *UserStore) Authenticate(username, password string) (User, error) {
	user, ok := s.users[username]
	if !ok {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}
