package http

import "time"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Product is one menu entry.
type Product struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageRef    string `json:"imageRef"`
}

// Cart is a session's cart with its running totals.
type Cart struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Total     string     `json:"total"`
}

// CartItem is one product line of a cart.
type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
	ImageRef  string `json:"imageRef"`
}

// AddCartItemRequest adds a product to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest sets a product line's quantity. Zero or negative
// removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Address is a delivery destination.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement,omitempty"`
}

// Card carries the checkout card form fields.
type Card struct {
	Number     string `json:"number"`
	HolderName string `json:"holderName"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// CheckoutRequest turns the session's cart into a kitchen order.
// TableNumber is required for TABLE mode, Address for DELIVERY mode.
type CheckoutRequest struct {
	DeliveryMode  string   `json:"deliveryMode"`
	TableNumber   int      `json:"tableNumber,omitempty"`
	Address       *Address `json:"address,omitempty"`
	PaymentMethod string   `json:"paymentMethod"`
	Card          *Card    `json:"card,omitempty"`
}

// CheckoutResponse acknowledges a submitted order.
type CheckoutResponse struct {
	OrderID   string    `json:"orderId"`
	Total     string    `json:"total"`
	Stage     string    `json:"stage"`
	CreatedAt time.Time `json:"createdAt"`
}

// Order is one order record as shown on staff panels.
type Order struct {
	ID           string      `json:"id"`
	Items        []OrderItem `json:"items"`
	Total        string      `json:"total"`
	DeliveryMode string      `json:"deliveryMode"`
	TableNumber  int         `json:"tableNumber,omitempty"`
	Address      *Address    `json:"address,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	ReadyAt      *time.Time  `json:"readyAt,omitempty"`
	Stage        string      `json:"stage"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	ImageRef  string `json:"imageRef,omitempty"`
}

// LoginRequest authenticates a staff member.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued staff token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
