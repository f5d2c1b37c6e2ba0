package ports

import (
	"context"
)

// KeyValueStore is the low-level persistence contract the stage store is
// built on. Values are opaque strings read and written as a whole: there is
// no partial update, no iteration, and no transaction primitive. Concurrent
// writers to the same key follow last-write-wins semantics.
type KeyValueStore interface {
	// Get retrieves the value stored under key. The second return value
	// reports whether the key was present; an absent key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set replaces the whole value stored under key.
	Set(ctx context.Context, key string, value string) error
}
