package memory_test

import (
	"context"
	"testing"

	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueStore(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key is reported as missing", func(t *testing.T) {
		store := memory.NewKeyValueStore()

		value, ok, err := store.Get(ctx, "stage:KITCHEN")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("set then get returns the whole value", func(t *testing.T) {
		store := memory.NewKeyValueStore()

		require.NoError(t, store.Set(ctx, "stage:KITCHEN", `[{"id":"a"}]`))

		value, ok, err := store.Get(ctx, "stage:KITCHEN")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"a"}]`, value)
	})

	t.Run("set replaces the previous value", func(t *testing.T) {
		store := memory.NewKeyValueStore()
		require.NoError(t, store.Set(ctx, "stage:READY", "old"))

		require.NoError(t, store.Set(ctx, "stage:READY", "new"))

		value, ok, err := store.Get(ctx, "stage:READY")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "new", value)
	})
}

func TestCartRegistry(t *testing.T) {
	t.Run("creates a cart on first access and reuses it", func(t *testing.T) {
		registry := memory.NewCartRegistry()

		first, err := registry.GetOrCreate("session-1")
		require.NoError(t, err)
		second, err := registry.GetOrCreate("session-1")
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("sessions get independent carts", func(t *testing.T) {
		registry := memory.NewCartRegistry()

		first, err := registry.GetOrCreate("session-1")
		require.NoError(t, err)
		second, err := registry.GetOrCreate("session-2")
		require.NoError(t, err)

		assert.NotSame(t, first, second)
	})

	t.Run("rejects blank session id", func(t *testing.T) {
		registry := memory.NewCartRegistry()

		c, err := registry.GetOrCreate("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("remove discards the cart", func(t *testing.T) {
		registry := memory.NewCartRegistry()
		first, err := registry.GetOrCreate("session-1")
		require.NoError(t, err)

		registry.Remove("session-1")

		second, err := registry.GetOrCreate("session-1")
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})

	t.Run("removing an unknown session is a no-op", func(t *testing.T) {
		registry := memory.NewCartRegistry()

		registry.Remove("nobody")
	})
}
