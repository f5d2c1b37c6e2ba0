package queries_test

import (
	"testing"

	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCartQueryHandler_Handle(t *testing.T) {
	t.Run("fresh session yields an empty cart", func(t *testing.T) {
		carts := memory.NewCartRegistry()
		query, err := queries.NewGetCartQuery("session-1")
		require.NoError(t, err)

		h := queries.NewGetCartQueryHandler(carts)
		resp, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Empty(t, resp.Items)
		assert.Zero(t, resp.ItemCount)
		assert.Equal(t, "0.00", resp.Total)
	})

	t.Run("returns lines with subtotals and totals", func(t *testing.T) {
		carts := memory.NewCartRegistry()
		c, err := carts.GetOrCreate("session-1")
		require.NoError(t, err)
		require.NoError(t, c.Add(testProduct(t, "Margherita", "10.00"), 2))
		require.NoError(t, c.Add(testProduct(t, "Calabresa", "5.00"), 1))

		query, err := queries.NewGetCartQuery("session-1")
		require.NoError(t, err)

		h := queries.NewGetCartQueryHandler(carts)
		resp, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "Margherita", resp.Items[0].Name)
		assert.Equal(t, "20.00", resp.Items[0].Subtotal)
		assert.Equal(t, 3, resp.ItemCount)
		assert.Equal(t, "25.00", resp.Total)
	})

	t.Run("empty session id is rejected at construction", func(t *testing.T) {
		_, err := queries.NewGetCartQuery("")

		require.ErrorIs(t, err, queries.ErrSessionIDIsRequired)
	})

	t.Run("not constructed query", func(t *testing.T) {
		h := queries.NewGetCartQueryHandler(memory.NewCartRegistry())

		_, err := h.Handle(t.Context(), queries.GetCartQuery{})

		require.ErrorIs(t, err, queries.ErrGetCartQueryIsNotConstructed)
	})
}
