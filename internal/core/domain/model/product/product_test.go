package product_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()
	price, _ := kernel.NewMoneyFromString("49.90")

	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct(validID, "margherita", "Margherita", "Tomato, mozzarella, basil", price, "margherita.jpg")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "margherita", p.Slug())
		assert.Equal(t, "Margherita", p.Name())
		assert.Equal(t, "Tomato, mozzarella, basil", p.Description())
		assert.True(t, p.Price().IsEqual(price))
		assert.Equal(t, "margherita.jpg", p.ImageRef())
	})

	t.Run("should allow empty description and image", func(t *testing.T) {
		p, err := product.NewProduct(validID, "calabresa", "Calabresa", "", price, "")

		require.NoError(t, err)
		assert.Empty(t, p.Description())
		assert.Empty(t, p.ImageRef())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := product.NewProduct(invalidID, "margherita", "Margherita", "", price, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty slug", func(t *testing.T) {
		_, err := product.NewProduct(validID, "", "Margherita", "", price, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "slug")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.NewProduct(validID, "margherita", "", "", price, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
