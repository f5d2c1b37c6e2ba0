package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("valid parameters", func(t *testing.T) {
		cmd, err := commands.NewAddCartItemCommand("session-1", productID, 3)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "session-1", cmd.SessionID())
		assert.True(t, cmd.ProductID().IsEqual(productID))
		assert.Equal(t, 3, cmd.Quantity())
	})

	t.Run("empty session id", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("", productID, 1)

		require.ErrorIs(t, err, commands.ErrSessionIDIsRequired)
	})

	t.Run("invalid product id", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("session-1", kernel.UUID{}, 1)

		require.Error(t, err)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("session-1", productID, 0)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)

		_, err = commands.NewAddCartItemCommand("session-1", productID, -2)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.AddCartItemCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddCartItemCommandIsNotConstructed)
	})
}
