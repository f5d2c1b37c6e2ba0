package order_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Validate(t *testing.T) {
	t.Run("valid stages pass", func(t *testing.T) {
		require.NoError(t, order.StageKitchen.Validate())
		require.NoError(t, order.StageReady.Validate())
		require.NoError(t, order.StageDelivered.Validate())
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		require.Error(t, order.StageUnknown.Validate())
		require.Error(t, order.Stage(42).Validate())
	})
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "KITCHEN", order.StageKitchen.String())
	assert.Equal(t, "READY", order.StageReady.String())
	assert.Equal(t, "DELIVERED", order.StageDelivered.String())
	assert.Equal(t, "UNKNOWN", order.StageUnknown.String())
	assert.Equal(t, "UNKNOWN", order.Stage(42).String())
}

func TestStageFromString(t *testing.T) {
	t.Run("round-trips valid names", func(t *testing.T) {
		for _, stage := range []order.Stage{order.StageKitchen, order.StageReady, order.StageDelivered} {
			parsed, err := order.StageFromString(stage.String())
			require.NoError(t, err)
			assert.Equal(t, stage, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StageFromString("BAKING")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects UNKNOWN", func(t *testing.T) {
		_, err := order.StageFromString("UNKNOWN")

		require.Error(t, err)
	})
}

func TestStage_MarkReady(t *testing.T) {
	t.Run("kitchen transitions to ready", func(t *testing.T) {
		next, err := order.StageKitchen.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, order.StageReady, next)
	})

	t.Run("ready cannot be marked ready again", func(t *testing.T) {
		_, err := order.StageReady.MarkReady()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "READY is not a valid stage to mark ready")
	})

	t.Run("delivered cannot be marked ready", func(t *testing.T) {
		_, err := order.StageDelivered.MarkReady()

		require.Error(t, err)
	})
}

func TestStage_Complete(t *testing.T) {
	t.Run("ready transitions to delivered", func(t *testing.T) {
		next, err := order.StageReady.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.StageDelivered, next)
	})

	t.Run("kitchen cannot skip straight to delivered", func(t *testing.T) {
		_, err := order.StageKitchen.Complete()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "KITCHEN is not a valid stage to complete")
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		_, err := order.StageDelivered.Complete()

		require.Error(t, err)
	})
}

func TestStage_ValidateCanHaveReadyAt(t *testing.T) {
	t.Run("kitchen must not have readyAt", func(t *testing.T) {
		require.NoError(t, order.StageKitchen.ValidateCanHaveReadyAt(false))
		require.Error(t, order.StageKitchen.ValidateCanHaveReadyAt(true))
	})

	t.Run("ready and delivered must have readyAt", func(t *testing.T) {
		require.NoError(t, order.StageReady.ValidateCanHaveReadyAt(true))
		require.Error(t, order.StageReady.ValidateCanHaveReadyAt(false))
		require.NoError(t, order.StageDelivered.ValidateCanHaveReadyAt(true))
		require.Error(t, order.StageDelivered.ValidateCanHaveReadyAt(false))
	})
}
