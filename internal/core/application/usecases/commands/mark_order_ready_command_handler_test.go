package commands_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/cart"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func kitchenOrder(t *testing.T) *order.Order {
	t.Helper()
	p := testProduct(t, "Portuguesa", "48.50")
	item, err := cart.NewItemFromProduct(p, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), []cart.Item{item}, order.ModeTable, 3, nil, time.Now())
	require.NoError(t, err)
	return o
}

func TestMarkOrderReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := kitchenOrder(t)
	cmd, err := commands.NewMarkOrderReadyCommand(o.ID())
	require.NoError(t, err)

	store := new(MockStageStore)
	mock.InOrder(
		store.On("Get", ctx, order.StageKitchen, o.ID()).Return(o, nil).Once(),
		store.On("Move", ctx, order.StageKitchen, order.StageReady, o).Return(nil).Once(),
	)

	h := commands.NewMarkOrderReadyCommandHandler(store)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StageReady, o.Stage())
	require.NotNil(t, o.ReadyAt())
	store.AssertExpectations(t)
}

func TestMarkOrderReadyCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewMarkOrderReadyCommand(id)
	require.NoError(t, err)

	store := new(MockStageStore)
	store.On("Get", ctx, order.StageKitchen, id).
		Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	h := commands.NewMarkOrderReadyCommandHandler(store)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	store.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkOrderReadyCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkOrderReadyCommand{} // not constructed properly

	h := commands.NewMarkOrderReadyCommandHandler(new(MockStageStore))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrMarkOrderReadyCommandIsNotConstructed)
}
