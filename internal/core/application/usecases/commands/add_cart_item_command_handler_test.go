package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/cart"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, name, price string) product.Product {
	t.Helper()
	money, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "test-"+name, name, "", money, "")
	require.NoError(t, err)
	return p
}

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := testProduct(t, "Margherita", "42.90")
	cmd, err := commands.NewAddCartItemCommand("session-1", p.ID(), 2)
	require.NoError(t, err)

	sessionCart := cart.NewCart()
	products := new(MockProductRepository)
	carts := new(MockCartRegistry)
	mock.InOrder(
		products.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		carts.On("GetOrCreate", "session-1").Return(sessionCart, nil).Once(),
	)

	h := commands.NewAddCartItemCommandHandler(carts, products)
	require.NoError(t, h.Handle(ctx, cmd))

	items := sessionCart.Items()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity())
	products.AssertExpectations(t)
	carts.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand("session-1", productID, 1)
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Get", ctx, productID).
		Return(product.Product{}, errs.NewObjectNotFoundError("product", productID.String())).Once()
	carts := new(MockCartRegistry)

	h := commands.NewAddCartItemCommandHandler(carts, products)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	products.AssertExpectations(t)
	carts.AssertNotCalled(t, "GetOrCreate", mock.Anything)
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddCartItemCommand{} // not constructed properly

	h := commands.NewAddCartItemCommandHandler(new(MockCartRegistry), new(MockProductRepository))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
}
