package commands_test

import (
	"context"

	"pizzeria/internal/core/domain/model/cart"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
)

type MockStageStore struct{ mock.Mock }

func (m *MockStageStore) List(ctx context.Context, stage order.Stage) ([]*order.Order, error) {
	args := m.Called(ctx, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockStageStore) Get(ctx context.Context, stage order.Stage, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, stage, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockStageStore) Insert(ctx context.Context, stage order.Stage, aggregate *order.Order) error {
	args := m.Called(ctx, stage, aggregate)
	return args.Error(0)
}

func (m *MockStageStore) RemoveByID(ctx context.Context, stage order.Stage, id kernel.UUID) error {
	args := m.Called(ctx, stage, id)
	return args.Error(0)
}

func (m *MockStageStore) Move(ctx context.Context, from order.Stage, to order.Stage, aggregate *order.Order) error {
	args := m.Called(ctx, from, to, aggregate)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetAll(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (product.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(product.Product), args.Error(1)
}

type MockCartRegistry struct{ mock.Mock }

func (m *MockCartRegistry) GetOrCreate(sessionID string) (*cart.Cart, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRegistry) Remove(sessionID string) {
	m.Called(sessionID)
}
