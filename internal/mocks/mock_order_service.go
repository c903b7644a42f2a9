package mocks

import (
	"context"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// MockOrderService implements domain.OrderService interface for testing
type MockOrderService struct {
	SubmitFunc func(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// NewMockOrderService creates a new MockOrderService with default behaviors
func NewMockOrderService() *MockOrderService {
	return &MockOrderService{}
}

// Submit submits an order
func (m *MockOrderService) Submit(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, order)
	}
	return order, nil
}
