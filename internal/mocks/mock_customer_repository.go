package mocks

import (
	"context"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// MockCustomerRepository implements domain.CustomerRepository interface for testing
type MockCustomerRepository struct {
	CreateFunc   func(ctx context.Context, customer *domain.Customer) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Customer, error)
	UpdateFunc   func(ctx context.Context, customer *domain.Customer) error
}

// NewMockCustomerRepository creates a new MockCustomerRepository with default behaviors
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{}
}

// Create creates a new customer
func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	return nil
}

// FindByID finds a customer by ID
func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCustomerNotFound
}

// Update updates an existing customer
func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, customer)
	}
	return nil
}
