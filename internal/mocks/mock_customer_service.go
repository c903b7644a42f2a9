package mocks

import (
	"context"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// MockCustomerService implements domain.CustomerService interface for testing
type MockCustomerService struct {
	CreateFunc  func(ctx context.Context, name, phone, email string) (*domain.Customer, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Customer, error)
	UpdateFunc  func(ctx context.Context, id, name, phone, email string) (*domain.Customer, error)
}

// NewMockCustomerService creates a new MockCustomerService with default behaviors
func NewMockCustomerService() *MockCustomerService {
	return &MockCustomerService{}
}

// Create creates a customer record
func (m *MockCustomerService) Create(ctx context.Context, name, phone, email string) (*domain.Customer, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, phone, email)
	}
	return &domain.Customer{ID: "cust-1", Name: name, Phone: phone, Email: email}, nil
}

// GetByID looks up a customer record
func (m *MockCustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrCustomerNotFound
}

// Update replaces a customer record
func (m *MockCustomerService) Update(ctx context.Context, id, name, phone, email string) (*domain.Customer, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, name, phone, email)
	}
	return &domain.Customer{ID: id, Name: name, Phone: phone, Email: email}, nil
}
