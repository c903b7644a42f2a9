package mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// MockMailer implements domain.Mailer interface for testing
type MockMailer struct {
	SendOrderConfirmationFunc func(name, email string, order *domain.Order, mode domain.DeliveryMode, total decimal.Decimal) error
	SendPasswordResetFunc     func(email, resetLink string) error
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// SendOrderConfirmation sends an order confirmation email
func (m *MockMailer) SendOrderConfirmation(name, email string, order *domain.Order, mode domain.DeliveryMode, total decimal.Decimal) error {
	if m.SendOrderConfirmationFunc != nil {
		return m.SendOrderConfirmationFunc(name, email, order, mode, total)
	}
	return nil
}

// SendPasswordReset sends a password reset email
func (m *MockMailer) SendPasswordReset(email, resetLink string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(email, resetLink)
	}
	return nil
}

// MockOrderEventPublisher implements domain.OrderEventPublisher for testing
type MockOrderEventPublisher struct {
	PublishOrderFunc func(ctx context.Context, order *domain.Order) error
}

// NewMockOrderEventPublisher creates a new MockOrderEventPublisher
func NewMockOrderEventPublisher() *MockOrderEventPublisher {
	return &MockOrderEventPublisher{}
}

// PublishOrder publishes an order event
func (m *MockOrderEventPublisher) PublishOrder(ctx context.Context, order *domain.Order) error {
	if m.PublishOrderFunc != nil {
		return m.PublishOrderFunc(ctx, order)
	}
	return nil
}
