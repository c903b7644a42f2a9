package mocks

import (
	"context"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc             func(ctx context.Context, email, phone, password string) (*domain.User, error)
	LoginFunc                func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	LogoutFunc               func(ctx context.Context, sessionID string) error
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	ConfirmPasswordResetFunc func(ctx context.Context, token, newPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new credential
func (m *MockAuthService) Register(ctx context.Context, email, phone, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, phone, password)
	}
	return &domain.User{ID: 1, Email: email, Phone: phone}, nil
}

// Login authenticates a credential
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrUserNotFound
}

// Logout ends a session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// RequestPasswordReset starts a password reset
func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return nil
}

// ConfirmPasswordReset consumes a reset token
func (m *MockAuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if m.ConfirmPasswordResetFunc != nil {
		return m.ConfirmPasswordResetFunc(ctx, token, newPassword)
	}
	return domain.ErrInvalidOrExpiredToken
}
