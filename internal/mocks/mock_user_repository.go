package mocks

import (
	"context"
	"time"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *domain.User) error
	FindByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	FindByPhoneFunc       func(ctx context.Context, phone string) (*domain.User, error)
	FindByIDFunc          func(ctx context.Context, id uint) (*domain.User, error)
	SetResetTokenFunc     func(ctx context.Context, userID uint, token string, expiresAt time.Time) error
	ConsumeResetTokenFunc func(ctx context.Context, token, newPasswordHash string, now time.Time) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

// FindByPhone finds a user by phone number
func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// SetResetToken stores a reset token on the user
func (m *MockUserRepository) SetResetToken(ctx context.Context, userID uint, token string, expiresAt time.Time) error {
	if m.SetResetTokenFunc != nil {
		return m.SetResetTokenFunc(ctx, userID, token, expiresAt)
	}
	return nil
}

// ConsumeResetToken atomically consumes a reset token
func (m *MockUserRepository) ConsumeResetToken(ctx context.Context, token, newPasswordHash string, now time.Time) error {
	if m.ConsumeResetTokenFunc != nil {
		return m.ConsumeResetTokenFunc(ctx, token, newPasswordHash, now)
	}
	return domain.ErrInvalidOrExpiredToken
}
