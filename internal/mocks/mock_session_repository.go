package mocks

import (
	"context"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// MockSessionRepository implements domain.SessionRepository interface for testing
type MockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *domain.Session) error
	FindByIDFunc func(ctx context.Context, sessionID string) (*domain.Session, error)
	DeleteFunc   func(ctx context.Context, sessionID string) error
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create creates a new session
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

// FindByID finds a session by ID
func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, sessionID)
	}
	return nil, domain.ErrSessionNotFound
}

// Delete deletes a session
func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	return nil
}
