package mocks

import (
	"github.com/Joseluizbianchini/ZeFood/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc func(userID uint, sessionID string) (string, error)
	ValidateAccessTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken generates an access token
func (m *MockTokenService) GenerateAccessToken(userID uint, sessionID string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, sessionID)
	}
	return "access_token", nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}
