package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// resetTokenBytes is the entropy of a reset token: 32 random bytes, hex
// encoded, 256 bits.
const resetTokenBytes = 32

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	sessionRepo     domain.SessionRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	mailer          domain.Mailer
	accessTTL       time.Duration
	sessionTTL      time.Duration
	resetTokenTTL   time.Duration
	frontendBaseURL string
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	mailer domain.Mailer,
	accessTTL time.Duration,
	sessionTTL time.Duration,
	resetTokenTTL time.Duration,
	frontendBaseURL string,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		mailer:          mailer,
		accessTTL:       accessTTL,
		sessionTTL:      sessionTTL,
		resetTokenTTL:   resetTokenTTL,
		frontendBaseURL: frontendBaseURL,
	}
}

// Register implements domain.AuthService. Email and phone must both be
// unused; the raw password is hashed before anything is persisted and is
// never stored or logged.
func (s *AuthServiceImpl) Register(ctx context.Context, email, phone, password string) (*domain.User, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	}
	if existing, err := s.userRepo.FindByPhone(ctx, phone); err == nil && existing != nil {
		return nil, domain.ErrDuplicatePhone
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService. On success a server-side session is
// minted and named by the returned access token; client-supplied
// identifiers are never trusted as identity.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        fmt.Sprintf("sess_%d_%d", user.ID, time.Now().UnixNano()),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: accessToken,
		SessionID:   session.ID,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// RequestPasswordReset implements domain.AuthService. A fresh token
// overwrites any outstanding one, so at most one token is live per
// credential. The token is persisted before the email goes out; a mail
// failure does not roll it back.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(s.resetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendBaseURL, token)
	if err := s.mailer.SendPasswordReset(email, resetLink); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}

	return nil
}

// ConfirmPasswordReset implements domain.AuthService. Wrong and expired
// tokens fail with the same error so the caller cannot tell which; the
// consume is atomic, so the token works exactly once.
func (s *AuthServiceImpl) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ConsumeResetToken(ctx, token, hashedPassword, time.Now()); err != nil {
		return err
	}

	log.Printf("PASSWORD_RESET_CONSUMED: timestamp=%s", time.Now().UTC().Format(time.RFC3339))
	return nil
}

// generateResetToken returns a hex-encoded high-entropy token.
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
