package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Joseluizbianchini/ZeFood/domain"
	"github.com/Joseluizbianchini/ZeFood/internal/infrastructure/auth"
	"github.com/Joseluizbianchini/ZeFood/internal/infrastructure/repositories"
	"github.com/Joseluizbianchini/ZeFood/internal/mocks"
)

// Full credential lifecycle against real storage, hashing and tokens:
// register, login with the wrong then the right password, request a reset,
// confirm it, and verify the old password is dead and the new one works.
func TestAuthFlow_RegisterLoginResetConfirm(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	mailer := mocks.NewMockMailer()
	var resetLink string
	mailer.SendPasswordResetFunc = func(email, link string) error {
		resetLink = link
		return nil
	}

	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewSessionRepository(redisClient, time.Hour),
		auth.NewPasswordService(),
		auth.NewJWTService("flow-test-secret", "zefood", 15*time.Minute),
		mailer,
		15*time.Minute,
		time.Hour,
		time.Hour,
		"http://localhost:3000",
	)
	ctx := context.Background()

	user, err := svc.Register(ctx, "bob@x.com", "5551000000", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected an assigned user id")
	}

	if _, err := svc.Register(ctx, "bob@x.com", "5552000000", "other"); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if _, err := svc.Register(ctx, "carol@x.com", "5551000000", "other"); !errors.Is(err, domain.ErrDuplicatePhone) {
		t.Fatalf("expected ErrDuplicatePhone, got %v", err)
	}

	if _, err := svc.Login(ctx, "bob@x.com", "wrong-password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	result, err := svc.Login(ctx, "bob@x.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccessToken == "" || result.SessionID == "" {
		t.Fatal("expected a minted token and session")
	}

	if err := svc.RequestPasswordReset(ctx, "bob@x.com"); err != nil {
		t.Fatalf("reset request failed: %v", err)
	}
	idx := strings.Index(resetLink, "token=")
	if idx < 0 {
		t.Fatalf("reset link %q carries no token", resetLink)
	}
	token := resetLink[idx+len("token="):]
	if len(token) != 64 {
		t.Fatalf("expected a 64-char hex token, got %q", token)
	}

	if err := svc.ConfirmPasswordReset(ctx, token, "secret2"); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if err := svc.ConfirmPasswordReset(ctx, token, "secret3"); !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("expected the spent token to fail, got %v", err)
	}

	if _, err := svc.Login(ctx, "bob@x.com", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must no longer work, got %v", err)
	}
	if _, err := svc.Login(ctx, "bob@x.com", "secret2"); err != nil {
		t.Fatalf("new password must work, got %v", err)
	}
}
