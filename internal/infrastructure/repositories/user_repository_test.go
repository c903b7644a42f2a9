package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// setupTestDB creates an in-memory SQLite database for testing.
// TranslateError makes duplicate key violations surface as
// gorm.ErrDuplicatedKey, matching the production configuration.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBCustomer{}, &DBOrder{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, phone string) *DBUser {
	t.Helper()
	user := &DBUser{
		Email:        email,
		Phone:        phone,
		PasswordHash: "hashed_password",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		Email:        "test@example.com",
		Phone:        "11987654321",
		PasswordHash: "hashed_password",
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected the assigned id to be written back")
	}

	byEmail, err := repo.FindByEmail(ctx, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byEmail.PasswordHash != "hashed_password" {
		t.Errorf("unexpected hash %q", byEmail.PasswordHash)
	}

	byPhone, err := repo.FindByPhone(ctx, "11987654321")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byPhone.ID != user.ID {
		t.Errorf("expected id %d, got %d", user.ID, byPhone.ID)
	}

	if _, err := repo.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, 9999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_UniqueConstraints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "taken@example.com", "11911111111")

	err := repo.Create(ctx, &domain.User{
		Email:        "taken@example.com",
		Phone:        "11922222222",
		PasswordHash: "x",
	})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected a duplicate key error on email, got %v", err)
	}

	err = repo.Create(ctx, &domain.User{
		Email:        "other@example.com",
		Phone:        "11911111111",
		PasswordHash: "x",
	})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected a duplicate key error on phone, got %v", err)
	}
}

func TestUserRepositoryImpl_SetResetToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seeded := seedUser(t, db, "user@example.com", "11987654321")
	expiry := time.Now().Add(time.Hour)

	if err := repo.SetResetToken(ctx, seeded.ID, "token-one", expiry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a second request overwrites the first token
	if err := repo.SetResetToken(ctx, seeded.ID, "token-two", expiry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stored DBUser
	if err := db.First(&stored, seeded.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if stored.ResetToken == nil || *stored.ResetToken != "token-two" {
		t.Errorf("expected token-two stored, got %v", stored.ResetToken)
	}

	if err := repo.SetResetToken(ctx, 9999, "token", expiry); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for an unknown user, got %v", err)
	}
}

func TestUserRepositoryImpl_ConsumeResetToken(t *testing.T) {
	tests := []struct {
		name          string
		storedToken   string
		storedExpiry  time.Time
		consumeToken  string
		expectedError error
	}{
		{
			name:         "live token consumes",
			storedToken:  "live-token",
			storedExpiry: time.Now().Add(time.Hour),
			consumeToken: "live-token",
		},
		{
			name:          "wrong token fails",
			storedToken:   "live-token",
			storedExpiry:  time.Now().Add(time.Hour),
			consumeToken:  "wrong-token",
			expectedError: domain.ErrInvalidOrExpiredToken,
		},
		{
			name:          "expired token fails",
			storedToken:   "stale-token",
			storedExpiry:  time.Now().Add(-time.Minute),
			consumeToken:  "stale-token",
			expectedError: domain.ErrInvalidOrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			repo := NewUserRepository(db)
			ctx := context.Background()

			seeded := seedUser(t, db, "user@example.com", "11987654321")
			if err := repo.SetResetToken(ctx, seeded.ID, tt.storedToken, tt.storedExpiry); err != nil {
				t.Fatalf("failed to store token: %v", err)
			}

			err := repo.ConsumeResetToken(ctx, tt.consumeToken, "hashed_new", time.Now())
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}

			var stored DBUser
			if err := db.First(&stored, seeded.ID).Error; err != nil {
				t.Fatalf("failed to reload user: %v", err)
			}

			if tt.expectedError != nil {
				if stored.PasswordHash != "hashed_password" {
					t.Error("password must not change on a failed consume")
				}
				return
			}
			if stored.PasswordHash != "hashed_new" {
				t.Errorf("expected the new hash, got %q", stored.PasswordHash)
			}
			if stored.ResetToken != nil {
				t.Error("expected the token to be cleared")
			}
			if stored.ResetTokenExpiresAt != nil {
				t.Error("expected the expiry to be cleared")
			}
		})
	}
}

func TestUserRepositoryImpl_ConsumeResetToken_SingleUse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seeded := seedUser(t, db, "user@example.com", "11987654321")
	if err := repo.SetResetToken(ctx, seeded.ID, "one-shot", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("failed to store token: %v", err)
	}

	if err := repo.ConsumeResetToken(ctx, "one-shot", "hashed_first", time.Now()); err != nil {
		t.Fatalf("first consume failed: %v", err)
	}

	err := repo.ConsumeResetToken(ctx, "one-shot", "hashed_second", time.Now())
	if !errors.Is(err, domain.ErrInvalidOrExpiredToken) {
		t.Fatalf("expected the second consume to fail, got %v", err)
	}

	var stored DBUser
	if err := db.First(&stored, seeded.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if stored.PasswordHash != "hashed_first" {
		t.Errorf("second consume must not overwrite the password, got %q", stored.PasswordHash)
	}
}
