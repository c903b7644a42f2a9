package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for a credential (with GORM tags)
type DBUser struct {
	ID                  uint    `gorm:"primaryKey"`
	Email               string  `gorm:"uniqueIndex;size:255"`
	Phone               string  `gorm:"uniqueIndex;size:32"`
	PasswordHash        string  `gorm:"column:password"`
	ResetToken          *string `gorm:"index;size:128"`
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// SetResetToken implements domain.UserRepository. Any token still
// outstanding for the user is overwritten, so at most one token is live.
func (r *UserRepositoryImpl) SetResetToken(ctx context.Context, userID uint, token string, expiresAt time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reset_token":            token,
		"reset_token_expires_at": expiresAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ConsumeResetToken implements domain.UserRepository. The password update
// is conditioned on the token still matching and being unexpired in a
// single UPDATE, so two racing confirmations cannot both succeed: the row
// check happens atomically with the write, not as a separate read.
func (r *UserRepositoryImpl) ConsumeResetToken(ctx context.Context, token, newPasswordHash string, now time.Time) error {
	res := r.db.WithContext(ctx).Model(&DBUser{}).
		Where("reset_token = ? AND reset_token_expires_at > ?", token, now).
		Updates(map[string]interface{}{
			"password":               newPasswordHash,
			"reset_token":            nil,
			"reset_token_expires_at": nil,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidOrExpiredToken
	}
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                  user.ID,
		Email:               user.Email,
		Phone:               user.Phone,
		PasswordHash:        user.PasswordHash,
		ResetToken:          user.ResetToken,
		ResetTokenExpiresAt: user.ResetTokenExpiresAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                  dbUser.ID,
		Email:               dbUser.Email,
		Phone:               dbUser.Phone,
		PasswordHash:        dbUser.PasswordHash,
		ResetToken:          dbUser.ResetToken,
		ResetTokenExpiresAt: dbUser.ResetTokenExpiresAt,
		CreatedAt:           dbUser.CreatedAt,
		UpdatedAt:           dbUser.UpdatedAt,
	}
}
