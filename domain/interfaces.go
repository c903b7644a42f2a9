package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UserRepository defines credential data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	// SetResetToken stores a reset token and its expiry on the user,
	// replacing any token that is still outstanding.
	SetResetToken(ctx context.Context, userID uint, token string, expiresAt time.Time) error
	// ConsumeResetToken atomically replaces the password hash and clears the
	// token fields of the user whose unexpired reset token matches. Returns
	// ErrInvalidOrExpiredToken when no such user exists; at most one of two
	// racing calls can succeed.
	ConsumeResetToken(ctx context.Context, token, newPasswordHash string, now time.Time) error
}

// CustomerRepository defines customer profile data access operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
}

// OrderRepository defines order persistence operations
type OrderRepository interface {
	// Create persists the order. A colliding order id fails with
	// ErrDuplicateOrder; nothing is written in that case.
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService defines authentication and credential-recovery business logic
type AuthService interface {
	Register(ctx context.Context, email, phone, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

// CustomerService defines customer record business logic
type CustomerService interface {
	Create(ctx context.Context, name, phone, email string) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id, name, phone, email string) (*Customer, error)
}

// OrderService defines order submission business logic
type OrderService interface {
	Submit(ctx context.Context, order *Order) (*Order, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines access token operations
type TokenService interface {
	GenerateAccessToken(userID uint, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// Mailer defines the transactional email operations the core consumes.
// Both sends report the delivery outcome synchronously; email is
// best-effort and never rolls back already-committed state.
type Mailer interface {
	SendOrderConfirmation(name, email string, order *Order, mode DeliveryMode, total decimal.Decimal) error
	SendPasswordReset(email, resetLink string) error
}

// OrderEventPublisher publishes persisted orders to the kitchen work queue.
type OrderEventPublisher interface {
	PublishOrder(ctx context.Context, order *Order) error
}
