package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicatePhone     = errors.New("phone already registered")
)

// Password reset errors. A single error covers both the wrong-token and the
// expired-token case so callers cannot tell which one happened.
var (
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
)

// Cart and order errors
var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("unit price must not be negative")
	ErrEmptyCart       = errors.New("cart has no items")
	ErrMissingCustomer = errors.New("cart has no customer")
	ErrDraftFinalized  = errors.New("draft already finalized")
	ErrInvalidOrder    = errors.New("order is invalid or empty")
	ErrDuplicateOrder  = errors.New("order id already exists")
	ErrOrderNotFound   = errors.New("order not found")
)

// Customer record errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidInput     = errors.New("invalid or incomplete input")
)

// Notification errors
var (
	ErrNotificationFailed = errors.New("notification delivery failed")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)
