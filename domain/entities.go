package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryMode selects how a finished order reaches the customer.
// The wire values match what the mobile client sends.
type DeliveryMode string

const (
	DeliveryPickup   DeliveryMode = "retirada"
	DeliveryDelivery DeliveryMode = "entrega"
)

// DeliveryFee is the flat surcharge applied when DeliveryMode is delivery.
var DeliveryFee = decimal.NewFromInt(5)

// User represents an authentication credential
type User struct {
	ID                  uint
	Email               string
	Phone               string
	PasswordHash        string
	ResetToken          *string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Customer represents a customer contact profile. It exists independently
// of any credential; UserID links the two when known.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	UserID    *uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineItem is one product entry within a draft or order.
type LineItem struct {
	ID        string          `json:"idProduto"`
	Name      string          `json:"nome"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"preco"`
}

// Subtotal returns quantity times unit price.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a finalized, submittable order.
type Order struct {
	ID           string
	CustomerID   string
	Items        []LineItem
	DeliveryMode DeliveryMode
	CreatedAt    time.Time
}

// Total returns the order total including any delivery surcharge.
func (o *Order) Total() decimal.Decimal {
	return ComputeTotal(o.Items, o.DeliveryMode)
}

// ComputeTotal sums the line items and adds the delivery surcharge when the
// mode is delivery. Pure: no side effects, same inputs give same output.
func ComputeTotal(items []LineItem, mode DeliveryMode) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	if mode == DeliveryDelivery {
		total = total.Add(DeliveryFee)
	}
	return total
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	SessionID   string
	ExpiresIn   int64
}

// Session represents a server-side user session
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TokenClaims represents access token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
