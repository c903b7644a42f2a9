package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// TimeoutMailer decorates a domain.Mailer with a bounded send timeout so a
// hung mail server cannot hang order confirmation. Failures are reported as
// ErrNotificationFailed; the underlying send is not cancelled, only
// abandoned.
type TimeoutMailer struct {
	mailer  domain.Mailer
	timeout time.Duration
}

// NewTimeoutMailer wraps the given mailer.
func NewTimeoutMailer(mailer domain.Mailer, timeout time.Duration) domain.Mailer {
	return &TimeoutMailer{
		mailer:  mailer,
		timeout: timeout,
	}
}

// SendOrderConfirmation implements domain.Mailer
func (t *TimeoutMailer) SendOrderConfirmation(name, email string, order *domain.Order, mode domain.DeliveryMode, total decimal.Decimal) error {
	return t.send(func() error {
		return t.mailer.SendOrderConfirmation(name, email, order, mode, total)
	})
}

// SendPasswordReset implements domain.Mailer
func (t *TimeoutMailer) SendPasswordReset(email, resetLink string) error {
	return t.send(func() error {
		return t.mailer.SendPasswordReset(email, resetLink)
	})
}

func (t *TimeoutMailer) send(fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
		}
		return nil
	case <-time.After(t.timeout):
		return fmt.Errorf("%w: no response after %s", domain.ErrNotificationFailed, t.timeout)
	}
}
