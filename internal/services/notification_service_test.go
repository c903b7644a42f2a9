package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Joseluizbianchini/ZeFood/domain"
	"github.com/Joseluizbianchini/ZeFood/internal/mocks"
)

func TestTimeoutMailer(t *testing.T) {
	t.Run("successful send passes through", func(t *testing.T) {
		inner := mocks.NewMockMailer()
		var sentTo string
		inner.SendPasswordResetFunc = func(email, resetLink string) error {
			sentTo = email
			return nil
		}
		mailer := NewTimeoutMailer(inner, time.Second)

		if err := mailer.SendPasswordReset("user@example.com", "http://link"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sentTo != "user@example.com" {
			t.Errorf("expected mail to user@example.com, got %q", sentTo)
		}
	})

	t.Run("send failure is wrapped as a notification failure", func(t *testing.T) {
		inner := mocks.NewMockMailer()
		inner.SendPasswordResetFunc = func(email, resetLink string) error {
			return errors.New("connection refused")
		}
		mailer := NewTimeoutMailer(inner, time.Second)

		err := mailer.SendPasswordReset("user@example.com", "http://link")
		if !errors.Is(err, domain.ErrNotificationFailed) {
			t.Errorf("expected ErrNotificationFailed, got %v", err)
		}
	})

	t.Run("hung send is abandoned after the timeout", func(t *testing.T) {
		inner := mocks.NewMockMailer()
		release := make(chan struct{})
		inner.SendPasswordResetFunc = func(email, resetLink string) error {
			<-release
			return nil
		}
		mailer := NewTimeoutMailer(inner, 20*time.Millisecond)

		start := time.Now()
		err := mailer.SendPasswordReset("user@example.com", "http://link")
		close(release)

		if !errors.Is(err, domain.ErrNotificationFailed) {
			t.Errorf("expected ErrNotificationFailed, got %v", err)
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("send was not abandoned promptly, took %v", elapsed)
		}
	})
}
