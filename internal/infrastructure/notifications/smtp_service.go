package notifications

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// SMTPMailer implements domain.Mailer over an SMTP account. The dialer is
// built once at construction and reused for every send.
type SMTPMailer struct {
	dialer       *gomail.Dialer
	from         string
	storeAddress string
}

// NewSMTPMailer creates a new SMTP mailer. storeAddress is where
// order-confirmation mail is delivered (the shop inbox).
func NewSMTPMailer(host string, port int, username, password, from, storeAddress string) domain.Mailer {
	m := &SMTPMailer{
		from:         from,
		storeAddress: storeAddress,
	}
	if username != "" {
		m.dialer = gomail.NewDialer(host, port, username, password)
	}
	return m
}

// SendOrderConfirmation implements domain.Mailer
func (m *SMTPMailer) SendOrderConfirmation(name, email string, order *domain.Order, mode domain.DeliveryMode, total decimal.Decimal) error {
	subject := fmt.Sprintf("Novo Pedido de %s", name)
	body := orderConfirmationBody(name, email, order, mode, total)

	// If the mail account is not configured, log instead of sending
	if m.dialer == nil {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s\n", m.storeAddress, subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.storeAddress)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}
	return nil
}

// SendPasswordReset implements domain.Mailer
func (m *SMTPMailer) SendPasswordReset(email, resetLink string) error {
	subject := "Instruções para Recuperação de Senha"
	body := passwordResetBody(resetLink)

	if m.dialer == nil {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Link: %s\n", email, subject, resetLink)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func orderConfirmationBody(name, email string, order *domain.Order, mode domain.DeliveryMode, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("<h1>Novo Pedido Recebido</h1>")
	fmt.Fprintf(&b, "<p><strong>Nome:</strong> %s</p>", name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", email)
	fmt.Fprintf(&b, "<p><strong>Modo de Entrega:</strong> %s</p>", mode)
	fmt.Fprintf(&b, "<p><strong>Total:</strong> R$ %s</p>", total.StringFixed(2))
	b.WriteString("<h2>Itens do Pedido:</h2><ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%s - Quantidade: %d - Preço: R$ %s</li>",
			item.Name, item.Quantity, item.UnitPrice.StringFixed(2))
	}
	b.WriteString("</ul>")
	return b.String()
}

func passwordResetBody(resetLink string) string {
	var b strings.Builder
	b.WriteString("<h1>Recuperação de Senha</h1>")
	b.WriteString("<p>Você solicitou a recuperação de senha para este e-mail.</p>")
	b.WriteString("<p>Clique no link abaixo para redefinir sua senha:</p>")
	fmt.Fprintf(&b, "<a href=%q>Redefinir Senha</a>", resetLink)
	b.WriteString("<p>Se você não solicitou essa recuperação, ignore este e-mail.</p>")
	return b.String()
}
