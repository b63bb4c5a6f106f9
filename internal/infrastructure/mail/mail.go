package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/alimikegami/e-bazaar/config"
	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/alimikegami/e-bazaar/internal/dto"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Sender delivers composed messages; *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	config config.SMTPConfig
	sender Sender
}

// CreateSMTPMailer authenticates with Username, falling back to the sender
// address when no separate account is configured.
func CreateSMTPMailer(config config.SMTPConfig) *SMTPMailer {
	username := config.Username
	if username == "" {
		username = config.Sender
	}

	return &SMTPMailer{
		config: config,
		sender: gomail.NewDialer(config.Host, config.Port, username, config.Password),
	}
}

func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, user domain.User, order dto.OrderResponse) error {
	if err := m.sender.DialAndSend(m.orderConfirmation(user, order)); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SendOrderConfirmation").Str("order_id", order.ID).Msg("")
		return err
	}

	return nil
}

func (m *SMTPMailer) orderConfirmation(user domain.User, order dto.OrderResponse) *gomail.Message {
	message := gomail.NewMessage()
	message.SetHeader("From", m.config.Sender)
	message.SetHeader("To", user.Email)
	message.SetHeader("Subject", fmt.Sprintf("Order %s received", order.ID))
	message.SetBody("text/plain", orderConfirmationBody(user, order))

	return message
}

func orderConfirmationBody(user domain.User, order dto.OrderResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", user.Name)
	fmt.Fprintf(&b, "We have received your order %s.\n\n", order.ID)
	for _, item := range order.OrderItems {
		fmt.Fprintf(&b, "- %d x %s\n", item.Quantity, item.Product)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\n", order.TotalPrice)
	fmt.Fprintf(&b, "Ship to: %s, %s %s, %s\n", order.ShippingAddress1, order.City, order.Zip, order.Country)
	fmt.Fprintf(&b, "Status: %s\n", order.Status)

	return b.String()
}

// NoopMailer is used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) SendOrderConfirmation(ctx context.Context, user domain.User, order dto.OrderResponse) error {
	log.Ctx(ctx).Debug().Str("order_id", order.ID).Msg("order confirmation mail disabled")
	return nil
}
