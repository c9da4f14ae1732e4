package notifier

import (
	"context"
	"fmt"

	"github.com/vfg2006/linkedin-ads-ingestor/internal/config"
	"gopkg.in/gomail.v2"
)

// sender é satisfeito por *gomail.Dialer
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailChannel envia texto puro via SMTP com STARTTLS e autenticação
type EmailChannel struct {
	from      string
	recipient string
	dialer    sender
}

func NewEmailChannel(cfg config.Email) *EmailChannel {
	return &EmailChannel{
		from:      cfg.User,
		recipient: cfg.Recipient,
		dialer:    gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.User, cfg.Password),
	}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", c.recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email para %s: %w", c.recipient, err)
	}

	return nil
}
