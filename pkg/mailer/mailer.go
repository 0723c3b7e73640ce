package mailer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Message is a plain text email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Dialer delivers composed messages. *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends plain text mail through an SMTP relay.
type Mailer struct {
	dialer Dialer
	from   string
}

// New creates a Mailer for cfg. It does not connect until the first Send.
func New(cfg Config) *Mailer {
	return NewWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From)
}

// NewWithDialer creates a Mailer around an existing dialer.
func NewWithDialer(d Dialer, from string) *Mailer {
	return &Mailer{dialer: d, from: from}
}

// Compose builds the gomail message for msg.
func (m *Mailer) Compose(msg Message) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)
	return gm
}

// Send delivers msg.
func (m *Mailer) Send(msg Message) error {
	if msg.To == "" {
		return errors.New("mail recipient is required")
	}
	if err := m.dialer.DialAndSend(m.Compose(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	zap.S().Infow("mail sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
