package services

import (
	"fmt"
	"strings"

	"officeit/internal/catalog"
	"officeit/internal/models"
	"officeit/pkg/mailer"
)

// ContactSuccessMessage is shown after a contact message is accepted.
const ContactSuccessMessage = "Thank you for contacting us. We'll get back to you soon."

// MailSender delivers email. *mailer.Mailer satisfies it.
type MailSender interface {
	Send(msg mailer.Message) error
}

// ContactService accepts contact form submissions. Messages are forwarded
// to the shop inbox and published as events, never stored.
type ContactService struct {
	mail   MailSender
	inbox  string
	events EventPublisher
}

// NewContactService creates a new ContactService. A nil mail sender or an
// empty inbox disables forwarding.
func NewContactService(mail MailSender, inbox string, events EventPublisher) *ContactService {
	return &ContactService{mail: mail, inbox: inbox, events: events}
}

// Submit validates and delivers msg.
func (s *ContactService) Submit(msg models.ContactMessage) error {
	msg = trimContact(msg)
	if err := validationError(catalog.ValidateContact(msg)); err != nil {
		return err
	}
	if s.mail != nil && s.inbox != "" {
		if err := s.mail.Send(contactMail(s.inbox, msg)); err != nil {
			return fmt.Errorf("failed to forward contact message: %w", err)
		}
	}
	publish(s.events, EventContactSubmitted, msg)
	return nil
}

func trimContact(msg models.ContactMessage) models.ContactMessage {
	msg.FullName = strings.TrimSpace(msg.FullName)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	return msg
}

func contactMail(inbox string, msg models.ContactMessage) mailer.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", msg.FullName, msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", msg.Phone)
	}
	b.WriteString("\n")
	b.WriteString(msg.Message)
	return mailer.Message{
		To:      inbox,
		ReplyTo: msg.Email,
		Subject: "[Contact] " + msg.Subject,
		Body:    b.String(),
	}
}
