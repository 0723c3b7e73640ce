package mailer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"officeit/pkg/mailer"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestMailer_Send(t *testing.T) {
	d := &fakeDialer{}
	m := mailer.NewWithDialer(d, "shop@example.com")

	err := m.Send(mailer.Message{
		To:      "inbox@example.com",
		ReplyTo: "customer@example.com",
		Subject: "Hello",
		Body:    "Do you ship printers?",
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	sent := d.sent[0]
	assert.Equal(t, []string{"shop@example.com"}, sent.GetHeader("From"))
	assert.Equal(t, []string{"inbox@example.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"customer@example.com"}, sent.GetHeader("Reply-To"))
	assert.Equal(t, []string{"Hello"}, sent.GetHeader("Subject"))
}

func TestMailer_SendErrors(t *testing.T) {
	m := mailer.NewWithDialer(&fakeDialer{err: errors.New("connection refused")}, "shop@example.com")

	assert.Error(t, m.Send(mailer.Message{Subject: "no recipient"}))

	err := m.Send(mailer.Message{To: "inbox@example.com", Subject: "x"})
	assert.ErrorContains(t, err, "connection refused")
}
