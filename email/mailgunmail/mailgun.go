// Package mailgunmail delivers contact api mail through Mailgun.
package mailgunmail

import (
	"context"

	"github.com/pkg/errors"
	mailgun "gopkg.in/mailgun/mailgun-go.v1"

	"github.com/doucearrivee/contact-api/email"
)

var _ email.Sender = &MailgunMail{}

// MailgunMail is a mailgun implementation of the Sender interface
type MailgunMail struct {
	mg mailgun.Mailgun
}

// New creates a new Mailgun Sender for the given domain
func New(domain, key string) *MailgunMail {
	return &MailgunMail{mg: mailgun.NewMailgun(domain, key, "")}
}

// Send implements Sender Send()
func (m *MailgunMail) Send(_ context.Context, msg email.Message) error {
	mgMsg := m.mg.NewMessage(msg.From, msg.Subject, msg.Text, msg.To)

	if msg.ReplyTo != "" {
		mgMsg.AddHeader("Reply-To", msg.ReplyTo)
	}

	_, _, err := m.mg.Send(mgMsg)

	return errors.Wrap(err, "MailgunMail: failed to send message")
}
