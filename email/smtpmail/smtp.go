// Package smtpmail delivers contact api mail through a plain SMTP relay.
package smtpmail

import (
	"context"
	"net"
	"net/smtp"
	"strconv"

	jwemail "github.com/jordan-wright/email"
	"github.com/pkg/errors"

	"github.com/doucearrivee/contact-api/email"
)

var _ email.Sender = &SMTPMail{}

// SMTPMail is an SMTP implementation of the Sender interface
type SMTPMail struct {
	host string
	port int
	user string
	pass string
	ssl  bool
}

// New creates a new SMTP Sender for the given relay
func New(host string, port int, user, pass string, ssl bool) *SMTPMail {
	return &SMTPMail{host: host, port: port, user: user, pass: pass, ssl: ssl}
}

// Send implements Sender Send()
func (s *SMTPMail) Send(_ context.Context, msg email.Message) error {
	e := compose(msg)

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)

	var err error
	if s.ssl {
		err = e.SendWithTLS(addr, auth, nil)
	} else {
		err = e.Send(addr, auth)
	}

	return errors.Wrap(err, "SMTPMail: failed to send message")
}

func compose(msg email.Message) *jwemail.Email {
	e := jwemail.NewEmail()
	e.From = msg.From
	e.To = []string{msg.To}
	e.Subject = msg.Subject
	e.Text = []byte(msg.Text)

	if msg.ReplyTo != "" {
		e.ReplyTo = []string{msg.ReplyTo}
	}

	return e
}
