package smtpmail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doucearrivee/contact-api/email"
)

func TestCompose(t *testing.T) {
	e := compose(email.Message{
		To:      "marie@example.com",
		From:    "no-reply@doucearrivee.ca",
		ReplyTo: "bonjour@doucearrivee.ca",
		Subject: "Merci pour votre message",
		Text:    "Bonjour Marie,\n\nMerci pour votre message.\n",
	})

	assert.Equal(t, "no-reply@doucearrivee.ca", e.From)
	assert.Equal(t, []string{"marie@example.com"}, e.To)
	assert.Equal(t, []string{"bonjour@doucearrivee.ca"}, e.ReplyTo)
	assert.Equal(t, "Merci pour votre message", e.Subject)
	assert.Equal(t, "Bonjour Marie,\n\nMerci pour votre message.\n", string(e.Text))
}

func TestComposeNoReplyTo(t *testing.T) {
	e := compose(email.Message{To: "marie@example.com", From: "no-reply@doucearrivee.ca"})

	assert.Empty(t, e.ReplyTo)
}
