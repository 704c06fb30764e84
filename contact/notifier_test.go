package contact

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doucearrivee/contact-api/email"
)

// captureSender records every message handed to it.
type captureSender struct {
	mu   sync.Mutex
	msgs []email.Message
}

func (c *captureSender) Send(_ context.Context, msg email.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
	return nil
}

func (c *captureSender) byRecipient(to string) (email.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.msgs {
		if m.To == to {
			return m, true
		}
	}
	return email.Message{}, false
}

func TestEmailNotifier_Notify(t *testing.T) {
	cs := &captureSender{}
	n := NewEmailNotifier(email.NewDispatcher(cs), "bonjour@doucearrivee.ca", "no-reply@doucearrivee.ca")

	sub := Submission{
		Name:         "Marie Tremblay",
		Email:        "marie@example.com",
		Availability: "morning",
		Message:      "Je suis intéressée par le yoga prénatal",
	}

	err := n.Notify(context.Background(), sub, "203.0.113.7")
	require.NoError(t, err)
	require.Len(t, cs.msgs, 2)

	notification, ok := cs.byRecipient("bonjour@doucearrivee.ca")
	require.True(t, ok, "operator notification missing")
	assert.Equal(t, "marie@example.com", notification.ReplyTo)
	assert.Equal(t, "Nouveau message de Marie Tremblay", notification.Subject)
	assert.Contains(t, notification.Text, "Marie Tremblay")
	assert.Contains(t, notification.Text, "marie@example.com")
	assert.Contains(t, notification.Text, "Matin")
	assert.Contains(t, notification.Text, "203.0.113.7")
	assert.Contains(t, notification.Text, "Je suis intéressée par le yoga prénatal")

	confirmation, ok := cs.byRecipient("marie@example.com")
	require.True(t, ok, "submitter confirmation missing")
	assert.Equal(t, "bonjour@doucearrivee.ca", confirmation.ReplyTo)
	assert.Equal(t, "Merci pour votre message", confirmation.Subject)
	assert.Contains(t, confirmation.Text, "Bonjour Marie Tremblay")
	assert.NotContains(t, confirmation.Text, "203.0.113.7", "confirmation is acknowledgement-only")
}

func TestEmailNotifier_NotifyNoAvailability(t *testing.T) {
	cs := &captureSender{}
	n := NewEmailNotifier(email.NewDispatcher(cs), "bonjour@doucearrivee.ca", "no-reply@doucearrivee.ca")

	err := n.Notify(context.Background(), Submission{
		Name:    "Marie Tremblay",
		Email:   "marie@example.com",
		Message: "Je suis intéressée par le yoga prénatal",
	}, "203.0.113.7")
	require.NoError(t, err)

	notification, ok := cs.byRecipient("bonjour@doucearrivee.ca")
	require.True(t, ok)
	assert.Contains(t, notification.Text, "Non précisée")
}
