// Package email defines the outbound mail contract for the contact api and
// the dispatcher that delivers the operator notification and submitter
// confirmation for an accepted submission.
package email

import "context"

// Message is a single outbound plain-text email.
type Message struct {
	To      string
	From    string
	ReplyTo string
	Subject string
	Text    string
}

// Sender represents a mail provider the contact api can use to deliver mail.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
