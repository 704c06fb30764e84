package contact

import (
	"context"
	"fmt"

	"github.com/doucearrivee/contact-api/email"
)

// Notifier delivers the emails resulting from an accepted submission.
type Notifier interface {
	Notify(ctx context.Context, sub Submission, ip string) error
}

// availability labels used in the email bodies.
var availabilityLabels = map[string]string{
	"morning":   "Matin",
	"afternoon": "Après-midi",
	"evening":   "Soir",
	"flexible":  "Flexible",
}

var _ Notifier = &EmailNotifier{}

// EmailNotifier composes the operator notification and the submitter
// confirmation for a submission and hands them to the dispatcher. The
// notification is addressed to the practitioner with reply-to set to the
// submitter; the confirmation is the reverse.
type EmailNotifier struct {
	dispatcher    *email.Dispatcher
	operatorEmail string
	fromAddr      string
}

// NewEmailNotifier returns an EmailNotifier sending through d.
func NewEmailNotifier(d *email.Dispatcher, operatorEmail, fromAddr string) *EmailNotifier {
	return &EmailNotifier{dispatcher: d, operatorEmail: operatorEmail, fromAddr: fromAddr}
}

// Notify implements Notifier Notify()
func (n *EmailNotifier) Notify(ctx context.Context, sub Submission, ip string) error {
	notification := email.Message{
		To:      n.operatorEmail,
		From:    n.fromAddr,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("Nouveau message de %v", sub.Name),
		Text:    notificationBody(sub, ip),
	}

	confirmation := email.Message{
		To:      sub.Email,
		From:    n.fromAddr,
		ReplyTo: n.operatorEmail,
		Subject: "Merci pour votre message",
		Text:    confirmationBody(sub),
	}

	return n.dispatcher.Dispatch(ctx, notification, confirmation)
}

func notificationBody(sub Submission, ip string) string {
	avail := availabilityLabels[sub.Availability]
	if avail == "" {
		avail = "Non précisée"
	}

	return fmt.Sprintf(
		"Nom : %v\nCourriel : %v\nDisponibilité : %v\nIP : %v\n\n%v\n",
		sub.Name, sub.Email, avail, ip, sub.Message,
	)
}

func confirmationBody(sub Submission) string {
	return fmt.Sprintf(
		"Bonjour %v,\n\nMerci pour votre message. Je vous répondrai dans les plus brefs délais, habituellement sous 48 heures.\n\nDouce Arrivée\n",
		sub.Name,
	)
}
