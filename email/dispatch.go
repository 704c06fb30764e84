package email

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/doucearrivee/contact-api/metrics"
)

// Dispatcher sends the operator notification and the submitter confirmation
// concurrently, each with a single retry. The two deliveries are not equally
// important: losing the notification means nobody read the message, so it
// fails the dispatch; losing only the confirmation does not.
type Dispatcher struct {
	sender Sender
	policy Policy
	sleep  func(time.Duration)
}

// NewDispatcher returns a Dispatcher delivering through the given sender
// with the default one-retry, one-second-backoff policy.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		policy: Policy{Attempts: 2, Backoff: time.Second},
		sleep:  time.Sleep,
	}
}

// Dispatch delivers both messages. Both sends always run to completion, the
// failure of one never cancels the other. The returned error is non-nil only
// when the notification could not be delivered after its retry.
func (d *Dispatcher) Dispatch(ctx context.Context, notification, confirmation Message) error {
	var notifErr, confErr error

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		notifErr = d.send(ctx, "notification", notification)
	}()

	go func() {
		defer wg.Done()
		confErr = d.send(ctx, "confirmation", confirmation)
	}()

	wg.Wait()

	if confErr != nil {
		// non-critical: the operator still got the message
		log.Printf("Dispatcher: confirmation email failed, continuing: %v", confErr)
	}

	if notifErr != nil {
		return errors.Wrap(notifErr, "Dispatcher: failed to deliver operator notification")
	}

	return nil
}

func (d *Dispatcher) send(ctx context.Context, kind string, m Message) error {
	err := withRetry(d.policy, d.sleep, func() error {
		return d.sender.Send(ctx, m)
	})

	if err != nil {
		metrics.Emails.WithLabelValues(kind, "failed").Inc()
		return err
	}

	metrics.Emails.WithLabelValues(kind, "sent").Inc()
	return nil
}
