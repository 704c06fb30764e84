package email

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// fakeSender scripts per-recipient failures and counts attempts.
type fakeSender struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string][]error // consumed one per attempt, nil entry means success
}

func newFakeSender() *fakeSender {
	return &fakeSender{calls: map[string]int{}, fail: map[string][]error{}}
}

func (f *fakeSender) failWith(to string, errs ...error) {
	f.fail[to] = errs
}

func (f *fakeSender) Send(_ context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	attempt := f.calls[msg.To]
	f.calls[msg.To]++

	scripted := f.fail[msg.To]
	if attempt < len(scripted) {
		return scripted[attempt]
	}

	return nil
}

func (f *fakeSender) sent(to string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[to]
}

func newTestDispatcher(s Sender) *Dispatcher {
	d := NewDispatcher(s)
	d.sleep = func(time.Duration) {}
	return d
}

var notification = Message{To: "operator@example.com", From: "no-reply@example.com", Subject: "Nouveau message"}
var confirmation = Message{To: "marie@example.com", From: "no-reply@example.com", Subject: "Merci pour votre message"}

func TestDispatcher_DispatchBothSucceed(t *testing.T) {
	fs := newFakeSender()

	err := newTestDispatcher(fs).Dispatch(context.Background(), notification, confirmation)

	assert.NoError(t, err)
	assert.Equal(t, 1, fs.sent("operator@example.com"))
	assert.Equal(t, 1, fs.sent("marie@example.com"))
}

func TestDispatcher_DispatchNotificationFailureIsFatal(t *testing.T) {
	fs := newFakeSender()
	fs.failWith("operator@example.com", errors.New("mailgun down"), errors.New("mailgun still down"))

	err := newTestDispatcher(fs).Dispatch(context.Background(), notification, confirmation)

	assert.Error(t, err)
	assert.Equal(t, 2, fs.sent("operator@example.com"), "notification should be retried once")
	assert.Equal(t, 1, fs.sent("marie@example.com"), "confirmation still runs to completion")
}

func TestDispatcher_DispatchConfirmationFailureIsNot(t *testing.T) {
	fs := newFakeSender()
	fs.failWith("marie@example.com", errors.New("mailbox full"), errors.New("mailbox full"))

	err := newTestDispatcher(fs).Dispatch(context.Background(), notification, confirmation)

	assert.NoError(t, err, "confirmation-only failure must not fail the dispatch")
	assert.Equal(t, 2, fs.sent("marie@example.com"))
}

func TestDispatcher_DispatchRetryRecovers(t *testing.T) {
	fs := newFakeSender()
	fs.failWith("operator@example.com", errors.New("transient"))

	err := newTestDispatcher(fs).Dispatch(context.Background(), notification, confirmation)

	assert.NoError(t, err)
	assert.Equal(t, 2, fs.sent("operator@example.com"))
}

func TestDispatcher_DispatchSurfacesFirstError(t *testing.T) {
	first := errors.New("first failure")
	second := errors.New("second failure")

	fs := newFakeSender()
	fs.failWith("operator@example.com", first, second)

	err := newTestDispatcher(fs).Dispatch(context.Background(), notification, confirmation)

	assert.Equal(t, first, errors.Cause(err), "the original error is the representative one")
}

func TestWithRetry(t *testing.T) {
	var slept []time.Duration
	sleep := func(d time.Duration) { slept = append(slept, d) }

	t.Run("no retry on success", func(t *testing.T) {
		slept = nil
		calls := 0

		err := withRetry(Policy{Attempts: 2, Backoff: time.Second}, sleep, func() error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Empty(t, slept)
	})

	t.Run("backoff before the retry", func(t *testing.T) {
		slept = nil
		calls := 0

		err := withRetry(Policy{Attempts: 2, Backoff: time.Second}, sleep, func() error {
			calls++
			return errors.New("nope")
		})

		assert.Error(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, []time.Duration{time.Second}, slept)
	})
}
