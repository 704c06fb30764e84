// Package spamgate decides whether a contact form submission looks automated.
// Its checks are invisible to humans: a rejected submission must be answered
// exactly like an accepted one so bots can't learn which check tripped them.
package spamgate

import (
	"time"

	"github.com/doucearrivee/contact-api/formtoken"
)

// DefaultMinFillTime is the least believable time a human takes to fill in
// the form. Anything faster is treated as a bot.
const DefaultMinFillTime = 3 * time.Second

// Gate holds the two anti-bot checks: the honeypot field and the minimum
// fill time derived from the signed render token.
type Gate struct {
	tokens      *formtoken.Generator
	minFillTime time.Duration
	Clock       func() time.Time
}

// New returns a gate verifying render tokens against the given generator.
// A non-positive minFillTime falls back to DefaultMinFillTime.
func New(tokens *formtoken.Generator, minFillTime time.Duration) *Gate {
	if minFillTime <= 0 {
		minFillTime = DefaultMinFillTime
	}

	return &Gate{tokens: tokens, minFillTime: minFillTime, Clock: time.Now}
}

// Check returns true when the submission passes both checks. Any non-empty
// honeypot value rejects, whitespace included. A missing, invalid or expired
// token rejects. An elapsed fill time of exactly minFillTime passes.
func (g *Gate) Check(honeypot, token string) bool {
	if honeypot != "" {
		return false
	}

	issued, err := g.tokens.IssuedAt(token)
	if err != nil {
		return false
	}

	return g.Clock().Sub(issued) >= g.minFillTime
}
