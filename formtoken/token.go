// Package formtoken issues the signed timestamp the contact form embeds when
// it is rendered. The submission handler later recovers the issue time to
// tell how long the visitor spent filling in the form.
package formtoken

import (
	"strconv"
	"time"

	"github.com/bwmarrin/go-alone"
	"github.com/pkg/errors"
)

// ErrTokenExpired is returned when the given token was issued longer than maxAge ago
var ErrTokenExpired = errors.New("formtoken: token has expired")

// ErrInvalidToken is returned when the token has an invalid signature or is otherwise invalid
var ErrInvalidToken = errors.New("formtoken: invalid token")

// Generator contains fields needed by NewToken and IssuedAt
type Generator struct {
	s      *goalone.Sword
	maxAge time.Duration
	Clock  func() time.Time
}

// NewGenerator takes a signing key and a max age for tokens then returns a new token generator
func NewGenerator(k string, m time.Duration) *Generator {
	return &Generator{s: goalone.New([]byte(k)), maxAge: m, Clock: time.Now}
}

// NewToken returns a signed opaque token carrying the current time
func (tg *Generator) NewToken() string {
	ms := tg.Clock().UTC().UnixMilli()

	return string(tg.s.Sign([]byte(strconv.FormatInt(ms, 10))))
}

// IssuedAt returns the issue time encoded in the given token or an error
func (tg *Generator) IssuedAt(t string) (time.Time, error) {
	payload, err := tg.s.Unsign([]byte(t))
	if err != nil {
		return time.Time{}, ErrInvalidToken
	}

	ms, err := strconv.ParseInt(string(payload), 10, 64)
	if err != nil {
		return time.Time{}, ErrInvalidToken
	}

	issued := time.UnixMilli(ms)

	if tg.Clock().Sub(issued) > tg.maxAge {
		return time.Time{}, ErrTokenExpired
	}

	return issued, nil
}
