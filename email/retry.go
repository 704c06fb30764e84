package email

import "time"

// Policy controls how many times an operation is attempted and how long to
// wait between attempts.
type Policy struct {
	Attempts int
	Backoff  time.Duration
}

// withRetry runs op up to p.Attempts times, sleeping p.Backoff between
// attempts. When every attempt fails the first error is returned, as it is
// the most representative failure cause; a retry-time error may differ.
func withRetry(p Policy, sleep func(time.Duration), op func() error) error {
	first := op()
	if first == nil {
		return nil
	}

	for i := 1; i < p.Attempts; i++ {
		sleep(p.Backoff)

		if err := op(); err == nil {
			return nil
		}
	}

	return first
}
