// Package retrypolicy provides retry policies for use with backoff.Retry.
package retrypolicy

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

// Done signals the retry policy has been exhausted and no further
// attempts should be made
const Done time.Duration = -1

var (
	// DefaultRetry is the default retry policy, exponential backoff with
	// jitter capped at a ten second interval
	DefaultRetry, _ = New(
		WithInitialInterval(50*time.Millisecond),
		WithBackoffCoefficient(2.0),
		WithMaximumInterval(10*time.Second),
		WithExpirationInterval(time.Minute),
		WithMaximumAttempts(10),
	)
	// NoRetry is a policy which never retries
	NoRetry, _ = New(WithMaximumAttempts(0))
)

// Retry calculates the delay before the next attempt of a retryable operation
type Retry interface {
	CalculateNextDelay() time.Duration
}

// Option applies a setting to a policy
type Option func(*policy) error

type policy struct {
	initialInterval    time.Duration
	backoffCoefficient float64
	maximumInterval    time.Duration
	expirationInterval time.Duration
	maximumAttempt     int
	currentAttempt     int
	startTime          time.Time
}

// New creates a retry policy from the given options
func New(options ...Option) (Retry, error) {
	p := new(policy)
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// WithInitialInterval sets the delay before the first retry
func WithInitialInterval(interval time.Duration) Option {
	return func(p *policy) error {
		if interval < 0 {
			return errors.New("initial interval cannot be negative")
		}
		p.initialInterval = interval
		return nil
	}
}

// WithBackoffCoefficient sets the multiplier applied to the interval after each attempt
func WithBackoffCoefficient(coefficient float64) Option {
	return func(p *policy) error {
		if coefficient < 1 {
			return errors.New("backoff coefficient cannot be less than one")
		}
		p.backoffCoefficient = coefficient
		return nil
	}
}

// WithMaximumInterval caps the delay between attempts
func WithMaximumInterval(interval time.Duration) Option {
	return func(p *policy) error {
		if interval < 0 {
			return errors.New("maximum interval cannot be negative")
		}
		p.maximumInterval = interval
		return nil
	}
}

// WithExpirationInterval bounds the total time spent retrying
func WithExpirationInterval(interval time.Duration) Option {
	return func(p *policy) error {
		if interval < 0 {
			return errors.New("expiration interval cannot be negative")
		}
		p.expirationInterval = interval
		return nil
	}
}

// WithMaximumAttempts bounds the number of attempts
func WithMaximumAttempts(attempts int) Option {
	return func(p *policy) error {
		if attempts < 0 {
			return errors.New("maximum attempts cannot be negative")
		}
		p.maximumAttempt = attempts
		return nil
	}
}

// CalculateNextDelay returns the delay before the next attempt, or Done
// when the policy is exhausted
func (p *policy) CalculateNextDelay() time.Duration {
	if p.currentAttempt >= p.maximumAttempt {
		return Done
	}

	if p.startTime.IsZero() {
		p.startTime = time.Now()
	}
	if p.expirationInterval > 0 && time.Since(p.startTime) > p.expirationInterval {
		return Done
	}

	nextInterval := float64(p.initialInterval) * math.Pow(p.backoffCoefficient, float64(p.currentAttempt))
	if nextInterval <= 0 {
		return Done
	}
	if p.maximumInterval > 0 && nextInterval > float64(p.maximumInterval) {
		nextInterval = float64(p.maximumInterval)
	}

	// jitter down to at most twenty percent below the full interval
	jitter := nextInterval * 0.2 * rand.Float64()
	p.currentAttempt++

	return time.Duration(nextInterval - jitter)
}
