package confmodel

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Sentinel errors for configuration-model construction.
var (
	// ErrNegativeDegree is returned when the degree sequence has a negative entry.
	ErrNegativeDegree = errors.New("confmodel: negative degree in sequence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("confmodel: invalid option supplied")
)

// DefaultSeed seeds construction when no RNG option is given.
const DefaultSeed uint64 = 42

// Option configures Build and FromDistribution via functional arguments.
type Option func(*options)

type options struct {
	rng         *rand.Rand
	maxAttempts int // forwarded to degseq.Sample; 0 = its default
	err         error
}

func defaultOptions() options {
	return options{rng: rand.New(rand.NewPCG(DefaultSeed, 0))}
}

// WithSeed derives a fresh deterministic RNG from seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithRand supplies an explicit RNG instance; nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithMaxAttempts bounds the degree-sequence rejection loop inside
// FromDistribution. k must be positive. Build itself ignores it.
func WithMaxAttempts(k int) Option {
	return func(o *options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.maxAttempts = k
	}
}
