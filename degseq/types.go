package degseq

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Sentinel errors for degree-sequence sampling.
var (
	// ErrBadNodeCount is returned when the requested node count is < 1.
	ErrBadNodeCount = errors.New("degseq: node count must be at least 1")

	// ErrNoWeights is returned when the weight slice is empty or sums to zero.
	ErrNoWeights = errors.New("degseq: degree distribution has no positive mass")

	// ErrNegativeWeight is returned when any weight is negative.
	ErrNegativeWeight = errors.New("degseq: negative weight in degree distribution")

	// ErrNoGraphicalSequence is returned when the rejection loop exhausts its
	// attempt budget without producing a graphical sequence.
	ErrNoGraphicalSequence = errors.New("degseq: no graphical sequence found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("degseq: invalid option supplied")
)

// DefaultSeed seeds the sampler when no RNG option is given.
const DefaultSeed uint64 = 42

// DefaultMaxAttempts bounds the rejection loop when WithMaxAttempts is not given.
const DefaultMaxAttempts = 10000

// Option configures Sample via functional arguments. Invalid options are
// recorded internally and surfaced as ErrOptionViolation when Sample runs.
type Option func(*options)

type options struct {
	rng         *rand.Rand
	maxAttempts int
	err         error
}

func defaultOptions() options {
	return options{
		rng:         rand.New(rand.NewPCG(DefaultSeed, 0)),
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithSeed derives a fresh deterministic RNG from seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithRand supplies an explicit RNG instance; nil is ignored.
// Prefer this when several stages of a pipeline should share one stream.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithMaxAttempts bounds the rejection loop. k must be positive.
func WithMaxAttempts(k int) Option {
	return func(o *options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.maxAttempts = k
	}
}
