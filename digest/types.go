package digest

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Column names required in the edge-list header.
const (
	ColInit = "init_node"
	ColTerm = "term_node"
)

// Sentinel errors for edge-list ingestion and digestion.
var (
	// ErrNoHeader is returned when the input has no header row.
	ErrNoHeader = errors.New("digest: edge list has no header row")

	// ErrMissingColumn is returned when init_node or term_node is absent.
	ErrMissingColumn = errors.New("digest: required column missing")

	// ErrBadEndpoint is returned when an endpoint field is not an integer.
	ErrBadEndpoint = errors.New("digest: endpoint is not an integer")

	// ErrNoRecords is returned when Digest is given an empty edge list.
	ErrNoRecords = errors.New("digest: no edge records")

	// ErrBadNodeCount is returned when the expected node count is < 1.
	ErrBadNodeCount = errors.New("digest: node count must be at least 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("digest: invalid option supplied")
)

// DefaultSeed seeds the reference-graph construction when no RNG option is given.
const DefaultSeed uint64 = 42

// Record is one edge-list row: two raw endpoint labels plus whatever other
// columns the source carried, kept as opaque attributes.
type Record struct {
	Init  int
	Term  int
	Attrs map[string]string
}

// Option configures Digest via functional arguments.
type Option func(*options)

type options struct {
	rng         *rand.Rand
	maxAttempts int // forwarded to the degree sampler; 0 = its default
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

// WithMaxAttempts bounds the degree-sequence rejection loop. k must be positive.
func WithMaxAttempts(k int) Option {
	return func(o *options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.maxAttempts = k
	}
}
