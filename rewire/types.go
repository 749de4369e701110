package rewire

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/kervalen/clustnet/core"
)

// Sentinel errors for engine invocation.
var (
	// ErrNilGraph is returned when the graph pointer is nil.
	ErrNilGraph = errors.New("rewire: graph is nil")

	// ErrEmptyGraph is returned when the graph has no nodes.
	ErrEmptyGraph = errors.New("rewire: graph has no nodes")

	// ErrSampleSize is returned when nodesPerRound is < 1.
	ErrSampleSize = errors.New("rewire: nodesPerRound must be at least 1")

	// ErrTolerance is returned when the allowed error is negative.
	ErrTolerance = errors.New("rewire: allowed error must be non-negative")

	// ErrUnknownStrategy is returned for a Strategy value this package
	// does not define.
	ErrUnknownStrategy = errors.New("rewire: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rewire: invalid option supplied")
)

// DefaultSeed seeds the engine when no RNG option is given. It matches the
// seed used throughout the reference experiments.
const DefaultSeed uint64 = 42

// DefaultBudget is the wall-clock ceiling when WithBudget is not given.
const DefaultBudget = 3600 * time.Second

// Strategy selects the candidate policy for per-node rewiring.
type Strategy int

const (
	// Model1 excludes only the node and its remaining neighbors; no
	// connectivity repair.
	Model1 Strategy = iota + 1

	// Model2 excludes the node's 2-hop neighborhood; repairs connectivity
	// each round.
	Model2

	// Model3 admits only nodes matching the dropped edge's far-endpoint
	// degree; repairs connectivity each round.
	Model3
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Model1:
		return "model1"
	case Model2:
		return "model2"
	case Model3:
		return "model3"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// valid reports whether s is one of the defined strategies.
func (s Strategy) valid() bool { return s >= Model1 && s <= Model3 }

// repairsConnectivity reports whether rounds start with connectivity repair.
func (s Strategy) repairsConnectivity() bool { return s == Model2 || s == Model3 }

// Result is the outcome of a run, returned identically for convergence and
// budget exhaustion.
type Result struct {
	// Graph is the rewired graph (the same instance that was passed in,
	// mutated in place).
	Graph *core.Graph

	// Rounds counts completed convergence rounds.
	Rounds int

	// Trace holds one average-clustering value per completed round, with the
	// initial coefficient at index 0; len(Trace) == Rounds+1.
	Trace []float64
}

// Option configures Run via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*options)

type options struct {
	ctx    context.Context
	rng    *rand.Rand
	budget time.Duration
	log    *zap.Logger
	err    error
}

func defaultOptions() options {
	return options{
		ctx:    context.Background(),
		rng:    rand.New(rand.NewPCG(DefaultSeed, 0)),
		budget: DefaultBudget,
		log:    zap.NewNop(),
	}
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

// WithBudget sets the wall-clock ceiling for the whole run. d must be positive.
func WithBudget(d time.Duration) Option {
	return func(o *options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: budget must be positive (%v)", ErrOptionViolation, d)
			return
		}
		o.budget = d
	}
}

// WithContext allows caller-side cancellation; cancellation is treated like
// budget exhaustion (graceful partial result). nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger routes diagnostics (round progress, budget exhaustion) to log;
// nil is ignored. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
