package rewire

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/kervalen/clustnet/analyze"
	"github.com/kervalen/clustnet/core"
)

// Run rewires g toward the target average clustering coefficient, accepting
// any value in [target−allowedErr, target+allowedErr]. current is the
// graph's coefficient going in (it becomes Trace[0]); nodesPerRound caps how
// many candidates each node scores per move.
//
// g is mutated in place and owned by the run until Run returns. If current
// already lies inside the band, zero rounds execute. Budget exhaustion and
// context cancellation return the partial Result with a nil error; see the
// package documentation.
func Run(g *core.Graph, current, target, allowedErr float64, nodesPerRound int, strategy Strategy, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.N() == 0 {
		return Result{}, ErrEmptyGraph
	}
	if nodesPerRound < 1 {
		return Result{}, ErrSampleSize
	}
	if allowedErr < 0 {
		return Result{}, ErrTolerance
	}
	if !strategy.valid() {
		return Result{}, ErrUnknownStrategy
	}

	e := &engine{
		g:        g,
		rng:      o.rng,
		log:      o.log,
		ctx:      o.ctx,
		deadline: time.Now().Add(o.budget),
		lo:       target - allowedErr,
		hi:       target + allowedErr,
		cap:      nodesPerRound,
		strategy: strategy,
	}
	return e.run(current), nil
}

// engine holds one invocation's state: the owned graph, the RNG, the band,
// and the deadline.
type engine struct {
	g        *core.Graph
	rng      *rand.Rand
	log      *zap.Logger
	ctx      context.Context
	deadline time.Time
	lo, hi   float64
	cap      int
	strategy Strategy
}

// run executes the convergence loop and assembles the Result.
func (e *engine) run(current float64) Result {
	start := time.Now()
	trace := []float64{current}
	rounds := 0
	c := current

	for c < e.lo || c > e.hi {
		if e.expired() {
			e.log.Warn("rewire: wall-clock budget exhausted, returning partial result",
				zap.Stringer("strategy", e.strategy),
				zap.Int("rounds", rounds),
				zap.Float64("clustering", c),
				zap.Duration("elapsed", time.Since(start)))
			break
		}

		rounds++
		nodes := e.g.Nodes() // per-round snapshot

		if e.strategy.repairsConnectivity() {
			e.repairConnectivity(nodes)
		}

		for _, v := range nodes {
			// Abort point between per-node moves, never inside one: the
			// graph is always structurally consistent here.
			if e.expired() {
				break
			}
			e.rewireNode(v)
		}

		c = analyze.AverageClustering(e.g)
		trace = append(trace, c)
		e.log.Debug("rewire: round complete",
			zap.Int("round", rounds),
			zap.Float64("clustering", c))
	}

	if c >= e.lo && c <= e.hi {
		e.log.Info("rewire: converged",
			zap.Stringer("strategy", e.strategy),
			zap.Int("rounds", rounds),
			zap.Float64("clustering", c),
			zap.Duration("elapsed", time.Since(start)))
	}
	return Result{Graph: e.g, Rounds: rounds, Trace: trace}
}

// expired reports whether the deadline passed or the context was cancelled.
func (e *engine) expired() bool {
	select {
	case <-e.ctx.Done():
		return true
	default:
	}
	return !time.Now().Before(e.deadline)
}

// rewireNode gives v its one greedy move: drop a random incident edge,
// score the strategy's candidates, keep the best.
func (e *engine) rewireNode(v int) {
	removedDeg := -1 // far endpoint's pre-removal degree; -1 = nothing dropped
	if nbrs := e.g.Neighbors(v); len(nbrs) > 0 {
		w := nbrs[e.rng.IntN(len(nbrs))]
		removedDeg = e.g.Degree(w)
		e.g.RemoveEdge(v, w)
	}

	pool := e.candidates(v, removedDeg)
	if len(pool) > e.cap {
		pool = e.sample(pool, e.cap)
	}
	if len(pool) == 0 {
		return // no replacement: v ends the round one edge poorer
	}

	best, bestC := pool[0], math.Inf(-1)
	for _, cand := range pool {
		// Tentative add, score, roll back. A candidate already adjacent
		// (possible under Model3's degree filter) scores the graph as-is
		// and must not have its real edge torn out.
		added, _ := e.g.AddEdge(v, cand)
		cc := analyze.AverageClustering(e.g)
		if added {
			e.g.RemoveEdge(v, cand)
		}
		if cc > bestC {
			best, bestC = cand, cc
		}
	}
	_, _ = e.g.AddEdge(v, best) // endpoints come from the node set; cannot fail
}

// candidates builds v's pool under the strategy policy, in ascending node
// order. removedDeg is the dropped edge's far-endpoint degree before the
// removal, or -1 when v had no edge to drop.
func (e *engine) candidates(v, removedDeg int) []int {
	n := e.g.N()
	switch e.strategy {
	case Model1:
		pool := make([]int, 0, n)
		for u := 0; u < n; u++ {
			if u == v || e.g.HasEdge(u, v) {
				continue
			}
			pool = append(pool, u)
		}
		return pool

	case Model2:
		excl := make(map[int]struct{})
		excl[v] = struct{}{}
		for _, w := range e.g.Neighbors(v) {
			excl[w] = struct{}{}
			for _, x := range e.g.Neighbors(w) {
				excl[x] = struct{}{}
			}
		}
		pool := make([]int, 0, n)
		for u := 0; u < n; u++ {
			if _, skip := excl[u]; skip {
				continue
			}
			pool = append(pool, u)
		}
		return pool

	case Model3:
		if removedDeg < 0 {
			return nil // nothing was dropped, so there is no degree to match
		}
		var pool []int
		for u := 0; u < n; u++ {
			if u != v && e.g.Degree(u) == removedDeg {
				pool = append(pool, u)
			}
		}
		return pool
	}
	return nil
}

// sample picks k of pool uniformly without replacement (partial
// Fisher–Yates); the input slice is consumed.
func (e *engine) sample(pool []int, k int) []int {
	for i := 0; i < k; i++ {
		j := i + e.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// repairConnectivity joins every node outside the largest connected
// component to a uniformly-random member of it, so the round's rewiring
// starts from a connected graph.
func (e *engine) repairConnectivity(nodes []int) {
	comps := analyze.Components(e.g)
	if len(comps) <= 1 {
		return
	}
	giant := comps[0]
	for _, comp := range comps[1:] {
		if len(comp) > len(giant) {
			giant = comp
		}
	}
	inGiant := make([]bool, e.g.N())
	for _, u := range giant {
		inGiant[u] = true
	}
	repaired := 0
	for _, v := range nodes {
		if inGiant[v] {
			continue
		}
		_, _ = e.g.AddEdge(v, giant[e.rng.IntN(len(giant))])
		repaired++
	}
	e.log.Debug("rewire: connectivity repaired", zap.Int("nodes_joined", repaired))
}
