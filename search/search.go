// Package search - unified entry point and the sequential run loop.
//
// Design principles:
//   - Deterministic: seed routing to the sampler; no time-based randomness.
//   - Strict sentinels: only errors from types.go (plus forwarded filter /
//     numeric sentinels); no fmt.Errorf where a sentinel suffices.
//   - Single code path: there is no transition from RUNNING into any
//     alternate algorithm; failure is final by construction.
//   - Hot-path discipline: validation and √N happen once, before the loop;
//     the loop performs no config checks and no hidden allocations beyond
//     the per-candidate big.Int work.
package search

import (
	"context"
	"math"
	"math/big"
	"time"

	"github.com/katalvlaran/resonance/filter"
	"github.com/katalvlaran/resonance/kernel"
	"github.com/katalvlaran/resonance/numeric"
	"github.com/katalvlaran/resonance/qmc"
)

// Factor searches for a non-trivial divisor of n. It blocks up to
// cfg.Timeout and returns a terminal Result; a non-nil error means the run
// never started (configuration error or arithmetic anomaly).
//
// Contracts:
//   - n ≥ 4 and not a perfect square (validated; fatal otherwise).
//   - Deterministic for fixed (n, cfg, cfg.Seed) when cfg.Workers ≤ 1.
//   - Cancellation via ctx is cooperative: observed between samples only.
//
// Errors: sentinels from types.go, filter.Validate, numeric.SqrtInt.
//
// Complexity: O(Samples · (len(n)² + J)) worst case, bounded by Timeout.
func Factor(ctx context.Context, n *big.Int, cfg Config) (Result, error) {
	// Stage 1 - INITIALIZED gate: config and target validation.
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}
	if err := validateTarget(n); err != nil {
		return Result{}, err
	}

	// Stage 2 - derive the run state (precision context, √N, scorer, sampler).
	r, err := newRun(n, cfg)
	if err != nil {
		return Result{}, err
	}

	// Stage 3 - RUNNING: route to the sequential or strided-parallel loop.
	if cfg.Workers > 1 {
		return r.parallel(ctx)
	}

	return r.sequential(ctx)
}

// run is the mutable state of one Factor invocation. It is owned by the
// orchestrator for the duration of the run and discarded at run end; only
// the Result outlives it.
type run struct {
	cfg Config

	// Read-only after newRun; shared freely across workers.
	n      *big.Int        // target
	nctx   numeric.Context // working-precision context
	sqrtN  *big.Float      // √n at working precision, computed once
	root   *big.Int        // round(√n), the sweep center
	floor  *big.Int        // lower legal candidate bound (2)
	ceil   *big.Int        // upper legal candidate bound (n−2)
	scorer *kernel.Scorer
	seq    *qmc.Sequence

	// Wall clock.
	start    time.Time
	deadline time.Time

	// Mutated by exactly one goroutine (per-worker clones in parallel mode).
	samples int      // draws consumed
	checked int      // exact-divisibility checks performed
	best    bestList // bounded top-scoring diagnostics
}

// newRun validates nothing (done by Factor) and assembles the run state:
// precision context, the one-shot √n, the scorer and the sampler.
func newRun(n *big.Int, cfg Config) (*run, error) {
	var nctx numeric.Context
	nctx = numeric.NewContext(n.BitLen(), cfg.PrecisionFloor)

	sqrtN, err := nctx.SqrtInt(n)
	if err != nil {
		// Arithmetic anomaly; aborts, never silently corrected.
		return nil, err
	}

	scorer, err := kernel.NewScorer(n, cfg.Order, nctx)
	if err != nil {
		return nil, err
	}

	seq, err := qmc.New(cfg.Seed, cfg.Samples, cfg.KLo, cfg.KHi)
	if err != nil {
		return nil, err
	}

	var now time.Time
	now = time.Now()

	return &run{
		cfg:      cfg,
		n:        n,
		nctx:     nctx,
		sqrtN:    sqrtN,
		root:     numeric.RoundToInt(sqrtN),
		floor:    big.NewInt(2),
		ceil:     new(big.Int).Sub(n, big.NewInt(2)),
		scorer:   scorer,
		seq:      seq,
		start:    now,
		deadline: now.Add(cfg.Timeout),
		best:     bestList{bound: cfg.KeepBest},
	}, nil
}

// sequential is the single-threaded RUNNING loop: it consumes the sampler
// in order via Next. Per iteration: cooperative cancel check, wall-clock
// check (once per outer iteration, bounding overrun to one sample's work),
// then one full pipeline pass.
func (r *run) sequential(ctx context.Context) (Result, error) {
	var i int
	for i = 0; i < r.cfg.Samples; i++ {
		// Cancellation is observed between samples, never mid-evaluation.
		if ctx.Err() != nil {
			return r.finish(StateCancelled, ReasonCancelled), nil
		}
		if !time.Now().Before(r.deadline) {
			return r.finish(StateFailed, ReasonTimeout), nil
		}

		k, ok := r.seq.Next()
		if !ok {
			// The sequence length equals the budget; exhaustion here means
			// the budget is spent.
			break
		}

		r.samples++
		if p, q, hit := r.evaluate(i, k); hit {
			var res Result
			res = r.finish(StateCompleted, "")
			res.P, res.Q = p, q

			return res, nil
		}
	}

	return r.finish(StateFailed, ReasonBudgetExhausted), nil
}

// evaluate runs one draw (index i, sampled fraction k) through the full
// pipeline: offset → amplitude → gate → snap → triangle filter → exact
// verification. Gate misses and filter rejections are silent skips, not
// errors.
func (r *run) evaluate(i int, k float64) (p, q *big.Int, hit bool) {
	var d *big.Int
	d = r.candidate(k)
	if d == nil {
		// Offset fell outside [2, n−2]; skip to the next sample.
		return nil, nil, false
	}

	// Kernel amplitude and diagnostics bookkeeping.
	var amp float64
	amp = r.scorer.Amplitude(d)
	r.best.consider(Candidate{D: new(big.Int).Set(d), Score: amp, Draw: i})

	// Amplitude gate.
	if amp < r.cfg.Threshold {
		return nil, nil, false
	}

	// Phase-corrected snapping to the locally best integer.
	d, _ = r.scorer.Snap(d, r.cfg.SnapRadius)

	// Geometric plausibility before the expensive exact division.
	if !filter.Admits(r.n, d, r.sqrtN, r.cfg.Filter, r.nctx) {
		return nil, nil, false
	}

	// Exact verification: the only acceptance criterion.
	r.checked++
	if new(big.Int).Mod(r.n, d).Sign() != 0 {
		return nil, nil, false
	}

	// p·q == n holds by construction: the modulo check passed, so integer
	// division is exact.
	p = new(big.Int).Set(d)
	q = new(big.Int).Quo(r.n, d)
	if p.Cmp(q) > 0 {
		p, q = q, p
	}

	return p, q, true
}

// candidate maps the sampled fraction k onto an integer candidate: the
// affine image (2k−1)·Span is rounded and added to round(√n), so the
// [KLo, KHi] interval selects the swept sub-band of [−Span, +Span].
// Returns nil when the result leaves [2, n−2].
func (r *run) candidate(k float64) *big.Int {
	var off float64
	off = math.Round((2*k - 1) * float64(r.cfg.Span))

	var d *big.Int
	d = new(big.Int).Add(r.root, big.NewInt(int64(off)))
	if d.Cmp(r.floor) < 0 || d.Cmp(r.ceil) > 0 {
		return nil
	}

	return d
}

// finish freezes the run into a terminal Result.
func (r *run) finish(state State, reason string) Result {
	return Result{
		State:   state,
		Elapsed: time.Since(r.start),
		Samples: r.samples,
		Checked: r.checked,
		Reason:  reason,
		Best:    r.best.items,
	}
}

// bestList is a bounded, score-descending list of the best candidates seen.
// Appended by a single goroutine; parallel workers keep thread-confined
// lists merged at the end (see parallel.go).
type bestList struct {
	bound int // maximum retained length; 0 keeps nothing
	items []Candidate
}

// consider inserts c if it ranks within the bound. Ordering: descending
// score; ties resolve to the earlier draw for determinism.
//
// Complexity: O(bound) per call.
func (b *bestList) consider(c Candidate) {
	if b.bound == 0 {
		return
	}

	// Find the insertion point (first item that c outranks).
	var pos int
	for pos = 0; pos < len(b.items); pos++ {
		if c.Score > b.items[pos].Score ||
			(c.Score == b.items[pos].Score && c.Draw < b.items[pos].Draw) {
			break
		}
	}
	if pos == len(b.items) && len(b.items) >= b.bound {
		return
	}

	b.items = append(b.items, Candidate{})
	copy(b.items[pos+1:], b.items[pos:])
	b.items[pos] = c
	if len(b.items) > b.bound {
		b.items = b.items[:b.bound]
	}
}
