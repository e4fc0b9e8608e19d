// Package search - strided parallel sample evaluation.
//
// The search loop is logically sequential, but divisibility is a pure
// predicate, commutative across candidates: the order in which candidates
// are checked does not affect correctness. This file evaluates independent
// sample batches on worker goroutines under those terms:
//   - worker w consumes draw indices i ≡ w (mod Workers) via the pure,
//     index-addressable sampler, so every worker sees exactly the values a
//     sequential run would;
//   - the first verified hit cancels the siblings cooperatively (checked
//     between samples, never preempting a kernel evaluation);
//   - N, √N and the precision context are shared read-only with no locks;
//     counters and best lists are thread-confined and merged at the end.
package search

import (
	"context"
	"math/big"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// parallel runs cfg.Workers strided batch evaluators and merges their
// outcomes. The factor pair of a COMPLETED result is deterministic (any
// verified divisor normalizes to the same {p, q}); counter totals may vary
// with cancellation timing, as documented on Config.Workers.
func (r *run) parallel(ctx context.Context) (Result, error) {
	// Inner context: the first hit cancels the sibling workers.
	inner, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		g       *errgroup.Group
		gctx    context.Context
		workers = r.cfg.Workers
		clones  = make([]*run, workers) // thread-confined counters/diagnostics
		mu      sync.Mutex              // guards the first-hit record
		hitP    *big.Int                // first verified factor (smaller)
		hitQ    *big.Int                // its cofactor
	)
	g, gctx = errgroup.WithContext(inner)

	var w int
	for w = 0; w < workers; w++ {
		var (
			stride = w
			wr     = r.clone()
		)
		clones[stride] = wr

		g.Go(func() error {
			var i int
			for i = stride; i < wr.cfg.Samples; i += workers {
				// Cooperative checks between samples only.
				if gctx.Err() != nil {
					return nil
				}
				if !time.Now().Before(wr.deadline) {
					return nil
				}

				wr.samples++
				if p, q, hit := wr.evaluate(i, wr.seq.At(i)); hit {
					mu.Lock()
					if hitP == nil {
						hitP, hitQ = p, q
					}
					mu.Unlock()
					cancel()

					return nil
				}
			}

			return nil
		})
	}

	// Workers return nil errors by construction; Wait is the join point.
	_ = g.Wait()

	// Merge thread-confined accounting into the parent run.
	var c *run
	for _, c = range clones {
		r.samples += c.samples
		r.checked += c.checked

		var b Candidate
		for _, b = range c.best.items {
			r.best.consider(b)
		}
	}

	// Terminal state precedence: hit > external cancel > exhaustion/timeout.
	if hitP != nil {
		var res Result
		res = r.finish(StateCompleted, "")
		res.P, res.Q = hitP, hitQ

		return res, nil
	}
	if ctx.Err() != nil {
		return r.finish(StateCancelled, ReasonCancelled), nil
	}
	if r.samples < r.cfg.Samples {
		return r.finish(StateFailed, ReasonTimeout), nil
	}

	return r.finish(StateFailed, ReasonBudgetExhausted), nil
}

// clone derives a worker-local run sharing the read-only target, precision
// context, √n, scorer and sampler, with fresh counters and diagnostics.
func (r *run) clone() *run {
	return &run{
		cfg:      r.cfg,
		n:        r.n,
		nctx:     r.nctx,
		sqrtN:    r.sqrtN,
		root:     r.root,
		floor:    r.floor,
		ceil:     r.ceil,
		scorer:   r.scorer,
		seq:      r.seq,
		start:    r.start,
		deadline: r.deadline,
		best:     bestList{bound: r.cfg.KeepBest},
	}
}
