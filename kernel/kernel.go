// Package kernel - Dirichlet amplitude scorer.
//
// Design principles:
//   - Deterministic, side-effect free scoring; inputs are never mutated.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Hot-path discipline: one big.Int allocation per evaluation (the
//     remainder), O(J) float work, nothing hidden.
package kernel

import (
	"math"
	"math/big"

	"github.com/katalvlaran/resonance/numeric"
)

// twoPi is the full angular period of the phase mapping.
const twoPi = 2 * math.Pi

// Scorer evaluates the resonance amplitude of divisor candidates for a fixed
// target N at a fixed working precision. A Scorer is read-only after
// construction and safe to share across goroutines.
type Scorer struct {
	n     *big.Int        // target (not mutated, not copied)
	bound *big.Int        // cached N−2, the upper end of the legal range
	order int             // kernel order J ≥ 1
	norm  float64         // cached normalizer 2J+1
	ctx   numeric.Context // working-precision context for the phase division
}

// NewScorer binds a target, a kernel order and a precision context.
//
// Contract:
//   - n ≥ 4 so that the candidate range [2, N−2] is non-empty.
//   - order ≥ 1.
//
// Errors: ErrTargetRange, ErrKernelOrder.
//
// Complexity: O(len(n)).
func NewScorer(n *big.Int, order int, ctx numeric.Context) (*Scorer, error) {
	if n == nil || n.Cmp(big.NewInt(4)) < 0 {
		return nil, ErrTargetRange
	}
	if order < 1 {
		return nil, ErrKernelOrder
	}

	return &Scorer{
		n:     n,
		bound: new(big.Int).Sub(n, big.NewInt(2)),
		order: order,
		norm:  float64(2*order + 1),
		ctx:   ctx,
	}, nil
}

// Order reports the kernel order J.
func (s *Scorer) Order() int { return s.order }

// Amplitude returns the normalized resonance amplitude of candidate d
// in [0,1]. Candidates outside the legal range [2, N−2] score 0; a true
// divisor scores exactly 1.
//
// Phase mapping: f = (N mod d)/d, reduced exactly in integer arithmetic and
// divided at the working precision; only the bounded f ∈ [0,1) reaches
// floating trig.
//
// Complexity: O(len(n)·len(d)) for the reduction + O(J) float work.
func (s *Scorer) Amplitude(d *big.Int) float64 {
	if !s.inRange(d) {
		return 0
	}

	var r *big.Int // exact remainder N mod d
	r = new(big.Int).Mod(s.n, d)
	if r.Sign() == 0 {
		// Exact divisor: phase 0, amplitude 1 by construction.
		return 1
	}

	// Bounded phase in (0,1); float64 keeps 53 bits of it, ample for a
	// J-harmonic cosine sum.
	var f float64
	f, _ = s.ctx.Quo(s.ctx.FromInt(r), s.ctx.FromInt(d)).Float64()

	return dirichlet(f, s.order, s.norm)
}

// inRange reports whether d lies in the legal candidate range [2, N−2].
//
// Complexity: O(len(d)).
func (s *Scorer) inRange(d *big.Int) bool {
	if d == nil {
		return false
	}
	if d.Cmp(big.NewInt(2)) < 0 {
		return false
	}

	return d.Cmp(s.bound) <= 0
}

// dirichlet evaluates |1 + 2·Σ_{j=1..J} cos(2πjf)| / (2J+1) for f ∈ (0,1).
// norm must equal 2J+1 (cached by the Scorer).
//
// Complexity: O(J).
func dirichlet(f float64, order int, norm float64) float64 {
	var (
		theta float64 // base angle 2πf
		sum   float64 // harmonic sum, starts at the j=0 term
		j     int     // harmonic index
	)
	theta = twoPi * f
	sum = 1
	for j = 1; j <= order; j++ {
		sum += 2 * math.Cos(theta*float64(j))
	}

	var amp float64
	amp = math.Abs(sum) / norm
	if amp > 1 {
		// Guards accumulated rounding at the f→0 limit; |sum| ≤ 2J+1 exactly.
		amp = 1
	}

	return amp
}
