// Package filter - triangle-closure admissibility check.
//
// Design principles:
//   - Deterministic, side-effect free; inputs are never mutated.
//   - No logging, no panics on user input; invalid Config is caught by
//     Validate at construction time, not here.
//   - Rejection order is fixed: degenerate → bypass → boundary → band → skew.
package filter

import (
	"math"
	"math/big"

	"github.com/katalvlaran/resonance/numeric"
)

// Admits reports whether candidate d is geometrically plausible as a factor
// of n, given √n at the working precision.
//
// Rejection rules, in order:
//  1. d nil, d ≤ 1, or d ≥ n−1 → reject, regardless of Enabled. The
//     cofactor of n−1 would be below 2, so n−1 is as degenerate as n.
//  2. Enabled == false → admit unconditionally.
//  3. d == round(√n) → admit (boundary case, never rejected by the band).
//  4. Admit iff √n/R ≤ d ≤ √n·R AND |log d − log √n| ≤ S.
//
// Contract:
//   - cfg passed Validate; sqrtN was produced by ctx.SqrtInt(n).
//
// Complexity: O(prec) for the band comparisons.
func Admits(n, d *big.Int, sqrtN *big.Float, cfg Config, ctx numeric.Context) bool {
	// Stage 1: degenerate candidates, rejected unconditionally.
	if n == nil || d == nil || sqrtN == nil {
		return false
	}
	if d.Sign() <= 0 {
		return false
	}
	if d.Cmp(big.NewInt(1)) <= 0 {
		return false
	}
	if d.Cmp(new(big.Int).Sub(n, big.NewInt(1))) >= 0 {
		return false
	}

	// Stage 2: disabled filter admits everything non-degenerate.
	if !cfg.Enabled {
		return true
	}

	// Stage 3: the nearest integer to √n is always admitted.
	if d.Cmp(numeric.RoundToInt(sqrtN)) == 0 {
		return true
	}

	// Stage 4a: multiplicative band √n/R ≤ d ≤ √n·R at working precision.
	var (
		df    *big.Float // candidate at working precision
		ratio *big.Float // band ratio R at working precision
		lower *big.Float // band lower bound √n/R
		upper *big.Float // band upper bound √n·R
	)
	df = ctx.FromInt(d)
	ratio = ctx.NewFloat().SetFloat64(cfg.Ratio)
	lower = ctx.Quo(sqrtN, ratio)
	upper = ctx.NewFloat().Mul(sqrtN, ratio)
	if df.Cmp(lower) < 0 || df.Cmp(upper) > 0 {
		return false
	}

	// Stage 4b: log-skew |log d − log √n| = |log(d/√n)| ≤ S.
	// d/√n ∈ [1/R, R] after the band check, so float64 log is exact enough.
	var rel float64
	rel, _ = ctx.Quo(df, sqrtN).Float64()

	return math.Abs(math.Log(rel)) <= cfg.MaxLogSkew
}
