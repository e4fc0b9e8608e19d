// Package qmc - golden-ratio low-discrepancy sequence.
//
// This file centralizes deterministic sample generation for the search loop.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequence across platforms.
//   - Encapsulation: a single sequence factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go.
//   - Performance: O(1) per draw, no allocations in the hot path.
//
// Concurrency:
//   - Next() mutates the cursor and is NOT goroutine-safe.
//   - At(i)/Unit(i) are pure; share one *Sequence across workers that
//     consume disjoint index strides.
package qmc

import "math"

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// invPhi is the golden-ratio conjugate φ⁻¹ = (√5−1)/2, the additive step of
// the recurrence. Among all irrationals it maximizes the worst-case
// equidistribution of frac(k₀ + i·α).
const invPhi = 0.6180339887498949

// Sequence is a finite, deterministic low-discrepancy sequence of sampling
// fractions in [kLo, kHi]. Construct via New.
type Sequence struct {
	k0      float64 // seed-scrambled start point in [0,1)
	kLo     float64 // lower sampling-fraction bound
	kHi     float64 // upper sampling-fraction bound
	samples int     // total sequence length
	next    int     // cursor for Next()
}

// New builds a Sequence of exactly `samples` fractions in [kLo, kHi].
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Errors:
//   - ErrSampleBudget — samples < 1.
//   - ErrKRange       — unless 0 < kLo < kHi ≤ 1.
//
// Complexity: O(1).
func New(seed int64, samples int, kLo, kHi float64) (*Sequence, error) {
	if samples < 1 {
		return nil, ErrSampleBudget
	}
	if !(kLo > 0 && kLo < kHi && kHi <= 1) {
		return nil, ErrKRange
	}

	var s int64
	s = seed
	if s == 0 {
		s = defaultSeed
	}

	return &Sequence{
		k0:      scramble(s),
		kLo:     kLo,
		kHi:     kHi,
		samples: samples,
	}, nil
}

// Len reports the total sequence length.
func (q *Sequence) Len() int { return q.samples }

// Unit returns the i-th unscaled low-discrepancy point in [0,1).
// Pure: no state is read besides the immutable start point.
//
// Contract: i ≥ 0; indices beyond Len()-1 are still well-defined but are
// never drawn by the search loop.
//
// Complexity: O(1).
func (q *Sequence) Unit(i int) float64 {
	return frac(q.k0 + float64(i+1)*invPhi)
}

// At returns the i-th sampling fraction rescaled into [kLo, kHi].
// Pure; see Unit for the index contract.
//
// Complexity: O(1).
func (q *Sequence) At(i int) float64 {
	return q.kLo + (q.kHi-q.kLo)*q.Unit(i)
}

// Next returns the next fraction in order and reports whether one remained.
// After the sequence is exhausted it keeps returning (0, false).
//
// Complexity: O(1).
func (q *Sequence) Next() (float64, bool) {
	if q.next >= q.samples {
		return 0, false
	}
	var k float64
	k = q.At(q.next)
	q.next++

	return k, true
}

// frac returns the fractional part of x in [0,1).
func frac(x float64) float64 {
	return x - math.Floor(x)
}

// scramble maps a seed to a start point in [0,1) via a SplitMix64-style
// avalanche mix; see Vigna 2014 for the constants and rationale. Small seed
// changes produce large, well-distributed start-point changes.
//
// Complexity: O(1).
func scramble(seed int64) float64 {
	var x uint64
	x = uint64(seed) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	// Top 53 bits scale exactly into the float64 mantissa.
	return float64(x>>11) / (1 << 53)
}
