// Package kernel scores integer divisor candidates by a normalized
// Dirichlet-kernel resonance amplitude and refines gated candidates by
// phase-snapping.
//
// 🚀 What is kernel?
//
//	The resonance heuristic treats the fractional part of N/d as a phase:
//	a true divisor has phase exactly 0 and scores exactly 1.0; near-divisors
//	score close to 1. The amplitude of order J is
//
//	  A_J(f) = |1 + 2·Σ_{j=1..J} cos(2πjf)| / (2J+1) ∈ [0,1]
//
//	— a sum of J harmonics, closed-form, O(J) per evaluation, with no
//	search or iteration inside.
//
// ✨ Key guarantees:
//   - Exact range reduction – the phase f = (N mod d)/d is reduced with
//     integer arithmetic before any floating trig, so divisibility maps to
//     amplitude 1.0 exactly, never "approximately 1".
//   - Well-defined everywhere – the offset-zero candidate (d == round(√N))
//     needs no special case; the harmonic sum has no denominator.
//   - Bounded snapping – Snap never moves a candidate outside [2, N−2] and
//     evaluates exactly 2·radius+1 amplitudes.
//
// ⚙️ Usage:
//
//	sc, err := kernel.NewScorer(n, 8, ctx)
//	if err != nil {
//	  // handle ErrKernelOrder / ErrTargetRange
//	}
//	amp := sc.Amplitude(d)          // gate against a threshold upstream
//	best, bestAmp := sc.Snap(d, 3)  // locally best integer neighbor
package kernel
