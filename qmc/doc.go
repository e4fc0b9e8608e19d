// Package qmc provides deterministic low-discrepancy (quasi-Monte-Carlo)
// sampling of the scalar search parameter k.
//
// 🚀 What is qmc?
//
//	A golden-ratio additive recurrence — kᵢ = frac(k₀ + (i+1)·φ⁻¹) — rescaled
//	into a configured interval [kLo, kHi]. Compared to pseudo-random draws it
//	gives provably even coverage (three-distance theorem) with zero variance
//	in coverage gaps, which is what the offset sweep around √N needs.
//
// ✨ Key guarantees:
//   - Determinism – identical (seed, samples, kLo, kHi) reproduce the
//     identical sequence bit-for-bit across runs and platforms.
//   - Index addressability – At(i) is pure; strided parallel consumers see
//     exactly the values a sequential consumer would.
//   - Finite – the sequence has exactly `samples` elements. A sequential
//     consumer drains it via Next(), in order; strided parallel consumers
//     address the same elements via At(i). The two views agree element
//     for element.
//
// ⚙️ Usage:
//
//	seq, err := qmc.New(42, 4096, 0.1, 0.9)
//	if err != nil {
//	  // handle ErrSampleBudget / ErrKRange
//	}
//	for {
//	  k, ok := seq.Next()
//	  if !ok {
//	    break
//	  }
//	  _ = k // k ∈ [0.1, 0.9]
//	}
//
// Seed policy follows the module-wide convention: seed==0 selects a fixed
// internal default so that zero-value configs remain reproducible.
package qmc
