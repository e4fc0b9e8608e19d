// Package filter implements the triangle-closure admissibility filter: a
// geometric plausibility gate applied to divisor candidates before the
// exact-division check.
//
// 🚀 What is the triangle-closure filter?
//
//	A true factor of a semiprime with bounded factor imbalance must lie in a
//	bounded multiplicative band around √N. The filter rejects candidates that
//	are degenerate (d ≤ 1 or d ≥ N−1) or that fall outside
//
//	  √N/R ≤ d ≤ √N·R    and    |log d − log √N| ≤ S
//
//	pruning geometrically implausible candidates before the expensive exact
//	division.
//
// ✨ Key guarantees:
//   - Degenerate rejection is unconditional – 0, negatives, d ≤ 1 and
//     d ≥ N−1 are rejected whether or not the filter is enabled; the
//     cofactor of such a d could never exceed 1.
//   - Disabled ⇒ bypass – every candidate in [2, N−2] is admitted.
//   - Boundary safety – a candidate numerically equal to round(√N) is always
//     admitted when the filter is enabled, independent of band rounding.
//
// ⚙️ Usage:
//
//	cfg := filter.DefaultConfig()
//	if err := filter.Validate(cfg); err != nil {
//	  // handle ErrRatioBand / ErrLogSkew
//	}
//	ok := filter.Admits(n, d, sqrtN, cfg, ctx)
//
// Admits is exposed as a public operation in its own right so that tests and
// diagnostics can exercise filter behavior in isolation from the full search.
package filter
