// Package resonance is a deterministic, precision-controlled heuristic
// search for a non-trivial divisor of a balanced semiprime N.
//
// 🚀 What is resonance?
//
//	A pure-Go library that scores integer candidates near √N by a periodic
//	(Dirichlet) kernel amplitude, refines gated candidates by phase-snapping,
//	prunes geometrically implausible ones with a triangle-closure filter,
//	and accepts a candidate only on exact arithmetic verification:
//		• Precision context: one decimal working precision per run
//		• QMC sampling: golden-ratio low-discrepancy draws, seeded
//		• Kernel scorer: O(J) closed-form resonance amplitude in [0,1]
//		• Snapping: bounded integer-neighborhood refinement
//		• Triangle filter: multiplicative band + log-skew plausibility
//		• Verifier: exact N mod d == 0, wall-clock budget, clean failure
//
// ✨ Why choose resonance?
//
//   - Deterministic – same (N, config, seed) ⇒ bit-identical results
//   - No fallback – budget exhaustion is a valid, final outcome; no
//     Pollard Rho / ECM / sieve path exists anywhere in the module
//   - Pure Go – no cgo; math/big under an explicit precision context
//   - Minimal API – two entry points: search.Factor and filter.Admits
//
// Everything is organized under five subpackages:
//
//	numeric/ — working-precision context and one-shot √N
//	qmc/     — deterministic low-discrepancy phase sampling
//	kernel/  — Dirichlet amplitude scorer and snap refinement
//	filter/  — triangle-closure admissibility filter
//	search/  — orchestrator, verification, state machine, results
//
// Quick sketch of the pipeline:
//
//	draw k ──▶ offset near √N ──▶ amplitude ──▶ gate ──▶ snap
//	                                                      │
//	        COMPLETED ◀── N mod d == 0 ◀── filter ◀───────┘
//
// Dive into search/doc.go for the run-loop contract and into
// SPEC_FULL.md for the full design.
//
//	go get github.com/katalvlaran/resonance/search
package resonance
