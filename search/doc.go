// Package search drives the resonance factor-search pipeline: it draws
// deterministic QMC samples, scores candidates with the Dirichlet kernel,
// snaps gated candidates, filters them for geometric plausibility, and
// accepts only on exact divisibility.
//
// 🚀 What is search?
//
//	The orchestrator / verifier of the module. One call does one run:
//
//	  res, err := search.Factor(ctx, n, search.DefaultConfig())
//
//	The run is a state machine
//
//	  INITIALIZED → RUNNING → {COMPLETED, FAILED, CANCELLED}
//
//	with absorbing terminal states. There is exactly one code path: no
//	Pollard Rho, no ECM, no sieve, no fallback of any kind. A run that
//	exhausts its sample budget or wall clock FAILS — a valid, final outcome.
//
// ✨ Key guarantees:
//   - Determinism – fixed (n, config, seed) with Workers ≤ 1 reproduces the
//     identical Result, including counters and diagnostics.
//   - Soundness – a COMPLETED result satisfies P·Q == n exactly, with
//     P, Q > 1, by construction of the integer verification.
//   - Budget respect – at most one exact-divisibility check per sample and
//     at most one sample's work past the wall-clock limit.
//   - Silent skips – gate misses and filter rejections are normal control
//     flow; only configuration validation and arithmetic anomalies error.
//
// Cancellation is cooperative: the context is checked between samples and
// never interrupts a single kernel evaluation.
//
// ⚙️ Usage:
//
//	cfg := search.DefaultConfig()
//	cfg.Seed = 42
//	res, err := search.Factor(context.Background(), n, cfg)
//	if err != nil {
//	  // configuration error; the run never started
//	}
//	if res.State == search.StateCompleted {
//	  fmt.Println(res.P, "×", res.Q)
//	}
//
// With Workers > 1, sample batches are evaluated on separate goroutines in
// deterministic index strides; the first verified hit cancels the siblings
// cooperatively. Divisibility is a pure predicate, so check order does not
// affect correctness.
package search
