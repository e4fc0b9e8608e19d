package search_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/katalvlaran/resonance/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFactor runs Factor and requires a clean (pre-run-error-free) start.
func mustFactor(t *testing.T, n *big.Int, cfg search.Config) search.Result {
	t.Helper()
	res, err := search.Factor(context.Background(), n, cfg)
	require.NoError(t, err, "run must start cleanly")
	return res
}

// requireFactors asserts a COMPLETED result carrying exactly {p, q}.
func requireFactors(t *testing.T, res search.Result, p, q int64) {
	t.Helper()
	require.Equal(t, search.StateCompleted, res.State, "reason=%q", res.Reason)
	require.NotNil(t, res.P)
	require.NotNil(t, res.Q)
	assert.Zero(t, res.P.Cmp(big.NewInt(p)), "P: got %s want %d", res.P, p)
	assert.Zero(t, res.Q.Cmp(big.NewInt(q)), "Q: got %s want %d", res.Q, q)
	assert.Empty(t, res.Reason, "a completed run carries no failure reason")
}

// TestFactor_Scenario30Bit: the ≈30-bit scenario target completes with the
// known factor pair under default settings.
func TestFactor_Scenario30Bit(t *testing.T) {
	res := mustFactor(t, big.NewInt(1073217479), search.DefaultConfig())
	requireFactors(t, res, 32749, 32771)
}

// TestFactor_Scenario60Bit: the ≈60-bit scenario target completes; the true
// factors sit at offsets ±19 from round(√N), well inside the default span.
func TestFactor_Scenario60Bit(t *testing.T) {
	n, ok := new(big.Int).SetString("1152921470247108503", 10)
	require.True(t, ok)

	res := mustFactor(t, n, search.DefaultConfig())
	requireFactors(t, res, 1073741789, 1073741827)
}

// TestFactor_ScenarioNoSnap: the 47-bit scenario target is found via the
// kernel gate alone — snapping disabled (radius 0).
func TestFactor_ScenarioNoSnap(t *testing.T) {
	n, ok := new(big.Int).SetString("100000980001501", 10)
	require.True(t, ok)

	cfg := search.DefaultConfig()
	cfg.SnapRadius = 0

	res := mustFactor(t, n, cfg)
	requireFactors(t, res, 10000019, 10000079)
}

// TestFactor_SoundnessInvariant: every COMPLETED result satisfies
// P·Q == n exactly with both factors above 1.
func TestFactor_SoundnessInvariant(t *testing.T) {
	n := big.NewInt(1073217479)
	res := mustFactor(t, n, search.DefaultConfig())
	require.Equal(t, search.StateCompleted, res.State)

	assert.Zero(t, new(big.Int).Mul(res.P, res.Q).Cmp(n), "P·Q must equal n exactly")
	assert.Positive(t, res.P.Cmp(big.NewInt(1)), "P must exceed 1")
	assert.Positive(t, res.Q.Cmp(big.NewInt(1)), "Q must exceed 1")
	assert.LessOrEqual(t, res.P.Cmp(res.Q), 0, "factors are normalized P ≤ Q")
}

// TestFactor_PrimeTargetFails: a prime target has no non-trivial divisor;
// the run must exhaust its budget and FAIL — never complete, never fall back.
func TestFactor_PrimeTargetFails(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Samples = 256

	res := mustFactor(t, big.NewInt(1000003), cfg) // prime
	assert.Equal(t, search.StateFailed, res.State)
	assert.Equal(t, search.ReasonBudgetExhausted, res.Reason)
	assert.Nil(t, res.P)
	assert.Nil(t, res.Q)
	assert.Equal(t, cfg.Samples, res.Samples, "the whole budget must be consumed")
}

// TestFactor_Determinism: fixed (n, config, seed) reproduces identical
// results — factors, counters and diagnostics (elapsed time excepted).
func TestFactor_Determinism(t *testing.T) {
	n := big.NewInt(1073217479)
	cfg := search.DefaultConfig()
	cfg.Seed = 42

	first := mustFactor(t, n, cfg)
	for rep := 0; rep < 3; rep++ {
		res := mustFactor(t, n, cfg)
		assert.Equal(t, first.State, res.State, "rep %d: state", rep)
		assert.Zero(t, first.P.Cmp(res.P), "rep %d: P", rep)
		assert.Zero(t, first.Q.Cmp(res.Q), "rep %d: Q", rep)
		assert.Equal(t, first.Samples, res.Samples, "rep %d: samples consumed", rep)
		assert.Equal(t, first.Checked, res.Checked, "rep %d: exact checks", rep)
		require.Len(t, res.Best, len(first.Best), "rep %d: diagnostics length", rep)
		for i := range first.Best {
			assert.Zero(t, first.Best[i].D.Cmp(res.Best[i].D), "rep %d: best[%d] value", rep, i)
			assert.Equal(t, first.Best[i].Score, res.Best[i].Score, "rep %d: best[%d] score", rep, i)
			assert.Equal(t, first.Best[i].Draw, res.Best[i].Draw, "rep %d: best[%d] draw", rep, i)
		}
	}
}

// TestFactor_BudgetRespect: exact-divisibility checks never exceed the
// sample budget and draws never exceed it either.
func TestFactor_BudgetRespect(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Samples = 512

	res := mustFactor(t, big.NewInt(1000003), cfg) // prime: full sweep
	assert.LessOrEqual(t, res.Checked, cfg.Samples, "checks bounded by budget")
	assert.LessOrEqual(t, res.Samples, cfg.Samples, "draws bounded by budget")
}

// TestFactor_Timeout: an already-expired wall clock fails the run with the
// timeout reason before any sample is evaluated in full.
func TestFactor_Timeout(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Timeout = time.Nanosecond

	res := mustFactor(t, big.NewInt(1000003), cfg)
	assert.Equal(t, search.StateFailed, res.State)
	assert.Equal(t, search.ReasonTimeout, res.Reason)
}

// TestFactor_Cancellation: an external cancellation observed between samples
// terminates the run as CANCELLED, not FAILED.
func TestFactor_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancelled before the first sample

	res, err := search.Factor(ctx, big.NewInt(1073217479), search.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, search.StateCancelled, res.State)
	assert.Equal(t, search.ReasonCancelled, res.Reason)
	assert.Nil(t, res.P)
}

// TestFactor_FilterDisabledStillCompletes: the filter is an optimization
// gate, not a correctness requirement — bypassing it must not change the
// verified outcome.
func TestFactor_FilterDisabledStillCompletes(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Filter.Enabled = false

	res := mustFactor(t, big.NewInt(1073217479), cfg)
	requireFactors(t, res, 32749, 32771)
}

// TestFactor_ParallelWorkers: the strided parallel mode finds the same
// normalized factor pair as the sequential run.
func TestFactor_ParallelWorkers(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Workers = 4

	res := mustFactor(t, big.NewInt(1073217479), cfg)
	requireFactors(t, res, 32749, 32771)
}

// TestFactor_ParallelPrimeFails: the parallel mode also fails cleanly on a
// prime target once every stride is exhausted.
func TestFactor_ParallelPrimeFails(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Workers = 4
	cfg.Samples = 512

	res := mustFactor(t, big.NewInt(1000003), cfg)
	assert.Equal(t, search.StateFailed, res.State)
	assert.Equal(t, search.ReasonBudgetExhausted, res.Reason)
	assert.Equal(t, cfg.Samples, res.Samples, "all strides consumed")
}

// TestFactor_BestDiagnosticsBounded: the best-candidate list respects its
// bound and is ordered by descending score.
func TestFactor_BestDiagnosticsBounded(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Samples = 512
	cfg.KeepBest = 5

	res := mustFactor(t, big.NewInt(1000003), cfg)
	assert.LessOrEqual(t, len(res.Best), cfg.KeepBest)
	for i := 1; i < len(res.Best); i++ {
		assert.GreaterOrEqual(t, res.Best[i-1].Score, res.Best[i].Score,
			"diagnostics must be score-descending at %d", i)
	}
}

// TestFactor_KeepBestZero: a zero diagnostics bound keeps nothing.
func TestFactor_KeepBestZero(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Samples = 64
	cfg.KeepBest = 0

	res := mustFactor(t, big.NewInt(1000003), cfg)
	assert.Empty(t, res.Best)
}

// TestFactor_KBoundsSelectSweep: KLo/KHi are load-bearing — they select the
// swept offset sub-band (2k−1)·Span. A band centered on k=0.5 covers the
// factors at offsets ±11; a high band sweeps offsets ≥ +89 only, so the same
// budget must exhaust without a hit.
func TestFactor_KBoundsSelectSweep(t *testing.T) {
	n := big.NewInt(1073217479) // 32749 × 32771, offsets ±11 from round(√N)

	centered := search.DefaultConfig()
	centered.KLo, centered.KHi = 0.4, 0.6

	res := mustFactor(t, n, centered)
	requireFactors(t, res, 32749, 32771)

	high := search.DefaultConfig()
	high.KLo, high.KHi = 0.85, 0.95

	res = mustFactor(t, n, high)
	assert.Equal(t, search.StateFailed, res.State, "the high band never reaches the factors")
	assert.Equal(t, search.ReasonBudgetExhausted, res.Reason)
	assert.Nil(t, res.P)
}

// TestFactor_SeedRouting: different seeds may walk the band in different
// orders but must agree on the verified factor pair.
func TestFactor_SeedRouting(t *testing.T) {
	n := big.NewInt(1073217479)
	for _, seed := range []int64{0, 1, 7, 1234567} {
		cfg := search.DefaultConfig()
		cfg.Seed = seed

		res := mustFactor(t, n, cfg)
		requireFactors(t, res, 32749, 32771)
	}
}
