// Package search - run configuration.
//
// DEFAULTS below are the single source of truth for zero-value behavior;
// DefaultConfig MUST reflect them. Range checks happen once at construction
// (validate.go), never inside the hot loop.
package search

import (
	"time"

	"github.com/katalvlaran/resonance/filter"
)

const (
	// DefaultPrecisionFloor is the minimum decimal working precision; the
	// effective precision is max(floor, bitLen·4+200).
	DefaultPrecisionFloor = 50

	// DefaultSamples is the QMC draw budget of one run.
	DefaultSamples = 4096

	// DefaultSpan is the half-width of the integer offset sweep around
	// round(√N). Empirically tuned, not derived; widen for less balanced
	// semiprimes.
	DefaultSpan = 128

	// DefaultOrder is the Dirichlet kernel order J (number of harmonics).
	DefaultOrder = 8

	// DefaultThreshold is the amplitude gate in (0,1]. A true divisor scores
	// exactly 1.0, so any threshold in range admits it.
	DefaultThreshold = 0.9

	// DefaultKLo / DefaultKHi bound the sampled fraction k. The offset is
	// the affine image (2k−1)·Span, so [KLo, KHi] selects the swept
	// sub-band of [−Span, +Span]; the defaults sweep ±0.8·Span.
	DefaultKLo = 0.1
	DefaultKHi = 0.9

	// DefaultSnapRadius is the half-width of the snap neighborhood.
	// Empirically tuned, not derived.
	DefaultSnapRadius = 3

	// DefaultTimeout is the wall-clock budget of one run.
	DefaultTimeout = 30 * time.Second

	// DefaultWorkers ≤ 1 keeps the run sequential and byte-for-byte
	// deterministic.
	DefaultWorkers = 1

	// DefaultKeepBest bounds the diagnostics list of top-scoring candidates.
	DefaultKeepBest = 8
)

// Config is the immutable per-run configuration. Construct it once from
// external configuration (start from DefaultConfig), validate implicitly via
// Factor, and do not mutate during the run.
//
// Fields:
//   - PrecisionFloor — minimum decimal working precision (digits), > 0.
//   - Samples        — QMC draw budget, ≥ 1.
//   - Span           — offset-sweep half-width around round(√N), ≥ 1.
//   - Order          — kernel order J ≥ 1.
//   - Threshold      — amplitude gate ∈ (0,1].
//   - KLo, KHi       — sampling-fraction bounds, 0 < KLo < KHi ≤ 1; the
//     swept offsets are (2k−1)·Span for k in [KLo, KHi].
//   - Seed           — sampler seed; 0 selects the fixed internal default.
//   - SnapRadius     — snap neighborhood half-width, ≥ 0 (0 disables).
//   - Timeout        — wall-clock budget, > 0.
//   - Workers        — parallel sample batches; ≤ 1 is sequential and fully
//     deterministic, > 1 keeps the factor pair deterministic
//     but counters may vary with cancellation timing.
//   - KeepBest       — bound of the best-candidates diagnostics list, ≥ 0.
//   - Filter         — triangle-closure filter configuration.
type Config struct {
	PrecisionFloor int
	Samples        int
	Span           int64
	Order          int
	Threshold      float64
	KLo, KHi       float64
	Seed           int64
	SnapRadius     int
	Timeout        time.Duration
	Workers        int
	KeepBest       int
	Filter         filter.Config
}

// DefaultConfig returns the documented defaults with the triangle filter
// enabled.
func DefaultConfig() Config {
	return Config{
		PrecisionFloor: DefaultPrecisionFloor,
		Samples:        DefaultSamples,
		Span:           DefaultSpan,
		Order:          DefaultOrder,
		Threshold:      DefaultThreshold,
		KLo:            DefaultKLo,
		KHi:            DefaultKHi,
		SnapRadius:     DefaultSnapRadius,
		Timeout:        DefaultTimeout,
		Workers:        DefaultWorkers,
		KeepBest:       DefaultKeepBest,
		Filter:         filter.DefaultConfig(),
	}
}
