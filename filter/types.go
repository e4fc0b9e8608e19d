package filter

import "errors"

var (
	// ErrRatioBand indicates a balance-band ratio R < 1.
	ErrRatioBand = errors.New("filter: ratio band must be at least 1")

	// ErrLogSkew indicates a negative max log-skew S.
	ErrLogSkew = errors.New("filter: max log-skew must be non-negative")
)

// Default filter parameters - single source of truth for zero-value behavior.
const (
	// DefaultRatio bounds candidates to [√N/4, √N·4], a generous band for
	// balanced-ish semiprimes.
	DefaultRatio = 4.0

	// DefaultMaxLogSkew caps |log d − log √N|. Chosen slightly above ln(4)
	// so that with default settings the multiplicative band is the binding
	// constraint.
	DefaultMaxLogSkew = 1.5
)

// Config controls the triangle-closure filter.
//
// Fields:
//   - Enabled    — when false, every non-degenerate candidate is admitted.
//   - Ratio      — balance-band ratio R ≥ 1; the band is [√N/R, √N·R].
//   - MaxLogSkew — max |log d − log √N|, S ≥ 0.
type Config struct {
	Enabled    bool
	Ratio      float64
	MaxLogSkew float64
}

// DefaultConfig returns the documented defaults with the filter enabled.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Ratio:      DefaultRatio,
		MaxLogSkew: DefaultMaxLogSkew,
	}
}

// Validate checks the Config ranges. Range checks happen at construction
// time, never inside the hot loop.
//
// Complexity: O(1).
func Validate(cfg Config) error {
	if cfg.Ratio < 1 {
		return ErrRatioBand
	}
	if cfg.MaxLogSkew < 0 {
		return ErrLogSkew
	}

	return nil
}
