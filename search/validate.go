// Package search - validation utilities for the orchestrator.
//
// This file contains small, tight helpers that:
//  1. Validate Config combinations (bounds, budgets, filter ranges).
//  2. Validate the target integer (magnitude, perfect-square degeneracy).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go
//     (filter range errors are forwarded from the filter package as-is).
//   - Validation runs once, before RUNNING begins; the hot loop trusts it.
package search

import (
	"math/big"

	"github.com/katalvlaran/resonance/filter"
)

// validateConfig checks internal consistency of a Config.
//
// Complexity: O(1).
func validateConfig(cfg Config) error {
	// Working precision must have a positive floor.
	if cfg.PrecisionFloor <= 0 {
		return ErrPrecisionFloor
	}
	// The sample budget bounds the whole run; zero would mean "never run".
	if cfg.Samples < 1 {
		return ErrSamples
	}
	// A non-positive sweep half-width leaves no offsets to probe.
	if cfg.Span < 1 {
		return ErrSpan
	}
	// At least one harmonic.
	if cfg.Order < 1 {
		return ErrOrder
	}
	// Threshold 0 would gate nothing; above 1 would gate everything,
	// including true divisors.
	if !(cfg.Threshold > 0 && cfg.Threshold <= 1) {
		return ErrThreshold
	}
	// Sampling-fraction bounds; equality kLo==kHi collapses the sweep.
	if !(cfg.KLo > 0 && cfg.KLo < cfg.KHi && cfg.KHi <= 1) {
		return ErrKRange
	}
	// Snap radius 0 disables snapping; negative is undefined.
	if cfg.SnapRadius < 0 {
		return ErrSnapRadius
	}
	// Wall-clock budget is mandatory.
	if cfg.Timeout <= 0 {
		return ErrTimeout
	}
	// Workers 0 and 1 both mean sequential.
	if cfg.Workers < 0 {
		return ErrWorkers
	}
	// Diagnostics bound; 0 keeps no candidates.
	if cfg.KeepBest < 0 {
		return ErrKeepBest
	}

	return filter.Validate(cfg.Filter)
}

// validateTarget checks the target integer: n ≥ 4 and not a perfect square.
// Both violations are configuration errors — the run never starts.
//
// Complexity: O(len(n)²) for the integer square root.
func validateTarget(n *big.Int) error {
	if n == nil {
		return ErrNilTarget
	}
	if n.Cmp(big.NewInt(4)) < 0 {
		return ErrTargetTooSmall
	}

	// Perfect squares make the sweep around √N degenerate (the spec window
	// assumes p ≠ q); reject before RUNNING.
	var s *big.Int
	s = new(big.Int).Sqrt(n)
	if s.Mul(s, s).Cmp(n) == 0 {
		return ErrPerfectSquare
	}

	return nil
}
