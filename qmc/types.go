package qmc

import "errors"

var (
	// ErrSampleBudget indicates a non-positive sample count.
	ErrSampleBudget = errors.New("qmc: samples must be at least 1")

	// ErrKRange indicates sampling-fraction bounds violating 0 < kLo < kHi ≤ 1.
	ErrKRange = errors.New("qmc: require 0 < kLo < kHi <= 1")
)
