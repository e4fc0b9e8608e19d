package search

import (
	"errors"
	"math/big"
	"time"
)

var (
	// ErrNilTarget indicates a nil target integer.
	ErrNilTarget = errors.New("search: target must be non-nil")
	// ErrTargetTooSmall indicates a target below 4.
	ErrTargetTooSmall = errors.New("search: target must be at least 4")
	// ErrPerfectSquare indicates a perfect-square target, degenerate for the
	// offset sweep around √N.
	ErrPerfectSquare = errors.New("search: target must not be a perfect square")
	// ErrPrecisionFloor indicates a non-positive precision floor.
	ErrPrecisionFloor = errors.New("search: precision floor must be positive")
	// ErrSamples indicates a non-positive sample budget.
	ErrSamples = errors.New("search: sample budget must be positive")
	// ErrSpan indicates a non-positive offset half-width.
	ErrSpan = errors.New("search: offset span must be positive")
	// ErrOrder indicates a kernel order below 1.
	ErrOrder = errors.New("search: kernel order must be at least 1")
	// ErrThreshold indicates an amplitude threshold outside (0, 1].
	ErrThreshold = errors.New("search: threshold must lie in (0, 1]")
	// ErrKRange indicates sampling-fraction bounds violating 0 < kLo < kHi ≤ 1.
	ErrKRange = errors.New("search: require 0 < kLo < kHi <= 1")
	// ErrSnapRadius indicates a negative snap radius.
	ErrSnapRadius = errors.New("search: snap radius must be non-negative")
	// ErrTimeout indicates a non-positive wall-clock budget.
	ErrTimeout = errors.New("search: timeout must be positive")
	// ErrWorkers indicates a negative worker count.
	ErrWorkers = errors.New("search: workers must be non-negative")
	// ErrKeepBest indicates a negative diagnostics-list bound.
	ErrKeepBest = errors.New("search: keep-best bound must be non-negative")
)

// State is the run state of one Factor invocation. Terminal states are
// absorbing: a finished run never transitions again.
type State int

const (
	// StateInitialized - config validated, √N computed, loop not yet entered.
	StateInitialized State = iota
	// StateRunning - the sampling loop is consuming draws.
	StateRunning
	// StateCompleted - exact verification succeeded; P and Q are set.
	StateCompleted
	// StateFailed - budget exhausted or wall clock elapsed with no exact hit.
	StateFailed
	// StateCancelled - an external cancellation was observed between samples.
	StateCancelled
)

// String renders the state in the canonical uppercase form.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "INITIALIZED"
	case StateRunning:
		return "RUNNING"
	case StateCompleted:
		return "COMPLETED"
	case StateFailed:
		return "FAILED"
	case StateCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Failure reasons surfaced on Result.Reason for FAILED and CANCELLED runs.
const (
	// ReasonBudgetExhausted - the sample sequence was consumed with no hit.
	ReasonBudgetExhausted = "budget exhausted"
	// ReasonTimeout - the wall-clock limit elapsed mid-run.
	ReasonTimeout = "timeout"
	// ReasonCancelled - an external cancellation signal was observed.
	ReasonCancelled = "cancelled"
)

// Candidate is one scored divisor candidate, surfaced for diagnostics.
// Candidates are ephemeral: only the bounded best list outlives a sample.
type Candidate struct {
	// D is the integer candidate value.
	D *big.Int
	// Score is the normalized resonance amplitude in [0,1].
	Score float64
	// Draw is the index of the sampling draw that produced the candidate.
	Draw int
}

// Result is the outcome of one run; it is the only value that outlives it.
type Result struct {
	// State is the terminal state: COMPLETED, FAILED or CANCELLED.
	State State
	// P and Q are the factors, present iff State == StateCompleted, with
	// P ≤ Q and P·Q == n exactly.
	P, Q *big.Int
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
	// Samples is the number of draws consumed.
	Samples int
	// Checked is the number of exact-divisibility checks performed; it never
	// exceeds the configured sample budget.
	Checked int
	// Reason explains FAILED/CANCELLED outcomes; empty on success.
	Reason string
	// Best holds the top-scoring candidates seen, bounded by Config.KeepBest,
	// ordered by descending score (ties: earlier draw first).
	Best []Candidate
}

// Completed reports whether the run verified a factor pair.
func (r Result) Completed() bool { return r.State == StateCompleted }
