package kernel_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSnap_RadiusZeroIdentity checks radius 0 returns the candidate itself.
func TestSnap_RadiusZeroIdentity(t *testing.T) {
	n := big.NewInt(1073217479)
	s := newScorer(t, n, 8)

	d := big.NewInt(32751)
	best, amp := s.Snap(d, 0)
	assert.Zero(t, best.Cmp(d), "radius 0 must be the identity")
	assert.Equal(t, s.Amplitude(d), amp, "returned amplitude must match the candidate's")
}

// TestSnap_ClimbsToDivisor checks snapping corrects a near-miss onto the true
// factor: the divisor scores exactly 1, strictly dominating every neighbor.
func TestSnap_ClimbsToDivisor(t *testing.T) {
	n := big.NewInt(1073217479) // 32749 × 32771
	s := newScorer(t, n, 8)

	for _, miss := range []int64{32747, 32748, 32750, 32751, 32752} {
		best, amp := s.Snap(big.NewInt(miss), 3)
		assert.Zero(t, best.Cmp(big.NewInt(32749)), "miss %d must snap onto the factor", miss)
		assert.Equal(t, 1.0, amp, "snapped divisor must score exactly 1")
	}
}

// TestSnap_DoesNotMutateInput checks the candidate value is left untouched.
func TestSnap_DoesNotMutateInput(t *testing.T) {
	n := big.NewInt(1073217479)
	s := newScorer(t, n, 8)

	d := big.NewInt(32750)
	_, _ = s.Snap(d, 3)
	assert.Zero(t, d.Cmp(big.NewInt(32750)), "Snap must not mutate its input")
}

// TestSnap_NeverLeavesLegalRange checks the lower boundary: neighbors below
// 2 score zero and can never win, so the result stays in [2, N−2].
func TestSnap_NeverLeavesLegalRange(t *testing.T) {
	n := big.NewInt(1073217479)
	s := newScorer(t, n, 8)

	best, _ := s.Snap(big.NewInt(3), 5)
	assert.GreaterOrEqual(t, best.Int64(), int64(2), "lower bound violated")

	hi := new(big.Int).Sub(n, big.NewInt(3)) // N−3, near the upper bound
	best, _ = s.Snap(hi, 5)
	assert.LessOrEqual(t, best.Cmp(new(big.Int).Sub(n, big.NewInt(2))), 0, "upper bound violated")
}

// TestSnap_PrefersSmallerStepOnPlateau checks the deterministic tie-break:
// when no neighbor strictly improves, the candidate itself is returned.
func TestSnap_PrefersSmallerStepOnPlateau(t *testing.T) {
	n := big.NewInt(1073217479)
	s := newScorer(t, n, 8)

	d := big.NewInt(32749) // the factor: amplitude 1, unbeatable
	best, amp := s.Snap(d, 3)
	assert.Zero(t, best.Cmp(d), "a global maximum must not move")
	assert.Equal(t, 1.0, amp)
}
