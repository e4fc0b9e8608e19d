// Package numeric - precision derivation and the per-run Context.
//
// This file centralizes the precision policy for the whole pipeline.
//
// Goals:
//   - Single source of truth: the digit rule lives here and nowhere else.
//   - Determinism: a Context is an immutable value; two contexts built from
//     the same (bitLen, floor) behave identically on every platform.
//   - Safety: no panics; only sentinel errors from types.go.
package numeric

import "math/big"

// DigitsPerBit is the decimal-digit multiplier applied to the bit length of
// the target when deriving the working precision.
const DigitsPerBit = 4

// DigitsMargin is the constant digit margin added on top of the bit-length
// term, guarding the fractional-part resolution of N/d near √N.
const DigitsMargin = 200

// bitsPerDigit converts decimal digits to binary mantissa bits (log₂10,
// rounded up per digit by the +1 in mantissaBits).
const bitsPerDigit = 3.321928094887362

// guardBits is a small extra mantissa allowance so that round-to-nearest at
// the digit boundary never flips a comparison.
const guardBits = 16

// Digits returns the decimal working precision for a target of the given bit
// length under the configured floor: max(floor, bitLen·DigitsPerBit+DigitsMargin).
//
// Complexity: O(1).
func Digits(bitLen, floor int) int {
	var d int
	d = bitLen*DigitsPerBit + DigitsMargin
	if floor > d {
		d = floor
	}

	return d
}

// Context carries the working precision of one run. It is an immutable
// value: construct it once per run and pass it to every stage.
type Context struct {
	digits int  // decimal working precision
	prec   uint // derived big.Float mantissa width in bits
}

// NewContext derives the working precision from the target's bit length and
// the configured floor, fixing it for the entire run.
//
// Contract:
//   - bitLen ≥ 0 (a big.Int bit length); floor may be 0 for "no floor".
//
// Complexity: O(1).
func NewContext(bitLen, floor int) Context {
	var d int
	d = Digits(bitLen, floor)

	return Context{digits: d, prec: mantissaBits(d)}
}

// Digits reports the decimal working precision of the context.
func (c Context) Digits() int { return c.digits }

// Prec reports the big.Float mantissa width (bits) of the context.
func (c Context) Prec() uint { return c.prec }

// NewFloat returns a zero big.Float carrying the context precision and
// round-to-nearest-even mode. All downstream decimal values derive from it.
//
// Complexity: O(1) plus the allocation required by contract.
func (c Context) NewFloat() *big.Float {
	return new(big.Float).SetPrec(c.prec).SetMode(big.ToNearestEven)
}

// FromInt converts n into a big.Float at the context precision.
//
// Complexity: O(len(n)).
func (c Context) FromInt(n *big.Int) *big.Float {
	return c.NewFloat().SetInt(n)
}

// Quo returns x/y at the context precision. Inputs are not mutated.
//
// Complexity: O(prec).
func (c Context) Quo(x, y *big.Float) *big.Float {
	return c.NewFloat().Quo(x, y)
}

// SqrtInt computes √n once, rounded to nearest, at the context precision.
// Negative n is an arithmetic anomaly and returns ErrNegativeSqrt.
//
// Complexity: O(prec·M(prec)) via big.Float.Sqrt.
func (c Context) SqrtInt(n *big.Int) (*big.Float, error) {
	if n == nil {
		return nil, ErrNilOperand
	}
	if n.Sign() < 0 {
		return nil, ErrNegativeSqrt
	}

	return c.NewFloat().Sqrt(c.FromInt(n)), nil
}

// RoundToInt returns the integer nearest to x (half away from zero).
// x is not mutated.
//
// Complexity: O(prec).
func RoundToInt(x *big.Float) *big.Int {
	var (
		half    *big.Float // ±0.5 shift toward the nearest integer
		shifted *big.Float // x moved by half before truncation
		out     = new(big.Int)
	)
	half = new(big.Float).SetPrec(x.Prec()).SetFloat64(0.5)
	if x.Sign() < 0 {
		half.Neg(half)
	}
	shifted = new(big.Float).SetPrec(x.Prec()).Add(x, half)
	shifted.Int(out) // truncation toward zero completes round-half-away

	return out
}

// mantissaBits converts a decimal digit count into a big.Float mantissa
// width, with a guard allowance (see guardBits).
//
// Complexity: O(1).
func mantissaBits(digits int) uint {
	return uint(float64(digits)*bitsPerDigit) + 1 + guardBits
}
