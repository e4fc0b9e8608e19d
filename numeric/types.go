package numeric

import "errors"

var (
	// ErrNegativeSqrt indicates a square root was requested for a negative
	// integer. This is an arithmetic anomaly: it aborts the run and is never
	// silently corrected.
	ErrNegativeSqrt = errors.New("numeric: square root of negative integer")

	// ErrNilOperand indicates a nil *big.Int was passed where a value is required.
	ErrNilOperand = errors.New("numeric: nil operand")
)
