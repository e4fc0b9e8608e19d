package kernel

import "errors"

var (
	// ErrKernelOrder indicates a kernel order J < 1.
	ErrKernelOrder = errors.New("kernel: order must be at least 1")

	// ErrTargetRange indicates a nil target or a target below 4, for which
	// the candidate range [2, N−2] is empty.
	ErrTargetRange = errors.New("kernel: target must be an integer >= 4")
)
