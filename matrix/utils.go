// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// IntegralSqrt returns the integral square root of n and true when n is a
// perfect square, or (0, false) otherwise. Negative n is never a perfect
// square. Complexity: O(1).
func IntegralSqrt(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	root := int(math.Round(math.Sqrt(float64(n))))
	if root*root != n {
		return 0, false
	}

	return root, true
}

// NewSquare builds an n×n matrix from a flat row-major literal whose
// length is a perfect square, inferring n. This is sugar for concise
// square-matrix literals in tests and fixtures, not a general
// constructor. Returns ErrNotPerfectSquare when no integral root exists —
// a recoverable condition, since the literal length is caller data worth
// validating. Complexity: O(1) beyond the adopted slice.
func NewSquare[T Numeric](data []T) (*Matrix[T], error) {
	n, ok := IntegralSqrt(len(data))
	if !ok {
		return nil, fmt.Errorf("Matrix.NewSquare(len %d): %w", len(data), ErrNotPerfectSquare)
	}

	return From(n, n, data)
}
