// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package, plus the wrapping helpers that attach method/coordinate context.
//
// Fault policy (single source of truth):
//   - Bounds violations, shape mismatches and incompatible inner dimensions are
//     programmer errors, not data-dependent failures. They PANIC with an error
//     value wrapping the matching sentinel, and the check always runs before
//     any allocation or mutation so no partial result can be observed.
//   - Data-dependent conditions (non-square literal length, flat-data length
//     mismatch at construction) are RETURNED as errors and matched with
//     errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Panics wrap these sentinels via faultErrorf so a
// recovered value still matches errors.Is.

var (
	// ErrBadShape is raised when a requested shape is invalid (negative rows
	// or cols). Zero dimensions are legal and yield an empty matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside
	// [0,rows) x [0,cols). At/Set panic wrapping this sentinel.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates unequal shapes passed to an element-wise
	// combination (MapWith, Add, Sub).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionMismatch indicates incompatible inner dimensions for the
	// matrix product, i.e. a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadDataLength is returned by From when len(data) != rows*cols.
	ErrBadDataLength = errors.New("matrix: data length does not match shape")

	// ErrNotPerfectSquare is returned by NewSquare when the flat literal
	// length has no integral square root.
	ErrNotPerfectSquare = errors.New("matrix: length is not a perfect square")
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"     // constructor tag used in fault wrappers
	ctxAt      = "At"      // method tag used in fault wrappers
	ctxSet     = "Set"     // method tag used in fault wrappers
	ctxMapWith = "MapWith" // method tag used in fault wrappers
	ctxMul     = "Mul"     // method tag used in fault wrappers
)

// faultErrorf wraps a sentinel with a uniform method context and callsite
// coordinates, formatting as "Matrix.<method>(i,j): <sentinel>".
// The result is meant to be panicked with; errors.Is still matches.
// Complexity: O(1).
func faultErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// shapeErrorf wraps a sentinel with the two shapes involved in a binary
// operation, formatting as "Matrix.<method>: (r1xc1) vs (r2xc2): <sentinel>".
// Used for MapWith/Add/Sub shape faults and Mul inner-dimension faults.
// Complexity: O(1).
func shapeErrorf(method string, r1, c1, r2, c2 int, err error) error {
	return fmt.Errorf("Matrix.%s: (%dx%d) vs (%dx%d): %w", method, r1, c1, r2, c2, err)
}
