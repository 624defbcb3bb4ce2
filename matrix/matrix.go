// SPDX-License-Identifier: MIT

// Package matrix - generic dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j, generic over any Numeric element type.
//   - Guarantee safety at the public surface: At/Set bounds-check before
//     touching storage and fault (panic) on programmer misuse.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; From: O(1) adopt; At/Set/Index: O(1);
//     Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Numeric is the element constraint for Matrix: any integer, float or
// complex kind. The additive identity is Go's zero value for T, and every
// element is duplicable by plain value copy, so matrices never alias.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// Matrix is a fixed-shape rows×cols grid of T in row-major order.
//   - rows, cols hold the dimensions; they never change after construction.
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
//
// A Matrix owns its backing storage exclusively: every derived matrix
// allocates fresh storage, and Set is the only mutator. Instances are
// value-like; safe to read from many goroutines as long as nobody writes.
type Matrix[T Numeric] struct {
	rows, cols int // dimensions, fixed at construction
	data       []T // flat backing storage, length == rows*cols
}

// New returns a rows×cols matrix with every element set to T's additive
// identity (the zero value). Zero rows or cols yield a valid empty matrix;
// negative dimensions are a programmer fault and panic with ErrBadShape.
//
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Prepare): allocate the flat backing slice (zeroed by runtime).
// Complexity: O(r*c) time and memory.
func New[T Numeric](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(faultErrorf(ctxNew, rows, cols, ErrBadShape))
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// From wraps a caller-supplied flat row-major sequence as the backing
// storage with the given dimensions. The slice is adopted, not copied:
// the caller must not retain a writable reference to it afterwards.
//
// Unlike the index faults, a length mismatch is data-dependent and cheap
// to validate once, so From is fallible: it returns ErrBadDataLength when
// len(data) != rows*cols instead of leaving later accesses inconsistent.
// Complexity: O(1).
func From[T Numeric](rows, cols int, data []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		panic(faultErrorf(ctxNew, rows, cols, ErrBadShape))
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Matrix.From(%dx%d, len %d): %w", rows, cols, len(data), ErrBadDataLength)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Index computes the row-major flat offset i*cols + j. It is exported
// because it defines the storage layout every other operation respects;
// it performs no bounds checking of its own. Complexity: O(1).
func (m *Matrix[T]) Index(i, j int) int {
	return i*m.cols + j
}

// checkBounds faults unless 0 <= i < rows and 0 <= j < cols.
// The method tag keeps panic diagnostics pointing at the public callsite.
func (m *Matrix[T]) checkBounds(method string, i, j int) {
	if i < 0 || i >= m.rows {
		panic(faultErrorf(method, i, j, ErrOutOfRange))
	}
	if j < 0 || j >= m.cols {
		panic(faultErrorf(method, i, j, ErrOutOfRange))
	}
}

// At returns a copy of the element at (i, j).
// Faults with ErrOutOfRange on an invalid index. Complexity: O(1).
func (m *Matrix[T]) At(i, j int) T {
	m.checkBounds(ctxAt, i, j)

	return m.data[m.Index(i, j)]
}

// Set overwrites the element at (i, j) in place. It is the sole mutator;
// the bounds check runs before any write, so a faulting Set never
// partially mutates. Faults with ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) {
	m.checkBounds(ctxSet, i, j)

	m.data[m.Index(i, j)] = v
}

// Clone returns a deep copy with independent storage.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: cp}
}

// String implements fmt.Stringer for easy debugging, one bracketed line
// per row. Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ { // iterate over rows
		sb.WriteString(fmtRowOpen)
		for j := 0; j < m.cols; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
			if j < m.cols-1 {
				sb.WriteString(fmtSep)
			}
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
