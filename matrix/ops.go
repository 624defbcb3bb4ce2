// SPDX-License-Identifier: MIT

// Package matrix - transformation and algebra kernels.
//
// Purpose:
//   - Declare the element-wise core (Map, MapWith) and the algebraic
//     operators (Add, Sub, Mul, Equal) built on top of it.
//   - All kernels validate fail-fast BEFORE any allocation or write, so a
//     faulting operation never exposes a partial result.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 for element-wise, i→j→k for Mul).
//   - Single result allocation per operation; operands are never mutated.
//   - No blocking, no Strassen: correctness is the design goal here.

package matrix

// Map returns a fresh matrix of identical shape where each element is
// f(original element). f must be a pure function of its single argument;
// application order is unspecified. The receiver is not mutated.
// Complexity: O(r*c) time and space.
func (m *Matrix[T]) Map(f func(T) T) *Matrix[T] {
	out := New[T](m.rows, m.cols)
	// Flat pass over the row-major buffer; cell order is irrelevant for a
	// pure f, so the single loop is both the fastest and the simplest form.
	for idx, v := range m.data {
		out.data[idx] = f(v)
	}

	return out
}

// MapWith combines two equally-shaped matrices element-wise via f into a
// fresh matrix: out[i,j] = f(m[i,j], other[i,j]). It is the shared
// primitive underlying Add and Sub.
//
// Faults with ErrShapeMismatch when shapes differ, before any allocation.
// Complexity: O(r*c) time and space.
func (m *Matrix[T]) MapWith(other *Matrix[T], f func(T, T) T) *Matrix[T] {
	if m.rows != other.rows || m.cols != other.cols {
		panic(shapeErrorf(ctxMapWith, m.rows, m.cols, other.rows, other.cols, ErrShapeMismatch))
	}

	out := New[T](m.rows, m.cols)
	for idx, v := range m.data {
		out.data[idx] = f(v, other.data[idx])
	}

	return out
}

// Add returns the element-wise sum m + other as a fresh matrix.
// Requires equal shapes (faults with ErrShapeMismatch otherwise).
// Commutative and associative whenever T's addition is.
// Complexity: O(r*c).
func (m *Matrix[T]) Add(other *Matrix[T]) *Matrix[T] {
	return m.MapWith(other, func(a, b T) T { return a + b })
}

// Sub returns the element-wise difference m - other as a fresh matrix.
// Requires equal shapes (faults with ErrShapeMismatch otherwise).
// Not commutative; Sub is the additive inverse of Add: (A+B)-B == A.
// Complexity: O(r*c).
func (m *Matrix[T]) Sub(other *Matrix[T]) *Matrix[T] {
	return m.MapWith(other, func(a, b T) T { return a - b })
}

// Mul returns the matrix product m × other with shape (m.rows, other.cols).
// Requires m.cols == other.rows (faults with ErrDimensionMismatch before
// any allocation). Standard triple-loop accumulation from T's zero value;
// not commutative, and the result shape generally differs from both
// operands'.
//
// Stage 1 (Validate): inner dimensions must agree.
// Stage 2 (Execute): for each (i,j) accumulate sum over k of
// m[i,k]*other[k,j], reading the flat buffers directly.
// Complexity: O(m.rows * other.cols * m.cols).
func (m *Matrix[T]) Mul(other *Matrix[T]) *Matrix[T] {
	if m.cols != other.rows {
		panic(shapeErrorf(ctxMul, m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch))
	}

	out := New[T](m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		base := i * m.cols // base offset of row i in m
		for j := 0; j < other.cols; j++ {
			var sum T // T's additive identity
			for k := 0; k < m.cols; k++ {
				sum += m.data[base+k] * other.data[k*other.cols+j]
			}
			out.data[i*other.cols+j] = sum
		}
	}

	return out
}

// Equal reports element-wise equality of the flattened backing storage:
// lengths first, then values in row-major order. Shape is deliberately
// NOT compared — two matrices with transposed dimensions but identical
// flat data compare equal. This looseness is inherited from the original
// contract and kept documented rather than silently tightened.
// Complexity: O(r*c).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if len(m.data) != len(other.data) {
		return false
	}
	for idx, v := range m.data {
		if v != other.data[idx] {
			return false
		}
	}

	return true
}
