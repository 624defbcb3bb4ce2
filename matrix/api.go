// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across
//     the package. Each facade delegates to the canonical method kernel,
//     so both calling forms are guaranteed to yield identical results.
//   - Keep function names explicit and intention-revealing.
//
// Determinism & Policy:
//   - Facades never change the loop orders or fault policy of the kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

// ---------- constructors & utilities ----------

// NewZeros returns a fresh zero-initialized rows×cols matrix.
// A thin alias of New with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros[T Numeric](rows, cols int) *Matrix[T] {
	return New[T](rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros
// elsewhere) — the neutral element of Mul for conformable shapes.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity[T Numeric](n int) *Matrix[T] {
	I := New[T](n, n)
	for i := 0; i < n; i++ { // fixed i order, single write per diagonal cell
		I.Set(i, i, 1)
	}

	return I
}

// Transpose returns a fresh matrix with out[j,i] = m[i,j] and shape
// (cols, rows). The operand is not mutated. Complexity: O(r*c).
func Transpose[T Numeric](m *Matrix[T]) *Matrix[T] {
	out := New[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}

	return out
}

// Scale returns k·m, the scalar multiple of every element, via Map.
// Complexity: O(r*c).
func Scale[T Numeric](m *Matrix[T], k T) *Matrix[T] {
	return m.Map(func(v T) T { return k * v })
}

// ---------- operator facades ----------

// Add returns a + b; delegates to (*Matrix).Add.
func Add[T Numeric](a, b *Matrix[T]) *Matrix[T] {
	return a.Add(b)
}

// Sub returns a - b; delegates to (*Matrix).Sub.
func Sub[T Numeric](a, b *Matrix[T]) *Matrix[T] {
	return a.Sub(b)
}

// Mul returns the matrix product a × b; delegates to (*Matrix).Mul.
func Mul[T Numeric](a, b *Matrix[T]) *Matrix[T] {
	return a.Mul(b)
}

// Equal reports flat-storage equality of a and b; delegates to
// (*Matrix).Equal.
func Equal[T Numeric](a, b *Matrix[T]) bool {
	return a.Equal(b)
}
