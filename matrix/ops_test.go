// Package matrix_test contains unit tests for the transformation and
// algebra kernels: Map, MapWith, Add, Sub, Mul and Equal.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// mustFrom builds a matrix from a flat literal and fails the test on a
// length mismatch. Keeps fixtures compact across this file.
func mustFrom[T matrix.Numeric](t *testing.T, rows, cols int, data []T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.From(rows, cols, data)
	require.NoError(t, err)

	return m
}

// TestMap verifies per-cell application of a pure function with no shape
// change and no mutation of the receiver.
func TestMap(t *testing.T) {
	m := mustFrom(t, 2, 2, []int64{4, 5, 6, 7})

	doubled := m.Map(func(v int64) int64 { return v * 2 })

	require.Equal(t, int64(8), doubled.At(0, 0))
	require.Equal(t, int64(10), doubled.At(0, 1))
	require.Equal(t, int64(12), doubled.At(1, 0))
	require.Equal(t, int64(14), doubled.At(1, 1))
	require.Equal(t, int64(4), m.At(0, 0)) // receiver untouched
}

// TestMapCompositionLaw pins M.Map(f).Map(g) == M.Map(g∘f) element-wise.
func TestMapCompositionLaw(t *testing.T) {
	m := mustFrom(t, 2, 3, []int{3, 4, 5, 1, 6, 8})
	f := func(v int) int { return v + 1 }
	g := func(v int) int { return v * v }

	chained := m.Map(f).Map(g)
	composed := m.Map(func(v int) int { return g(f(v)) })

	require.True(t, chained.Equal(composed))
}

// TestMapWith verifies element-wise combination of equally-shaped matrices
// against an independently computed reference.
func TestMapWith(t *testing.T) {
	a := mustFrom(t, 2, 2, []int64{1, 2, 3, 4})
	b := mustFrom(t, 2, 2, []int64{10, 20, 30, 40})

	sum := a.MapWith(b, func(x, y int64) int64 { return x + y })

	require.Equal(t, int64(11), sum.At(0, 0))
	require.Equal(t, int64(22), sum.At(0, 1))
	require.Equal(t, int64(33), sum.At(1, 0))
	require.Equal(t, int64(44), sum.At(1, 1))
}

// TestMapWithShapeMismatchFaults ensures unequal shapes fault before any
// computation, for MapWith and both operators built on it.
func TestMapWithShapeMismatchFaults(t *testing.T) {
	a := matrix.New[int](2, 3)
	b := matrix.New[int](3, 2)

	id := func(x, _ int) int { return x }
	require.Panics(t, func() { a.MapWith(b, id) })
	require.Panics(t, func() { a.Add(b) })
	require.Panics(t, func() { a.Sub(b) })
}

// TestAddition checks the concrete vectors and commutativity for int64.
func TestAddition(t *testing.T) {
	a := mustFrom(t, 2, 2, []int64{10, 20, 30, 40})
	b := mustFrom(t, 2, 2, []int64{1, 2, 3, 4})
	want := mustFrom(t, 2, 2, []int64{11, 22, 33, 44})

	require.True(t, a.Add(b).Equal(want))
	require.True(t, b.Add(a).Equal(want)) // commutative for int64
}

// TestAdditionAssociative checks (A+B)+C == A+(B+C) for int64.
func TestAdditionAssociative(t *testing.T) {
	a := mustFrom(t, 2, 2, []int64{1, 2, 3, 4})
	b := mustFrom(t, 2, 2, []int64{5, 6, 7, 8})
	c := mustFrom(t, 2, 2, []int64{-4, 0, 9, 13})

	require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))))
}

// TestSubtraction checks the concrete vectors and that Sub inverts Add.
func TestSubtraction(t *testing.T) {
	a := mustFrom(t, 2, 2, []int64{11, 22, 33, 44})
	b := mustFrom(t, 2, 2, []int64{1, 2, 3, 4})
	want := mustFrom(t, 2, 2, []int64{10, 20, 30, 40})

	require.True(t, a.Sub(b).Equal(want))
	require.False(t, b.Sub(a).Equal(want)) // not commutative

	// Subtraction is the additive inverse of addition: (A+B)-B == A.
	require.True(t, a.Add(b).Sub(b).Equal(a))
	require.True(t, want.Add(b).Sub(b).Equal(want))
}

// TestMultiplication checks the dimension law and the concrete product:
// (2x3)·(3x2) → 2x2 with the expected cells.
func TestMultiplication(t *testing.T) {
	a := mustFrom(t, 2, 3, []int64{3, 4, 5, 1, 6, 8})
	b := mustFrom(t, 3, 2, []int64{6, 2, 9, 0, 3, 1})

	p := a.Mul(b)

	require.Equal(t, 2, p.Rows()) // (2x3)·(3x2) yields 2x2
	require.Equal(t, 2, p.Cols())
	require.Equal(t, int64(69), p.At(0, 0))
	require.Equal(t, int64(11), p.At(0, 1))
	require.Equal(t, int64(84), p.At(1, 0))
	require.Equal(t, int64(10), p.At(1, 1))
}

// TestMultiplicationByIdentity ensures I is neutral on both sides.
func TestMultiplicationByIdentity(t *testing.T) {
	m := mustFrom(t, 2, 3, []int{3, 4, 5, 1, 6, 8})

	left := matrix.NewIdentity[int](2).Mul(m)  // I2 · (2x3)
	right := m.Mul(matrix.NewIdentity[int](3)) // (2x3) · I3

	require.True(t, left.Equal(m))
	require.True(t, right.Equal(m))
}

// TestMultiplicationDimensionMismatchFaults ensures Mul faults when inner
// dimensions disagree.
func TestMultiplicationDimensionMismatchFaults(t *testing.T) {
	a := matrix.New[int](2, 3)
	b := matrix.New[int](2, 3) // a.Cols()=3 != b.Rows()=2

	require.Panics(t, func() { a.Mul(b) })
}

// TestEmptyOperands ensures zero-dimension matrices flow through the
// kernels without faulting.
func TestEmptyOperands(t *testing.T) {
	a := matrix.New[int](0, 3)
	b := matrix.New[int](3, 0)

	p := a.Mul(b) // (0x3)·(3x0) → 0x0
	require.Equal(t, 0, p.Rows())
	require.Equal(t, 0, p.Cols())

	sum := matrix.New[int](0, 3).Add(a)
	require.True(t, sum.Equal(a))
}

// TestEqualFlatStorage pins both sides of the equality contract: value
// equality on identical flat data, and the documented looseness that
// shape is not compared when flat lengths match.
func TestEqualFlatStorage(t *testing.T) {
	a := mustFrom(t, 2, 2, []int{1, 2, 3, 4})
	b := mustFrom(t, 2, 2, []int{1, 2, 3, 4})
	c := mustFrom(t, 2, 2, []int{1, 2, 3, 5})
	d := mustFrom(t, 1, 4, []int{1, 2, 3, 4}) // same flat data, different shape
	e := mustFrom(t, 1, 2, []int{1, 2})       // different length

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c)) // one differing cell
	require.True(t, a.Equal(d))  // documented looseness: shape ignored
	require.False(t, a.Equal(e)) // length differs
}

// TestFloatAndComplexElements exercises the generic kernels on non-integer
// element kinds.
func TestFloatAndComplexElements(t *testing.T) {
	fa := mustFrom(t, 2, 2, []float64{0.5, 1.5, 2.5, 3.5})
	fb := mustFrom(t, 2, 2, []float64{0.5, 0.5, 0.5, 0.5})
	require.True(t, fa.Add(fb).Equal(mustFrom(t, 2, 2, []float64{1, 2, 3, 4})))

	ca := mustFrom(t, 1, 2, []complex128{1 + 2i, 3})
	cb := mustFrom(t, 2, 1, []complex128{2, 1i})
	p := ca.Mul(cb) // (1x2)·(2x1) → 1x1: (1+2i)*2 + 3*1i = 2+7i
	require.Equal(t, complex128(2+7i), p.At(0, 0))
}

// TestOperatorFormsAgree verifies the package-level facades and the
// methods return identical results for all four operators.
func TestOperatorFormsAgree(t *testing.T) {
	a := mustFrom(t, 2, 2, []int64{10, 20, 30, 40})
	b := mustFrom(t, 2, 2, []int64{1, 2, 3, 4})
	sq := mustFrom(t, 2, 2, []int64{2, 0, 1, 3})

	require.True(t, matrix.Add(a, b).Equal(a.Add(b)))
	require.True(t, matrix.Sub(a, b).Equal(a.Sub(b)))
	require.True(t, matrix.Mul(a, sq).Equal(a.Mul(sq)))
	require.Equal(t, a.Equal(b), matrix.Equal(a, b))
	require.Equal(t, a.Equal(a.Clone()), matrix.Equal(a, a.Clone()))
}

// TestOperandsNotMutated ensures algebraic operators allocate fresh
// results and never touch their operands.
func TestOperandsNotMutated(t *testing.T) {
	a := mustFrom(t, 2, 2, []int{10, 20, 30, 40})
	b := mustFrom(t, 2, 2, []int{1, 2, 3, 4})
	aCopy := a.Clone()
	bCopy := b.Clone()

	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Mul(b)

	require.True(t, a.Equal(aCopy))
	require.True(t, b.Equal(bCopy))
}
