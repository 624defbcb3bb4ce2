// Package matrix provides a generic, row-major dense matrix value type.
//
// The matrix package provides:
//
//   - Matrix[T]: a fixed-shape rows×cols grid over any Numeric element
//     (integers, floats, complex), backed by a flat row-major buffer
//     with the explicit index formula i*cols + j.
//   - Bounds-checked access (At/Set) that faults on programmer misuse,
//     and functional transforms (Map/MapWith) as the element-wise core.
//   - Algebraic operators Add, Sub, the matrix product Mul, and
//     flat-storage equality, each in two equivalent calling forms:
//     methods on *Matrix[T] and package-level facades.
//   - Convenience constructors: NewZeros, NewIdentity, and NewSquare,
//     which infers square dimensions from a flat literal.
//
// Contract violations — out-of-range indices, mismatched shapes in
// element-wise operations, incompatible inner dimensions in Mul — are
// programmer faults and panic with an error wrapping the matching
// sentinel (ErrOutOfRange, ErrShapeMismatch, ErrDimensionMismatch),
// always before any mutation. Data-dependent conditions (From length
// mismatch, NewSquare on a non-square length) return recoverable errors.
//
// Matrices never share storage: every operation allocates a fresh,
// independent result, and Set is the only mutator. The package is
// single-threaded by design; concurrent readers of an unchanging matrix
// are safe, concurrent writers need external synchronization.
//
// See the examples in example_test.go for usage patterns.
package matrix
