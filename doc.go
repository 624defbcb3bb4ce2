// Package densemat is a small, correctness-first dense-matrix value type
// for Go — generic over any numeric element, from construction to algebra.
//
// 🚀 What is densemat?
//
//	A minimal, pure-Go library providing one carefully specified component:
//		• Matrix[T]: a row-major dense 2D container over any numeric type
//		• Bounds-checked access: At / Set with fail-fast programmer faults
//		• Functional transforms: Map and MapWith as the element-wise core
//		• Algebra: Add, Sub, matrix product Mul, and flat-storage equality
//		• Sugar: square-matrix literals inferred from flat value sequences
//
// ✨ Why choose densemat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every invariant checked before any mutation
//   - Pure Go – no cgo, deterministic loops, no hidden state
//   - Generic – one implementation for ints, uints, floats and complex
//
// Everything lives in a single subpackage:
//
//	matrix/ — the Matrix[T] value type, its constructors, transforms,
//	          algebraic operators and package-level facades
//
// Quick example:
//
//	a, _ := matrix.From(2, 3, []int{3, 4, 5, 1, 6, 8})
//	b, _ := matrix.From(3, 2, []int{6, 2, 9, 0, 3, 1})
//	p := a.Mul(b) // (2×3)·(3×2) → 2×2: [[69, 11], [84, 10]]
//
// densemat is a reference value type, not a performance-tuned linear
// algebra suite: no sparse storage, no broadcasting, no pivoting, no SIMD.
// When you need decompositions or throughput, reach for gonum instead.
package densemat
