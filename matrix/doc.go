// Package matrix provides the sparse signed-integer matrix used to store
// mesh connectivity (oriented incidence) between cells of neighbouring
// dimensions.
//
// The matrix package provides:
//
//   - Sparse, a coordinate-keyed matrix with O(1) At/Set, deterministic
//     row-major iteration (Entries) and zero-elision (storing 0 erases).
//   - Algebra needed by topology checks: Transpose, Mul, column and row
//     absolute sums.
//   - Dense export into gonum's *mat.Dense for linear-algebra consumers.
//
// Connectivity matrices are very sparse (a triangle has three edges), so
// memory is O(nnz) rather than O(rows·cols).
package matrix
