// Package mesh defines the simplicial Mesh container used across lvmesh.
//
// A Mesh owns two ordered buffers:
//
//   - a vertex buffer of Points, all with the same coordinate arity U
//     (the embedding dimension);
//   - a cell buffer of Cells, each an ordered tuple of D+1 vertex indices
//     (D is the intrinsic dimension: 0 point, 1 segment, 2 triangle,
//     3 tetrahedron).
//
// The order of the first two indices of a cell encodes its orientation:
// Flip swaps them and inverts the orientation sign. Insertion order of both
// buffers is preserved by every derived operation (skeletons, welds,
// transforms).
//
// Ownership & aliasing:
//
//	New takes ownership of the slices it is given. Meshes are read-mostly;
//	the methods Translate, Mirror, Rotate and FlipOrientation mutate the
//	receiver in place and return it for chaining, while the package-level
//	functions of the same names return fresh copies.
//
// Errors:
//
//	ErrArity            - cell arity is outside [1, MaxDim+1] or not uniform.
//	ErrEmbedding        - vertex coordinate arity is not uniform or a vector
//	                      argument does not match the embedding dimension.
//	ErrIndexOutOfRange  - a cell references a vertex outside the buffer.
//	ErrZeroNormal       - a mirror plane was given a zero normal.
package mesh
