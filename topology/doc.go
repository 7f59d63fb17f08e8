// Package topology derives combinatorial structure from a mesh.Mesh:
//
//   - Skeleton / SkeletonFunc: the deduplicated k-dimensional sub-simplices.
//   - VertexCells: the dense vertex → incident-cell table used internally by
//     the queries below.
//   - RelativeOrientation: signed local index of a face inside a cell.
//   - Connectivity: oriented incidence matrix between two skeletons
//     (the discrete exterior derivative when entries are signs).
//   - CellPairs: pairs of cells sharing a face, orientation resolved,
//     including boundary and junction cases.
//   - IsOriented, Boundary, EulerCharacteristic: whole-mesh queries built on
//     the above.
//
// Everything here is a pure function of its input meshes: results are
// freshly allocated and hold no back-reference into the source, except
// Skeleton at the top dimension, which returns its input unchanged.
//
// Errors:
//
//	ErrNilMesh          - a nil *mesh.Mesh was passed.
//	ErrInvalidArgument  - dimension out of range or mismatched between inputs.
//	ErrVertexMismatch   - two meshes do not share the same vertex buffer length.
//	ErrInconsistent     - a face has no incident cell (internal defect).
package topology
