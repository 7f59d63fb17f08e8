// Package builder provides deterministic mesh generators in the same
// functional-options style as the rest of lvmesh.
//
// A Constructor produces a mesh in its natural coordinates from the resolved
// builderConfig. Build runs one constructor and places the result (embedding
// padding, origin shift); BuildMesh runs several and welds them into one
// mesh in call order.
//
// The package offers:
//
//   - Constructors:
//     – Segment:      uniform 1D chain of n segments.
//     – Rectangle:    nx×ny grid, two counter-clockwise triangles per quad,
//     optional seeded jitter of interior vertices.
//     – Cuboid:       closed, outward oriented box surface, n×n per face.
//     – Platonic:     tetrahedron, cube, octahedron and icosahedron surfaces.
//     – ReferenceTetrahedron: one reference 3-cell.
//     – Shifted:      wraps a constructor with a translation.
//   - Options: WithOrigin, WithEmbedding, WithSeed, WithRand, WithJitter,
//     WithWeldTolerance.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed ⇒ identical meshes.
//   - Orientation: every surface is consistently oriented (closed surfaces
//     outward), so topology.IsOriented holds.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; constructors return sentinel errors and never panic.
package builder
