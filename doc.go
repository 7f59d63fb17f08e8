// Package lvmesh is an in-memory toolkit for simplicial meshes: building,
// welding, slicing into skeletons, and checking the orientation of point,
// segment, triangle and tetrahedron meshes embedded in 1D–3D space.
//
// 🚀 What is lvmesh?
//
//	A small, deterministic library that brings together:
//		• Core container: vertices, cells, exact-tuple lookup, rigid transforms
//		• Topology: k-skeletons, vertex-to-cell index, relative orientation
//		• Connectivity: sparse signed incidence matrices between dimensions
//		• Cell pairing: neighbours across every codimension-one face
//		• Weld: R-tree backed merge of coincident vertices
//		• Charts, quadrature and polygon clipping of simplices
//		• GiD and Gmsh readers, a Gmsh writer, and the meshtool CLI
//
// ✨ Why choose lvmesh?
//
//   - Deterministic – every output order is defined, so results are reproducible
//   - Sentinel errors – each package reports failures through errors.Is
//   - Explicit aliasing – skeletons share their parent's vertex buffer
//
// Under the hood the work is split across subpackages:
//
//	mesh/      — Mesh, Point, Cell and the transforms (translate, mirror, rotate, flip)
//	topology/  — Skeleton, VertexCells, Connectivity, CellPairs, Boundary, Components
//	matrix/    — Sparse signed-integer matrix with gonum Dense export
//	weld/      — Weld and Welder (first-match vertex merge within a tolerance)
//	chart/     — Segment, Triangle and Subdivision charts with quadrature rules
//	intersect/ — Sutherland–Hodgman clipping, triangle and segment intersection
//	builder/   — deterministic generators (segment, rectangle, cuboid, Platonic solids)
//	meshio/    — GiD and Gmsh v2 I/O
//
// Quick ASCII example:
//
//	    2───3
//	    │ ╲ │
//	    0───1
//
//	two triangles (0 1 2) and (2 1 3) sharing edge (1 2); their 1-skeleton
//	has five edges and the connectivity matrix has rank two.
//
//	go get github.com/katalvlaran/lvmesh
package lvmesh
