// Package meshio reads and writes simplicial meshes in the GiD ASCII and
// Gmsh 2.2 ASCII formats.
//
// Readers are strict: a malformed number, a field-count mismatch, a missing
// block terminator or an early end of input aborts the whole load with an
// error wrapping ErrFormat and the offending line number. No partial mesh
// is ever returned.
//
// GiD layout (header lines before "Coordinates" are ignored):
//
//	MESH dimension 3 ElemType Triangle Nnode 3
//	Coordinates
//	1 0 0 0
//	...
//	End Coordinates
//	Elements
//	1 1 2 3
//	...
//	End Elements
//
// The coordinate block ends at the first line without exactly four fields;
// the element block likewise. Indices are 1-based in the file and 0-based in
// the resulting mesh.
//
// Gmsh layout: $PhysicalNames (optional), $Nodes and $Elements blocks, each
// with a leading count line and a closing $End tag. Points (15), lines (1),
// triangles (2) and tetrahedra (4) are recognised and the cells are those of
// the highest dimension present, so a file with boundary lines and triangles
// reads as a triangle mesh. WithPhysical restricts elements to one named
// physical group first. WriteGmsh emits the same layout for meshes of any
// dimension up to 3, and ReadGmsh reads it back.
package meshio
