// Package weld merges meshes by identifying coincident vertices.
//
// Welding b onto a keeps a's buffers in front, appends only the vertices of
// b that have no partner in a, and remaps b's cells onto the combined
// buffer. Partners are found through an R-tree (github.com/dhconnelly/rtreego)
// over the vertices a actually references, using a fixed tolerance of
// sqrt(machine epsilon) unless WithTolerance says otherwise.
//
// Matching policy: the first candidate returned by the R-tree search that
// lies strictly closer than the tolerance wins. When several vertices of a
// lie within tolerance of the same vertex of b, which one is chosen depends
// on the tree's traversal order. This is documented behaviour, not an
// error: near-duplicate geometry should be cleaned before welding.
package weld
