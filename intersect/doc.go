// Package intersect computes the overlap of two simplices.
//
// Triangles are intersected with a Sutherland–Hodgman clip of the subject
// polygon against every edge half-plane of the clipper, and the convex
// result is fan-triangulated from its first vertex. Planar inputs are
// clipped directly; triangles in 3D are clipped in a frame attached to the
// clipper (origin at its first vertex, axes from its first two edges), so
// translating both inputs translates the result. Collinear segments
// intersect to their common sub-segment.
//
// Vector arithmetic uses gonum's spatial/r2 and spatial/r3.
package intersect
