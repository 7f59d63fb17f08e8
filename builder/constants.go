// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// constants.go — shared constants used by mesh builders.

package builder

// Method names used to prefix errors with the constructor name.
const (
	MethodSegment     = "Segment"
	MethodRectangle   = "Rectangle"
	MethodCuboid      = "Cuboid"
	MethodPlatonic    = "Platonic"
	MethodTetrahedron = "ReferenceTetrahedron"
	MethodShifted     = "Shifted"
	MethodBuild       = "Build"
	MethodBuildMesh   = "BuildMesh"
)

// MinCells is the smallest subdivision count along any axis.
const MinCells = 1

// MaxJitter bounds WithJitter so that jittered grids keep their orientation.
const MaxJitter = 0.5

// MaxEmbedding is the largest embedding WithEmbedding accepts.
const MaxEmbedding = 3
