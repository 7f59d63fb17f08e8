// SPDX-License-Identifier: MIT
// Package: lvmesh/intersect
//
// clip.go — Sutherland–Hodgman polygon clipping in the plane.
//
// Contract:
//   • The clipper must be convex; clockwise clippers are reversed first.
//   • Clip edges are visited (last → first), then (i → i+1).
//   • A point is inside when it lies on or left of the directed edge.
//   • Output keeps subject traversal order; vertex count ∈ [0, |P|+|Q|].
//
// Complexity: O(|P|·|Q|).

package intersect

import "gonum.org/v1/gonum/spatial/r2"

// Clip clips subject against the convex polygon clipper.
func Clip(subject, clipper []r2.Vec) []r2.Vec {
	if len(subject) == 0 || len(clipper) < 3 {
		return nil
	}
	if area2(clipper) < 0 {
		clipper = reversed(clipper)
	}

	output := append([]r2.Vec(nil), subject...)
	b := clipper[len(clipper)-1]
	for _, a := range clipper {
		input := output
		output = make([]r2.Vec, 0, len(input)+1)
		if len(input) == 0 {
			break
		}
		s := input[len(input)-1]
		for _, e := range input {
			switch {
			case leftOf(e, b, a):
				if !leftOf(s, b, a) {
					output = append(output, crossing(s, e, b, a))
				}
				output = append(output, e)
			case leftOf(s, b, a):
				output = append(output, crossing(s, e, b, a))
			}
			s = e
		}
		b = a
	}
	return output
}

// Fan triangulates a convex polygon from its first vertex.
func Fan(poly []r2.Vec) [][3]r2.Vec {
	if len(poly) < 3 {
		return nil
	}
	tris := make([][3]r2.Vec, 0, len(poly)-2)
	for i := 1; i+1 < len(poly); i++ {
		tris = append(tris, [3]r2.Vec{poly[0], poly[i], poly[i+1]})
	}
	return tris
}

// leftOf reports whether p lies on or left of the directed line b → a.
func leftOf(p, b, a r2.Vec) bool {
	return r2.Cross(r2.Sub(a, b), r2.Sub(p, b)) >= 0
}

// crossing intersects the line s → e with the line b → a. Callers only
// ask for it when s and e straddle the line, so the lines are not parallel.
func crossing(s, e, b, a r2.Vec) r2.Vec {
	d1 := r2.Sub(e, s)
	d2 := r2.Sub(a, b)
	t := r2.Cross(r2.Sub(b, s), d2) / r2.Cross(d1, d2)
	return r2.Add(s, r2.Scale(t, d1))
}

// area2 is twice the signed area (positive for counter-clockwise).
func area2(poly []r2.Vec) float64 {
	var sum float64
	for i, p := range poly {
		sum += r2.Cross(p, poly[(i+1)%len(poly)])
	}
	return sum
}

func reversed(poly []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}
