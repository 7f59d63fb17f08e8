// SPDX-License-Identifier: MIT
// Package: lvmesh/intersect
//
// intersect.go — simplex-level intersection on mesh points and charts.
//
// Contract:
//   • (triangle, triangle) in U=2 or U=3 → fan of the clipped region.
//   • (segment, segment) collinear → at most one segment, oriented like p.
//   • The clipper q defines the frame; coplanarity (collinearity) of p with
//     q is assumed, the off-plane component of p is dropped.
//   • No overlap, or an overlap of zero measure, → empty result, nil error.

package intersect

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/chart"
	"github.com/katalvlaran/lvmesh/mesh"
)

// Intersection returns the simplices covering p ∩ q.
func Intersection(p, q []mesh.Point) ([][]mesh.Point, error) {
	// 1) Shape checks before any arithmetic.
	u, err := embedding(p, q)
	if err != nil {
		return nil, err
	}
	switch {
	case len(p) == 3 && len(q) == 3:
		switch u {
		case 2:
			return triangles2(p, q), nil
		case 3:
			return triangles3(p, q)
		}
	case len(p) == 2 && len(q) == 2:
		return segments(p, q)
	}
	return nil, fmt.Errorf("Intersection: %d- and %d-vertex simplices in %dD: %w",
		len(p), len(q), u, ErrUnsupported)
}

// Charts intersects two charts and returns the pieces as charts.
func Charts(p, q chart.Chart) ([]chart.Chart, error) {
	if p == nil || q == nil {
		return nil, fmt.Errorf("Charts: nil chart: %w", ErrUnsupported)
	}
	pieces, err := Intersection(p.Vertices(), q.Vertices())
	if err != nil {
		return nil, err
	}
	out := make([]chart.Chart, 0, len(pieces))
	for _, s := range pieces {
		c, err := chart.New(s)
		if err != nil {
			return nil, fmt.Errorf("Charts: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

// embedding checks that every vertex of p and q has the same arity.
func embedding(p, q []mesh.Point) (int, error) {
	if len(p) == 0 || len(q) == 0 {
		return 0, fmt.Errorf("Intersection: empty simplex: %w", ErrUnsupported)
	}
	u := len(q[0])
	for _, set := range [2][]mesh.Point{p, q} {
		for _, v := range set {
			if len(v) != u {
				return 0, fmt.Errorf("Intersection: %d vs %d coordinates: %w", len(v), u, ErrDimensionMismatch)
			}
		}
	}
	return u, nil
}

func triangles2(p, q []mesh.Point) [][]mesh.Point {
	tris := clipFan(toR2(p), toR2(q))
	out := make([][]mesh.Point, len(tris))
	for i, t := range tris {
		out[i] = []mesh.Point{{t[0].X, t[0].Y}, {t[1].X, t[1].Y}, {t[2].X, t[2].Y}}
	}
	return out
}

// frame is an orthonormal in-plane basis anchored at a vertex of q.
type frame struct {
	origin, u, v r3.Vec
}

func newFrame(q []mesh.Point) (frame, error) {
	o := toR3(q[0])
	e1 := r3.Sub(toR3(q[1]), o)
	e2 := r3.Sub(toR3(q[2]), o)
	n := r3.Cross(e1, e2)
	if r3.Norm(n) == 0 {
		return frame{}, fmt.Errorf("Intersection: collinear clipper: %w", ErrDegenerate)
	}
	u := r3.Unit(e1)
	return frame{origin: o, u: u, v: r3.Unit(r3.Cross(n, u))}, nil
}

func (f frame) project(p mesh.Point) r2.Vec {
	d := r3.Sub(toR3(p), f.origin)
	return r2.Vec{X: r3.Dot(d, f.u), Y: r3.Dot(d, f.v)}
}

func (f frame) lift(p r2.Vec) mesh.Point {
	w := r3.Add(f.origin, r3.Add(r3.Scale(p.X, f.u), r3.Scale(p.Y, f.v)))
	return mesh.Point{w.X, w.Y, w.Z}
}

func triangles3(p, q []mesh.Point) ([][]mesh.Point, error) {
	f, err := newFrame(q)
	if err != nil {
		return nil, err
	}
	pp := make([]r2.Vec, len(p))
	for i, v := range p {
		pp[i] = f.project(v)
	}
	qq := make([]r2.Vec, len(q))
	for i, v := range q {
		qq[i] = f.project(v)
	}
	tris := clipFan(pp, qq)
	out := make([][]mesh.Point, len(tris))
	for i, t := range tris {
		out[i] = []mesh.Point{f.lift(t[0]), f.lift(t[1]), f.lift(t[2])}
	}
	return out, nil
}

// segments intersects two collinear segments in any embedding by
// projecting p onto the parameter line of q.
func segments(p, q []mesh.Point) ([][]mesh.Point, error) {
	d := make([]float64, len(q[0]))
	floats.SubTo(d, q[1], q[0])
	dd := floats.Dot(d, d)
	if dd == 0 {
		return nil, fmt.Errorf("Intersection: zero-length segment: %w", ErrDegenerate)
	}
	param := func(x mesh.Point) float64 {
		r := make([]float64, len(x))
		floats.SubTo(r, x, q[0])
		return floats.Dot(r, d) / dd
	}

	t0, t1 := param(p[0]), param(p[1])
	lo := math.Max(math.Min(t0, t1), 0)
	hi := math.Min(math.Max(t0, t1), 1)
	if hi <= lo {
		return nil, nil
	}
	at := func(t float64) mesh.Point {
		x := q[0].Clone()
		floats.AddScaled(x, t, d)
		return x
	}
	if t0 > t1 {
		lo, hi = hi, lo
	}
	return [][]mesh.Point{{at(lo), at(hi)}}, nil
}

// clipFan clips and triangulates. Coincident consecutive clip vertices
// are merged first; regions and fan triangles of zero area relative to the
// clipper (touching vertices or edges) are dropped.
func clipFan(p, q []r2.Vec) [][3]r2.Vec {
	region := dedupRing(Clip(p, q))
	whole := math.Abs(area2(q))
	if math.Abs(area2(region)) <= zeroArea*whole {
		return nil
	}
	fan := Fan(region)
	tris := fan[:0]
	for _, t := range fan {
		if math.Abs(area2(t[:])) > zeroArea*whole {
			tris = append(tris, t)
		}
	}
	return tris
}

// dedupRing drops vertices equal to their predecessor, including the
// wrap-around from last to first. A vertex on a clip line is emitted both
// as a crossing and as itself.
func dedupRing(poly []r2.Vec) []r2.Vec {
	out := poly[:0]
	for _, v := range poly {
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// zeroArea is the relative area below which a clip region is empty.
const zeroArea = 1e-12

func toR2(ps []mesh.Point) []r2.Vec {
	out := make([]r2.Vec, len(ps))
	for i, p := range ps {
		out[i] = r2.Vec{X: p[0], Y: p[1]}
	}
	return out
}

func toR3(p mesh.Point) r3.Vec {
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}
