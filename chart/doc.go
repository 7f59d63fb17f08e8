// Package chart provides parametrized simplex charts over a mesh: affine
// maps from a reference domain onto one cell, together with their
// Jacobian and quadrature rules.
//
// A Chart is a closed tagged variant:
//
//	*Segment      reference interval [0,1]
//	*Triangle     reference right triangle {u ≥ 0, v ≥ 0, u+v ≤ 1}
//	*Subdivision  one child of the barycentric refinement of a triangle
//
// Every chart maps a reference parameter u onto
//
//	x(u) = v_last + Σ u_i (v_i − v_last)
//
// so the reference origin lands on the last vertex. The Jacobian is the
// Gram determinant root √det(TᵀT) of the edge matrix T, which makes charts
// embedded in higher dimensions (a triangle in 3D) well defined.
//
// Quadrature rules are returned in physical coordinates with weights that
// already include the Jacobian, so Σ w_k f(x_k) approximates ∫ f over the
// cell. Segments use Gauss–Legendre nodes from gonum's integrate/quad;
// triangles use symmetric rules exact up to degree 5.
package chart
