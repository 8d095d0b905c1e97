// Package modes solves the quasi-geostrophic vertical-mode eigenvalue
// problem
//
//	d/dz( (f0²/N²(z)) dφ/dz ) = -λ φ(z),  dφ/dz = 0 at z = 0 and z = -H
//
// (rigid lid, flat bottom) on a uniform vertical grid. The second-order
// finite-difference discretization places φ on the grid levels and
// f0²/N² on the layer midpoints, producing a symmetric tridiagonal
// operator whose eigendecomposition yields the barotropic mode (λ ≈ 0)
// and the baroclinic modes in ascending eigenvalue order.
//
// Deformation radii follow as 1/sqrt(λ) for the baroclinic modes; the
// barotropic mode reports the external Rossby radius sqrt(g·H)/|f0|.
package modes
