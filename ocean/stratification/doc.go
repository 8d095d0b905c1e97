// Package stratification computes the squared Brunt-Vaisala frequency
// N²(z) from a potential density profile on a uniform vertical grid.
//
// N² is evaluated on the layer midpoints between adjacent grid levels,
// so the output is one sample shorter than the density input. Values
// are signed: unstable layers yield negative N², and any clipping is
// left to the eigensolver.
package stratification
