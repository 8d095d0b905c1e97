// Package pipeline chains the per-column computation: equation of
// state, resampling onto a uniform vertical grid, Brunt-Vaisala
// frequency, optional depth-banded smoothing and the baroclinic mode
// solve.
//
// Each column is a pure function of its inputs; no state is shared
// between columns. SolveAll maps the pipeline over many columns in
// parallel, and a failing column never aborts or corrupts its
// siblings.
package pipeline
