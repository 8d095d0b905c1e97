// Package profile provides vertical ocean profiles and uniform vertical
// grids, plus resampling of irregular profiles onto those grids.
//
// A VerticalProfile is an ordered sequence of (depth, value) pairs with
// depth in meters, positive downward and strictly increasing. NaN marks
// missing values. A GridSpec describes a uniform grid from the surface
// to a bottom depth; Resample maps a profile onto it using linear (or
// monotone cubic) interpolation over the valid samples.
package profile
