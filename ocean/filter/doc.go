// Package filter smooths vertical profiles with a zero-phase low-pass
// Butterworth filter applied in the depth domain.
//
// Depth plays the role of time: the grid step is the sampling interval
// and a cutoff wavelength in meters maps to a cutoff frequency in
// cycles per meter. The filter is a cascade of second-order sections
// run forward and backward over an odd-mirrored edge extension, so the
// result is phase-free and deterministic.
//
// Different depth bands of one column may use different cutoff
// wavelengths; each band is cut from a full-column filtrate at its own
// cutoff, with a short linear crossfade at band joins.
package filter
