package filter

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ocean/ocean/profile"
)

// Errors returned by LowPass.
var (
	ErrInvalidFilterSpec = errors.New("filter: invalid filter specification")
	ErrShortProfile      = errors.New("filter: profile too short to filter")
)

// crossfadeHalfWidth bounds the linear blend around a band join, in
// samples on each side.
const crossfadeHalfWidth = 5

// Spec describes a depth-banded low-pass filter.
//
// Depths[i] is the depth (m) where band i starts; the last band extends
// to the bottom. Wavelengths[i] is the cutoff wavelength (m) applied to
// band i. Order is the Butterworth order shared by all bands.
type Spec struct {
	Wavelengths []float64
	Depths      []float64
	Order       int
}

// validate checks the spec against the grid's Nyquist limit.
func (s Spec) validate(step float64) error {
	if len(s.Wavelengths) == 0 || len(s.Wavelengths) != len(s.Depths) {
		return fmt.Errorf("%w: %d wavelengths vs %d depths",
			ErrInvalidFilterSpec, len(s.Wavelengths), len(s.Depths))
	}

	if s.Order <= 0 {
		return fmt.Errorf("%w: order %d", ErrInvalidFilterSpec, s.Order)
	}

	for i, w := range s.Wavelengths {
		if w < 2*step {
			return fmt.Errorf("%w: wavelength %g m in band %d below the Nyquist limit %g m",
				ErrInvalidFilterSpec, w, i, 2*step)
		}
	}

	for i, d := range s.Depths {
		if d < 0 || (i > 0 && d <= s.Depths[i-1]) {
			return fmt.Errorf("%w: band depths must be non-negative and strictly increasing",
				ErrInvalidFilterSpec)
		}
	}

	return nil
}

// LowPass applies the banded zero-phase low-pass filter to a profile
// sampled on the layer midpoints of grid (depth of sample k is
// (k+0.5)*Step). The output has the same length as the input.
//
// A cutoff wavelength of exactly twice the grid step is the no-op
// boundary: that band passes through unchanged. Shorter wavelengths
// violate the Nyquist limit and return ErrInvalidFilterSpec.
func LowPass(signal []float64, grid profile.GridSpec, spec Spec) ([]float64, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	if err := spec.validate(grid.Step); err != nil {
		return nil, err
	}

	if len(signal) < 2 {
		return nil, fmt.Errorf("%w: %d samples", ErrShortProfile, len(signal))
	}

	// One full-column filtrate per band keeps band joins free of
	// filter start-up transients.
	filtrates := make([][]float64, len(spec.Wavelengths))
	for i, w := range spec.Wavelengths {
		filtrates[i] = zeroPhase(signal, w, grid.Step, spec.Order)
	}

	band := bandIndices(len(signal), grid.Step, spec.Depths)

	out := make([]float64, len(signal))
	for k := range out {
		out[k] = filtrates[band[k]][k]
	}

	crossfadeJoins(out, filtrates, band)

	return out, nil
}

// ZeroPhase applies a single zero-phase Butterworth low-pass of the
// given cutoff wavelength (m) to a profile sampled every step meters.
func ZeroPhase(signal []float64, wavelength, step float64, order int) ([]float64, error) {
	spec := Spec{Wavelengths: []float64{wavelength}, Depths: []float64{0}, Order: order}
	if err := spec.validate(step); err != nil {
		return nil, err
	}

	if len(signal) < 2 {
		return nil, fmt.Errorf("%w: %d samples", ErrShortProfile, len(signal))
	}

	return zeroPhase(signal, wavelength, step, order), nil
}

// zeroPhase runs the forward-backward cascade over an odd-mirrored edge
// extension of length min(3*(2*order+1), len-1).
func zeroPhase(signal []float64, wavelength, step float64, order int) []float64 {
	if wavelength <= 2*step {
		// Cutoff at the Nyquist frequency: nothing to remove.
		out := make([]float64, len(signal))
		copy(out, signal)

		return out
	}

	sampleRate := 1 / step
	cutoff := 1 / wavelength
	sections := butterworthLowpass(cutoff, sampleRate, order)

	pad := 3 * (2*order + 1)
	if max := len(signal) - 1; pad > max {
		pad = max
	}

	ext := oddExtend(signal, pad)

	primeAll(sections, ext[0])
	cascade(sections, ext)
	reverse(ext)
	primeAll(sections, ext[0])
	cascade(sections, ext)
	reverse(ext)

	out := make([]float64, len(signal))
	copy(out, ext[pad:pad+len(signal)])

	return out
}

// oddExtend mirrors pad samples at both ends, point-reflected about the
// end values so the extension is continuous in value and slope.
func oddExtend(signal []float64, pad int) []float64 {
	n := len(signal)
	ext := make([]float64, n+2*pad)

	for i := 0; i < pad; i++ {
		ext[i] = 2*signal[0] - signal[pad-i]
	}

	copy(ext[pad:], signal)

	for i := 0; i < pad; i++ {
		ext[pad+n+i] = 2*signal[n-1] - signal[n-2-i]
	}

	return ext
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// bandIndices assigns each midpoint sample to the band whose depth
// range contains it.
func bandIndices(n int, step float64, depths []float64) []int {
	band := make([]int, n)
	for k := range band {
		z := (float64(k) + 0.5) * step

		b := 0
		for i := len(depths) - 1; i > 0; i-- {
			if z >= depths[i] {
				b = i
				break
			}
		}
		band[k] = b
	}

	return band
}

// crossfadeJoins blends the two adjacent filtrates linearly around each
// band join so the stitched profile stays continuous.
func crossfadeJoins(out []float64, filtrates [][]float64, band []int) {
	for k := 1; k < len(band); k++ {
		if band[k] == band[k-1] {
			continue
		}

		lo, hi := band[k-1], band[k]

		w := crossfadeHalfWidth
		for _, limit := range []int{k, len(band) - k} {
			if w > limit {
				w = limit
			}
		}

		for j := -w; j < w; j++ {
			idx := k + j
			if band[idx] != lo && band[idx] != hi {
				continue
			}
			t := (float64(j+w) + 0.5) / float64(2*w)
			out[idx] = (1-t)*filtrates[lo][idx] + t*filtrates[hi][idx]
		}
	}
}
