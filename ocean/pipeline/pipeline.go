package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ocean/ocean/eos"
	"github.com/cwbudde/algo-ocean/ocean/filter"
	"github.com/cwbudde/algo-ocean/ocean/modes"
	"github.com/cwbudde/algo-ocean/ocean/profile"
	"github.com/cwbudde/algo-ocean/ocean/stratification"
)

// ErrNoValidData is returned when a column holds no usable samples at
// all.
var ErrNoValidData = errors.New("pipeline: column has no valid samples")

// Column is the raw input of one horizontal grid point: temperature and
// salinity sampled at the given depths, plus the local bottom depth.
type Column struct {
	Salinity    []float64 // PSU
	Temperature []float64 // °C
	Depths      []float64 // m, positive downward, strictly increasing
	BottomDepth float64   // m, positive
}

// Result holds the per-column outputs on the working grid.
type Result struct {
	Grid    profile.GridSpec
	Density []float64 // kg/m³ on the grid levels
	N2      []float64 // rad²/s² on the layer midpoints, post-filter
	Modes   *modes.ModeSet
}

// config holds the pipeline configuration.
type config struct {
	step    float64
	nModes  int
	f0      float64
	filter  *filter.Spec
	cubic   bool
	insitu  bool
	wModes  bool
	strict  bool
	n2Floor float64
}

// Option configures a Pipeline.
type Option func(*config)

// WithGridStep sets the vertical grid step in meters. Default 1 m.
func WithGridStep(step float64) Option {
	return func(cfg *config) {
		if step > 0 {
			cfg.step = step
		}
	}
}

// WithModes sets the number of baroclinic modes to solve for.
// Default 4.
func WithModes(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.nModes = n
		}
	}
}

// WithCoriolis sets the Coriolis parameter f0 (1/s) directly.
func WithCoriolis(f0 float64) Option {
	return func(cfg *config) { cfg.f0 = f0 }
}

// WithLatitude sets f0 from the region's mean latitude in degrees,
// f = 2Ω·sin(lat).
func WithLatitude(deg float64) Option {
	return func(cfg *config) { cfg.f0 = modes.CoriolisAt(deg) }
}

// WithFilter enables depth-banded low-pass smoothing of N² before the
// solve.
func WithFilter(spec filter.Spec) Option {
	return func(cfg *config) { cfg.filter = &spec }
}

// WithCubic selects monotone cubic resampling of the density profile.
func WithCubic() Option {
	return func(cfg *config) { cfg.cubic = true }
}

// WithInSituTemperature declares the temperature input as in-situ
// rather than potential temperature.
func WithInSituTemperature() Option {
	return func(cfg *config) { cfg.insitu = true }
}

// WithVerticalVelocity derives vertical-velocity structure functions in
// addition to the primary modes.
func WithVerticalVelocity() Option {
	return func(cfg *config) { cfg.wModes = true }
}

// WithStrictStratification forwards strict negative-N² handling to the
// solver.
func WithStrictStratification() Option {
	return func(cfg *config) { cfg.strict = true }
}

// WithN2Floor overrides the solver's N² floor.
func WithN2Floor(floor float64) Option {
	return func(cfg *config) { cfg.n2Floor = floor }
}

// Pipeline runs the column computation with a fixed configuration. It
// is stateless and safe for concurrent use.
type Pipeline struct {
	cfg config
}

// New builds a Pipeline. Defaults: 1 m grid step, 4 modes, f0 at 45°N,
// no filtering, linear resampling, potential temperature input.
func New(opts ...Option) *Pipeline {
	cfg := config{
		step:   1,
		nModes: 4,
		f0:     modes.CoriolisAt(45),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Pipeline{cfg: cfg}
}

// Solve runs the full pipeline on one column.
//
// The working grid reaches from the surface to the shallower of the
// column's bottom depth and its deepest valid sample, so missing data
// at depth shrinks the grid instead of poisoning it.
func (p *Pipeline) Solve(col Column) (*Result, error) {
	density, err := eos.Density(col.Salinity, col.Temperature, col.Depths, p.eosOptions()...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: equation of state: %w", err)
	}

	raw := profile.VerticalProfile{Depths: col.Depths, Values: density}

	bottom := col.BottomDepth
	if deepest := raw.DeepestValid(); math.IsNaN(deepest) {
		return nil, ErrNoValidData
	} else if deepest < bottom {
		bottom = deepest
	}

	grid := profile.GridSpec{Step: p.cfg.step, BottomDepth: bottom}

	gridded, err := profile.Resample(raw, grid, p.resampleOptions()...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: resampling density: %w", err)
	}

	n2, err := stratification.BruntVaisala(gridded, grid)
	if err != nil {
		return nil, fmt.Errorf("pipeline: stratification: %w", err)
	}

	if p.cfg.filter != nil {
		n2, err = filter.LowPass(n2, grid, *p.cfg.filter)
		if err != nil {
			return nil, fmt.Errorf("pipeline: smoothing N²: %w", err)
		}
	}

	ms, err := modes.Solve(n2, grid, p.cfg.nModes, p.modeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: solving modes: %w", err)
	}

	return &Result{
		Grid:    grid,
		Density: gridded,
		N2:      n2,
		Modes:   ms,
	}, nil
}

func (p *Pipeline) eosOptions() []eos.Option {
	var opts []eos.Option
	if p.cfg.insitu {
		opts = append(opts, eos.WithInSituTemperature())
	}

	return opts
}

func (p *Pipeline) resampleOptions() []profile.Option {
	var opts []profile.Option
	if p.cfg.cubic {
		opts = append(opts, profile.WithCubic())
	}

	return opts
}

func (p *Pipeline) modeOptions() []modes.Option {
	opts := []modes.Option{modes.WithCoriolis(p.cfg.f0)}
	if p.cfg.wModes {
		opts = append(opts, modes.WithVerticalVelocity())
	}
	if p.cfg.strict {
		opts = append(opts, modes.WithStrictStratification())
	}
	if p.cfg.n2Floor > 0 {
		opts = append(opts, modes.WithN2Floor(p.cfg.n2Floor))
	}

	return opts
}
