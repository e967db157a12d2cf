package config

import (
	"fmt"

	"github.com/rodyherrera/dxa/dxaerr"
)

// CrystalStructure enumerates the crystal types CNA/PTM can assign.
type CrystalStructure int

const (
	Other CrystalStructure = iota
	FCC
	HCP
	BCC
	CubicDiamond
	HexDiamond
)

func (c CrystalStructure) String() string {
	switch c {
	case FCC:
		return "FCC"
	case HCP:
		return "HCP"
	case BCC:
		return "BCC"
	case CubicDiamond:
		return "CUBIC_DIAMOND"
	case HexDiamond:
		return "HEX_DIAMOND"
	default:
		return "OTHER"
	}
}

// IdentificationMode selects the structure-analysis algorithm.
type IdentificationMode int

const (
	CNA IdentificationMode = iota
	PTM
)

func (m IdentificationMode) String() string {
	if m == PTM {
		return "PTM"
	}
	return "CNA"
}

// Config is the immutable configuration record driving one analysis run.
// Construct it with New(opts...); the zero value is not valid (MaxCircuitSize
// and ExtendedCircuitSize must be set explicitly or via defaults applied by New).
type Config struct {
	InputCrystalStructure  CrystalStructure
	IdentificationMode     IdentificationMode
	CNACutoff              float64 // required if CNA; 0 means "estimate from density"
	PBC                    [3]bool
	MaxCircuitSize         int // positive odd integer >= 3
	ExtendedCircuitSize    int // >= MaxCircuitSize
	LineSmoothingLevel     int // >= 0
	LinePointInterval      int // >= 0
	DefectMeshSmoothing    int // >= 0
	OnlyPerfectDislocations bool
	MarkCoreAtoms          bool
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithInputCrystalStructure sets the expected bulk crystal structure.
func WithInputCrystalStructure(s CrystalStructure) Option {
	return func(c *Config) { c.InputCrystalStructure = s }
}

// WithIdentificationMode selects CNA or PTM.
func WithIdentificationMode(m IdentificationMode) Option {
	return func(c *Config) { c.IdentificationMode = m }
}

// WithCNACutoff sets the CNA neighbor cutoff radius explicitly.
func WithCNACutoff(r float64) Option {
	return func(c *Config) { c.CNACutoff = r }
}

// WithPBC sets the per-axis periodic boundary flags.
func WithPBC(x, y, z bool) Option {
	return func(c *Config) { c.PBC = [3]bool{x, y, z} }
}

// WithMaxCircuitSize overrides the default primary circuit size bound (14).
func WithMaxCircuitSize(n int) Option {
	return func(c *Config) { c.MaxCircuitSize = n }
}

// WithExtendedCircuitSize overrides the default extended circuit bound (32).
func WithExtendedCircuitSize(n int) Option {
	return func(c *Config) { c.ExtendedCircuitSize = n }
}

// WithLineSmoothingLevel sets the number of Taubin smoothing iterations.
func WithLineSmoothingLevel(n int) Option {
	return func(c *Config) { c.LineSmoothingLevel = n }
}

// WithLinePointInterval sets the polyline coarsening stride k.
func WithLinePointInterval(n int) Option {
	return func(c *Config) { c.LinePointInterval = n }
}

// WithDefectMeshSmoothing sets the number of surface Taubin iterations.
func WithDefectMeshSmoothing(n int) Option {
	return func(c *Config) { c.DefectMeshSmoothing = n }
}

// WithOnlyPerfectDislocations restricts output to perfect (lattice-vector)
// Burgers vectors, discarding partials.
func WithOnlyPerfectDislocations(v bool) Option {
	return func(c *Config) { c.OnlyPerfectDislocations = v }
}

// WithMarkCoreAtoms sets the MarkCoreAtoms flag. The flag is stored on the
// Config only; no pipeline stage reads it.
func WithMarkCoreAtoms(v bool) Option {
	return func(c *Config) { c.MarkCoreAtoms = v }
}

// defaults returns the documented out-of-the-box defaults.
func defaults() Config {
	return Config{
		IdentificationMode:  CNA,
		MaxCircuitSize:      14,
		ExtendedCircuitSize: 32,
		LineSmoothingLevel:  4,
		LinePointInterval:   2,
	}
}

// New builds a Config from defaults plus opts (applied in order), then
// validates it. A non-nil error is always dxaerr.ErrConfigInvalid wrapped
// with the offending detail, and the returned Config must be discarded.
func New(opts ...Option) (Config, error) {
	c := defaults()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate re-checks every invariant Config must satisfy. It is exported
// so callers that mutate a Config directly (tests, deserializers) can
// still fail fast per the ConfigInvalid contract.
func (c Config) Validate() error {
	if c.MaxCircuitSize < 3 || c.MaxCircuitSize%2 == 0 {
		return fmt.Errorf("config: max_circuit_size=%d must be odd and >= 3: %w", c.MaxCircuitSize, dxaerr.ErrConfigInvalid)
	}
	if c.ExtendedCircuitSize < c.MaxCircuitSize {
		return fmt.Errorf("config: extended_circuit_size=%d must be >= max_circuit_size=%d: %w", c.ExtendedCircuitSize, c.MaxCircuitSize, dxaerr.ErrConfigInvalid)
	}
	if c.LineSmoothingLevel < 0 {
		return fmt.Errorf("config: line_smoothing_level=%d must be >= 0: %w", c.LineSmoothingLevel, dxaerr.ErrConfigInvalid)
	}
	if c.LinePointInterval < 0 {
		return fmt.Errorf("config: line_point_interval=%d must be >= 0: %w", c.LinePointInterval, dxaerr.ErrConfigInvalid)
	}
	if c.DefectMeshSmoothing < 0 {
		return fmt.Errorf("config: defect_mesh_smoothing_level=%d must be >= 0: %w", c.DefectMeshSmoothing, dxaerr.ErrConfigInvalid)
	}
	if c.IdentificationMode == CNA && c.CNACutoff < 0 {
		return fmt.Errorf("config: cna_cutoff=%g must be >= 0 (0 means auto-estimate): %w", c.CNACutoff, dxaerr.ErrConfigInvalid)
	}
	return nil
}
