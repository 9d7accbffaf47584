package terrane

import (
	"log/slog"

	"github.com/aretw0/terrane/internal/platform"
	"github.com/aretw0/terrane/pkg/core"
	"github.com/aretw0/terrane/pkg/fractal"
	"github.com/aretw0/terrane/pkg/modifiers"
	"github.com/aretw0/terrane/pkg/preset"
	"github.com/aretw0/terrane/pkg/primitives"
)

// --- Types ---

// Module is a public alias for the noise module contract.
type Module = core.Module

// Vec2 is a public alias for the 2D coordinate type.
type Vec2 = core.Vec2

// Sampler is a public alias for the bulk plane sampler.
type Sampler = core.Sampler

// --- Errors ---

// Octave-count validation errors returned by the fractal generators.
var (
	ErrTooFewOctaves  = core.ErrTooFewOctaves
	ErrTooManyOctaves = core.ErrTooManyOctaves
)

// --- Configuration ---

// Option defines a functional option for configuring a Sampler.
type Option = platform.Option

// WithLogger sets the logger used by bulk sampling.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithWorkers caps the goroutines used when filling sample planes.
func WithWorkers(n int) Option {
	return platform.WithWorkers(n)
}

// --- Factories ---

// NewPinkNoise creates a pink fractal generator with default parameters.
func NewPinkNoise(seed uint32) *fractal.PinkNoise {
	return fractal.NewPinkNoise(seed)
}

// NewBillowNoise creates a billow fractal generator with default parameters.
func NewBillowNoise(seed uint32) *fractal.BillowNoise {
	return fractal.NewBillowNoise(seed)
}

// NewSimplexNoise exposes the raw primitive as a module.
func NewSimplexNoise(seed uint32) *primitives.SimplexNoise {
	return primitives.NewSimplexNoise(seed)
}

// Modify starts a fluent modifier chain around m.
func Modify(m Module) modifiers.Chain {
	return modifiers.Modify(m)
}

// ParsePreset decodes a YAML preset and builds the described module.
func ParsePreset(data []byte) (Module, error) {
	return preset.Parse(data)
}

// NewSampler creates a bulk plane sampler for m.
func NewSampler(m Module, opts ...Option) *Sampler {
	return platform.NewSampler(m, opts...)
}
