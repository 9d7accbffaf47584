package primitives

import (
	"math"

	"github.com/aretw0/terrane/pkg/core"
)

// SimplexNoise exposes the raw primitive through the Module interface.
// It never fails.
type SimplexNoise struct {
	// The "seed" used to ensure reproducibility and variation in the
	// output of the module.
	Seed uint32
}

// NewSimplexNoise creates a new raw-primitive module with the seed `seed`.
func NewSimplexNoise(seed uint32) *SimplexNoise {
	return &SimplexNoise{Seed: seed}
}

// Generate evaluates the primitive at v.
func (n *SimplexNoise) Generate(v core.Vec2) (float32, error) {
	return Snoise2(v, n.Seed), nil
}

// ConstNoise returns the same value for every coordinate. Useful as a
// fixed input to modifier chains and in tests.
type ConstNoise struct {
	Value float32
}

// NewConstNoise creates a module that always generates `value`.
func NewConstNoise(value float32) *ConstNoise {
	return &ConstNoise{Value: value}
}

// Generate returns the constant value; it never fails.
func (n *ConstNoise) Generate(core.Vec2) (float32, error) {
	return n.Value, nil
}

// CylinderNoise generates concentric rings around the origin: output is
// 1.0 on every ring whose radius is an integer multiple of the ring
// spacing, falling off linearly in between.
type CylinderNoise struct {
	// Frequency controls the ring spacing; higher values pack the
	// rings closer together.
	Frequency float32
}

// NewCylinderNoise creates a ring module with the given frequency.
func NewCylinderNoise(frequency float32) *CylinderNoise {
	return &CylinderNoise{Frequency: frequency}
}

// Generate returns the ring value at v; it never fails.
func (n *CylinderNoise) Generate(v core.Vec2) (float32, error) {
	dist := math.Sqrt(float64(v.X)*float64(v.X)+float64(v.Y)*float64(v.Y)) * float64(n.Frequency)
	frac := dist - math.Floor(dist)
	nearest := math.Min(frac, 1-frac)
	return float32(1 - nearest*4), nil
}

// FuncNoise adapts an arbitrary pure function to the Module interface.
type FuncNoise func(core.Vec2) float32

// Generate calls the wrapped function; it never fails.
func (f FuncNoise) Generate(v core.Vec2) (float32, error) {
	return f(v), nil
}
