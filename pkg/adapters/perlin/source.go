// Package perlin adapts the aquilax/go-perlin generator to the core
// Module interface, as an alternative basis to the built-in primitive.
package perlin

import (
	aquilax "github.com/aquilax/go-perlin"

	"github.com/aretw0/terrane/pkg/core"
)

// Perlin generator parameters; alpha/beta of 2 with 3 iterations give a
// good terrain-like basis.
const (
	alpha      = 2.0
	beta       = 2.0
	iterations = 3
)

// Source is a Perlin-backed noise module. Unlike the built-in
// primitive, the generator is seeded once at construction.
type Source struct {
	// Frequency scales the input coordinates.
	Frequency float32

	noise *aquilax.Perlin
}

// New creates a Perlin source with frequency 1.0.
func New(seed int64) *Source {
	return &Source{Frequency: 1.0, noise: aquilax.NewPerlin(alpha, beta, iterations, seed)}
}

// Generate evaluates the Perlin basis at v; it never fails.
func (s *Source) Generate(v core.Vec2) (float32, error) {
	p := v.Scale(s.Frequency)
	return float32(s.noise.Noise2D(float64(p.X), float64(p.Y))), nil
}
