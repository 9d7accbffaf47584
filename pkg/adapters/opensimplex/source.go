// Package opensimplex adapts the ojrac/opensimplex-go generator to the
// core Module interface, as an alternative basis to the built-in
// primitive.
package opensimplex

import (
	ojrac "github.com/ojrac/opensimplex-go"

	"github.com/aretw0/terrane/pkg/core"
)

// Source is an OpenSimplex-backed noise module. Unlike the built-in
// primitive, the generator is seeded once at construction.
type Source struct {
	// Frequency scales the input coordinates.
	Frequency float32

	noise ojrac.Noise
}

// New creates an OpenSimplex source with frequency 1.0.
func New(seed int64) *Source {
	return &Source{Frequency: 1.0, noise: ojrac.New(seed)}
}

// Generate evaluates the OpenSimplex basis at v; it never fails.
func (s *Source) Generate(v core.Vec2) (float32, error) {
	p := v.Scale(s.Frequency)
	return float32(s.noise.Eval2(float64(p.X), float64(p.Y))), nil
}
