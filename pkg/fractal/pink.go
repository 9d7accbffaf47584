package fractal

import (
	"github.com/aretw0/terrane/pkg/core"
	"github.com/aretw0/terrane/pkg/primitives"
)

// PinkNoise is generated by calculating the contribution of a number of
// individual octaves of noise samples and adding them together. The
// contributions are self-similar, which is what makes it a fractal
// noise.
type PinkNoise struct {
	// Seed ensures reproducibility and variation in the output of the
	// module. Successive octaves sample the primitive at Seed+octave.
	Seed uint32

	// Frequency is the scale of the noise. Setting it is equivalent to
	// scaling all input coordinates by the same value.
	Frequency float32

	// Persistence is the amplitude falloff between successive octaves:
	// 0.5 scales the first octave by 1.0, the second by 0.5, the third
	// by 0.25, and so on. It controls the apparent roughness.
	Persistence float32

	// Lacunarity is the frequency multiplier between successive
	// octaves.
	Lacunarity float32

	// Octaves is the number of successive additive samples of the
	// noise function; essentially the level of detail in the output.
	// Generate requires 1 < Octaves <= 30.
	Octaves uint32
}

// NewPinkNoise creates a generator with the seed `seed` and all other
// parameters at their defaults: frequency 1.0, persistence 0.5,
// lacunarity 2.0, octaves 6.
func NewPinkNoise(seed uint32) *PinkNoise {
	return &PinkNoise{
		Seed:        seed,
		Frequency:   1.0,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Octaves:     6,
	}
}

// Generate evaluates the octave sum at v. It fails with
// core.ErrTooFewOctaves or core.ErrTooManyOctaves when Octaves is
// outside (1, 30].
func (n *PinkNoise) Generate(v core.Vec2) (float32, error) {
	result, err := sumOctaves(v, n.Seed, n.Frequency, n.Persistence, n.Lacunarity, n.Octaves,
		func(s core.Vec2, seed uint32) float32 {
			return primitives.Snoise2(s, seed)
		})
	if err != nil {
		return 0, err
	}
	return result * pinkNoiseScale, nil
}
