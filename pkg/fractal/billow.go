package fractal

import (
	"github.com/aretw0/terrane/internal/mathx"
	"github.com/aretw0/terrane/pkg/core"
	"github.com/aretw0/terrane/pkg/primitives"
)

// BillowNoise is quite similar to PinkNoise, but uses the absolute
// value of the noise function to create a more puffy, cloud-like
// appearance.
type BillowNoise struct {
	// Seed ensures reproducibility and variation in the output of the
	// module. Successive octaves sample the primitive at Seed+octave.
	Seed uint32

	// Frequency is the scale of the noise. Setting it is equivalent to
	// scaling all input coordinates by the same value.
	Frequency float32

	// Persistence is the amplitude falloff between successive octaves;
	// see PinkNoise.Persistence.
	Persistence float32

	// Lacunarity is the frequency multiplier between successive
	// octaves.
	Lacunarity float32

	// Octaves is the number of successive additive samples of the
	// noise function. Generate requires 1 < Octaves <= 30.
	Octaves uint32

	// Offset is added to each sample before taking the absolute value,
	// reducing the visual artifacts the absolute value introduces.
	Offset float32
}

// NewBillowNoise creates a generator with the seed `seed` and all other
// parameters at their defaults: frequency 1.0, persistence 0.5,
// lacunarity 2.0, octaves 6, offset 0.2.
func NewBillowNoise(seed uint32) *BillowNoise {
	return &BillowNoise{
		Seed:        seed,
		Frequency:   1.0,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Octaves:     6,
		Offset:      0.2,
	}
}

// Generate evaluates the octave sum at v. The non-negative billow sum
// is remapped back toward [-1, 1] to compensate for the positive bias
// of the absolute value. It fails with core.ErrTooFewOctaves or
// core.ErrTooManyOctaves when Octaves is outside (1, 30].
func (n *BillowNoise) Generate(v core.Vec2) (float32, error) {
	result, err := sumOctaves(v, n.Seed, n.Frequency, n.Persistence, n.Lacunarity, n.Octaves,
		func(s core.Vec2, seed uint32) float32 {
			return mathx.Abs32(primitives.Snoise2(s, seed) + n.Offset)
		})
	if err != nil {
		return 0, err
	}
	return result*billowNoiseScale*2 - 1, nil
}
