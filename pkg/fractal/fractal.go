// Package fractal implements the fractal noise generators.
//
// These are the main coherent-noise modules: each sums a number of
// frequency-shifted, amplitude-scaled octaves of the primitive noise
// function into a richer, self-similar signal. PinkNoise and
// BillowNoise trace back to the noise functions Ken Perlin introduced
// to industry in 1985, where they were used for cloud and fire
// textures respectively.
package fractal

import "github.com/aretw0/terrane/pkg/core"

// maxOctaves caps pathological amplification and unbounded work per call.
const maxOctaves = 30

// The final scale constants are part of the observable contract; keep
// them and the surrounding operation order exactly as they are.
const (
	pinkNoiseScale   = 0.25
	billowNoiseScale = 0.25
)

func validateOctaves(octaves uint32) error {
	if octaves <= 1 {
		return core.ErrTooFewOctaves
	}
	if octaves > maxOctaves {
		return core.ErrTooManyOctaves
	}
	return nil
}

// sumOctaves runs the octave-summation loop shared by the generators.
// sample is invoked once per octave with the frequency-shifted
// coordinate and that octave's seed; per-octave seeds advance with
// wraparound-safe unsigned addition so successive octaves decorrelate.
func sumOctaves(v core.Vec2, seed uint32, frequency, persistence, lacunarity float32,
	octaves uint32, sample func(core.Vec2, uint32) float32) (float32, error) {

	if err := validateOctaves(octaves); err != nil {
		return 0, err
	}

	var result float32
	s := v.Scale(frequency)
	amplitude := float32(1.0)

	for octave := uint32(0); octave < octaves; octave++ {
		result += amplitude * sample(s, seed+octave)
		s = s.Scale(lacunarity)
		amplitude *= persistence
	}
	return result, nil
}
