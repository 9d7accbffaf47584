// Package preset builds noise module pipelines from declarative YAML
// definitions.
//
// A preset names a base generator, its parameters, and an ordered list
// of modifiers to wrap it in:
//
//	kind: pink
//	seed: 7
//	octaves: 4
//	modifiers:
//	  - kind: scalebias
//	    scale: 0.5
//	    bias: 0.5
//	  - kind: clamp
//	    lower: 0.0
//	    upper: 1.0
//
// Parsing operates on bytes only; reading the bytes from wherever they
// live is the caller's concern.
package preset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/terrane/pkg/adapters/opensimplex"
	"github.com/aretw0/terrane/pkg/adapters/perlin"
	"github.com/aretw0/terrane/pkg/core"
	"github.com/aretw0/terrane/pkg/fractal"
	"github.com/aretw0/terrane/pkg/modifiers"
	"github.com/aretw0/terrane/pkg/primitives"
)

// Definition describes a noise pipeline. Optional fields are pointers
// so that omitted keys keep the generator's documented defaults.
type Definition struct {
	// Kind selects the base generator: pink, billow, simplex, const,
	// cylinder, opensimplex or perlin.
	Kind string `yaml:"kind"`
	Seed uint32 `yaml:"seed"`

	Value       *float32 `yaml:"value"`     // const only
	Frequency   *float32 `yaml:"frequency"` // fractal, cylinder, adapters
	Persistence *float32 `yaml:"persistence"`
	Lacunarity  *float32 `yaml:"lacunarity"`
	Octaves     *uint32  `yaml:"octaves"`
	Offset      *float32 `yaml:"offset"` // billow only

	Modifiers []Modifier `yaml:"modifiers"`
}

// Modifier describes one wrapper in the chain, applied in list order.
type Modifier struct {
	// Kind selects the modifier: scalebias, clamp, abs or invert.
	Kind  string  `yaml:"kind"`
	Scale float32 `yaml:"scale"`
	Bias  float32 `yaml:"bias"`
	Lower float32 `yaml:"lower"`
	Upper float32 `yaml:"upper"`
}

// Parse decodes a YAML preset and builds the described module.
func Parse(data []byte) (core.Module, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid preset: %w", err)
	}
	return Build(def)
}

// Build constructs the module a Definition describes.
func Build(def Definition) (core.Module, error) {
	m, err := buildBase(def)
	if err != nil {
		return nil, err
	}

	chain := modifiers.Modify(m)
	for _, md := range def.Modifiers {
		switch md.Kind {
		case "scalebias":
			chain = chain.ScaleBias(md.Scale, md.Bias)
		case "clamp":
			chain = chain.Clamp(md.Lower, md.Upper)
		case "abs":
			chain = chain.Abs()
		case "invert":
			chain = chain.Invert()
		default:
			return nil, fmt.Errorf("unknown modifier kind %q", md.Kind)
		}
	}
	return chain.Module(), nil
}

func buildBase(def Definition) (core.Module, error) {
	switch def.Kind {
	case "pink":
		n := fractal.NewPinkNoise(def.Seed)
		applyFractal(&n.Frequency, &n.Persistence, &n.Lacunarity, &n.Octaves, def)
		return n, nil
	case "billow":
		n := fractal.NewBillowNoise(def.Seed)
		applyFractal(&n.Frequency, &n.Persistence, &n.Lacunarity, &n.Octaves, def)
		if def.Offset != nil {
			n.Offset = *def.Offset
		}
		return n, nil
	case "simplex":
		return primitives.NewSimplexNoise(def.Seed), nil
	case "const":
		n := primitives.NewConstNoise(0)
		if def.Value != nil {
			n.Value = *def.Value
		}
		return n, nil
	case "cylinder":
		n := primitives.NewCylinderNoise(1.0)
		if def.Frequency != nil {
			n.Frequency = *def.Frequency
		}
		return n, nil
	case "opensimplex":
		n := opensimplex.New(int64(def.Seed))
		if def.Frequency != nil {
			n.Frequency = *def.Frequency
		}
		return n, nil
	case "perlin":
		n := perlin.New(int64(def.Seed))
		if def.Frequency != nil {
			n.Frequency = *def.Frequency
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", def.Kind)
	}
}

func applyFractal(frequency, persistence, lacunarity *float32, octaves *uint32, def Definition) {
	if def.Frequency != nil {
		*frequency = *def.Frequency
	}
	if def.Persistence != nil {
		*persistence = *def.Persistence
	}
	if def.Lacunarity != nil {
		*lacunarity = *def.Lacunarity
	}
	if def.Octaves != nil {
		*octaves = *def.Octaves
	}
}
