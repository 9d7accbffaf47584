package terrane_test

import (
	"fmt"
	"log"

	"github.com/aretw0/terrane"
)

// Example_basic evaluates pink noise at a coordinate. The output of the
// default pipeline always stays within [-1, 1].
func Example_basic() {
	pink := terrane.NewPinkNoise(7)

	v, err := pink.Generate(terrane.Vec2{X: 1.5, Y: -0.25})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v >= -1 && v <= 1)
	// Output: true
}

// Example_modifiers remaps noise into [0, 1] with a fluent chain.
// Scale-and-bias applies first, then the clamp.
func Example_modifiers() {
	cloudy := terrane.Modify(terrane.NewBillowNoise(3)).
		ScaleBias(0.5, 0.5).
		Clamp(0.0, 1.0)

	v, err := cloudy.Generate(terrane.Vec2{X: 0.4, Y: 0.9})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v >= 0 && v <= 1)
	// Output: true
}

// Example_preset builds the same kind of pipeline from a declarative
// YAML definition.
func Example_preset() {
	module, err := terrane.ParsePreset([]byte(`
kind: pink
seed: 7
octaves: 4
modifiers:
  - kind: clamp
    lower: 0.0
    upper: 1.0
`))
	if err != nil {
		log.Fatal(err)
	}

	v, err := module.Generate(terrane.Vec2{X: 2.0, Y: 2.0})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v >= 0 && v <= 1)
	// Output: true
}

// Example_sampler fills a small heightmap-style plane in parallel.
func Example_sampler() {
	sampler := terrane.NewSampler(terrane.NewPinkNoise(0), terrane.WithWorkers(2))

	values, err := sampler.Plane(terrane.Vec2{}, terrane.Vec2{X: 0.1, Y: 0.1}, 8, 8)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(values))
	// Output: 64
}
