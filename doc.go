// Package terrane is the composition root for the terrane library.
//
// It connects the core noise contracts (Domain Layer) with the
// generators, modifiers and basis adapters (Implementation Layer),
// re-exporting the pieces most callers need.
//
// Philosophy:
//
// Terrane is a coherent-noise generation library: it produces
// deterministic, seed-reproducible scalar fields over continuous 2D
// coordinates, the building blocks of procedural textures and terrain.
// Every noise-producing type satisfies one tiny interface, so fractal
// generators, geometric primitives and post-processing modifiers all
// compose freely. The library is a pure mathematical component: no
// persistence, no I/O, no hidden state beyond the parameters you set.
//
// Features:
//
//   - **Seeded primitive**: a pure simplex-style gradient-noise
//     function of (coordinate, seed), continuous and bounded.
//   - **Fractal generators**: PinkNoise and BillowNoise octave sums
//     with public, tweakable parameters.
//   - **Modifier chains**: ScaleBias, Clamp, Abs and Invert wrappers
//     that compose fluently and propagate errors verbatim.
//   - **Alternative bases**: OpenSimplex and Perlin adapters behind the
//     same interface.
//   - **Declarative presets**: build whole pipelines from YAML.
//   - **Bulk sampling**: parallel plane fills for heightmap-sized
//     workloads.
//
// Usage:
//
//	pink := terrane.NewPinkNoise(7)
//	cloudy := terrane.Modify(pink).ScaleBias(0.5, 0.5).Clamp(0.0, 1.0)
//
//	v, err := cloudy.Generate(terrane.Vec2{X: 1.5, Y: -0.25})
package terrane
