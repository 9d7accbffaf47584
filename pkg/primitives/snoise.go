// Package primitives provides the primitive coherent-noise function and
// the simple geometric noise modules built directly on top of it.
//
// Snoise2 is the basis every fractal generator samples: a pure,
// deterministic function of a coordinate and a seed, continuous across
// lattice boundaries and bounded within roughly [-1, 1].
package primitives

import (
	"github.com/aretw0/terrane/internal/mathx"
	"github.com/aretw0/terrane/pkg/core"
)

// Skew factors for the 2D simplex grid.
const (
	f2 = 0.366025403 // 0.5*(sqrt(3)-1)
	g2 = 0.211324865 // (3-sqrt(3))/6
)

// grad2 converts the low 3 bits of a lattice hash into one of 8 simple
// gradient directions and returns its dot product with (x, y).
func grad2(hash uint32, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -2 * v
	} else {
		v = 2 * v
	}
	return u + v
}

// Snoise2 evaluates seeded 2D simplex noise at v.
//
// The coordinate is skewed onto a grid of equilateral triangles, each
// corner of the containing triangle is hashed together with the seed
// into a gradient, and the gradient contributions are summed under a
// smooth radial falloff kernel. The result is total (never fails), deterministic for
// equal (v, seed) pairs, and statistically decorrelated across seeds.
func Snoise2(v core.Vec2, seed uint32) float32 {
	x := float64(v.X)
	y := float64(v.Y)

	// Skew the input space to determine which simplex cell we're in.
	s := (x + y) * f2
	i := mathx.Floor(x + s)
	j := mathx.Floor(y + s)

	// Unskew the cell origin back to (x, y) space.
	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Offsets for the middle corner: lower triangle takes a step in x,
	// upper triangle a step in y.
	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad2(mathx.Hash2(seed, int32(i), int32(j)), x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad2(mathx.Hash2(seed, int32(i+i1), int32(j+j1)), x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad2(mathx.Hash2(seed, int32(i+1), int32(j+1)), x2, y2)
	}

	// Scale the sum to fit the conventional [-1, 1] range.
	return float32(40.0 * (n0 + n1 + n2))
}
