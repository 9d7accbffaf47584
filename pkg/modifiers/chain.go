package modifiers

import "github.com/aretw0/terrane/pkg/core"

// Chain is a fluent builder over modifier composition:
//
//	m := modifiers.Modify(fractal.NewPinkNoise(0)).
//		ScaleBias(0.5, 0.5).
//		Clamp(0.0, 1.0)
//
// Each step wraps the current module in the corresponding modifier, so
// transforms apply innermost-first in the order they were chained.
// Chain is itself a core.Module; call Module to unwrap when a concrete
// value is not needed.
type Chain struct {
	m core.Module
}

// Modify starts a modifier chain around m.
func Modify(m core.Module) Chain {
	return Chain{m: m}
}

// ScaleBias appends a ScaleBias modifier.
func (c Chain) ScaleBias(scale, bias float32) Chain {
	return Chain{m: ScaleBias{Source: c.m, Scale: scale, Bias: bias}}
}

// Clamp appends a Clamp modifier.
func (c Chain) Clamp(lower, upper float32) Chain {
	return Chain{m: Clamp{Source: c.m, Lower: lower, Upper: upper}}
}

// Abs appends an Abs modifier.
func (c Chain) Abs() Chain {
	return Chain{m: Abs{Source: c.m}}
}

// Invert appends an Invert modifier.
func (c Chain) Invert() Chain {
	return Chain{m: Invert{Source: c.m}}
}

// Module returns the composed module.
func (c Chain) Module() core.Module {
	return c.m
}

// Generate delegates to the composed module.
func (c Chain) Generate(v core.Vec2) (float32, error) {
	return c.m.Generate(v)
}
