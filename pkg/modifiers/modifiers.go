// Package modifiers provides decorator modules that post-process the
// output of another noise module.
//
// Each wrapper owns exactly one inner module, satisfies core.Module
// itself, and therefore composes arbitrarily. On Generate a wrapper
// first evaluates the inner module; an inner error short-circuits and
// is returned verbatim, with no transform applied.
package modifiers

import (
	"github.com/aretw0/terrane/internal/mathx"
	"github.com/aretw0/terrane/pkg/core"
)

// ScaleBias multiplies the inner module's output by Scale and then
// adds Bias.
type ScaleBias struct {
	Source core.Module
	Scale  float32
	Bias   float32
}

// Generate returns source*scale + bias.
func (m ScaleBias) Generate(v core.Vec2) (float32, error) {
	out, err := m.Source.Generate(v)
	if err != nil {
		return 0, err
	}
	return out*m.Scale + m.Bias, nil
}

// Clamp constrains the inner module's output to [Lower, Upper].
type Clamp struct {
	Source core.Module
	Lower  float32
	Upper  float32
}

// Generate returns the inner value clamped to the configured bounds.
func (m Clamp) Generate(v core.Vec2) (float32, error) {
	out, err := m.Source.Generate(v)
	if err != nil {
		return 0, err
	}
	return mathx.Clamp(out, m.Lower, m.Upper), nil
}

// Abs replaces the inner module's output with its absolute value.
type Abs struct {
	Source core.Module
}

// Generate returns |source|.
func (m Abs) Generate(v core.Vec2) (float32, error) {
	out, err := m.Source.Generate(v)
	if err != nil {
		return 0, err
	}
	return mathx.Abs32(out), nil
}

// Invert negates the inner module's output.
type Invert struct {
	Source core.Module
}

// Generate returns -source.
func (m Invert) Generate(v core.Vec2) (float32, error) {
	out, err := m.Source.Generate(v)
	if err != nil {
		return 0, err
	}
	return -out, nil
}
