// Vec2 and Module are the central entities of the domain.
package core

// Vec2 is a 2-component coordinate in the continuous input space of a
// noise module. It is a plain value; modules never retain or mutate it.
type Vec2 struct {
	X, Y float32
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Module is the common contract implemented by every noise-producing
// type: evaluate at a 2D coordinate and return a scalar or an error.
//
// Implementations are pure: Generate has no side effects, and equal
// inputs on an unmodified module yield identical outputs. Modules hold
// no internal synchronization; concurrent callers must not mutate
// parameter fields while another caller evaluates.
type Module interface {
	Generate(v Vec2) (float32, error)
}
