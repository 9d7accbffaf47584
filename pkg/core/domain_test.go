package core_test

import (
	"testing"

	"github.com/aretw0/terrane/pkg/core"
)

func TestVec2_Add(t *testing.T) {
	v := core.Vec2{X: 1, Y: -2}.Add(core.Vec2{X: 0.5, Y: 2})
	if v.X != 1.5 || v.Y != 0 {
		t.Errorf("Add = %+v, want {1.5 0}", v)
	}
}

func TestVec2_Scale(t *testing.T) {
	v := core.Vec2{X: 1, Y: -2}.Scale(2)
	if v.X != 2 || v.Y != -4 {
		t.Errorf("Scale = %+v, want {2 -4}", v)
	}

	if z := (core.Vec2{X: 3, Y: 4}).Scale(0); z != (core.Vec2{}) {
		t.Errorf("Scale(0) = %+v, want zero vector", z)
	}
}
