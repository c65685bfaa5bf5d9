package shader

import (
	"math"
	"testing"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

func TestCheckerboard(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	board := NewCheckerboard(even, odd, 4)

	tests := []struct {
		uv       core.Vec2
		expected core.Vec3
	}{
		{core.NewVec2(0.1, 0.1), even},
		{core.NewVec2(0.3, 0.1), odd},
		{core.NewVec2(0.3, 0.3), even},
		{core.NewVec2(0.9, 0.1), odd},
		{core.NewVec2(-0.1, 0.1), odd},
	}

	for _, tt := range tests {
		if got := board.ColorAt(tt.uv); !got.Equals(tt.expected) {
			t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, got)
		}
	}
}

func TestDensitySources(t *testing.T) {
	center := core.NewVec3(0.5, 0.5, 0.5)
	corner := core.NewVec3(0, 0, 0)

	if d := UniformDensity(0.3).DensityAt(corner); d != 0.3 {
		t.Errorf("Uniform density: expected 0.3, got %f", d)
	}

	radial := RadialDensity{Peak: 2}
	if d := radial.DensityAt(center); d != 2 {
		t.Errorf("Radial density at center: expected 2, got %f", d)
	}
	if d := radial.DensityAt(corner); d != 0 {
		t.Errorf("Radial density at corner: expected 0, got %f", d)
	}
	if d := radial.DensityAt(core.NewVec3(0.75, 0.5, 0.5)); math.Abs(d-1) > 1e-12 {
		t.Errorf("Radial density halfway: expected 1, got %f", d)
	}

	a := NewNoiseDensity(42, 3, 0.5, 1)
	b := NewNoiseDensity(42, 3, 0.5, 1)
	for i := 0; i < 50; i++ {
		p := core.NewVec3(float64(i)*0.037, float64(i)*0.053, float64(i)*0.011)
		da, db := a.DensityAt(p), b.DensityAt(p)
		if da != db {
			t.Fatalf("Same seed should give the same density at %v: %f vs %f", p, da, db)
		}
		if da < 0 {
			t.Fatalf("Density must not be negative, got %f at %v", da, p)
		}
	}
}
