package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Intersection_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.MustRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), 0)

	if p, ok := sphere.Intersection(ray); ok {
		t.Errorf("Expected miss, but got hit at %v", p)
	}
}

func TestSphere_Intersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		start          core.Vec3
		dir            core.Vec3
		expectHit      bool
		expectedPoint  core.Vec3
		expectedNormal core.Vec3
	}{
		{
			name:           "front hit along +z",
			start:          core.NewVec3(0, 0, -5),
			dir:            core.NewVec3(0, 0, 1),
			expectHit:      true,
			expectedPoint:  core.NewVec3(0, 0, -1),
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "from inside picks the far root",
			start:          core.NewVec3(0, 0, 0),
			dir:            core.NewVec3(0, 0, 1),
			expectHit:      true,
			expectedPoint:  core.NewVec3(0, 0, 1),
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "glancing hit",
			start:          core.NewVec3(1, 0, 2),
			dir:            core.NewVec3(0, 0, -1),
			expectHit:      true,
			expectedPoint:  core.NewVec3(1, 0, 0),
			expectedNormal: core.NewVec3(1, 0, 0),
		},
		{
			name:      "sphere behind the ray",
			start:     core.NewVec3(0, 0, 5),
			dir:       core.NewVec3(0, 0, 1),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.MustRay(tt.start, tt.dir, 2)
			point, ok := sphere.Intersection(ray)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if !vecClose(point, tt.expectedPoint, 1e-9) {
				t.Errorf("Expected hit point %v, got %v", tt.expectedPoint, point)
			}
			if normal := sphere.NormalAt(point); !vecClose(normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, normal)
			}
		})
	}
}

func TestSphere_Intersection_ScaleInvariant(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0.3, -0.2, 4), 1.5)
	start := core.NewVec3(-1, 1, -3)
	dir := core.NewVec3(0.2, -0.15, 1)

	base, ok := sphere.Intersection(core.MustRay(start, dir, 0))
	if !ok {
		t.Fatal("Expected hit for base direction")
	}

	for _, k := range []float64{0.001, 0.5, 3, 1000} {
		scaled, ok := sphere.Intersection(core.MustRay(start, dir.Multiply(k), 0))
		if !ok {
			t.Fatalf("Expected hit for k=%v", k)
		}
		if !vecClose(base, scaled, 1e-9) {
			t.Errorf("k=%v: expected %v, got %v", k, base, scaled)
		}
	}
}

func TestSphere_BoundingCube(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2)
	bounds := sphere.BoundingCube()
	if bounds.Min != core.NewVec3(-1, 0, 1) || bounds.Max != core.NewVec3(3, 4, 5) {
		t.Errorf("Unexpected bounds %v", bounds)
	}
}
