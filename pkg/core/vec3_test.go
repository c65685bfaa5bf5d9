package core

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_Operations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %f", got)
	}
	if got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)); got != NewVec3(0, 0, 1) {
		t.Errorf("Cross: expected (0,0,1), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
	if got := NewVec3(0, 3, 4).Normalize().Length(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Normalize: expected unit length, got %f", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", got)
	}
}

func TestVec3_LerpVec(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)
	got := a.LerpVec(b, NewVec3(0, 0.5, 1))
	expected := NewVec3(0, 2, 6)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestNewRay(t *testing.T) {
	tests := []struct {
		name      string
		bounces   int
		expectErr bool
	}{
		{"zero bounces", 0, false},
		{"positive bounces", 3, false},
		{"negative bounces", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray, err := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 2), tt.bounces)
			if tt.expectErr {
				if !errors.Is(err, ErrNegativeBounces) {
					t.Fatalf("Expected ErrNegativeBounces, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if ray.CanBounce() != (tt.bounces > 0) {
				t.Errorf("CanBounce mismatch for %d bounces", tt.bounces)
			}
			if ray.NormalizedDir != NewVec3(0, 0, 1) {
				t.Errorf("Expected normalized dir (0,0,1), got %v", ray.NormalizedDir)
			}
			if ray.InvDir.Z != 0.5 {
				t.Errorf("Expected inverse dir z 0.5, got %f", ray.InvDir.Z)
			}
		})
	}
}

func TestRay_BounceAndOffset(t *testing.T) {
	ray := MustRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0), 1)

	offset := ray.Offset(NewVec3(0, 1, 0), 0.5)
	if offset.Start != NewVec3(0, 0.5, 0) {
		t.Errorf("Expected offset start (0,0.5,0), got %v", offset.Start)
	}
	if offset.Dir != ray.Dir || offset.BouncesRemaining != ray.BouncesRemaining {
		t.Error("Offset must keep direction and budget")
	}

	child, ok := ray.Bounce(NewVec3(1, 1, 1), NewVec3(0, 1, 0))
	if !ok {
		t.Fatal("Expected bounce to succeed with budget 1")
	}
	if child.BouncesRemaining != 0 {
		t.Errorf("Expected child budget 0, got %d", child.BouncesRemaining)
	}
	if _, ok := child.Bounce(NewVec3(0, 0, 0), NewVec3(1, 0, 0)); ok {
		t.Error("Expected bounce to fail with budget 0")
	}
}

func TestSampleInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		p := SampleInUnitSphere(sampler.Get3D())
		if p.Length() > 1.0+1e-12 {
			t.Fatalf("Sample %d outside unit sphere: %v", i, p)
		}
	}
}
