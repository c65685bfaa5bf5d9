package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeBounces is returned when a ray is constructed with a negative bounce budget
var ErrNegativeBounces = errors.New("ray bounce budget must not be negative")

// SurfaceOffset is the distance a derived ray is pushed off a surface to avoid
// re-intersecting the surface it starts on
const SurfaceOffset = 1e-4

// Ray is an immutable ray with a remaining bounce budget.
// Direction is not normalized; the normalized and inverse directions are
// precomputed at construction.
type Ray struct {
	Start            Vec3
	Dir              Vec3
	InvDir           Vec3 // 1/Dir per component, used by slab tests
	NormalizedDir    Vec3
	BouncesRemaining int
}

// NewRay creates a ray, refusing negative bounce budgets
func NewRay(start, dir Vec3, bounces int) (Ray, error) {
	if bounces < 0 {
		return Ray{}, fmt.Errorf("new ray with %d bounces: %w", bounces, ErrNegativeBounces)
	}
	return newRay(start, dir, bounces), nil
}

// MustRay is like NewRay but panics on an invalid budget.
// Intended for tests and fixed scene setup.
func MustRay(start, dir Vec3, bounces int) Ray {
	r, err := NewRay(start, dir, bounces)
	if err != nil {
		panic(err)
	}
	return r
}

func newRay(start, dir Vec3, bounces int) Ray {
	return Ray{
		Start:            start,
		Dir:              dir,
		InvDir:           Vec3{X: 1.0 / dir.X, Y: 1.0 / dir.Y, Z: 1.0 / dir.Z},
		NormalizedDir:    dir.Normalize(),
		BouncesRemaining: bounces,
	}
}

// CanBounce reports whether a secondary ray may be spawned from this ray
func (r Ray) CanBounce() bool {
	return r.BouncesRemaining > 0
}

// At returns the point at parameter t along the (unnormalized) direction
func (r Ray) At(t float64) Vec3 {
	return r.Start.Add(r.Dir.Multiply(t))
}

// Offset returns a ray with the same direction and budget whose start is
// translated by dir*scalar
func (r Ray) Offset(dir Vec3, scalar float64) Ray {
	moved := r
	moved.Start = r.Start.Add(dir.Multiply(scalar))
	return moved
}

// Bounce spawns a secondary ray from start along dir with one less bounce.
// The second return value is false when the budget is exhausted.
func (r Ray) Bounce(start, dir Vec3) (Ray, bool) {
	if !r.CanBounce() {
		return Ray{}, false
	}
	return newRay(start, dir, r.BouncesRemaining-1), true
}

// Continue returns a ray from start along dir that keeps the same budget.
// Used for rays that are part of the same traversal (shadow and interior rays).
func (r Ray) Continue(start, dir Vec3) Ray {
	return newRay(start, dir, r.BouncesRemaining)
}

// IsDegenerate reports whether the direction has no usable length
func (r Ray) IsDegenerate() bool {
	return r.Dir.LengthSquared() == 0 || math.IsNaN(r.Dir.X+r.Dir.Y+r.Dir.Z)
}
