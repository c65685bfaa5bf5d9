package geometry

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	bounds core.BoundingCube
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	r := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center: center,
		Radius: radius,
		bounds: core.NewBoundingCube(center.Subtract(r), center.Add(r)),
	}
}

// Intersection solves the ray/sphere quadratic in geometric form.
// Working along the normalized direction keeps the hit point independent of
// the direction's scale.
func (s *Sphere) Intersection(ray core.Ray) (core.Vec3, bool) {
	dir := ray.NormalizedDir
	if dir.IsZero() {
		return core.Vec3{}, false
	}

	// Project the start-to-center vector onto the ray
	toCenter := s.Center.Subtract(ray.Start)
	tca := toCenter.Dot(dir)

	// Squared distance from the center to the ray line
	d2 := toCenter.LengthSquared() - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return core.Vec3{}, false
	}

	thc := math.Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc

	// Both roots behind the start
	if t1 <= hitEpsilon {
		return core.Vec3{}, false
	}

	t := t0
	if t <= hitEpsilon {
		t = t1
	}

	return ray.Start.Add(dir.Multiply(t)), true
}

// NormalAt returns the outward normal at a surface point
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// UV maps a surface point to spherical coordinates
func (s *Sphere) UV(point core.Vec3) core.Vec2 {
	n := s.NormalAt(point)
	u := 0.5 + math.Atan2(n.Z, n.X)/(2*math.Pi)
	v := 0.5 + math.Asin(math.Max(-1, math.Min(1, n.Y)))/math.Pi
	return core.NewVec2(u, v)
}

// BoundingCube returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingCube() core.BoundingCube {
	return s.bounds
}
