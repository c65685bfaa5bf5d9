package geometry

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

// Disc represents a flat annulus in 3D space. An InnerRadius of zero gives a
// solid disc.
type Disc struct {
	Center      core.Vec3 // Center of the disc
	Normal      core.Vec3 // Normal vector (pointing "up" from the disc)
	InnerRadius float64
	OuterRadius float64
	Right       core.Vec3 // Right vector (perpendicular to normal)
	Up          core.Vec3 // Up vector (perpendicular to normal and right)
}

// NewDisc creates a new solid disc
func NewDisc(center, normal core.Vec3, radius float64) *Disc {
	return NewAnnulus(center, normal, 0, radius)
}

// NewAnnulus creates a disc with a hole of innerRadius
func NewAnnulus(center, normal core.Vec3, innerRadius, outerRadius float64) *Disc {
	normalNormalized := normal.Normalize()

	// Create orthogonal vectors
	var right core.Vec3
	if math.Abs(normalNormalized.X) > 0.1 {
		right = core.NewVec3(0, 1, 0)
	} else {
		right = core.NewVec3(1, 0, 0)
	}

	right = right.Cross(normalNormalized).Normalize()
	up := normalNormalized.Cross(right).Normalize()

	return &Disc{
		Center:      center,
		Normal:      normalNormalized,
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
		Right:       right,
		Up:          up,
	}
}

// Intersection intersects the disc's plane, then keeps hits inside the radial band
func (d *Disc) Intersection(ray core.Ray) (core.Vec3, bool) {
	denom := d.Normal.Dot(ray.Dir)
	if math.Abs(denom) < 1e-12 {
		return core.Vec3{}, false // Ray is parallel to disc
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Start)) / denom
	if t <= hitEpsilon {
		return core.Vec3{}, false
	}

	hitPoint := ray.At(t)
	distanceSquared := hitPoint.Subtract(d.Center).LengthSquared()
	if distanceSquared < d.InnerRadius*d.InnerRadius || distanceSquared > d.OuterRadius*d.OuterRadius {
		return core.Vec3{}, false
	}

	return hitPoint, true
}

// NormalAt returns the disc normal
func (d *Disc) NormalAt(point core.Vec3) core.Vec3 {
	return d.Normal
}

// UV maps a point to polar coordinates: u is the angle, v the normalized radius
func (d *Disc) UV(point core.Vec3) core.Vec2 {
	local := point.Subtract(d.Center)
	x := local.Dot(d.Right)
	y := local.Dot(d.Up)
	u := 0.5 + math.Atan2(y, x)/(2*math.Pi)
	v := 0.0
	if d.OuterRadius > 0 {
		v = math.Sqrt(x*x+y*y) / d.OuterRadius
	}
	return core.NewVec2(u, v)
}

// BoundingCube returns a box around the disc's four extreme corners
func (d *Disc) BoundingCube() core.BoundingCube {
	rightExtent := d.Right.Multiply(d.OuterRadius)
	upExtent := d.Up.Multiply(d.OuterRadius)

	return core.NewBoundingCubeFromPoints(
		d.Center.Add(rightExtent).Add(upExtent),
		d.Center.Add(rightExtent).Subtract(upExtent),
		d.Center.Subtract(rightExtent).Add(upExtent),
		d.Center.Subtract(rightExtent).Subtract(upExtent),
	)
}
