package core

import "math"

// BoundingCube represents an axis-aligned bounding box.
// It is only ever used to prune intersection work, never to confirm a hit.
type BoundingCube struct {
	Min    Vec3 // Minimum corner
	Max    Vec3 // Maximum corner
	Center Vec3
}

// NewBoundingCube creates a new bounding cube from min and max points
func NewBoundingCube(min, max Vec3) BoundingCube {
	return BoundingCube{Min: min, Max: max, Center: min.Add(max).Multiply(0.5)}
}

// NewBoundingCubeFromPoints creates a bounding cube that bounds all given points
func NewBoundingCubeFromPoints(points ...Vec3) BoundingCube {
	if len(points) == 0 {
		return EmptyBoundingCube()
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return NewBoundingCube(min, max)
}

// EmptyBoundingCube returns an inverted cube that no ray intersects and that
// acts as the identity for Union
func EmptyBoundingCube() BoundingCube {
	inf := math.Inf(1)
	return BoundingCube{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// Intersects tests the ray against the cube using the slab method with the
// ray's precomputed inverse direction
func (b BoundingCube) Intersects(ray Ray) bool {
	_, _, ok := b.Clip(ray)
	return ok
}

// Clip returns the forward parameter interval [tNear, tFar] of the ray inside
// the cube, in units of the unnormalized direction. tNear is never negative.
func (b BoundingCube) Clip(ray Ray) (tNear, tFar float64, ok bool) {
	if !b.IsValid() {
		return 0, 0, false
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		min := b.Min.Component(axis)
		max := b.Max.Component(axis)
		origin := ray.Start.Component(axis)

		// Parallel to this slab: inside or never
		if ray.Dir.Component(axis) == 0 {
			if origin < min || origin > max {
				return 0, 0, false
			}
			continue
		}

		invDirection := ray.InvDir.Component(axis)
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	// Cube entirely behind the start cannot hold a forward hit
	if tMax < tMin || tMax < 0 {
		return 0, 0, false
	}
	return math.Max(tMin, 0), tMax, true
}

// Union returns a cube that bounds both this cube and another
func (b BoundingCube) Union(other BoundingCube) BoundingCube {
	min := Vec3{
		X: math.Min(b.Min.X, other.Min.X),
		Y: math.Min(b.Min.Y, other.Min.Y),
		Z: math.Min(b.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(b.Max.X, other.Max.X),
		Y: math.Max(b.Max.Y, other.Max.Y),
		Z: math.Max(b.Max.Z, other.Max.Z),
	}
	return NewBoundingCube(min, max)
}

// Size returns the extent of the cube along each axis
func (b BoundingCube) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// Contains reports whether the point lies inside or on the cube
func (b BoundingCube) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IsValid returns true if min <= max for all axes
func (b BoundingCube) IsValid() bool {
	return b.Min.X <= b.Max.X &&
		b.Min.Y <= b.Max.Y &&
		b.Min.Z <= b.Max.Z
}

// Expand returns a cube grown by the given amount in all directions
func (b BoundingCube) Expand(amount float64) BoundingCube {
	expansion := NewVec3(amount, amount, amount)
	return NewBoundingCube(b.Min.Subtract(expansion), b.Max.Add(expansion))
}

// ToLocal maps a world point into the cube's 0-1 frame.
// Axes with no extent map to 0.5.
func (b BoundingCube) ToLocal(p Vec3) Vec3 {
	size := b.Size()
	local := func(v, lo, extent float64) float64 {
		if extent <= 0 {
			return 0.5
		}
		return (v - lo) / extent
	}
	return Vec3{
		X: local(p.X, b.Min.X, size.X),
		Y: local(p.Y, b.Min.Y, size.Y),
		Z: local(p.Z, b.Min.Z, size.Z),
	}
}
