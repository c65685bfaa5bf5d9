package geometry

import "github.com/df07/go-shading-raytracer/pkg/core"

// hitEpsilon rejects hits at (numerically) the ray start
const hitEpsilon = 1e-9

// Shape is the analytic geometry behind a scene primitive
type Shape interface {
	// Intersection returns the nearest forward hit in the ray's coordinate space
	Intersection(ray core.Ray) (core.Vec3, bool)
	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	// UV returns texture coordinates for a point on the surface
	UV(point core.Vec3) core.Vec2
	BoundingCube() core.BoundingCube
}
