package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	e1, e2     core.Vec3 // Edges V1-V0 and V2-V0
	normal     core.Vec3 // Cached normal vector
	bounds     core.BoundingCube
}

// NewTriangle creates a new triangle from three vertices.
// The outward normal follows the right-hand rule over V0, V1, V2.
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	return &Triangle{
		V0:     v0,
		V1:     v1,
		V2:     v2,
		e1:     e1,
		e2:     e2,
		normal: e1.Cross(e2).Normalize(),
		bounds: core.NewBoundingCubeFromPoints(v0, v1, v2),
	}
}

// Solve returns the ray parameter t and barycentric coordinates (u, v) of the
// ray/triangle intersection, solving [-dir, e1, e2]·[t,u,v] = start-V0 by
// Cramer's rule. ok is false for parallel rays and hits outside the triangle.
func (tr *Triangle) Solve(ray core.Ray) (t, u, v float64, ok bool) {
	const epsilon = 1e-12

	negDir := toMgl(ray.Dir.Negate())
	e1 := toMgl(tr.e1)
	e2 := toMgl(tr.e2)
	b := toMgl(ray.Start.Subtract(tr.V0))

	det := mgl64.Mat3FromCols(negDir, e1, e2).Det()
	if math.Abs(det) < epsilon {
		return 0, 0, 0, false
	}
	invDet := 1.0 / det

	t = mgl64.Mat3FromCols(b, e1, e2).Det() * invDet
	u = mgl64.Mat3FromCols(negDir, b, e2).Det() * invDet
	v = mgl64.Mat3FromCols(negDir, e1, b).Det() * invDet

	if t <= hitEpsilon || u < 0 || v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// Intersection returns the world-space hit V0 + u*e1 + v*e2
func (tr *Triangle) Intersection(ray core.Ray) (core.Vec3, bool) {
	_, u, v, ok := tr.Solve(ray)
	if !ok {
		return core.Vec3{}, false
	}
	return tr.PointAt(u, v), true
}

// PointAt returns the world point for barycentric coordinates (u, v)
func (tr *Triangle) PointAt(u, v float64) core.Vec3 {
	return tr.V0.Add(tr.e1.Multiply(u)).Add(tr.e2.Multiply(v))
}

// NormalAt returns the triangle's normal, which is constant over the face
func (tr *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	return tr.normal
}

// UV returns the barycentric coordinates of a point on the triangle
func (tr *Triangle) UV(point core.Vec3) core.Vec2 {
	// Project onto the edges and solve the 2x2 Gram system
	p := point.Subtract(tr.V0)
	d11 := tr.e1.Dot(tr.e1)
	d12 := tr.e1.Dot(tr.e2)
	d22 := tr.e2.Dot(tr.e2)
	p1 := p.Dot(tr.e1)
	p2 := p.Dot(tr.e2)

	denom := d11*d22 - d12*d12
	if denom == 0 {
		return core.Vec2{}
	}
	u := (d22*p1 - d12*p2) / denom
	v := (d11*p2 - d12*p1) / denom
	return core.NewVec2(u, v)
}

// BoundingCube returns the axis-aligned bounding box for this triangle
func (tr *Triangle) BoundingCube() core.BoundingCube {
	return tr.bounds
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
