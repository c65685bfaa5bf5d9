package scene

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/geometry"
)

// Primitive is a leaf of the scene: a shape, the shader that colors it, and a
// back-reference to the object that owns it
type Primitive struct {
	geometry.Shape
	shader Shader
	object *Object // set once by NewObject, never reassigned
}

// NewPrimitive pairs a shape with a shader. Shaders are immutable and may be
// shared between primitives.
func NewPrimitive(shape geometry.Shape, shader Shader) *Primitive {
	return &Primitive{Shape: shape, shader: shader}
}

// Shader returns the primitive's shader
func (p *Primitive) Shader() Shader {
	return p.shader
}

// Object returns the owning object, or nil before the primitive is added to one
func (p *Primitive) Object() *Object {
	return p.object
}

// Intersection is a hit position on a primitive. It borrows the primitive and
// is only meaningful while the scene that produced it is alive.
type Intersection struct {
	Position  core.Vec3
	Primitive *Primitive
	Distance  float64 // Euclidean distance from the ray start
}

// Normal returns the outward surface normal at the hit
func (i Intersection) Normal() core.Vec3 {
	return i.Primitive.NormalAt(i.Position)
}

// Shader returns the hit primitive's shader
func (i Intersection) Shader() Shader {
	return i.Primitive.shader
}

// Object returns the hit primitive's owning object
func (i Intersection) Object() *Object {
	return i.Primitive.object
}
