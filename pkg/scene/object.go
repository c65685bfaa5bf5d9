package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

var (
	// ErrEmptyObject is returned when an object is built without primitives
	ErrEmptyObject = errors.New("object has no primitives")
	// ErrPrimitiveOwned is returned when a primitive already belongs to another object
	ErrPrimitiveOwned = errors.New("primitive already belongs to an object")
)

// Object owns a group of primitives and caches their combined bounds
type Object struct {
	primitives []*Primitive
	bounds     core.BoundingCube
	index      *primitiveIndex // nil below indexThreshold primitives
}

// NewObject takes ownership of the primitives and sets their back-references
func NewObject(primitives ...*Primitive) (*Object, error) {
	if len(primitives) == 0 {
		return nil, ErrEmptyObject
	}

	obj := &Object{
		primitives: make([]*Primitive, len(primitives)),
		bounds:     core.EmptyBoundingCube(),
	}
	copy(obj.primitives, primitives)

	for i, p := range obj.primitives {
		if p.object != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, ErrPrimitiveOwned)
		}
		obj.bounds = obj.bounds.Union(p.BoundingCube())
	}
	if len(obj.primitives) >= indexThreshold {
		index, err := newPrimitiveIndex(obj.primitives)
		if err != nil {
			return nil, fmt.Errorf("index primitives: %w", err)
		}
		obj.index = index
	}
	for _, p := range obj.primitives {
		p.object = obj
	}

	return obj, nil
}

// candidates returns the primitives the ray may hit, in construction order,
// or nil when the ray misses the object's bounds
func (o *Object) candidates(ray core.Ray) []*Primitive {
	if o.index == nil {
		if !o.bounds.Intersects(ray) {
			return nil
		}
		return o.primitives
	}
	if primitives, ok := o.index.candidates(ray, o.bounds); ok {
		return primitives
	}
	return o.primitives
}

// Primitives returns the object's primitives in construction order
func (o *Object) Primitives() []*Primitive {
	return o.primitives
}

// BoundingCube returns the union of the primitives' bounds
func (o *Object) BoundingCube() core.BoundingCube {
	return o.bounds
}

// Center returns the center of the object's bounds
func (o *Object) Center() core.Vec3 {
	return o.bounds.Center
}

// WorldToLocal maps a world point into the object's 0-1 bounding frame
func (o *Object) WorldToLocal(point core.Vec3) core.Vec3 {
	return o.bounds.ToLocal(point)
}
