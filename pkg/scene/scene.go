package scene

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/lights"
)

// Scene owns every object and light. It must not be modified while rendering.
type Scene struct {
	objects    []*Object
	lights     []lights.Light
	Background core.Vec3 // Color of primary rays that hit nothing
}

// NewScene creates a scene from fully built objects and lights
func NewScene(objects []*Object, sceneLights []lights.Light) *Scene {
	return &Scene{
		objects: objects,
		lights:  sceneLights,
	}
}

// Objects returns the scene's objects
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Lights returns the scene's lights
func (s *Scene) Lights() []lights.Light {
	return s.lights
}

// GetPrimitiveCount returns the total number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, obj := range s.objects {
		count += len(obj.primitives)
	}
	return count
}

// ClosestIntersection returns the nearest hit along the ray among primitives
// for which exclude returns false (nil excludes nothing). Objects whose
// bounding cube the ray misses are skipped, and large objects are narrowed
// through their R-tree. Ties keep the first hit found in
// object then primitive order.
func (s *Scene) ClosestIntersection(ray core.Ray, exclude func(*Primitive) bool) (Intersection, bool) {
	var closest Intersection
	closestDistance := math.Inf(1)
	found := false

	for _, obj := range s.objects {
		for _, p := range obj.candidates(ray) {
			if exclude != nil && exclude(p) {
				continue
			}
			position, ok := p.Intersection(ray)
			if !ok {
				continue
			}
			distance := position.Distance(ray.Start)
			if distance < closestDistance {
				closestDistance = distance
				closest = Intersection{Position: position, Primitive: p, Distance: distance}
				found = true
			}
		}
	}

	return closest, found
}

// ClosestIntersectionExcluding ignores a single primitive, typically the
// surface the ray starts on
func (s *Scene) ClosestIntersectionExcluding(ray core.Ray, excluded *Primitive) (Intersection, bool) {
	if excluded == nil {
		return s.ClosestIntersection(ray, nil)
	}
	return s.ClosestIntersection(ray, func(p *Primitive) bool { return p == excluded })
}

// ClosestIntersectionOutside ignores every primitive of obj, used to find what
// lies behind an object the ray is passing through
func (s *Scene) ClosestIntersectionOutside(ray core.Ray, obj *Object) (Intersection, bool) {
	return s.ClosestIntersection(ray, func(p *Primitive) bool { return p.object == obj })
}

// ClosestIntersectionWithin only considers the primitives of obj
func (s *Scene) ClosestIntersectionWithin(ray core.Ray, obj *Object) (Intersection, bool) {
	return s.ClosestIntersection(ray, func(p *Primitive) bool { return p.object != obj })
}

// AllIntersections returns every primitive hit along the ray in no
// particular order, skipping the excluded primitive
func (s *Scene) AllIntersections(ray core.Ray, excluded *Primitive) []Intersection {
	var hits []Intersection

	for _, obj := range s.objects {
		for _, p := range obj.candidates(ray) {
			if p == excluded {
				continue
			}
			if position, ok := p.Intersection(ray); ok {
				hits = append(hits, Intersection{
					Position:  position,
					Primitive: p,
					Distance:  position.Distance(ray.Start),
				})
			}
		}
	}

	return hits
}
