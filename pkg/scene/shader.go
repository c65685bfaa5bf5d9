package scene

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/lights"
)

// Request carries everything a shader needs to evaluate one (ray, light) pair
type Request struct {
	Hit           Intersection
	Ray           core.Ray // The incoming ray that produced Hit
	Scene         *Scene
	Light         lights.Light
	ShadowSamples int          // Shadow rays per evaluation; 0 disables shadowing
	Sampler       core.Sampler // Source of randomness for soft shadows
}

// At returns a copy of the request for a different hit and incoming ray
func (r Request) At(hit Intersection, ray core.Ray) Request {
	r.Hit = hit
	r.Ray = ray
	return r
}

// Shader colors a primitive hit. Shaders are immutable after construction
// and may be shared by any number of primitives.
type Shader interface {
	// Color is the unshadowed contribution of the request's light
	Color(req Request) core.Vec3

	// ShadowedColor is Color attenuated by the light's visibility. Local
	// shaders use Shadowed; ray-spawning and compositing shaders define it
	// in terms of their children.
	ShadowedColor(req Request) core.Vec3

	// Transparency is how much light passes through the surface at the
	// request's hit when it sits between a point and a light
	// (0 = opaque, 1 = fully transparent)
	Transparency(req Request) float64
}

// Shade evaluates the shadowed color of whatever the request hit
func Shade(req Request) core.Vec3 {
	return req.Hit.Shader().ShadowedColor(req)
}

// Shadowed multiplies a shader's color by the mean random transparency
// toward the request's light
func Shadowed(s Shader, req Request) core.Vec3 {
	color := s.Color(req)
	if color.IsZero() {
		return color
	}
	return color.Multiply(MeanRandomTransparency(req))
}

// MeanRandomTransparency traces ShadowSamples rays from the light toward the
// hit point. Each ray's visibility is the product of the transparencies of
// every occluder between the light and the point; the result is the mean
// over all rays. Zero samples or a light without shadows gives 1.
func MeanRandomTransparency(req Request) float64 {
	light := req.Light
	if req.ShadowSamples <= 0 || light == nil || !light.CastsShadows() {
		return 1.0
	}

	point := req.Hit.Position
	var rays []core.Ray
	if req.Sampler != nil {
		rays = light.JitteredShadowRays(point, req.ShadowSamples, req.Sampler)
	} else {
		ray := light.ShadowRay(point)
		rays = make([]core.Ray, req.ShadowSamples)
		for i := range rays {
			rays[i] = ray
		}
	}
	if len(rays) == 0 {
		return 1.0
	}

	total := 0.0
	for _, ray := range rays {
		total += rayTransparency(req, ray)
	}
	return total / float64(len(rays))
}

// rayTransparency multiplies the transparency of every occluder strictly
// between the shadow ray's start and the shaded point
func rayTransparency(req Request, ray core.Ray) float64 {
	segment := ray.Dir.Length()
	visibility := 1.0

	for _, hit := range req.Scene.AllIntersections(ray, req.Hit.Primitive) {
		if hit.Distance >= segment-core.SurfaceOffset {
			continue
		}
		visibility *= hit.Shader().Transparency(req.At(hit, ray))
		if visibility == 0 {
			break
		}
	}

	return visibility
}
