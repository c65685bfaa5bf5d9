package lights

import "github.com/df07/go-shading-raytracer/pkg/core"

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is a source of illumination that shaders evaluate one at a time
type Light interface {
	Type() LightType

	// Intensity returns the light's color arriving at point, including falloff
	Intensity(point core.Vec3) core.Vec3

	// ProjectionFactor is the Lambertian cosine term for a surface at point
	// with the given normal, clamped at zero
	ProjectionFactor(point, normal core.Vec3) float64

	// CastsShadows reports whether shadow rays should be traced for this light
	CastsShadows() bool

	// ShadowRay returns the deterministic ray from the light toward point.
	// The ray's direction spans the whole segment, so occluders lie at t in (0, 1).
	ShadowRay(point core.Vec3) core.Ray

	// JitteredShadowRays returns n shadow rays whose starts are spread over
	// the light's finite extent
	JitteredShadowRays(point core.Vec3, n int, sampler core.Sampler) []core.Ray
}

// Highlighter is implemented by lights that produce a specular highlight
type Highlighter interface {
	// Highlight returns the specular factor for a surface at point with the
	// given normal seen from viewDir (unit vector from point toward the viewer)
	Highlight(point, normal, viewDir core.Vec3) float64
}

// shadowRaysFrom builds rays from jittered positions around center toward point
func shadowRaysFrom(center core.Vec3, radius float64, point core.Vec3, n int, sampler core.Sampler) []core.Ray {
	if n <= 0 {
		return nil
	}
	rays := make([]core.Ray, n)
	for i := range rays {
		start := center
		if radius > 0 && sampler != nil {
			start = center.Add(core.SampleInUnitSphere(sampler.Get3D()).Multiply(radius))
		}
		rays[i] = core.MustRay(start, point.Subtract(start), 0)
	}
	return rays
}
