package lights

import "github.com/df07/go-shading-raytracer/pkg/core"

// AmbientLight illuminates every point equally and never casts shadows
type AmbientLight struct {
	color core.Vec3
}

// NewAmbientLight creates a new ambient light
func NewAmbientLight(color core.Vec3) *AmbientLight {
	return &AmbientLight{color: color}
}

func (al *AmbientLight) Type() LightType { return LightTypeAmbient }

// Intensity is constant everywhere
func (al *AmbientLight) Intensity(point core.Vec3) core.Vec3 {
	return al.color
}

// ProjectionFactor ignores orientation
func (al *AmbientLight) ProjectionFactor(point, normal core.Vec3) float64 {
	return 1.0
}

func (al *AmbientLight) CastsShadows() bool { return false }

// ShadowRay returns a zero ray; ambient light has no position to trace from
func (al *AmbientLight) ShadowRay(point core.Vec3) core.Ray {
	return core.Ray{}
}

// JitteredShadowRays returns nothing for ambient light
func (al *AmbientLight) JitteredShadowRays(point core.Vec3, n int, sampler core.Sampler) []core.Ray {
	return nil
}
