package shader

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// Fresnel blends a reflective and a transmissive shader by Schlick's
// reflectance at the angle of incidence
type Fresnel struct {
	Reflected, Transmitted scene.Shader
	RefractiveIndex        float64
}

// NewFresnel creates a Fresnel blend for a surface of the given index
func NewFresnel(reflected, transmitted scene.Shader, refractiveIndex float64) *Fresnel {
	return &Fresnel{Reflected: reflected, Transmitted: transmitted, RefractiveIndex: refractiveIndex}
}

// reflectance returns the weight of the reflected shader. Total internal
// reflection gives 1.
func (f *Fresnel) reflectance(req scene.Request) float64 {
	unit := req.Ray.NormalizedDir
	normal, front := facingNormal(req.Hit.Normal(), unit)

	ratio := f.RefractiveIndex
	if front {
		ratio = 1.0 / f.RefractiveIndex
	}

	cosTheta := math.Min(-unit.Dot(normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	if ratio*sinTheta > 1.0 {
		return 1
	}
	return Reflectance(cosTheta, ratio)
}

func (f *Fresnel) Color(req scene.Request) core.Vec3 {
	w := f.reflectance(req)
	return f.Transmitted.Color(req).Lerp(f.Reflected.Color(req), w)
}

func (f *Fresnel) ShadowedColor(req scene.Request) core.Vec3 {
	w := f.reflectance(req)
	return f.Transmitted.ShadowedColor(req).Lerp(f.Reflected.ShadowedColor(req), w)
}

func (f *Fresnel) Transparency(req scene.Request) float64 {
	w := f.reflectance(req)
	return f.Transmitted.Transparency(req)*(1-w) + f.Reflected.Transparency(req)*w
}
