package shader

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/lights"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// Glossy adds the light's specular highlight on top of a Lambertian base.
// The highlight model (Phong or Blinn) and exponent belong to the light.
type Glossy struct {
	Albedo   ColorSource
	Specular core.Vec3 // Highlight tint
}

// NewGlossy creates a glossy shader with solid albedo and specular tint
func NewGlossy(albedo, specular core.Vec3) *Glossy {
	return &Glossy{Albedo: NewSolidColor(albedo), Specular: specular}
}

func (g *Glossy) Color(req scene.Request) core.Vec3 {
	color := lambert(uvColor(g.Albedo, req), req)

	highlighter, ok := req.Light.(lights.Highlighter)
	if !ok {
		return color
	}
	point := req.Hit.Position
	normal, _ := facingNormal(req.Hit.Normal(), req.Ray.Dir)
	factor := highlighter.Highlight(point, normal, req.Ray.NormalizedDir.Negate())
	if factor <= 0 {
		return color
	}
	return color.Add(g.Specular.MultiplyVec(req.Light.Intensity(point)).Multiply(factor))
}

func (g *Glossy) ShadowedColor(req scene.Request) core.Vec3 {
	return scene.Shadowed(g, req)
}

func (g *Glossy) Transparency(req scene.Request) float64 {
	return 0
}
