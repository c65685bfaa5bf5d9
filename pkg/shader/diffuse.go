package shader

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// Diffuse is an opaque Lambertian surface
type Diffuse struct {
	Albedo ColorSource
}

// NewDiffuse creates a diffuse shader with a solid albedo
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: NewSolidColor(albedo)}
}

// NewDiffuseTexture creates a diffuse shader from any color source
func NewDiffuseTexture(albedo ColorSource) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Color is projection factor * light intensity * albedo
func (d *Diffuse) Color(req scene.Request) core.Vec3 {
	return lambert(uvColor(d.Albedo, req), req)
}

func (d *Diffuse) ShadowedColor(req scene.Request) core.Vec3 {
	return scene.Shadowed(d, req)
}

func (d *Diffuse) Transparency(req scene.Request) float64 {
	return 0
}

// lambert evaluates the diffuse term using the normal facing the incoming ray
func lambert(albedo core.Vec3, req scene.Request) core.Vec3 {
	point := req.Hit.Position
	normal, _ := facingNormal(req.Hit.Normal(), req.Ray.Dir)
	projection := req.Light.ProjectionFactor(point, normal)
	if projection <= 0 {
		return core.Vec3{}
	}
	return albedo.MultiplyVec(req.Light.Intensity(point)).Multiply(projection)
}
