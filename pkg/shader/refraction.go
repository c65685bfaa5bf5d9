package shader

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// Refraction bends the incoming ray through a dielectric boundary using
// Snell's law, falling back to reflection on total internal reflection
type Refraction struct {
	RefractiveIndex float64
	Tint            core.Vec3
}

// NewRefraction creates a refraction shader (e.g. 1.5 for glass)
func NewRefraction(refractiveIndex float64, tint core.Vec3) *Refraction {
	return &Refraction{RefractiveIndex: refractiveIndex, Tint: tint}
}

// direction returns the outgoing direction and the normal on the side the
// outgoing ray leaves from
func (r *Refraction) direction(req scene.Request) (core.Vec3, core.Vec3) {
	unit := req.Ray.NormalizedDir
	normal, front := facingNormal(req.Hit.Normal(), unit)

	ratio := r.RefractiveIndex // exiting: glass to air
	if front {
		ratio = 1.0 / r.RefractiveIndex
	}

	cosTheta := math.Min(-unit.Dot(normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	if ratio*sinTheta > 1.0 {
		return reflectVector(unit, normal), normal
	}
	return refractVector(unit, normal, ratio), normal.Negate()
}

func (r *Refraction) Color(req scene.Request) core.Vec3 {
	if !req.Ray.CanBounce() {
		return core.Vec3{}
	}
	dir, side := r.direction(req)
	start := req.Hit.Position.Add(side.Multiply(core.SurfaceOffset))
	// The refracted ray must be able to hit the far side of its own primitive
	return r.Tint.MultiplyVec(traceBounce(req, start, dir, nil))
}

func (r *Refraction) ShadowedColor(req scene.Request) core.Vec3 {
	return r.Color(req)
}

// Transparency lets shadow rays through in proportion to the tint
func (r *Refraction) Transparency(req scene.Request) float64 {
	return clamp01(r.Tint.Average())
}
