package shader

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// Mirror reflects the incoming ray and tints whatever the reflection sees
type Mirror struct {
	Tint core.Vec3
}

// NewMirror creates a mirror shader
func NewMirror(tint core.Vec3) *Mirror {
	return &Mirror{Tint: tint}
}

func (m *Mirror) Color(req scene.Request) core.Vec3 {
	if !req.Ray.CanBounce() {
		return core.Vec3{}
	}
	normal, _ := facingNormal(req.Hit.Normal(), req.Ray.Dir)
	dir := reflectVector(req.Ray.NormalizedDir, normal)
	start := req.Hit.Position.Add(normal.Multiply(core.SurfaceOffset))
	return m.Tint.MultiplyVec(traceBounce(req, start, dir, req.Hit.Primitive))
}

// ShadowedColor is Color: the reflected hit is shadowed on its own
func (m *Mirror) ShadowedColor(req scene.Request) core.Vec3 {
	return m.Color(req)
}

func (m *Mirror) Transparency(req scene.Request) float64 {
	return 0
}
