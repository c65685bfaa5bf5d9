package shader

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// Translucent blends a base shader over whatever lies behind the surface
type Translucent struct {
	Base    scene.Shader
	Opacity float64 // 0 = invisible, 1 = only the base shader
}

// NewTranslucent creates a translucent shader. Opacity is clamped to [0, 1].
func NewTranslucent(base scene.Shader, opacity float64) *Translucent {
	return &Translucent{Base: base, Opacity: clamp01(opacity)}
}

// behind continues the ray straight through the surface
func (t *Translucent) behind(req scene.Request) core.Vec3 {
	dir := req.Ray.Dir
	start := req.Hit.Position.Add(req.Ray.NormalizedDir.Multiply(core.SurfaceOffset))
	return traceBounce(req, start, dir, nil)
}

func (t *Translucent) Color(req scene.Request) core.Vec3 {
	return t.blend(t.Base.Color(req), req)
}

func (t *Translucent) ShadowedColor(req scene.Request) core.Vec3 {
	return t.blend(t.Base.ShadowedColor(req), req)
}

func (t *Translucent) blend(front core.Vec3, req scene.Request) core.Vec3 {
	color := front.Multiply(t.Opacity)
	if t.Opacity < 1 {
		color = color.Add(t.behind(req).Multiply(1 - t.Opacity))
	}
	return color
}

func (t *Translucent) Transparency(req scene.Request) float64 {
	return 1 - t.Opacity
}
