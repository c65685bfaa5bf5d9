package shader

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// Mask blends two shaders per color channel, weighted by a third shader's
// unshadowed color (black = all A, white = all B)
type Mask struct {
	Mask, A, B scene.Shader
}

// NewMask creates a mask shader
func NewMask(mask, a, b scene.Shader) *Mask {
	return &Mask{Mask: mask, A: a, B: b}
}

func (m *Mask) weight(req scene.Request) core.Vec3 {
	return m.Mask.Color(req).Clamp(0, 1)
}

func (m *Mask) Color(req scene.Request) core.Vec3 {
	return m.A.Color(req).LerpVec(m.B.Color(req), m.weight(req))
}

func (m *Mask) ShadowedColor(req scene.Request) core.Vec3 {
	return m.A.ShadowedColor(req).LerpVec(m.B.ShadowedColor(req), m.weight(req))
}

// Transparency blends by the mask's mean channel
func (m *Mask) Transparency(req scene.Request) float64 {
	w := m.weight(req).Average()
	return m.A.Transparency(req)*(1-w) + m.B.Transparency(req)*w
}
