package shader

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// MixMode selects how Mix combines its two children
type MixMode string

const (
	MixRatio    MixMode = "ratio"    // a*(1-ratio) + b*ratio
	MixMultiply MixMode = "multiply" // a*b component-wise
	MixAdd      MixMode = "add"      // a+b, unclamped
)

// Mix combines two shaders. Transparency uses the same combinator as color.
type Mix struct {
	A, B  scene.Shader
	Mode  MixMode
	Ratio float64 // Only used by MixRatio: 0.0 = all A, 1.0 = all B
}

// NewMix creates a ratio mix. Ratio is clamped to [0, 1].
func NewMix(a, b scene.Shader, ratio float64) *Mix {
	return &Mix{A: a, B: b, Mode: MixRatio, Ratio: clamp01(ratio)}
}

// NewMultiply creates a component-wise product of two shaders
func NewMultiply(a, b scene.Shader) *Mix {
	return &Mix{A: a, B: b, Mode: MixMultiply}
}

// NewAdd creates a sum of two shaders
func NewAdd(a, b scene.Shader) *Mix {
	return &Mix{A: a, B: b, Mode: MixAdd}
}

func (m *Mix) Color(req scene.Request) core.Vec3 {
	return m.combine(req, scene.Shader.Color)
}

func (m *Mix) ShadowedColor(req scene.Request) core.Vec3 {
	return m.combine(req, scene.Shader.ShadowedColor)
}

func (m *Mix) combine(req scene.Request, eval func(scene.Shader, scene.Request) core.Vec3) core.Vec3 {
	switch m.Mode {
	case MixMultiply:
		return eval(m.A, req).MultiplyVec(eval(m.B, req))
	case MixAdd:
		return eval(m.A, req).Add(eval(m.B, req))
	default:
		// Skip the child with no weight so it never spawns rays
		if m.Ratio <= 0 {
			return eval(m.A, req)
		}
		if m.Ratio >= 1 {
			return eval(m.B, req)
		}
		return eval(m.A, req).Lerp(eval(m.B, req), m.Ratio)
	}
}

func (m *Mix) Transparency(req scene.Request) float64 {
	switch m.Mode {
	case MixMultiply:
		return m.A.Transparency(req) * m.B.Transparency(req)
	case MixAdd:
		return m.A.Transparency(req) + m.B.Transparency(req)
	default:
		if m.Ratio <= 0 {
			return m.A.Transparency(req)
		}
		if m.Ratio >= 1 {
			return m.B.Transparency(req)
		}
		return m.A.Transparency(req)*(1-m.Ratio) + m.B.Transparency(req)*m.Ratio
	}
}
