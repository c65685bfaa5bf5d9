package lights

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

// DefaultShadowDistance is how far back along its direction a directional
// light starts its shadow rays
const DefaultShadowDistance = 1e4

// DirectionalLight is a light at infinity shining along a fixed direction
type DirectionalLight struct {
	direction      core.Vec3 // Normalized direction the light travels
	color          core.Vec3
	power          float64
	spread         float64 // Jitter radius at the shadow ray start, for soft shadows
	shadowDistance float64
	highlight      HighlightConfig
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction, color core.Vec3, power float64) *DirectionalLight {
	return &DirectionalLight{
		direction:      direction.Normalize(),
		color:          color,
		power:          power,
		shadowDistance: DefaultShadowDistance,
		highlight:      HighlightConfig{Model: HighlightNone},
	}
}

// WithSpread returns a copy whose shadow rays are jittered by radius
func (dl *DirectionalLight) WithSpread(radius float64) *DirectionalLight {
	c := *dl
	c.spread = radius
	return &c
}

// WithHighlight returns a copy that produces the given specular highlight
func (dl *DirectionalLight) WithHighlight(highlight HighlightConfig) *DirectionalLight {
	c := *dl
	c.highlight = highlight
	return &c
}

func (dl *DirectionalLight) Type() LightType { return LightTypeDirectional }

// Intensity is constant; there is no falloff at infinity
func (dl *DirectionalLight) Intensity(point core.Vec3) core.Vec3 {
	return dl.color.Multiply(dl.power)
}

// ProjectionFactor returns max(0, normal · -direction)
func (dl *DirectionalLight) ProjectionFactor(point, normal core.Vec3) float64 {
	return math.Max(0, normal.Dot(dl.direction.Negate()))
}

func (dl *DirectionalLight) CastsShadows() bool { return true }

func (dl *DirectionalLight) origin(point core.Vec3) core.Vec3 {
	return point.Subtract(dl.direction.Multiply(dl.shadowDistance))
}

// ShadowRay starts far back along the light direction and ends at point
func (dl *DirectionalLight) ShadowRay(point core.Vec3) core.Ray {
	start := dl.origin(point)
	return core.MustRay(start, point.Subtract(start), 0)
}

// JitteredShadowRays spreads the ray starts around the far origin
func (dl *DirectionalLight) JitteredShadowRays(point core.Vec3, n int, sampler core.Sampler) []core.Ray {
	return shadowRaysFrom(dl.origin(point), dl.spread, point, n, sampler)
}

// Highlight implements Highlighter
func (dl *DirectionalLight) Highlight(point, normal, viewDir core.Vec3) float64 {
	return specular(dl.highlight, dl.direction.Negate(), normal, viewDir)
}
