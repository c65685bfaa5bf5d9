package lights

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

// HighlightModel selects how a point light produces specular highlights
type HighlightModel string

const (
	HighlightNone  HighlightModel = "diffuse"
	HighlightPhong HighlightModel = "phong"
	HighlightBlinn HighlightModel = "blinn"
)

// HighlightConfig configures a light's specular highlight
type HighlightConfig struct {
	Model    HighlightModel
	Exponent float64 // Specular exponent; larger is tighter
}

// DefaultHighlightConfig returns a Phong highlight with a moderate exponent
func DefaultHighlightConfig() HighlightConfig {
	return HighlightConfig{Model: HighlightPhong, Exponent: 32}
}

// minFalloffDistanceSquared keeps inverse-square falloff finite at the light
const minFalloffDistanceSquared = 1e-8

// PointLight is a positional light with inverse-square falloff and an
// optional finite radius for soft shadows
type PointLight struct {
	position  core.Vec3 // Light position in world space
	color     core.Vec3 // Light color
	power     float64   // Scales color before falloff
	radius    float64   // Extent used to jitter shadow rays (0 = hard shadows)
	highlight HighlightConfig
}

// NewPointLight creates a point light with no specular highlight
func NewPointLight(position, color core.Vec3, power, radius float64) *PointLight {
	return &PointLight{
		position:  position,
		color:     color,
		power:     power,
		radius:    radius,
		highlight: HighlightConfig{Model: HighlightNone},
	}
}

// NewPhongLight creates a point light with a Phong highlight
func NewPhongLight(position, color core.Vec3, power, radius, exponent float64) *PointLight {
	pl := NewPointLight(position, color, power, radius)
	pl.highlight = HighlightConfig{Model: HighlightPhong, Exponent: exponent}
	return pl
}

// NewBlinnLight creates a point light with a Blinn-Phong highlight
func NewBlinnLight(position, color core.Vec3, power, radius, exponent float64) *PointLight {
	pl := NewPointLight(position, color, power, radius)
	pl.highlight = HighlightConfig{Model: HighlightBlinn, Exponent: exponent}
	return pl
}

func (pl *PointLight) Type() LightType { return LightTypePoint }

// Intensity applies inverse-square falloff
func (pl *PointLight) Intensity(point core.Vec3) core.Vec3 {
	distanceSquared := math.Max(pl.position.Subtract(point).LengthSquared(), minFalloffDistanceSquared)
	return pl.color.Multiply(pl.power / distanceSquared)
}

// ProjectionFactor returns max(0, normal · toLight)
func (pl *PointLight) ProjectionFactor(point, normal core.Vec3) float64 {
	toLight := pl.position.Subtract(point).Normalize()
	return math.Max(0, normal.Dot(toLight))
}

func (pl *PointLight) CastsShadows() bool { return true }

// ShadowRay goes from the light's center to point
func (pl *PointLight) ShadowRay(point core.Vec3) core.Ray {
	return core.MustRay(pl.position, point.Subtract(pl.position), 0)
}

// JitteredShadowRays start at random positions inside the light's radius
func (pl *PointLight) JitteredShadowRays(point core.Vec3, n int, sampler core.Sampler) []core.Ray {
	return shadowRaysFrom(pl.position, pl.radius, point, n, sampler)
}

// Highlight implements Highlighter
func (pl *PointLight) Highlight(point, normal, viewDir core.Vec3) float64 {
	toLight := pl.position.Subtract(point).Normalize()
	return specular(pl.highlight, toLight, normal, viewDir)
}

// specular evaluates a highlight model for unit vectors toward the light and viewer
func specular(cfg HighlightConfig, toLight, normal, viewDir core.Vec3) float64 {
	if normal.Dot(toLight) <= 0 {
		return 0
	}

	switch cfg.Model {
	case HighlightPhong:
		// Mirror the light direction about the normal: r = 2(n·l)n - l
		reflected := normal.Multiply(2 * normal.Dot(toLight)).Subtract(toLight)
		return math.Pow(math.Max(0, reflected.Dot(viewDir)), cfg.Exponent)
	case HighlightBlinn:
		halfway := toLight.Add(viewDir).Normalize()
		return math.Pow(math.Max(0, normal.Dot(halfway)), cfg.Exponent)
	default:
		return 0
	}
}
