package shader

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

// DensitySource samples a participating medium in an object's local 0-1 frame
type DensitySource interface {
	DensityAt(local core.Vec3) float64
}

// UniformDensity is the same everywhere
type UniformDensity float64

// DensityAt implements DensitySource
func (u UniformDensity) DensityAt(local core.Vec3) float64 {
	return float64(u)
}

// RadialDensity peaks at the center of the local frame and fades to zero at
// distance 0.5 from it
type RadialDensity struct {
	Peak float64
}

// DensityAt implements DensitySource
func (r RadialDensity) DensityAt(local core.Vec3) float64 {
	d := local.Subtract(core.NewVec3(0.5, 0.5, 0.5)).Length()
	return r.Peak * math.Max(0, 1-2*d)
}

// NoiseDensity is Perlin noise remapped to Bias + Gain*noise and clamped at zero
type NoiseDensity struct {
	noise *perlin.Perlin
	Scale float64 // Noise frequency over the local frame
	Bias  float64
	Gain  float64
}

// NewNoiseDensity creates a deterministic noise field for the given seed
func NewNoiseDensity(seed int64, scale, bias, gain float64) *NoiseDensity {
	return &NoiseDensity{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		Scale: scale,
		Bias:  bias,
		Gain:  gain,
	}
}

// DensityAt implements DensitySource
func (n *NoiseDensity) DensityAt(local core.Vec3) float64 {
	p := local.Multiply(n.Scale)
	return math.Max(0, n.Bias+n.Gain*n.noise.Noise3D(p.X, p.Y, p.Z))
}
