package shader

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for shaders
type ColorSource interface {
	// ColorAt returns the color at the given texture coordinates
	ColorAt(uv core.Vec2) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// ColorAt returns the solid color regardless of UV
func (s *SolidColor) ColorAt(uv core.Vec2) core.Vec3 {
	return s.Color
}

// Checkerboard alternates two colors in UV space without backing pixels
type Checkerboard struct {
	Even, Odd core.Vec3
	Scale     float64 // Checks per unit of UV
}

// NewCheckerboard creates a procedural checkerboard
func NewCheckerboard(even, odd core.Vec3, scale float64) *Checkerboard {
	return &Checkerboard{Even: even, Odd: odd, Scale: scale}
}

// ColorAt returns the color of the check containing uv
func (c *Checkerboard) ColorAt(uv core.Vec2) core.Vec3 {
	sum := int(math.Floor(uv.X*c.Scale)) + int(math.Floor(uv.Y*c.Scale))
	if sum%2 == 0 {
		return c.Even
	}
	return c.Odd
}
