package shader

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// Flat colors a surface by its texture times the light's intensity, ignoring
// orientation and shadows
type Flat struct {
	Source ColorSource
}

// NewFlat creates a flat shader with a solid color
func NewFlat(color core.Vec3) *Flat {
	return &Flat{Source: NewSolidColor(color)}
}

// NewFlatTexture creates a flat shader from any color source
func NewFlatTexture(source ColorSource) *Flat {
	return &Flat{Source: source}
}

func (f *Flat) Color(req scene.Request) core.Vec3 {
	return uvColor(f.Source, req).MultiplyVec(req.Light.Intensity(req.Hit.Position))
}

func (f *Flat) ShadowedColor(req scene.Request) core.Vec3 {
	return f.Color(req)
}

func (f *Flat) Transparency(req scene.Request) float64 {
	return 0
}
