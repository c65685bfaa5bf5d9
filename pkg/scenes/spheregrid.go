package scenes

import (
	"fmt"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/geometry"
	"github.com/df07/go-shading-raytracer/pkg/lights"
	"github.com/df07/go-shading-raytracer/pkg/loaders"
	"github.com/df07/go-shading-raytracer/pkg/renderer"
	"github.com/df07/go-shading-raytracer/pkg/scene"
	"github.com/df07/go-shading-raytracer/pkg/shader"
)

const gridSize = 5

// NewSphereGridScene creates a grid of spheres. Each row uses a different
// compositing shader and each column varies its parameter.
func NewSphereGridScene(logger core.Logger) (*Demo, error) {
	camera := renderer.CameraConfig{
		Center:      core.NewVec3(2, 5, 11),
		LookAt:      core.NewVec3(2, 0.5, 2),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	mirror := shader.NewMirror(core.NewVec3(0.9, 0.9, 0.9))
	gridlines, err := loaders.LoadTexture(assets, "textures/gridlines.png", 0)
	if err != nil {
		return nil, fmt.Errorf("gridline mask: %w", err)
	}
	gridlines.Filter = shader.FilterBilinear
	mask := shader.NewFlatTexture(gridlines)

	var b objectBuilder
	b.add(scene.NewPrimitive(geometry.NewDisc(core.NewVec3(2, 0, 2), core.NewVec3(0, 1, 0), 30), shader.NewDiffuse(core.NewVec3(0.4, 0.4, 0.45))))

	for col := 0; col < gridSize; col++ {
		t := float64(col) / float64(gridSize-1)
		base := shader.NewGlossy(oklchToRGB(0.7, 0.15, 360*t), core.NewVec3(0.5, 0.5, 0.5))
		other := shader.NewDiffuse(oklchToRGB(0.6, 0.12, 360*t+180))

		row := []scene.Shader{
			shader.NewMix(base, mirror, t),
			shader.NewMultiply(base, shader.NewFlat(core.NewVec3(1, 1-0.5*t, 1-0.5*t))),
			shader.NewAdd(base, shader.NewFlat(core.NewVec3(0.1*t, 0.1*t, 0.1*t))),
			shader.NewMask(mask, base, other),
			shader.NewFresnel(mirror, base, 1.0+t),
		}
		for r, s := range row {
			b.sphere(core.NewVec3(float64(col), 0.4, float64(r)), 0.4, s)
		}
	}
	if b.err != nil {
		return nil, b.err
	}

	sceneLights := []lights.Light{
		lights.NewAmbientLight(core.NewVec3(0.2, 0.2, 0.2)),
		lights.NewBlinnLight(core.NewVec3(2, 10, 6), core.NewVec3(1, 1, 1), 120, 1, 64),
	}

	sc := scene.NewScene(b.objects, sceneLights)
	sc.Background = core.NewVec3(0.05, 0.05, 0.08)
	return &Demo{Scene: sc, Camera: camera}, nil
}
