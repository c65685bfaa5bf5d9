package scenes

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/geometry"
	"github.com/df07/go-shading-raytracer/pkg/lights"
	"github.com/df07/go-shading-raytracer/pkg/renderer"
	"github.com/df07/go-shading-raytracer/pkg/scene"
	"github.com/df07/go-shading-raytracer/pkg/shader"
)

// NewFogScene creates a noisy cloud around a solid sphere next to a smaller
// radial puff, lit by a soft directional light
func NewFogScene(logger core.Logger) (*Demo, error) {
	camera := renderer.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 5),
		LookAt:      core.NewVec3(0.5, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	}

	cloudConfig := shader.DefaultVolumeConfig()
	cloudConfig.ExtinctionCoefficient = 2.0
	cloud, err := shader.NewVolumetric(
		shader.NewNoiseDensity(7, 4, 0.35, 1.2),
		core.NewVec3(0.9, 0.9, 0.95),
		cloudConfig,
		logger,
	)
	if err != nil {
		return nil, err
	}

	puffConfig := shader.DefaultVolumeConfig()
	puffConfig.PrimaryStepSize = 0.02
	puffConfig.ExtinctionCoefficient = 4.0
	puff, err := shader.NewVolumetric(shader.RadialDensity{Peak: 1.5}, core.NewVec3(1.0, 0.6, 0.3), puffConfig, logger)
	if err != nil {
		return nil, err
	}

	var b objectBuilder
	b.add(scene.NewPrimitive(geometry.NewDisc(core.Vec3{}, core.NewVec3(0, 1, 0), 20), shader.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))))
	b.sphere(core.NewVec3(0, 1, 0), 1, cloud)
	b.sphere(core.NewVec3(0, 1, 0), 0.3, shader.NewGlossy(core.NewVec3(0.9, 0.4, 0.1), core.NewVec3(0.4, 0.4, 0.4)))
	b.sphere(core.NewVec3(2, 0.6, 0.5), 0.6, puff)
	if b.err != nil {
		return nil, b.err
	}

	sun := lights.NewDirectionalLight(core.NewVec3(-1, -2, -1), core.NewVec3(1, 0.95, 0.85), 1.2).
		WithSpread(0.05).
		WithHighlight(lights.DefaultHighlightConfig())
	sceneLights := []lights.Light{
		lights.NewAmbientLight(core.NewVec3(0.12, 0.12, 0.15)),
		sun,
	}

	sc := scene.NewScene(b.objects, sceneLights)
	sc.Background = core.NewVec3(0.35, 0.4, 0.5)
	return &Demo{Scene: sc, Camera: camera}, nil
}
