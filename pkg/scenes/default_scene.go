package scenes

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/geometry"
	"github.com/df07/go-shading-raytracer/pkg/lights"
	"github.com/df07/go-shading-raytracer/pkg/renderer"
	"github.com/df07/go-shading-raytracer/pkg/scene"
	"github.com/df07/go-shading-raytracer/pkg/shader"
)

// NewDefaultScene creates glossy, mirror, and glass spheres on a checkered floor
func NewDefaultScene(logger core.Logger) (*Demo, error) {
	camera := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2.5), // Position camera higher and farther back
		LookAt:      core.NewVec3(0, 0.5, -1),   // Look at the center sphere
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	// Create shaders
	checker := shader.NewCheckerboard(core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.2, 0.3, 0.1), 24)
	floor := shader.NewDiffuseTexture(checker)
	glossyRed := shader.NewGlossy(core.NewVec3(0.65, 0.25, 0.2), core.NewVec3(0.6, 0.6, 0.6))
	silver := shader.NewMirror(core.NewVec3(0.8, 0.8, 0.8))
	glass := shader.NewFresnel(
		shader.NewMirror(core.NewVec3(1, 1, 1)),
		shader.NewRefraction(1.5, core.NewVec3(0.95, 0.95, 0.95)),
		1.5,
	)
	tintedBlue := shader.NewTranslucent(shader.NewDiffuse(core.NewVec3(0.1, 0.2, 0.5)), 0.5)

	var b objectBuilder
	b.add(scene.NewPrimitive(geometry.NewDisc(core.Vec3{}, core.NewVec3(0, 1, 0), 50), floor))
	b.sphere(core.NewVec3(0, 0.5, -1), 0.5, glossyRed)
	b.sphere(core.NewVec3(-1, 0.5, -1), 0.5, silver)
	b.sphere(core.NewVec3(1, 0.5, -1), 0.5, glass)
	b.sphere(core.NewVec3(0.5, 0.25, -0.3), 0.25, tintedBlue)
	if b.err != nil {
		return nil, b.err
	}

	sceneLights := []lights.Light{
		lights.NewAmbientLight(core.NewVec3(0.15, 0.15, 0.18)),
		lights.NewPhongLight(core.NewVec3(5, 8, 5), core.NewVec3(1.0, 0.95, 0.9), 110, 0.5, 48),
	}

	sc := scene.NewScene(b.objects, sceneLights)
	sc.Background = core.NewVec3(0.5, 0.7, 1.0) // Sky blue
	return &Demo{Scene: sc, Camera: camera}, nil
}
