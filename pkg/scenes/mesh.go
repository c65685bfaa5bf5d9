package scenes

import (
	"fmt"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/lights"
	"github.com/df07/go-shading-raytracer/pkg/loaders"
	"github.com/df07/go-shading-raytracer/pkg/renderer"
	"github.com/df07/go-shading-raytracer/pkg/scene"
	"github.com/df07/go-shading-raytracer/pkg/shader"
)

// NewMeshScene creates triangle meshes loaded from PLY data: a glass
// octahedron and a fogged one side by side
func NewMeshScene(logger core.Logger) (*Demo, error) {
	camera := renderer.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 4),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	}

	mesh, err := loaders.LoadPLY(assets, "meshes/octahedron.ply")
	if err != nil {
		return nil, fmt.Errorf("octahedron mesh: %w", err)
	}

	glass := shader.NewFresnel(
		shader.NewMirror(core.NewVec3(1, 1, 1)),
		shader.NewRefraction(1.5, core.NewVec3(0.9, 0.95, 0.9)),
		1.5,
	)
	smoke, err := shader.NewVolumetric(
		shader.RadialDensity{Peak: 6},
		core.NewVec3(0.8, 0.8, 0.85),
		shader.DefaultVolumeConfig(),
		logger,
	)
	if err != nil {
		return nil, err
	}
	floor := shader.NewDiffuseTexture(shader.NewCheckerboard(core.NewVec3(0.7, 0.7, 0.7), core.NewVec3(0.3, 0.3, 0.35), 2))

	var b objectBuilder
	// Tiled floor, large enough to be indexed
	b.add(tiles(core.NewVec3(-4, 0, 3), core.NewVec3(8, 0, 0), core.NewVec3(0, 0, -8), 8, floor)...)
	b.add(mesh.MeshPrimitives(glass, 0.8, core.NewVec3(-1.1, 0.8, 0))...)
	b.add(mesh.MeshPrimitives(smoke, 0.8, core.NewVec3(1.1, 0.8, 0))...)
	if b.err != nil {
		return nil, b.err
	}

	sceneLights := []lights.Light{
		lights.NewAmbientLight(core.NewVec3(0.2, 0.2, 0.22)),
		lights.NewBlinnLight(core.NewVec3(-3, 6, 4), core.NewVec3(1, 1, 1), 90, 0.3, 64),
	}

	sc := scene.NewScene(b.objects, sceneLights)
	sc.Background = core.NewVec3(0.6, 0.65, 0.75)
	return &Demo{Scene: sc, Camera: camera}, nil
}
