package scenes

import (
	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/lights"
	"github.com/df07/go-shading-raytracer/pkg/renderer"
	"github.com/df07/go-shading-raytracer/pkg/scene"
	"github.com/df07/go-shading-raytracer/pkg/shader"
)

// NewCornellScene creates a Cornell box with triangle walls, a tall block, a
// mirror sphere, and a translucent pane
func NewCornellScene(logger core.Logger) (*Demo, error) {
	camera := renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0, // Square aspect ratio for Cornell box
		VFov:        40.0,
	}

	white := shader.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := shader.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := shader.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))

	// Standard 555x555x555 box
	const boxSize = 555.0
	x := core.NewVec3(boxSize, 0, 0)
	y := core.NewVec3(0, boxSize, 0)
	z := core.NewVec3(0, 0, boxSize)

	var b objectBuilder
	b.add(quad(core.Vec3{}, x, z, white)...) // floor
	b.add(quad(y, x, z, white)...)           // ceiling
	b.add(quad(z, x, y, white)...)           // back wall
	b.add(quad(core.Vec3{}, z, y, red)...)   // left wall
	b.add(quad(x, z, y, green)...)           // right wall

	b.add(box(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white)...)
	b.sphere(core.NewVec3(185, 90, 170), 90, shader.NewMirror(core.NewVec3(0.9, 0.9, 0.9)))

	// Pane standing in front of the block
	pane := shader.NewTranslucent(shader.NewGlossy(core.NewVec3(0.8, 0.3, 0.3), core.NewVec3(0.5, 0.5, 0.5)), 0.35)
	b.add(quad(core.NewVec3(300, 0, 200), core.NewVec3(150, 0, 0), core.NewVec3(0, 220, 0), pane)...)
	if b.err != nil {
		return nil, b.err
	}

	sceneLights := []lights.Light{
		lights.NewAmbientLight(core.NewVec3(0.05, 0.05, 0.05)),
		lights.NewBlinnLight(core.NewVec3(278, 540, 278), core.NewVec3(1.0, 0.9, 0.75), 2.5e5, 40, 64),
	}

	sc := scene.NewScene(b.objects, sceneLights)
	return &Demo{Scene: sc, Camera: camera}, nil
}
