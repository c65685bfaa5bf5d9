package scenes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/renderer"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// ErrUnknownScene is returned when no built-in scene has the requested name
var ErrUnknownScene = errors.New("unknown scene")

// Demo is a built-in scene together with the camera that frames it
type Demo struct {
	Scene  *scene.Scene
	Camera renderer.CameraConfig
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type builder struct {
	info  SceneInfo
	build func(logger core.Logger) (*Demo, error)
}

var builders = map[string]builder{
	"default": {
		SceneInfo{"default", "Default", "Glossy, mirror, and glass spheres on a checkered floor"},
		NewDefaultScene,
	},
	"cornell": {
		SceneInfo{"cornell", "Cornell Box", "Triangle-walled box with a translucent pane and a mirror sphere"},
		NewCornellScene,
	},
	"fog": {
		SceneInfo{"fog", "Fog", "Perlin-noise volume with an embedded sphere and soft shadows"},
		NewFogScene,
	},
	"mesh": {
		SceneInfo{"mesh", "Mesh", "PLY octahedra rendered as glass and as a smoke volume"},
		NewMeshScene,
	},
	"spheregrid": {
		SceneInfo{"spheregrid", "Sphere Grid", "Grid of spheres exercising mix, mask, and Fresnel shaders"},
		NewSphereGridScene,
	},
}

// ListScenes returns the built-in scenes sorted by display name
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builders))
	for _, b := range builders {
		infos = append(infos, b.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].DisplayName < infos[j].DisplayName
	})
	return infos
}

// Create builds the named scene. The logger is handed to shaders that report
// scene construction problems while rendering.
func Create(name string, logger core.Logger) (*Demo, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	demo, err := b.build(logger)
	if err != nil {
		return nil, fmt.Errorf("build %s scene: %w", name, err)
	}
	return demo, nil
}
