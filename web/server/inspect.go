package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/geometry"
	"github.com/df07/go-shading-raytracer/pkg/renderer"
	"github.com/df07/go-shading-raytracer/pkg/scene"
	"github.com/df07/go-shading-raytracer/pkg/scenes"
	"github.com/df07/go-shading-raytracer/pkg/shader"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ShaderType   string                 `json:"shaderType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// handleInspect reports what the primary ray through pixel (x, y) hits.
// y counts down from the top row, matching image coordinates.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	demo, config, camera, err := prepareRender(req, nil)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scenes.ErrUnknownScene) || errors.Is(err, renderer.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	x, err := parseIntParam(r.URL.Query(), "x", config.Width/2, 0, config.Width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(r.URL.Query(), "y", config.Height/2, 0, config.Height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Pixel center, flipped so t=0 is the bottom row
	u := (float64(x) + 0.5) / float64(config.Width)
	v := 1 - (float64(y)+0.5)/float64(config.Height)
	ray, err := camera.GetRay(u, v, config.MaxBounces)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspect(demo.Scene, ray))
}

// inspect describes the closest hit of ray in sc
func inspect(sc *scene.Scene, ray core.Ray) InspectResponse {
	hit, ok := sc.ClosestIntersection(ray, nil)
	if !ok {
		return InspectResponse{Hit: false}
	}

	normal := hit.Normal()
	shaderType, properties := shaderInfo(hit.Shader())
	return InspectResponse{
		Hit:          true,
		ShaderType:   shaderType,
		GeometryType: geometryType(hit.Primitive.Shape),
		Point:        [3]float64{hit.Position.X, hit.Position.Y, hit.Position.Z},
		Normal:       [3]float64{normal.X, normal.Y, normal.Z},
		Distance:     hit.Distance,
		FrontFace:    normal.Dot(ray.NormalizedDir) < 0,
		Properties:   properties,
	}
}

// geometryType names the shape under a primitive
func geometryType(shape geometry.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Triangle:
		return "triangle"
	case *geometry.Disc:
		return "disc"
	default:
		return "unknown"
	}
}

// shaderInfo extracts shader details, recursing into composite shaders
func shaderInfo(s scene.Shader) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch sh := s.(type) {
	case *shader.Flat:
		return "flat", properties
	case *shader.Diffuse:
		if solid, ok := sh.Albedo.(*shader.SolidColor); ok {
			properties["color"] = hexColor(solid.Color)
		}
		return "diffuse", properties
	case *shader.Glossy:
		properties["specular"] = hexColor(sh.Specular)
		return "glossy", properties
	case *shader.Mirror:
		properties["tint"] = hexColor(sh.Tint)
		return "mirror", properties
	case *shader.Refraction:
		properties["refractiveIndex"] = sh.RefractiveIndex
		properties["tint"] = hexColor(sh.Tint)
		return "refraction", properties
	case *shader.Translucent:
		properties["opacity"] = sh.Opacity
		properties["base"] = nested(sh.Base)
		return "translucent", properties
	case *shader.Mix:
		properties["mode"] = string(sh.Mode)
		if sh.Mode == shader.MixRatio {
			properties["ratio"] = sh.Ratio
		}
		properties["a"] = nested(sh.A)
		properties["b"] = nested(sh.B)
		return "mix", properties
	case *shader.Mask:
		properties["mask"] = nested(sh.Mask)
		properties["a"] = nested(sh.A)
		properties["b"] = nested(sh.B)
		return "mask", properties
	case *shader.Fresnel:
		properties["refractiveIndex"] = sh.RefractiveIndex
		properties["reflected"] = nested(sh.Reflected)
		properties["transmitted"] = nested(sh.Transmitted)
		return "fresnel", properties
	case *shader.Volumetric:
		return "volumetric", properties
	default:
		return "unknown", properties
	}
}

func nested(s scene.Shader) map[string]interface{} {
	shaderType, properties := shaderInfo(s)
	return map[string]interface{}{
		"type":       shaderType,
		"properties": properties,
	}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}
