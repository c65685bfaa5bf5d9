package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/geometry"
	"github.com/df07/go-shading-raytracer/pkg/scene"
	"github.com/df07/go-shading-raytracer/pkg/scenes"
	"github.com/df07/go-shading-raytracer/pkg/shader"
)

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewServer(0, t.TempDir()).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, "/api/scenes")
	var infos []scenes.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&infos); err != nil {
		t.Fatalf("Failed to decode scenes: %v", err)
	}
	if len(infos) != len(scenes.ListScenes()) {
		t.Errorf("Expected %d scenes, got %d", len(scenes.ListScenes()), len(infos))
	}
}

func TestHandleRender(t *testing.T) {
	rec := get(t, "/api/render?scene=default&width=32&spp=1&bounces=2&shadows=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp RenderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Width != 32 || resp.Height != 18 {
		t.Errorf("Expected 32x18, got %dx%d", resp.Width, resp.Height)
	}
	if resp.Stats.TotalPixels != 32*18 || resp.Stats.TotalSamples != 32*18 {
		t.Errorf("Unexpected stats %+v", resp.Stats)
	}

	raw, err := base64.StdEncoding.DecodeString(resp.ImageData)
	if err != nil {
		t.Fatalf("Image is not base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Image is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 18 {
		t.Errorf("Expected 32x18 image, got %v", b)
	}
	if len(resp.Console) == 0 {
		t.Error("Expected render progress in the console")
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"unknown scene", "/api/render?scene=nonexistent&width=16"},
		{"width not a number", "/api/render?width=wide"},
		{"width out of range", "/api/render?width=5000"},
		{"zero samples", "/api/render?spp=0"},
		{"negative shadows", "/api/render?shadows=-1"},
		{"inspect outside the image", "/api/inspect?width=16&x=16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "error") {
				t.Errorf("Expected an error body, got %q", rec.Body.String())
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	// The center of the default scene lands on the glossy sphere
	rec := get(t, "/api/inspect?scene=default&width=160")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Hit || resp.GeometryType != "sphere" || resp.ShaderType != "glossy" {
		t.Errorf("Expected a glossy sphere hit, got %+v", resp)
	}
	if !resp.FrontFace {
		t.Error("Expected the camera to see the front face")
	}
}

func TestInspect_Composite(t *testing.T) {
	red := shader.NewDiffuse(core.NewVec3(1, 0, 0))
	mix := shader.NewMix(red, shader.NewMirror(core.NewVec3(1, 1, 1)), 0.25)
	obj, err := scene.NewObject(scene.NewPrimitive(geometry.NewSphere(core.Vec3{}, 1), mix))
	if err != nil {
		t.Fatalf("NewObject failed: %v", err)
	}
	sc := scene.NewScene([]*scene.Object{obj}, nil)

	resp := inspect(sc, core.MustRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 1))
	if !resp.Hit || resp.ShaderType != "mix" || math.Abs(resp.Distance-4) > 1e-9 {
		t.Fatalf("Unexpected response %+v", resp)
	}
	if resp.Properties["ratio"] != 0.25 {
		t.Errorf("Expected ratio 0.25, got %v", resp.Properties["ratio"])
	}
	a, ok := resp.Properties["a"].(map[string]interface{})
	if !ok || a["type"] != "diffuse" {
		t.Errorf("Expected diffuse child, got %v", resp.Properties["a"])
	}

	miss := inspect(sc, core.MustRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1), 1))
	if miss.Hit {
		t.Error("Expected a miss above the sphere")
	}
}
