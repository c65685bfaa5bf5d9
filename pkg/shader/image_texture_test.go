package shader

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

func newTestTexture(t *testing.T, width, height int, pixels []core.Vec3) *ImageTexture {
	t.Helper()
	texture, err := NewImageTexture(width, height, pixels)
	if err != nil {
		t.Fatalf("NewImageTexture failed: %v", err)
	}
	return texture
}

func TestNewImageTexture_Size(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		pixels        int
	}{
		{"too few pixels", 2, 2, 3},
		{"too many pixels", 1, 1, 2},
		{"zero width", 0, 1, 0},
		{"negative height", 1, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageTexture(tt.width, tt.height, make([]core.Vec3, tt.pixels))
			if !errors.Is(err, ErrTextureSize) {
				t.Errorf("Expected ErrTextureSize, got %v", err)
			}
		})
	}

	texture := newTestTexture(t, 3, 2, make([]core.Vec3, 6))
	if w, h := texture.Size(); w != 3 || h != 2 {
		t.Errorf("Expected size 3x2, got %dx%d", w, h)
	}
}

// TestImageTextureColorAt tests basic texture sampling
func TestImageTextureColorAt(t *testing.T) {
	// Create a 2x2 checkerboard pattern
	// Layout:
	//   white black
	//   black white
	pixels := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), // Row 0 (top in image coords)
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), // Row 1 (bottom in image coords)
	}
	texture := newTestTexture(t, 2, 2, pixels)

	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	// Test corner sampling (use values slightly inside to avoid wrapping ambiguity)
	// UV (0.1, 0.1) is bottom-left region, maps to image coords (0, 1) after V-flip
	// That's pixels[1*2 + 0] = black
	result := texture.ColorAt(core.NewVec2(0.1, 0.1))
	if !result.Equals(black) {
		t.Errorf("UV(0.1,0.1): expected %v, got %v", black, result)
	}

	// UV (0.9, 0.1) is bottom-right region, maps to image coords (1, 1) after V-flip
	// That's pixels[1*2 + 1] = white
	result = texture.ColorAt(core.NewVec2(0.9, 0.1))
	if !result.Equals(white) {
		t.Errorf("UV(0.9,0.1): expected %v, got %v", white, result)
	}

	// UV (0.1, 0.9) is top-left region, maps to image coords (0, 0) after V-flip
	// That's pixels[0*2 + 0] = white
	result = texture.ColorAt(core.NewVec2(0.1, 0.9))
	if !result.Equals(white) {
		t.Errorf("UV(0.1,0.9): expected %v, got %v", white, result)
	}

	// UV (0.9, 0.9) is top-right region, maps to image coords (1, 0) after V-flip
	// That's pixels[0*2 + 1] = black
	result = texture.ColorAt(core.NewVec2(0.9, 0.9))
	if !result.Equals(black) {
		t.Errorf("UV(0.9,0.9): expected %v, got %v", black, result)
	}
}

// TestImageTextureWrapping tests UV wrapping behavior
func TestImageTextureWrapping(t *testing.T) {
	// Simple 1x1 red texture
	pixels := []core.Vec3{core.NewVec3(1, 0, 0)}
	texture := newTestTexture(t, 1, 1, pixels)

	red := core.NewVec3(1, 0, 0)

	// Test that UVs outside [0,1] wrap correctly
	testCases := []core.Vec2{
		core.NewVec2(0.5, 0.5),   // Normal case
		core.NewVec2(1.5, 0.5),   // U wraps
		core.NewVec2(0.5, 1.5),   // V wraps
		core.NewVec2(-0.5, -0.5), // Negative wrap
		core.NewVec2(2.3, 3.7),   // Large values
	}

	for _, uv := range testCases {
		result := texture.ColorAt(uv)
		if !result.Equals(red) {
			t.Errorf("UV%v: expected %v, got %v", uv, red, result)
		}
	}
}

// TestImageTextureSampling tests that sampling selects correct pixels
func TestImageTextureSampling(t *testing.T) {
	// Create a 4x4 gradient
	pixels := make([]core.Vec3, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			// Each pixel gets a unique brightness based on position
			val := float64(y*4+x) / 15.0
			pixels[y*4+x] = core.NewVec3(val, val, val)
		}
	}
	texture := newTestTexture(t, 4, 4, pixels)

	// Sample at UV (0.125, 0.875) which should map to pixel (0, 0) in image coords
	// UV V=0.875 -> flipped to 0.125 -> pixel y=0
	// UV U=0.125 -> pixel x=0
	// Pixel (0, 0) has value 0/15
	result := texture.ColorAt(core.NewVec2(0.125, 0.875))
	expected := core.NewVec3(0, 0, 0)
	if !result.Equals(expected) {
		t.Errorf("Sample top-left: expected %v, got %v", expected, result)
	}

	// Sample at UV (0.875, 0.125) which should map to pixel (3, 3) in image coords
	// UV V=0.125 -> flipped to 0.875 -> pixel y=3
	// UV U=0.875 -> pixel x=3
	// Pixel (3, 3) has value 15/15 = 1.0
	result = texture.ColorAt(core.NewVec2(0.875, 0.125))
	expected = core.NewVec3(1, 1, 1)
	if !result.Equals(expected) {
		t.Errorf("Sample bottom-right: expected %v, got %v", expected, result)
	}
}

// TestSolidColor tests the backward compatibility solid color source
func TestSolidColor(t *testing.T) {
	color := core.NewVec3(0.7, 0.3, 0.1)
	solid := NewSolidColor(color)

	// Should return same color regardless of UV or position
	testCases := []struct {
		uv    core.Vec2
		point core.Vec3
	}{
		{core.NewVec2(0, 0), core.NewVec3(0, 0, 0)},
		{core.NewVec2(1, 1), core.NewVec3(5, 3, -2)},
		{core.NewVec2(0.5, 0.5), core.NewVec3(-1, -1, -1)},
	}

	for _, tc := range testCases {
		result := solid.ColorAt(tc.uv)
		if !result.Equals(color) {
			t.Errorf("SolidColor at UV%v, Point%v: expected %v, got %v",
				tc.uv, tc.point, color, result)
		}
	}
}

func TestImageTextureBilinear(t *testing.T) {
	black := core.NewVec3(0, 0, 0)
	white := core.NewVec3(1, 1, 1)
	texture := newTestTexture(t, 2, 1, []core.Vec3{black, white})
	texture.Filter = FilterBilinear

	tests := []struct {
		name     string
		u        float64
		expected float64
	}{
		{"black texel centre", 0.25, 0},
		{"white texel centre", 0.75, 1},
		{"between centres", 0.5, 0.5},
		{"wraps across the seam", 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texture.ColorAt(core.NewVec2(tt.u, 0.5))
			if math.Abs(got.X-tt.expected) > 1e-9 || got.X != got.Y || got.Y != got.Z {
				t.Errorf("u=%v: expected gray %v, got %v", tt.u, tt.expected, got)
			}
		})
	}
}
