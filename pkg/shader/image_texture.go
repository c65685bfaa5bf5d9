package shader

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

// ErrTextureSize is returned when a texture's pixels do not fill its dimensions
var ErrTextureSize = errors.New("texture pixels do not match dimensions")

// TextureFilter selects how an ImageTexture reconstructs color between texels
type TextureFilter int

const (
	FilterNearest TextureFilter = iota
	FilterBilinear
)

// ImageTexture is a color source backed by a row-major pixel grid whose first
// row is the top of the image. UVs outside [0, 1) tile the image.
type ImageTexture struct {
	width  int
	height int
	pixels []core.Vec3
	Filter TextureFilter
}

// NewImageTexture creates a nearest-neighbour texture over pixels
func NewImageTexture(width, height int, pixels []core.Vec3) (*ImageTexture, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d pixels", ErrTextureSize, width, height, len(pixels))
	}
	return &ImageTexture{width: width, height: height, pixels: pixels}, nil
}

// Size returns the texture dimensions in texels
func (t *ImageTexture) Size() (width, height int) {
	return t.width, t.height
}

// ColorAt samples the texture; v runs from the bottom row up
func (t *ImageTexture) ColorAt(uv core.Vec2) core.Vec3 {
	x := (uv.X - math.Floor(uv.X)) * float64(t.width)
	y := (1 - (uv.Y - math.Floor(uv.Y))) * float64(t.height)

	if t.Filter == FilterBilinear {
		// Texel centres sit at half-integer coordinates
		x, y = x-0.5, y-0.5
		x0, y0 := math.Floor(x), math.Floor(y)
		fx, fy := x-x0, y-y0
		ix, iy := int(x0), int(y0)

		top := t.texel(ix, iy).Lerp(t.texel(ix+1, iy), fx)
		bottom := t.texel(ix, iy+1).Lerp(t.texel(ix+1, iy+1), fx)
		return top.Lerp(bottom, fy)
	}
	return t.texel(int(math.Floor(x)), int(math.Floor(y)))
}

// texel returns the pixel at (x, y) with both coordinates wrapped
func (t *ImageTexture) texel(x, y int) core.Vec3 {
	x = ((x % t.width) + t.width) % t.width
	y = ((y % t.height) + t.height) % t.height
	return t.pixels[y*t.width+x]
}
