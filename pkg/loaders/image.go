package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"io/fs"
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/shader"
)

// ErrEmptyImage is returned for images with no pixels
var ErrEmptyImage = errors.New("image has no pixels")

// ImageData holds decoded pixels as colors in [0, 1], row-major from the top-left
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG or JPEG file from fsys
func LoadImage(fsys fs.FS, filename string) (*ImageData, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// DecodeImage decodes any registered image format from r
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}

	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA is 16 bits per channel
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(float64(r), float64(g), float64(b)).Multiply(1.0 / 65535.0)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// Linearize undoes display gamma so the renderer's output gamma is not applied twice
func (d *ImageData) Linearize(gamma float64) {
	for i, p := range d.Pixels {
		d.Pixels[i] = core.NewVec3(math.Pow(p.X, gamma), math.Pow(p.Y, gamma), math.Pow(p.Z, gamma))
	}
}

// LoadTexture loads an image from fsys as a nearest-neighbour texture.
// A positive gamma linearizes the pixels first.
func LoadTexture(fsys fs.FS, filename string, gamma float64) (*shader.ImageTexture, error) {
	data, err := LoadImage(fsys, filename)
	if err != nil {
		return nil, err
	}
	if gamma > 0 {
		data.Linearize(gamma)
	}
	texture, err := shader.NewImageTexture(data.Width, data.Height, data.Pixels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return texture, nil
}
