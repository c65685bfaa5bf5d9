package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// Raytracer renders an immutable scene one pixel at a time
type Raytracer struct {
	scene   *scene.Scene
	camera  *Camera
	config  Config
	random  *rand.Rand
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(sc *scene.Scene, camera *Camera, config Config, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if sc == nil || camera == nil {
		return nil, fmt.Errorf("%w: scene and camera are required", ErrInvalidConfig)
	}

	random := rand.New(rand.NewSource(config.Seed))
	return &Raytracer{
		scene:   sc,
		camera:  camera,
		config:  config,
		random:  random,
		sampler: core.NewRandomSampler(random),
		logger:  core.OrNop(logger),
	}, nil
}

// RayColor sums the shadowed color of the closest hit over every light, or
// returns the scene background when the ray hits nothing
func (rt *Raytracer) RayColor(ray core.Ray) core.Vec3 {
	c, _ := rt.trace(ray)
	return c
}

// trace is RayColor that also reports whether anything was hit
func (rt *Raytracer) trace(ray core.Ray) (core.Vec3, bool) {
	hit, ok := rt.scene.ClosestIntersection(ray, nil)
	if !ok {
		return rt.scene.Background, false
	}

	req := scene.Request{
		Hit:           hit,
		Ray:           ray,
		Scene:         rt.scene,
		ShadowSamples: rt.config.ShadowSamples,
		Sampler:       rt.sampler,
	}

	var total core.Vec3
	for _, light := range rt.scene.Lights() {
		req.Light = light
		total = total.Add(scene.Shade(req))
	}
	return total, true
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp first so negative channels never reach the gamma curve
	colorVec = colorVec.Clamp(0.0, 1.0)

	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// Render traces SamplesPerPixel jittered primary rays through every pixel.
// Cancelling ctx stops the render between rows.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := RenderStats{TotalPixels: width * height}
	startTime := time.Now()

	rt.logger.Printf("Rendering %dx%d with %d samples per pixel, %d bounces, %d shadow samples...\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxBounces, rt.config.ShadowSamples)
	rt.logger.Printf("Scene has %d primitives and %d lights\n", rt.scene.GetPrimitiveCount(), len(rt.scene.Lights()))
	for _, light := range rt.scene.Lights() {
		rt.logger.Printf("  %s light\n", light.Type())
	}

	for j := height - 1; j >= 0; j-- {
		if err := ctx.Err(); err != nil {
			rt.logger.Printf("Rendering cancelled with %d rows left\n", j+1)
			return nil, stats, err
		}

		for i := 0; i < width; i++ {
			var pixel PixelStats

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Convert pixel coordinates to normalized coordinates with jitter
				s := (float64(i) + rt.random.Float64()) / float64(width)
				t := (float64(j) + rt.random.Float64()) / float64(height)

				ray, err := rt.camera.GetRay(s, t, rt.config.MaxBounces)
				if err != nil {
					return nil, stats, fmt.Errorf("pixel (%d, %d): %w", i, j, err)
				}
				sampleColor, hit := rt.trace(ray)
				if !hit {
					stats.BackgroundHits++
				}
				pixel.AddSample(sampleColor)
			}

			stats.TotalSamples += pixel.SampleCount
			img.SetRGBA(i, height-1-j, rt.vec3ToColor(pixel.GetColor()))
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.AverageLuminance = CalculateAverageLuminance(img)
	stats.Elapsed = time.Since(startTime)

	rt.logger.Printf("Render complete in %v: %d samples, %d background hits\n",
		stats.Elapsed, stats.TotalSamples, stats.BackgroundHits)

	return img, stats, nil
}
