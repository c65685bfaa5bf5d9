package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-shading-raytracer/pkg/renderer"
	"github.com/df07/go-shading-raytracer/pkg/scenes"
)

// options holds command line settings. Negative numbers mean "not set".
type options struct {
	sceneType  string
	configPath string
	width      int
	samples    int
	bounces    int
	shadows    int
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene type (see -list)")
	flag.StringVar(&opts.configPath, "config", "", "JSON render config; flags override its values")
	flag.IntVar(&opts.width, "width", -1, "Image width in pixels (height follows the scene's aspect ratio)")
	flag.IntVar(&opts.samples, "spp", -1, "Samples per pixel")
	flag.IntVar(&opts.bounces, "bounces", -1, "Bounce budget for primary rays")
	flag.IntVar(&opts.shadows, "shadows", -1, "Shadow rays per light evaluation (0 = no shadows)")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Shading Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	if *list {
		for _, info := range scenes.ListScenes() {
			fmt.Printf("  %-12s %s\n", info.ID, info.Description)
		}
		return
	}

	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	logger := renderer.NewDefaultLogger()
	logger.Printf("Starting Shading Raytracer...\n")

	demo, err := createScene(opts.sceneType)
	if err != nil {
		return err
	}

	config, err := buildConfig(demo, opts)
	if err != nil {
		return err
	}

	camera := demo.Camera
	camera.Width = config.Width
	camera.AspectRatio = config.AspectRatio()

	raytracer, err := renderer.NewRaytracer(demo.Scene, renderer.NewCamera(camera), config, logger)
	if err != nil {
		return err
	}

	// Stop cleanly between rows on Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logger.Printf("Average luminance: %.3f\n", stats.AverageLuminance)

	// Create output directory for this scene type
	outputDir := createOutputDir(opts.sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("save PNG: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds a built-in scene, logging through stdout
func createScene(sceneType string) (*scenes.Demo, error) {
	return scenes.Create(sceneType, renderer.NewDefaultLogger())
}

// buildConfig layers the scene's camera size, an optional JSON file, and
// command line flags, in that order
func buildConfig(demo *scenes.Demo, opts options) (renderer.Config, error) {
	config := renderer.DefaultConfig()
	config.Width = demo.Camera.Width
	config.Height = int(float64(demo.Camera.Width) / demo.Camera.AspectRatio)

	if opts.configPath != "" {
		loaded, err := renderer.LoadConfig(opts.configPath)
		if err != nil {
			return renderer.Config{}, err
		}
		config = loaded
	}

	if opts.width >= 0 {
		aspect := config.AspectRatio()
		config.Width = opts.width
		config.Height = int(float64(opts.width) / aspect)
	}
	if opts.samples >= 0 {
		config.SamplesPerPixel = opts.samples
	}
	if opts.bounces >= 0 {
		config.MaxBounces = opts.bounces
	}
	if opts.shadows >= 0 {
		config.ShadowSamples = opts.shadows
	}

	return config, config.Validate()
}

// createOutputDir returns the directory renders of sceneType are saved to
func createOutputDir(sceneType string) string {
	return filepath.Join("output", filepath.Base(sceneType))
}
