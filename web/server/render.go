package server

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/renderer"
	"github.com/df07/go-shading-raytracer/pkg/scenes"
)

// consoleBuffer bounds the log messages collected per request
const consoleBuffer = 256

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string `json:"scene"`
	Width           int    `json:"width"`           // Height follows the scene's aspect ratio
	SamplesPerPixel int    `json:"samplesPerPixel"` // Jittered primary rays per pixel
	MaxBounces      int    `json:"maxBounces"`      // Bounce budget of each primary ray
	ShadowSamples   int    `json:"shadowSamples"`   // Shadow rays per light evaluation
	Seed            int64  `json:"seed"`
}

// RenderResponse is the finished image and how it was produced
type RenderResponse struct {
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	AverageSamples   float64 `json:"averageSamples"`
	BackgroundHits   int     `json:"backgroundHits"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenes.ListScenes())
}

// handleRender renders a whole image and returns it as base64 PNG. A client
// disconnect cancels the render.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	console := make(chan ConsoleMessage, consoleBuffer)
	logger := NewWebLogger(fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano()), console)

	demo, config, camera, err := prepareRender(req, logger)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scenes.ErrUnknownScene) || errors.Is(err, renderer.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	raytracer, err := renderer.NewRaytracer(demo.Scene, camera, config, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	startTime := time.Now()
	img, stats, err := raytracer.Render(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("Render error: %v", err))
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Scene:     req.Scene,
		Width:     config.Width,
		Height:    config.Height,
		ImageData: imageData,
		Stats: Stats{
			TotalPixels:      stats.TotalPixels,
			TotalSamples:     stats.TotalSamples,
			AverageSamples:   stats.AverageSamples,
			BackgroundHits:   stats.BackgroundHits,
			AverageLuminance: stats.AverageLuminance,
		},
		Console:   drainConsole(console),
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	defaults := renderer.DefaultConfig()
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 200, 16, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "spp", defaults.SamplesPerPixel, 1, 1000); err != nil {
		return nil, err
	}
	if req.MaxBounces, err = parseIntParam(query, "bounces", defaults.MaxBounces, 0, 100); err != nil {
		return nil, err
	}
	if req.ShadowSamples, err = parseIntParam(query, "shadows", defaults.ShadowSamples, 0, 256); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", int(defaults.Seed), 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// prepareRender builds the scene, config, and camera for req
func prepareRender(req *RenderRequest, logger core.Logger) (*scenes.Demo, renderer.Config, *renderer.Camera, error) {
	demo, err := scenes.Create(req.Scene, logger)
	if err != nil {
		return nil, renderer.Config{}, nil, err
	}

	config := renderer.Config{
		Width:           req.Width,
		Height:          int(float64(req.Width) / demo.Camera.AspectRatio),
		SamplesPerPixel: req.SamplesPerPixel,
		MaxBounces:      req.MaxBounces,
		ShadowSamples:   req.ShadowSamples,
		Seed:            req.Seed,
	}
	if err := config.Validate(); err != nil {
		return nil, renderer.Config{}, nil, err
	}

	cameraConfig := demo.Camera
	cameraConfig.Width = config.Width
	cameraConfig.AspectRatio = config.AspectRatio()
	return demo, config, renderer.NewCamera(cameraConfig), nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
