package renderer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is returned when a render configuration cannot be used
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains rendering configuration
type Config struct {
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	SamplesPerPixel int   `json:"samples_per_pixel"` // Jittered primary rays per pixel
	MaxBounces      int   `json:"max_bounces"`       // Bounce budget given to every primary ray
	ShadowSamples   int   `json:"shadow_samples"`    // Shadow rays per light evaluation; 0 disables shadows
	Seed            int64 `json:"seed"`              // Seed for pixel jitter and soft shadows
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 4,
		MaxBounces:      5,
		ShadowSamples:   4,
		Seed:            42,
	}
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxBounces < 0:
		return fmt.Errorf("%w: %d max bounces", ErrInvalidConfig, c.MaxBounces)
	case c.ShadowSamples < 0:
		return fmt.Errorf("%w: %d shadow samples", ErrInvalidConfig, c.ShadowSamples)
	}
	return nil
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// LoadConfig reads a JSON config. Fields missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
