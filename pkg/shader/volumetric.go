package shader

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

var (
	// ErrInvalidStepSize is returned for non-positive march step sizes or step limits
	ErrInvalidStepSize = errors.New("volume step size must be positive")
	// ErrVolumeNotClosed is logged when a ray inside a volume never finds an exit
	ErrVolumeNotClosed = errors.New("ray entered a volume that is not closed")
)

// minExtinction ends a march once almost nothing behind the sample can be seen
const minExtinction = 1e-4

// VolumeConfig controls the volumetric ray marcher
type VolumeConfig struct {
	PrimaryStepSize       float64 // Step along the viewing ray
	ShadowStepSize        float64 // Step along each ray toward a light
	ExtinctionCoefficient float64 // Scales density into attenuation per unit length
	MaxSteps              int     // Upper bound on steps per march
}

// DefaultVolumeConfig returns reasonable marching defaults for unit-sized volumes
func DefaultVolumeConfig() VolumeConfig {
	return VolumeConfig{
		PrimaryStepSize:       0.05,
		ShadowStepSize:        0.1,
		ExtinctionCoefficient: 1.0,
		MaxSteps:              4096,
	}
}

// Validate checks that marching will make progress
func (c VolumeConfig) Validate() error {
	if c.PrimaryStepSize <= 0 {
		return fmt.Errorf("primary step %g: %w", c.PrimaryStepSize, ErrInvalidStepSize)
	}
	if c.ShadowStepSize <= 0 {
		return fmt.Errorf("shadow step %g: %w", c.ShadowStepSize, ErrInvalidStepSize)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps %d: %w", c.MaxSteps, ErrInvalidStepSize)
	}
	return nil
}

// Volumetric renders a participating medium filling its object's closed
// boundary by marching front to back through it
type Volumetric struct {
	density DensitySource
	albedo  core.Vec3
	config  VolumeConfig
	logger  core.Logger
}

// NewVolumetric creates a volumetric shader. The density source is sampled in
// the owning object's local 0-1 frame.
func NewVolumetric(density DensitySource, albedo core.Vec3, config VolumeConfig, logger core.Logger) (*Volumetric, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid volume config: %w", err)
	}
	return &Volumetric{
		density: density,
		albedo:  albedo,
		config:  config,
		logger:  core.OrNop(logger),
	}, nil
}

// Color composites light scattered inside the volume over whatever lies behind it
func (v *Volumetric) Color(req scene.Request) core.Vec3 {
	if !req.Ray.CanBounce() {
		return core.Vec3{}
	}

	hit := req.Hit
	obj := hit.Object()
	dir := req.Ray.NormalizedDir

	normal, entering := facingNormal(hit.Normal(), dir)
	if !entering {
		// The ray started inside the volume, so the medium runs from its start
		return v.composite(req, req.Ray.Start, hit.Distance, hit.Position, obj)
	}

	// Step past the entry surface along the inward normal
	interior := req.Ray.Continue(hit.Position, dir).Offset(normal, -core.SurfaceOffset)
	exit, ok := req.Scene.ClosestIntersection(interior, nil)
	if !ok {
		v.logger.Printf("warning: volumetric: no exit from %v along %v: %v\n", hit.Position, dir, ErrVolumeNotClosed)
		return core.Vec3{}
	}

	if exit.Object() == obj {
		return v.composite(req, interior.Start, exit.Distance, exit.Position, obj)
	}

	scattered, extinction := v.march(req, interior.Start, dir, exit.Distance, obj)
	if extinction < minExtinction {
		return scattered
	}
	var behind core.Vec3
	if ray, ok := req.Ray.Bounce(interior.Start, dir); ok {
		// Something embedded inside the volume
		behind = scene.Shade(req.At(exit, ray))
	}
	return scattered.Add(behind.Multiply(extinction))
}

// composite marches length units of medium from start and lays the result
// over whatever lies outside obj past boundary
func (v *Volumetric) composite(req scene.Request, start core.Vec3, length float64, boundary core.Vec3, obj *scene.Object) core.Vec3 {
	scattered, extinction := v.march(req, start, req.Ray.NormalizedDir, length, obj)
	if extinction < minExtinction {
		return scattered
	}
	return scattered.Add(v.behindBoundary(req, boundary, obj).Multiply(extinction))
}

// behindBoundary shades the first thing outside obj past point
func (v *Volumetric) behindBoundary(req scene.Request, point core.Vec3, obj *scene.Object) core.Vec3 {
	dir := req.Ray.NormalizedDir
	ray, ok := req.Ray.Bounce(point.Add(dir.Multiply(core.SurfaceOffset)), dir)
	if !ok {
		return core.Vec3{}
	}
	hit, ok := req.Scene.ClosestIntersectionOutside(ray, obj)
	if !ok {
		return core.Vec3{}
	}
	return scene.Shade(req.At(hit, ray))
}

// march integrates in-scattered light over length units from start along the
// unit direction dir. Returns the scattered color and the remaining extinction.
func (v *Volumetric) march(req scene.Request, start, dir core.Vec3, length float64, obj *scene.Object) (core.Vec3, float64) {
	var scattered core.Vec3
	extinction := 1.0
	k := v.config.ExtinctionCoefficient

	traveled := 0.0
	for steps := 0; traveled < length && steps < v.config.MaxSteps; steps++ {
		// Final step covers the remainder
		step := math.Min(v.config.PrimaryStepSize, length-traveled)
		sample := start.Add(dir.Multiply(traveled + step/2))

		density := v.density.DensityAt(obj.WorldToLocal(sample))
		stepExtinction := math.Exp(-k * density * step)
		if stepExtinction < 1 {
			light := v.lightAt(req, sample, obj)
			scattered = scattered.Add(v.albedo.MultiplyVec(light).Multiply(extinction * (1 - stepExtinction)))
		}
		extinction *= stepExtinction
		traveled += step

		if extinction < minExtinction {
			break
		}
	}

	return scattered, extinction
}

// lightAt is the request light's intensity at point after passing through
// the volume between point and the light
func (v *Volumetric) lightAt(req scene.Request, point core.Vec3, obj *scene.Object) core.Vec3 {
	intensity := req.Light.Intensity(point)
	if !req.Light.CastsShadows() || v.config.ExtinctionCoefficient == 0 {
		return intensity
	}

	shadow := req.Light.ShadowRay(point)
	if shadow.IsDegenerate() {
		return intensity
	}
	toLight := shadow.Dir.Negate()
	ray := req.Ray.Continue(point, toLight)

	// March to the volume boundary, or the light if it sits inside
	length := toLight.Length()
	if boundary, ok := req.Scene.ClosestIntersectionWithin(ray, obj); ok {
		length = math.Min(length, boundary.Distance)
	}

	return intensity.Multiply(v.transmittance(point, ray.NormalizedDir, length, v.config.ShadowStepSize, obj))
}

// transmittance is the fraction of light surviving length units of the volume
func (v *Volumetric) transmittance(start, dir core.Vec3, length, stepSize float64, obj *scene.Object) float64 {
	k := v.config.ExtinctionCoefficient
	if k == 0 {
		return 1
	}

	extinction := 1.0
	traveled := 0.0
	for steps := 0; traveled < length && steps < v.config.MaxSteps; steps++ {
		step := math.Min(stepSize, length-traveled)
		sample := start.Add(dir.Multiply(traveled + step/2))
		extinction *= math.Exp(-k * v.density.DensityAt(obj.WorldToLocal(sample)) * step)
		traveled += step

		if extinction < minExtinction {
			return 0
		}
	}
	return extinction
}

// ShadowedColor is Color: light inside the volume is attenuated by the march
func (v *Volumetric) ShadowedColor(req scene.Request) core.Vec3 {
	return v.Color(req)
}

// Transparency is the transmittance of a shadow ray entering the volume at
// req's hit, up to where it leaves or reaches the shaded point. Boundary hits
// where the ray leaves are fully transparent.
func (v *Volumetric) Transparency(req scene.Request) float64 {
	hit := req.Hit
	dir := req.Ray.NormalizedDir
	normal, entering := facingNormal(hit.Normal(), dir)
	if !entering {
		return 1
	}

	obj := hit.Object()
	start := hit.Position.Add(normal.Multiply(-core.SurfaceOffset))
	length := req.Ray.Dir.Length() - hit.Distance
	if exit, ok := req.Scene.ClosestIntersectionWithin(req.Ray.Continue(start, dir), obj); ok {
		length = math.Min(length, exit.Distance)
	}
	if length <= 0 {
		return 1
	}

	return v.transmittance(start, dir, length, v.config.PrimaryStepSize, obj)
}
