package shader

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// facingNormal returns the outward normal flipped to oppose dir, and whether
// dir arrived from the outside
func facingNormal(normal, dir core.Vec3) (core.Vec3, bool) {
	if normal.Dot(dir) > 0 {
		return normal.Negate(), false
	}
	return normal, true
}

// reflectVector calculates the reflection of a vector v off a surface with normal n
func reflectVector(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refractVector calculates the refraction of a vector using Snell's law
func refractVector(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// traceBounce spawns a secondary ray from req's hit and shades whatever it
// hits first. Black when the budget is exhausted or nothing is hit.
func traceBounce(req scene.Request, start, dir core.Vec3, exclude *scene.Primitive) core.Vec3 {
	ray, ok := req.Ray.Bounce(start, dir)
	if !ok {
		return core.Vec3{}
	}
	hit, ok := req.Scene.ClosestIntersectionExcluding(ray, exclude)
	if !ok {
		return core.Vec3{}
	}
	return scene.Shade(req.At(hit, ray))
}

// uvColor samples a color source at the request's hit
func uvColor(source ColorSource, req scene.Request) core.Vec3 {
	return source.ColorAt(req.Hit.Primitive.UV(req.Hit.Position))
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
