package scenes

import (
	"math"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/geometry"
	"github.com/df07/go-shading-raytracer/pkg/scene"
)

// objectBuilder collects objects, stopping at the first construction error
type objectBuilder struct {
	objects []*scene.Object
	err     error
}

func (b *objectBuilder) add(primitives ...*scene.Primitive) {
	if b.err != nil {
		return
	}
	obj, err := scene.NewObject(primitives...)
	if err != nil {
		b.err = err
		return
	}
	b.objects = append(b.objects, obj)
}

func (b *objectBuilder) sphere(center core.Vec3, radius float64, s scene.Shader) {
	b.add(scene.NewPrimitive(geometry.NewSphere(center, radius), s))
}

// quad splits the parallelogram corner, corner+u, corner+u+v, corner+v into
// two triangles sharing the normal u x v
func quad(corner, u, v core.Vec3, s scene.Shader) []*scene.Primitive {
	p0 := corner
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	return []*scene.Primitive{
		scene.NewPrimitive(geometry.NewTriangle(p0, p1, p2), s),
		scene.NewPrimitive(geometry.NewTriangle(p0, p2, p3), s),
	}
}

// tiles splits the parallelogram spanned by u and v into an n x n grid of quads
func tiles(corner, u, v core.Vec3, n int, s scene.Shader) []*scene.Primitive {
	du := u.Multiply(1 / float64(n))
	dv := v.Multiply(1 / float64(n))
	var faces []*scene.Primitive
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			faces = append(faces, quad(corner.Add(du.Multiply(float64(i))).Add(dv.Multiply(float64(j))), du, dv, s)...)
		}
	}
	return faces
}

// box returns the six faces of an axis-aligned box with outward normals
func box(lo, hi core.Vec3, s scene.Shader) []*scene.Primitive {
	d := hi.Subtract(lo)
	dx := core.NewVec3(d.X, 0, 0)
	dy := core.NewVec3(0, d.Y, 0)
	dz := core.NewVec3(0, 0, d.Z)

	var faces []*scene.Primitive
	faces = append(faces, quad(lo, dx, dz, s)...)
	faces = append(faces, quad(lo.Add(dy), dz, dx, s)...)
	faces = append(faces, quad(lo, dy, dx, s)...)
	faces = append(faces, quad(lo.Add(dz), dx, dy, s)...)
	faces = append(faces, quad(lo, dz, dy, s)...)
	faces = append(faces, quad(lo.Add(dx), dy, dz, s)...)
	return faces
}

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, cubed
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b
	lc, mc, sc = lc*lc*lc, mc*mc*mc, sc*sc*sc

	return core.NewVec3(
		+4.0767416621*lc-3.3077115913*mc+0.2309699292*sc,
		-1.2684380046*lc+2.6097574011*mc-0.3413193965*sc,
		-0.0041960863*lc-0.7034186147*mc+1.7076147010*sc,
	).Clamp(0, 1)
}
