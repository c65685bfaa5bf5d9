package scene

import (
	"math/rand"
	"testing"

	"github.com/df07/go-shading-raytracer/pkg/core"
	"github.com/df07/go-shading-raytracer/pkg/geometry"
)

// triangleGrid builds an n x n grid of unit triangles in the z=0 plane plus a
// few spheres hovering above it
func triangleGrid(n int) []*Primitive {
	var primitives []*Primitive
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := float64(i), float64(j)
			primitives = append(primitives,
				NewPrimitive(geometry.NewTriangle(
					core.NewVec3(x, y, 0), core.NewVec3(x+1, y, 0), core.NewVec3(x+1, y+1, 0)), opaqueWhite),
				NewPrimitive(geometry.NewTriangle(
					core.NewVec3(x, y, 0), core.NewVec3(x+1, y+1, 0), core.NewVec3(x, y+1, 0)), opaqueWhite),
			)
		}
	}
	for k := 0; k < 4; k++ {
		primitives = append(primitives, NewPrimitive(
			geometry.NewSphere(core.NewVec3(float64(2*k)+1, float64(k)+1, 1), 0.5), opaqueWhite))
	}
	return primitives
}

// bruteForce is the unindexed closest hit over primitives
func bruteForce(primitives []*Primitive, ray core.Ray) (*Primitive, float64, bool) {
	var best *Primitive
	bestDistance := 0.0
	for _, p := range primitives {
		position, ok := p.Intersection(ray)
		if !ok {
			continue
		}
		if d := position.Distance(ray.Start); best == nil || d < bestDistance {
			best, bestDistance = p, d
		}
	}
	return best, bestDistance, best != nil
}

func TestObject_IndexMatchesLinearScan(t *testing.T) {
	primitives := triangleGrid(8)
	obj := mustObject(t, primitives...)
	if obj.index == nil {
		t.Fatalf("Expected an index for %d primitives", len(primitives))
	}
	sc := NewScene([]*Object{obj}, nil)

	random := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		start := core.NewVec3(random.Float64()*12-2, random.Float64()*12-2, 1+random.Float64()*5)
		target := core.NewVec3(random.Float64()*10-1, random.Float64()*10-1, random.Float64()*2-1)
		ray := core.MustRay(start, target.Subtract(start), 1)

		want, wantDistance, wantOK := bruteForce(primitives, ray)
		hit, ok := sc.ClosestIntersection(ray, nil)
		if ok != wantOK {
			t.Fatalf("Ray %d from %v: expected hit=%v, got %v", i, start, wantOK, ok)
		}
		if !ok {
			continue
		}
		if hit.Primitive != want && hit.Distance != wantDistance {
			t.Errorf("Ray %d: expected distance %f, got %f", i, wantDistance, hit.Distance)
		}

		if got := len(sc.AllIntersections(ray, nil)); got == 0 {
			t.Errorf("Ray %d: AllIntersections missed a hit", i)
		}
	}
}

func TestObject_SmallObjectsAreNotIndexed(t *testing.T) {
	obj := mustObject(t, triangleGrid(1)...)
	if obj.index != nil {
		t.Error("Expected no index below the threshold")
	}
}

func TestObject_IndexPreservesOrder(t *testing.T) {
	obj := mustObject(t, triangleGrid(4)...)
	// Straight down through a cell corner touches several triangles
	ray := core.MustRay(core.NewVec3(2, 2, 5), core.NewVec3(0, 0, -1), 0)

	candidates := obj.candidates(ray)
	if len(candidates) == 0 {
		t.Fatal("Expected candidates under the ray")
	}
	order := make(map[*Primitive]int)
	for i, p := range obj.primitives {
		order[p] = i
	}
	for i := 1; i < len(candidates); i++ {
		if order[candidates[i-1]] > order[candidates[i]] {
			t.Errorf("Candidates out of construction order at %d", i)
		}
	}

	miss := core.MustRay(core.NewVec3(50, 50, 5), core.NewVec3(0, 0, -1), 0)
	if got := obj.candidates(miss); len(got) != 0 {
		t.Errorf("Expected no candidates outside the object, got %d", len(got))
	}
}
