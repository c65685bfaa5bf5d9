package scene

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/df07/go-shading-raytracer/pkg/core"
)

const (
	// indexThreshold is the primitive count at which an object gets an R-tree
	indexThreshold = 16

	// indexPadding widens every rectangle so flat primitives have volume and
	// touching boxes still overlap
	indexPadding = 1e-6
)

// indexedPrimitive is an R-tree entry remembering its construction order
type indexedPrimitive struct {
	primitive *Primitive
	order     int
	rect      rtreego.Rect
}

// Bounds implements rtreego.Spatial
func (ip *indexedPrimitive) Bounds() rtreego.Rect {
	return ip.rect
}

// primitiveIndex is an R-tree over the primitives of a large object such as a
// loaded mesh
type primitiveIndex struct {
	tree *rtreego.Rtree
}

func paddedRect(min, max core.Vec3) (rtreego.Rect, error) {
	return rtreego.NewRectFromPoints(
		rtreego.Point{min.X - indexPadding, min.Y - indexPadding, min.Z - indexPadding},
		rtreego.Point{max.X + indexPadding, max.Y + indexPadding, max.Z + indexPadding},
	)
}

// newPrimitiveIndex bulk-loads the primitives into a 3D R-tree
func newPrimitiveIndex(primitives []*Primitive) (*primitiveIndex, error) {
	entries := make([]rtreego.Spatial, len(primitives))
	for i, p := range primitives {
		bounds := p.BoundingCube()
		rect, err := paddedRect(bounds.Min, bounds.Max)
		if err != nil {
			return nil, err
		}
		entries[i] = &indexedPrimitive{primitive: p, order: i, rect: rect}
	}
	return &primitiveIndex{tree: rtreego.NewTree(3, 4, 16, entries...)}, nil
}

// candidates returns, in construction order, the primitives whose bounds the
// ray may cross inside the object's bounds. ok is false when the index cannot
// narrow the search and every primitive must be tested.
func (ix *primitiveIndex) candidates(ray core.Ray, bounds core.BoundingCube) (primitives []*Primitive, ok bool) {
	tNear, tFar, hit := bounds.Clip(ray)
	if !hit {
		return nil, true
	}
	if math.IsInf(tFar, 0) {
		return nil, false
	}

	// Box around the clipped segment, then a slab test per leaf
	a, b := ray.At(tNear), ray.At(tFar)
	query, err := paddedRect(
		core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	)
	if err != nil {
		return nil, false
	}

	found := ix.tree.SearchIntersect(query, func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		leaf := obj.(*indexedPrimitive).primitive.BoundingCube()
		return !leaf.Expand(indexPadding).Intersects(ray), false
	})

	entries := make([]*indexedPrimitive, len(found))
	for i, s := range found {
		entries[i] = s.(*indexedPrimitive)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].order < entries[j].order })

	primitives = make([]*Primitive, len(entries))
	for i, e := range entries {
		primitives[i] = e.primitive
	}
	return primitives, true
}
