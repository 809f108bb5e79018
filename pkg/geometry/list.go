package geometry

import (
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// List is an unordered collection of Hittables, hit by testing every
// member and keeping the closest result. Its PDF methods weight every
// member uniformly, which is the right default for a set of lights of
// comparable size; callers needing importance-weighted mixtures should
// build per-light PDFs instead of relying on List's own.
type List struct {
	Base
	Items []Hittable
}

// NewList creates a List over the given members.
func NewList(items ...Hittable) *List {
	return &List{Items: items}
}

// Add appends a member.
func (l *List) Add(h Hittable) {
	l.Items = append(l.Items, h)
}

// Hit implements Hittable.
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	nearest := tMax
	for _, item := range l.Items {
		hit, ok := item.Hit(ray, tMin, nearest)
		if !ok {
			continue
		}
		closest = hit
		nearest = hit.T
	}
	return closest, closest != nil
}

// BoundingBox implements Hittable: the union of every member's box. A List
// containing an unbounded member (none in this module) would return false;
// an empty List also returns false.
func (l *List) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(l.Items) == 0 {
		return core.AABB{}, false
	}
	var box core.AABB
	first := true
	for _, item := range l.Items {
		b, ok := item.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = b
			first = false
			continue
		}
		box = box.Union(b)
	}
	return box, true
}

// PDFValue implements Hittable: the unweighted average of every member's
// density, so a List used as an importance target treats its members as
// equally likely regardless of solid angle or area.
func (l *List) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Items) == 0 {
		return 0
	}
	sum := 0.0
	weight := 1.0 / float64(len(l.Items))
	for _, item := range l.Items {
		sum += weight * item.PDFValue(origin, direction)
	}
	return sum
}

// RandomDirection implements Hittable: picks a uniformly random member and
// defers to its own sampling strategy.
func (l *List) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if len(l.Items) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	idx := rng.Intn(len(l.Items))
	return l.Items[idx].RandomDirection(origin, rng)
}
