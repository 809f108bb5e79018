package geometry

import (
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// Translate rigidly shifts a child Hittable by Offset.
type Translate struct {
	Base
	Child  Hittable
	Offset core.Vec3
}

// NewTranslate shifts child by offset.
func NewTranslate(child Hittable, offset core.Vec3) *Translate {
	return &Translate{Child: child, Offset: offset}
}

// Hit implements Hittable: the incoming ray is tested in the child's local
// space by subtracting the offset, and the resulting hit point is shifted
// back into world space.
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)
	hit, ok := tr.Child.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.P = hit.P.Add(tr.Offset)
	return hit, true
}

// BoundingBox implements Hittable.
func (tr *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := tr.Child.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(tr.Offset), box.Max.Add(tr.Offset)), true
}

// PDFValue implements Hittable, accounting for the offset between world
// space and the child's local space.
func (tr *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return tr.Child.PDFValue(origin.Subtract(tr.Offset), direction)
}

// RandomDirection implements Hittable, accounting for the offset between
// world space and the child's local space.
func (tr *Translate) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return tr.Child.RandomDirection(origin.Subtract(tr.Offset), rng)
}
