package geometry

import (
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// FlipNormals wraps a Hittable and reverses the surface normal reported by
// every hit, without otherwise changing geometry or material response.
// Used to turn an outward-facing box face into an inward-facing one, e.g.
// for the interior walls of an enclosed room.
type FlipNormals struct {
	Base
	Child Hittable
}

// NewFlipNormals wraps child so its normals point the other way.
func NewFlipNormals(child Hittable) *FlipNormals {
	return &FlipNormals{Child: child}
}

// Hit implements Hittable.
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := f.Child.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.N = hit.N.Negate()
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox implements Hittable.
func (f *FlipNormals) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Child.BoundingBox(t0, t1)
}

// PDFValue implements Hittable, delegating to the wrapped child.
func (f *FlipNormals) PDFValue(origin, direction core.Vec3) float64 {
	return f.Child.PDFValue(origin, direction)
}

// RandomDirection implements Hittable, delegating to the wrapped child.
func (f *FlipNormals) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return f.Child.RandomDirection(origin, rng)
}
