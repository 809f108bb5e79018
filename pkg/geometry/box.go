package geometry

import (
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// Box is an axis-aligned rectangular prism built from six Rects.
type Box struct {
	Base
	Min, Max core.Vec3
	sides    *List
}

// NewBox creates a box spanning [min,max] with the given material on every
// face.
func NewBox(min, max core.Vec3, mat material.Material) *Box {
	sides := NewList(
		NewFlipNormals(NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat)),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat),

		NewFlipNormals(NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat)),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat),

		NewFlipNormals(NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat)),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat),
	)
	return &Box{Min: min, Max: max, sides: sides}
}

// Hit implements Hittable.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox implements Hittable.
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

// PDFValue implements Hittable, delegating to the underlying sides.
func (b *Box) PDFValue(origin, direction core.Vec3) float64 {
	return b.sides.PDFValue(origin, direction)
}

// RandomDirection implements Hittable, delegating to the underlying sides.
func (b *Box) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return b.sides.RandomDirection(origin, rng)
}
