// Package geometry implements the polymorphic intersectable geometry
// hierarchy: primitives, composites, transforms, and the BVH acceleration
// structure over them.
package geometry

import (
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// Hittable is the capability set every piece of scene geometry implements.
// PDFValue and RandomDirection back importance sampling toward this shape
// from a given origin; most shapes never appear in the importance set and
// can embed Base to inherit the zero-value defaults.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox(t0, t1 float64) (core.AABB, bool)
	PDFValue(origin, direction core.Vec3) float64
	RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3
}

// Base supplies the default Hittable PDF behavior: zero density, and a
// fixed (1,0,0) direction for shapes that never back a HittablePDF.
type Base struct{}

// PDFValue implements Hittable's default: always zero.
func (Base) PDFValue(origin, direction core.Vec3) float64 {
	return 0
}

// RandomDirection implements Hittable's default: the arbitrary axis (1,0,0).
func (Base) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.NewVec3(1, 0, 0)
}
