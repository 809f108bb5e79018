package geometry

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// RotateY rotates a child Hittable about the Y axis by Angle degrees.
type RotateY struct {
	Base
	Child    Hittable
	SinTheta float64
	CosTheta float64
	HasBox   bool
	Box      core.AABB
}

// NewRotateY rotates child by angleDegrees about the Y axis, precomputing
// the rotated bounding box by transforming all eight corners of the
// child's axis-aligned box and taking the per-axis extrema. The rotation
// of a box is not itself axis-aligned in general, so the naive corner
// substitution used by some rasterizer ports (reusing one axis's min/max
// verbatim for another) produces a box that can clip the rotated shape.
func NewRotateY(child Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	r := &RotateY{
		Child:    child,
		SinTheta: math.Sin(radians),
		CosTheta: math.Cos(radians),
	}

	box, ok := child.BoundingBox(0, 1)
	r.HasBox = ok
	if !ok {
		return r
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := r.CosTheta*x + r.SinTheta*z
				newZ := -r.SinTheta*x + r.CosTheta*z
				corner := core.NewVec3(newX, y, newZ)

				min.X = math.Min(min.X, corner.X)
				min.Y = math.Min(min.Y, corner.Y)
				min.Z = math.Min(min.Z, corner.Z)
				max.X = math.Max(max.X, corner.X)
				max.Y = math.Max(max.Y, corner.Y)
				max.Z = math.Max(max.Z, corner.Z)
			}
		}
	}
	r.Box = core.NewAABB(min, max)
	return r
}

// rotateToLocal rotates a world-space vector by -theta, into the child's
// unrotated local space.
func (r *RotateY) rotateToLocal(v core.Vec3) core.Vec3 {
	x := r.CosTheta*v.X - r.SinTheta*v.Z
	z := r.SinTheta*v.X + r.CosTheta*v.Z
	return core.NewVec3(x, v.Y, z)
}

// rotateToWorld rotates a local-space vector by +theta, back into world
// space.
func (r *RotateY) rotateToWorld(v core.Vec3) core.Vec3 {
	x := r.CosTheta*v.X + r.SinTheta*v.Z
	z := -r.SinTheta*v.X + r.CosTheta*v.Z
	return core.NewVec3(x, v.Y, z)
}

// Hit implements Hittable.
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	localRay := core.NewRayAtTime(r.rotateToLocal(ray.Origin), r.rotateToLocal(ray.Direction), ray.Time)
	hit, ok := r.Child.Hit(localRay, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.P = r.rotateToWorld(hit.P)
	hit.N = r.rotateToWorld(hit.N)
	return hit, true
}

// BoundingBox implements Hittable.
func (r *RotateY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return r.Box, r.HasBox
}

// PDFValue implements Hittable, rotating the query into the child's local
// space.
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return r.Child.PDFValue(r.rotateToLocal(origin), r.rotateToLocal(direction))
}

// RandomDirection implements Hittable, rotating the sampled direction back
// into world space.
func (r *RotateY) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	local := r.Child.RandomDirection(r.rotateToLocal(origin), rng)
	return r.rotateToWorld(local)
}
