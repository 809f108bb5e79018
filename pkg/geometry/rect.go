package geometry

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// RectPlane selects which pair of axes an axis-aligned rectangle varies
// over; the remaining axis is held constant at K.
type RectPlane int

const (
	PlaneXY RectPlane = iota
	PlaneXZ
	PlaneYZ
)

// axes returns (varying axis 0, varying axis 1, constant axis) as the
// core.AxisValue indices (0=X,1=Y,2=Z).
func (p RectPlane) axes() (a0, a1, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneYZ:
		return 1, 2, 0
	default: // PlaneXZ
		return 0, 2, 1
	}
}

// Rect is an axis-aligned rectangle held at a constant coordinate on the
// plane's third axis, with an outward normal along the positive direction
// of that axis. Use FlipNormals to face it the other way.
type Rect struct {
	Base
	Plane          RectPlane
	A0, A1, B0, B1 float64 // bounds along the two varying axes
	K              float64 // constant coordinate
	Material       material.Material
}

// NewXYRect creates a rectangle in the z=k plane.
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle in the y=k plane.
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle in the x=k plane.
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

func axisUnit(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(1, 0, 0)
	case 1:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

func axisComponent(v core.Vec3, axis int) float64 {
	return core.AxisValue(v, axis)
}

func axisSet(v *core.Vec3, axis int, value float64) {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}

// Hit implements Hittable.
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	_, _, axisK := r.Plane.axes()
	dK := axisComponent(ray.Direction, axisK)
	if dK == 0 {
		return nil, false
	}
	t := (r.K - axisComponent(ray.Origin, axisK)) / dK
	if t <= tMin || t >= tMax {
		return nil, false
	}

	axisA, axisB, _ := r.Plane.axes()
	oA, oB := axisComponent(ray.Origin, axisA), axisComponent(ray.Origin, axisB)
	dA, dB := axisComponent(ray.Direction, axisA), axisComponent(ray.Direction, axisB)
	a := oA + t*dA
	b := oB + t*dB
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		P:        ray.At(t),
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, axisUnit(axisK))
	return hit, true
}

// BoundingBox implements Hittable: the rectangle thickened slightly on the
// constant axis so it has nonzero volume for the BVH.
func (r *Rect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	axisA, axisB, axisK := r.Plane.axes()
	var lo, hi core.Vec3
	axisSet(&lo, axisA, r.A0)
	axisSet(&hi, axisA, r.A1)
	axisSet(&lo, axisB, r.B0)
	axisSet(&hi, axisB, r.B1)
	axisSet(&lo, axisK, r.K-1e-4)
	axisSet(&hi, axisK, r.K+1e-4)
	return core.NewAABB(lo, hi), true
}

// area returns the rectangle's surface area.
func (r *Rect) area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PDFValue implements Hittable for direct-lighting importance sampling.
func (r *Rect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := r.Hit(core.NewRay(origin, direction), 1e-3, math.Inf(1))
	if !ok {
		return 0
	}
	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Normalize().Dot(hit.N))
	if cosine < 1e-8 {
		return 0
	}
	return distanceSquared / (cosine * r.area())
}

// RandomDirection implements Hittable: a uniformly sampled point on the
// rectangle, relative to origin.
func (r *Rect) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	axisA, axisB, axisK := r.Plane.axes()
	var p core.Vec3
	axisSet(&p, axisA, r.A0+rng.Float64()*(r.A1-r.A0))
	axisSet(&p, axisB, r.B0+rng.Float64()*(r.B1-r.B0))
	axisSet(&p, axisK, r.K)
	return p.Subtract(origin)
}
