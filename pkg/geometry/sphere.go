package geometry

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// Sphere is a stationary sphere.
type Sphere struct {
	Base
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a stationary sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// sphereUV maps a point on the unit sphere to (u,v) texture coordinates.
func sphereUV(p core.Vec3) (u, v float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(math.Max(-1, math.Min(1, p.Y)))
	u = 1 - (phi+math.Pi)/(2*math.Pi)
	v = (theta + math.Pi/2) / math.Pi
	return u, v
}

// Hit implements Hittable.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphereAt(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

func hitSphereAt(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	p := ray.At(root)
	outwardNormal := p.Subtract(center).Multiply(1 / radius)
	u, v := sphereUV(outwardNormal)

	hit := &material.HitRecord{T: root, P: p, U: u, V: v, Material: mat}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox implements Hittable.
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r)), true
}

// PDFValue implements Hittable: the inverse solid angle subtended by this
// sphere as seen from origin, for directions that actually hit it.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, hit := s.Hit(core.NewRay(origin, direction), 1e-3, math.Inf(1)); !hit {
		return 0
	}
	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(max(0, 1-s.Radius*s.Radius/distanceSquared))
	solidAngle := core.SolidAngleCone(cosThetaMax)
	return 1.0 / solidAngle
}

// RandomDirection implements Hittable: samples within the cone subtended
// by the sphere from origin.
func (s *Sphere) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distanceSquared := toCenter.LengthSquared()
	basis := core.NewONBFromW(toCenter)
	return basis.Local(core.RandomToSphere(s.Radius, distanceSquared, rng))
}
