package geometry

import (
	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly between Center0 at
// Time0 and Center1 at Time1, enabling motion blur over a shutter interval.
type MovingSphere struct {
	Base
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a sphere that linearly interpolates its center
// over [time0,time1].
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// CenterAt returns the sphere's center at the given shutter time.
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(t))
}

// Hit implements Hittable.
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphereAt(s.CenterAt(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox implements Hittable: the union of the bounding boxes at the
// shutter's two endpoints.
func (s *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	c0 := s.CenterAt(t0)
	c1 := s.CenterAt(t1)
	box0 := core.NewAABB(c0.Subtract(r), c0.Add(r))
	box1 := core.NewAABB(c1.Subtract(r), c1.Add(r))
	return box0.Union(box1), true
}
