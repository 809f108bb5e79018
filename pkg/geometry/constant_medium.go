package geometry

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
	"github.com/dlrow/pathtracer/pkg/texture"
)

// ConstantMedium wraps a closed Boundary shape with a homogeneous
// participating medium of the given Density, scattering rays via free-path
// sampling rather than a surface intersection. The reported hit normal is
// arbitrary (fixed to (1,0,0)) since it has no meaning for a volume, and
// nothing downstream reads it: the Isotropic phase function ignores N.
type ConstantMedium struct {
	Base
	Boundary Hittable
	Density  float64
	Phase    material.Material
}

// NewConstantMedium creates a fog-like volume of the given density bounded
// by boundary, with isotropic scattering tinted by albedo.
func NewConstantMedium(boundary Hittable, density float64, albedo texture.Texture) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, Phase: material.NewIsotropic(albedo)}
}

// Hit implements Hittable via free-flight sampling: find where the ray
// enters and exits the boundary, then sample an exponentially distributed
// distance to the next scattering event along that segment.
func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	enter, ok := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	exit, ok := c.Boundary.Hit(ray, enter.T+1e-4, math.Inf(1))
	if !ok {
		return nil, false
	}

	if enter.T < tMin {
		enter.T = tMin
	}
	if exit.T > tMax {
		exit.T = tMax
	}
	if enter.T >= exit.T {
		return nil, false
	}
	if enter.T < 0 {
		enter.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (exit.T - enter.T) * rayLength
	hitDistance := -math.Log(rand.Float64()) / c.Density
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := enter.T + hitDistance/rayLength
	hit := &material.HitRecord{
		T:         t,
		P:         ray.At(t),
		N:         core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  c.Phase,
	}
	return hit, true
}

// BoundingBox implements Hittable.
func (c *ConstantMedium) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return c.Boundary.BoundingBox(t0, t1)
}
