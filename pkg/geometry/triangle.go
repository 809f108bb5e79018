package geometry

import (
	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// Triangle is a single flat triangle with per-vertex UV coordinates,
// intersected via the Moller-Trumbore algorithm. It does not back
// importance sampling on its own; TriangleMesh wraps many of these behind
// a BVH and is the unit normally placed in a scene's importance set.
type Triangle struct {
	Base
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	Material      material.Material
}

// NewTriangle creates a triangle from its three vertices and per-vertex UV
// coordinates.
func NewTriangle(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, mat material.Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, Material: mat}
}

const triangleEpsilon = 1e-8

// Hit implements Hittable using the Moller-Trumbore intersection test.
// Back-facing hits (where the ray travels along the normal edge1 x edge2)
// and rays nearly parallel to the triangle's plane are rejected, so a
// triangle is single-sided.
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)
	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det < triangleEpsilon {
		return nil, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(tr.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := edge2.Dot(qvec) * invDet
	if t <= tMin || t >= tMax {
		return nil, false
	}

	w := 1 - u - v
	texU := w*tr.UV0.X + u*tr.UV1.X + v*tr.UV2.X
	texV := w*tr.UV0.Y + u*tr.UV1.Y + v*tr.UV2.Y
	outwardNormal := edge1.Cross(edge2).Normalize()

	hit := &material.HitRecord{T: t, P: ray.At(t), U: texU, V: texV, Material: tr.Material}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox implements Hittable, inflating any degenerate (flat) axis by
// a small margin so the BVH never has to reason about a zero-thickness
// slab.
func (tr *Triangle) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box := core.NewAABBFromPoints(tr.V0, tr.V1, tr.V2)
	const minThickness = 1e-3
	size := box.Size()
	min, max := box.Min, box.Max
	if size.X < minThickness {
		min.X -= minThickness
		max.X += minThickness
	}
	if size.Y < minThickness {
		min.Y -= minThickness
		max.Y += minThickness
	}
	if size.Z < minThickness {
		min.Z -= minThickness
		max.Z += minThickness
	}
	return core.NewAABB(min, max), true
}
