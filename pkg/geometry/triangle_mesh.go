package geometry

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
)

// TriangleMesh is a collection of triangles sharing one material, typically
// built by a mesh loader from imported vertex/index buffers. Internally it
// indexes its triangles with a BVH so large meshes don't degrade to linear
// search.
type TriangleMesh struct {
	Base
	Triangles []*Triangle
	accel     Hittable
}

// NewTriangleMesh builds a mesh from triangles already positioned in world
// space, indexing them with a BVH.
func NewTriangleMesh(triangles []*Triangle, rng *rand.Rand) *TriangleMesh {
	items := make([]Hittable, len(triangles))
	for i, t := range triangles {
		items[i] = t
	}
	return &TriangleMesh{Triangles: triangles, accel: NewBVH(items, 0, 1, rng)}
}

// Hit implements Hittable.
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return m.accel.Hit(ray, tMin, tMax)
}

// BoundingBox implements Hittable.
func (m *TriangleMesh) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return m.accel.BoundingBox(t0, t1)
}

// PDFValue implements Hittable, treating every triangle as equally likely
// to be sampled; not area-weighted, matching List's uniform-by-count
// convention for composite importance targets.
func (m *TriangleMesh) PDFValue(origin, direction core.Vec3) float64 {
	if len(m.Triangles) == 0 {
		return 0
	}
	sum := 0.0
	weight := 1.0 / float64(len(m.Triangles))
	for _, t := range m.Triangles {
		sum += weight * t.PDFValue(origin, direction)
	}
	return sum
}

// RandomDirection implements Hittable: samples a uniformly random triangle,
// then a uniformly random point within it via the square-root
// barycentric mapping of two uniform numbers.
func (m *TriangleMesh) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if len(m.Triangles) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	t := m.Triangles[rng.Intn(len(m.Triangles))]
	r1 := rng.Float64()
	r2 := rng.Float64()
	sqrtR1 := math.Sqrt(r1)
	a := 1 - sqrtR1
	b := (1 - r2) * sqrtR1
	c := r2 * sqrtR1
	p := t.V0.Multiply(a).Add(t.V1.Multiply(b)).Add(t.V2.Multiply(c))
	return p.Subtract(origin)
}
