// Package pdf implements the probability density functions the integrator
// mixes between the BSDF's own cosine lobe and the scene's importance set,
// for next-event estimation without biasing the estimator.
package pdf

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
)

// PDF is a probability density function over directions on the unit
// sphere: Value must be non-negative everywhere, and strictly positive for
// any direction Generate can produce.
type PDF interface {
	Value(direction core.Vec3) float64
	Generate(rng *rand.Rand) core.Vec3
}

// ImportanceSampler is the narrow capability a Hittable exposes so it can
// back a HittablePDF without pkg/pdf importing pkg/geometry: any type with
// these two methods satisfies this interface structurally.
type ImportanceSampler interface {
	PDFValue(origin, direction core.Vec3) float64
	RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3
}

// Cosine is a cosine-weighted hemisphere PDF about a surface normal.
type Cosine struct {
	basis core.ONB
}

// NewCosine builds a cosine PDF oriented around the given normal.
func NewCosine(normal core.Vec3) *Cosine {
	return &Cosine{basis: core.NewONBFromW(normal)}
}

// Value implements PDF.
func (c *Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(c.basis.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate implements PDF.
func (c *Cosine) Generate(rng *rand.Rand) core.Vec3 {
	return c.basis.Local(randomCosineLocal(rng))
}

func randomCosineLocal(rng *rand.Rand) core.Vec3 {
	r1, r2 := rng.Float64(), rng.Float64()
	phi := 2 * math.Pi * r1
	z := math.Sqrt(1 - r2)
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	return core.NewVec3(x, y, z)
}

// Hittable samples directions toward an importance set (typically the
// scene's lights) as seen from a fixed origin.
type Hittable struct {
	Origin core.Vec3
	Target ImportanceSampler
}

// NewHittable builds a Hittable PDF sampling toward target from origin.
func NewHittable(origin core.Vec3, target ImportanceSampler) *Hittable {
	return &Hittable{Origin: origin, Target: target}
}

// Value implements PDF.
func (h *Hittable) Value(direction core.Vec3) float64 {
	if h.Target == nil {
		return 0
	}
	return h.Target.PDFValue(h.Origin, direction)
}

// Generate implements PDF.
func (h *Hittable) Generate(rng *rand.Rand) core.Vec3 {
	if h.Target == nil {
		return core.NewVec3(1, 0, 0)
	}
	return h.Target.RandomDirection(h.Origin, rng)
}

// UniformSphere samples directions uniformly over the entire unit sphere,
// used by the isotropic volume phase function.
type UniformSphere struct{}

// NewUniformSphere creates a uniform-sphere PDF.
func NewUniformSphere() *UniformSphere {
	return &UniformSphere{}
}

// Value implements PDF: constant 1/(4*pi) everywhere.
func (u *UniformSphere) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate implements PDF.
func (u *UniformSphere) Generate(rng *rand.Rand) core.Vec3 {
	return core.RandomUnitVector(rng)
}

// Mixture combines two PDFs with equal weight, preserving unbiasedness
// while letting one distribution (the importance set) find directions the
// other (the BSDF) would rarely sample.
type Mixture struct {
	P0, P1 PDF
}

// NewMixture builds an equal-weight mixture of p0 and p1.
func NewMixture(p0, p1 PDF) *Mixture {
	return &Mixture{P0: p0, P1: p1}
}

// Value implements PDF.
func (m *Mixture) Value(direction core.Vec3) float64 {
	return 0.5*m.P0.Value(direction) + 0.5*m.P1.Value(direction)
}

// Generate implements PDF.
func (m *Mixture) Generate(rng *rand.Rand) core.Vec3 {
	if rng.Float64() < 0.5 {
		return m.P0.Generate(rng)
	}
	return m.P1.Generate(rng)
}
