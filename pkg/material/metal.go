package material

import (
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
)

// Metal is a specular material with optional fuzz.
type Metal struct {
	Base
	Albedo core.Vec3
	Fuzz   float64 // 0 = perfect mirror, 1 = maximally fuzzy
}

// NewMetal creates a metal material, clamping fuzz to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements Material.
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.N)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Multiply(m.Fuzz))
	}
	scattered := core.NewRayAtTime(hit.P, reflected, rayIn.Time)

	return ScatterRecord{
		Kind:        Specular,
		SpecularRay: scattered,
		Attenuation: m.Albedo,
	}, true
}
