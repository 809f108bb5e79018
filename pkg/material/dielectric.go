package material

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that both reflects
// and refracts according to Schlick's Fresnel approximation.
type Dielectric struct {
	Base
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Reflectance computes Schlick's approximation for Fresnel reflectance at
// the given cosine of the incidence angle and relative refractive index.
func Reflectance(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Scatter implements Material.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	attenuation := core.NewVec3(1, 1, 1)

	etaRatio := d.RefractiveIndex
	if hit.FrontFace {
		etaRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.N), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, etaRatio) > rng.Float64() {
		direction = core.Reflect(unitDirection, hit.N)
	} else {
		direction = core.Refract(unitDirection, hit.N, etaRatio)
	}

	return ScatterRecord{
		Kind:        Specular,
		SpecularRay: core.NewRayAtTime(hit.P, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}
