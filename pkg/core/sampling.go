package core

import (
	"math"
	"math/rand"
)

// RandomInUnitSphere returns a uniformly distributed point inside the unit
// sphere, used for metal fuzz and isotropic-medium scattering.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*rng.Float64()-1, 2*rng.Float64()-1, 2*rng.Float64()-1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed point on the unit sphere.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}

// RandomInUnitDisk returns a uniformly distributed point inside the unit
// disk in the XY plane, used for thin-lens aperture sampling.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*rng.Float64()-1, 2*rng.Float64()-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted random direction in the
// hemisphere around the unit normal n.
func RandomCosineDirection(n Vec3, rng *rand.Rand) Vec3 {
	r1, r2 := rng.Float64(), rng.Float64()
	phi := 2 * math.Pi * r1
	z := math.Sqrt(1 - r2)
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	return NewONBFromW(n).Local(NewVec3(x, y, z))
}

// RandomToSphere samples a direction, in the local frame whose W axis
// points at the sphere's center, uniformly within the cone subtended by a
// sphere of the given radius at the given squared distance from the
// sampling point.
func RandomToSphere(radius, distanceSquared float64, rng *rand.Rand) Vec3 {
	r1, r2 := rng.Float64(), rng.Float64()
	cosThetaMax := math.Sqrt(max(0, 1-radius*radius/distanceSquared))
	z := 1 + r2*(cosThetaMax-1)
	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(max(0, 1-z*z))
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta
	return NewVec3(x, y, z)
}

// SolidAngleCone returns the solid angle subtended by a cone with the
// given maximum half-angle cosine.
func SolidAngleCone(cosThetaMax float64) float64 {
	return 2 * math.Pi * (1 - cosThetaMax)
}
