package pdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dlrow/pathtracer/pkg/core"
)

// mockSampler is an ImportanceSampler over a sphere centered on Center,
// used so positivity can be checked without depending on pkg/geometry.
type mockSampler struct {
	Center core.Vec3
	Radius float64
}

func (m mockSampler) PDFValue(origin, direction core.Vec3) float64 {
	toCenter := m.Center.Subtract(origin)
	distanceSquared := toCenter.LengthSquared()
	cosThetaMax := math.Sqrt(max(0, 1-m.Radius*m.Radius/distanceSquared))
	return 1.0 / core.SolidAngleCone(cosThetaMax)
}

func (m mockSampler) RandomDirection(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	toCenter := m.Center.Subtract(origin)
	distanceSquared := toCenter.LengthSquared()
	basis := core.NewONBFromW(toCenter)
	return basis.Local(core.RandomToSphere(m.Radius, distanceSquared, rng))
}

func TestHittablePDFPositivityForSampledDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sampler := mockSampler{Center: core.NewVec3(0, 0, -1), Radius: 0.5}

	for i := 0; i < 10000; i++ {
		origin := core.NewVec3(rng.Float64()*4-2, rng.Float64()*4-2, rng.Float64()*4-2)
		hp := NewHittable(origin, sampler)
		direction := hp.Generate(rng)
		if hp.Value(direction) <= 0 {
			t.Fatalf("pdf_value(origin=%v, dir=%v) = %v, want > 0", origin, direction, hp.Value(direction))
		}
	}
}

func TestMixtureIsAverageOfComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p0 := NewCosine(core.NewVec3(0, 1, 0))
	p1 := NewHittable(core.NewVec3(0, 0, 0), mockSampler{Center: core.NewVec3(0, 0, -1), Radius: 0.5})
	mix := NewMixture(p0, p1)

	for i := 0; i < 1000; i++ {
		direction := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		want := 0.5*p0.Value(direction) + 0.5*p1.Value(direction)
		got := mix.Value(direction)
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("mix.Value(%v) = %v, want %v", direction, got, want)
		}
	}
}

func TestUniformSpherePDFIsConstant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	u := NewUniformSphere()
	want := 1.0 / (4.0 * math.Pi)

	for i := 0; i < 100; i++ {
		d := core.RandomUnitVector(rng)
		if got := u.Value(d); math.Abs(got-want) > 1e-9 {
			t.Errorf("UniformSphere.Value(%v) = %v, want %v", d, got, want)
		}
	}
}
