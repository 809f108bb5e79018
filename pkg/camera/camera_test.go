package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dlrow/pathtracer/pkg/core"
)

func TestBasisIsOrthonormal(t *testing.T) {
	c := New(core.NewVec3(3, 2, 1), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40, 16.0/9.0, 0, 10, 0, 0)

	for _, v := range []core.Vec3{c.U, c.V, c.W} {
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Errorf("basis vector %v has length %v, want 1", v, v.Length())
		}
	}
	if math.Abs(c.U.Dot(c.V)) > 1e-9 || math.Abs(c.V.Dot(c.W)) > 1e-9 || math.Abs(c.U.Dot(c.W)) > 1e-9 {
		t.Errorf("basis not orthogonal: U=%v V=%v W=%v", c.U, c.V, c.W)
	}
}

func TestPinholeCameraHasNoLensJitter(t *testing.T) {
	c := New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1, 0, 1, 0, 0)
	rng := rand.New(rand.NewSource(1))

	first := c.GetRay(0.5, 0.5, rng)
	for i := 0; i < 100; i++ {
		r := c.GetRay(0.5, 0.5, rng)
		if r.Origin != first.Origin {
			t.Fatalf("aperture=0 ray origin jittered: %v vs %v", r.Origin, first.Origin)
		}
	}
}

func TestApertureJittersLensOrigin(t *testing.T) {
	c := New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1, 2.0, 1, 0, 0)
	rng := rand.New(rand.NewSource(2))

	origins := make(map[core.Vec3]bool)
	for i := 0; i < 50; i++ {
		r := c.GetRay(0.5, 0.5, rng)
		origins[r.Origin] = true
	}
	if len(origins) < 2 {
		t.Error("expected nonzero aperture to jitter ray origins across the lens")
	}
}

func TestGetRayFixedTimeWhenShutterClosed(t *testing.T) {
	c := New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1, 0, 1, 0.25, 0.25)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 20; i++ {
		r := c.GetRay(0.5, 0.5, rng)
		if r.Time != 0.25 {
			t.Errorf("Time = %v, want fixed 0.25 when Time0==Time1", r.Time)
		}
	}
}

func TestGetRaySamplesShutterInterval(t *testing.T) {
	c := New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1, 0, 1, 0, 1)
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 200; i++ {
		r := c.GetRay(0.5, 0.5, rng)
		if r.Time < 0 || r.Time > 1 {
			t.Fatalf("Time = %v, want within [0,1]", r.Time)
		}
	}
}

func TestGetRayPassesThroughCorrectImagePlanePoint(t *testing.T) {
	c := New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1, 0, 1, 0, 0)
	rng := rand.New(rand.NewSource(5))

	r := c.GetRay(0.5, 0.5, rng)
	center := r.At(1)
	if center.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("ray through (0.5,0.5) at focus distance = %v, want (0,0,-1)", center)
	}
}
