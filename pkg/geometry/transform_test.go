package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
	"github.com/dlrow/pathtracer/pkg/texture"
)

func testSphere() *Sphere {
	mat := material.NewLambertian(texture.NewConstant(core.NewVec3(0.8, 0.8, 0.8)))
	return NewSphere(core.NewVec3(0.3, -0.2, -1.5), 0.6, mat)
}

func TestRotateYRoundTrip(t *testing.T) {
	sphere := testSphere()
	forward := NewRotateY(sphere, 37)
	roundTrip := NewRotateY(forward, -37)

	rng := rand.New(rand.NewSource(21))
	for i := 0; i < 500; i++ {
		origin := core.NewVec3(rng.Float64()*4-2, rng.Float64()*4-2, rng.Float64()*4-2)
		direction := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if direction.IsZero() {
			continue
		}
		ray := core.NewRay(origin, direction)

		wantHit, wantOk := sphere.Hit(ray, 1e-3, 1e9)
		gotHit, gotOk := roundTrip.Hit(ray, 1e-3, 1e9)

		if wantOk != gotOk {
			t.Fatalf("origin=%v direction=%v: want ok=%v, got ok=%v", origin, direction, wantOk, gotOk)
		}
		if !wantOk {
			continue
		}
		if math.Abs(wantHit.T-gotHit.T) > 1e-4 {
			t.Errorf("t mismatch: want %v, got %v", wantHit.T, gotHit.T)
		}
		if wantHit.P.Subtract(gotHit.P).Length() > 1e-4 {
			t.Errorf("p mismatch: want %v, got %v", wantHit.P, gotHit.P)
		}
	}
}

func TestTranslateComposition(t *testing.T) {
	sphere := testSphere()
	a := core.NewVec3(1, 2, 3)
	b := core.NewVec3(-4, 0.5, 2)

	composed := NewTranslate(NewTranslate(sphere, a), b)
	direct := NewTranslate(sphere, a.Add(b))

	rng := rand.New(rand.NewSource(55))
	for i := 0; i < 500; i++ {
		origin := core.NewVec3(rng.Float64()*4-2, rng.Float64()*4-2, rng.Float64()*4-2)
		direction := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if direction.IsZero() {
			continue
		}
		ray := core.NewRay(origin, direction)

		composedHit, composedOk := composed.Hit(ray, 1e-3, 1e9)
		directHit, directOk := direct.Hit(ray, 1e-3, 1e9)

		if composedOk != directOk {
			t.Fatalf("origin=%v direction=%v: composed ok=%v, direct ok=%v", origin, direction, composedOk, directOk)
		}
		if !composedOk {
			continue
		}
		if math.Abs(composedHit.T-directHit.T) > 1e-6 {
			t.Errorf("t mismatch: composed %v, direct %v", composedHit.T, directHit.T)
		}
	}
}

func TestRotateYBoundingBoxContainsRotatedCorners(t *testing.T) {
	child := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 2, 1), material.NewLambertian(texture.NewConstant(core.Vec3{})))
	rotated := NewRotateY(child, 45)

	box, ok := rotated.BoundingBox(0, 1)
	if !ok {
		t.Fatal("RotateY.BoundingBox() returned ok=false")
	}

	childBox, _ := child.BoundingBox(0, 1)
	cosT, sinT := math.Cos(45*math.Pi/180), math.Sin(45*math.Pi/180)
	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			x := pick(i, childBox.Min.X, childBox.Max.X)
			z := pick(k, childBox.Min.Z, childBox.Max.Z)
			newX := cosT*x + sinT*z
			newZ := -sinT*x + cosT*z
			if newX < box.Min.X-1e-9 || newX > box.Max.X+1e-9 || newZ < box.Min.Z-1e-9 || newZ > box.Max.Z+1e-9 {
				t.Errorf("rotated corner (%v,%v) not contained in box %v", newX, newZ, box)
			}
		}
	}
}

func pick(i int, lo, hi float64) float64 {
	if i == 0 {
		return lo
	}
	return hi
}
