package geometry

import (
	"math/rand"
	"testing"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
	"github.com/dlrow/pathtracer/pkg/texture"
)

func TestRectPDFValuePositiveForSampledDirections(t *testing.T) {
	light := NewXZRect(213, 343, 227, 332, 554, material.NewDiffuseLight(texture.NewConstant(core.NewVec3(15, 15, 15))))
	rng := rand.New(rand.NewSource(17))

	for i := 0; i < 10000; i++ {
		origin := core.NewVec3(rng.Float64()*400-200, rng.Float64()*400, rng.Float64()*400-200)
		direction := light.RandomDirection(origin, rng)
		if v := light.PDFValue(origin, direction); v <= 0 {
			t.Fatalf("PDFValue(%v, %v) = %v, want > 0", origin, direction, v)
		}
	}
}

func TestRectHitWithinBounds(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, -2, material.NewLambertian(texture.NewConstant(core.Vec3{})))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := rect.Hit(ray, 1e-3, 1e9)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.T != 2 {
		t.Errorf("t = %v, want 2", hit.T)
	}
	if hit.N.Z != 1 {
		t.Errorf("N = %v, want outward normal facing the ray", hit.N)
	}
}

func TestRectMissesOutsideBounds(t *testing.T) {
	rect := NewXYRect(-1, 1, -1, 1, -2, material.NewLambertian(texture.NewConstant(core.Vec3{})))
	ray := core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1))

	if _, ok := rect.Hit(ray, 1e-3, 1e9); ok {
		t.Error("expected a miss outside the rectangle's bounds")
	}
}
