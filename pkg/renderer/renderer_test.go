package renderer

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/dlrow/pathtracer/pkg/camera"
	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/geometry"
	"github.com/dlrow/pathtracer/pkg/material"
	"github.com/dlrow/pathtracer/pkg/scene"
	"github.com/dlrow/pathtracer/pkg/texture"
)

func TestTilesPartitionTheWholeImage(t *testing.T) {
	const width, height = 50, 70
	covered := make([][]bool, height)
	for i := range covered {
		covered[i] = make([]bool, width)
	}

	work := tiles(width, height)
	if len(work) != 4 {
		t.Fatalf("tiles() returned %d tiles, want exactly 4 quadrants", len(work))
	}

	for _, tile := range work {
		if tile.X0 < 0 || tile.Y0 < 0 || tile.X1 > width || tile.Y1 > height {
			t.Fatalf("tile %v out of image bounds", tile)
		}
		for y := tile.Y0; y < tile.Y1; y++ {
			for x := tile.X0; x < tile.X1; x++ {
				if covered[y][x] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !covered[y][x] {
				t.Fatalf("pixel (%d,%d) not covered by any tile", x, y)
			}
		}
	}
}

func TestQuantizeClampsToByteRange(t *testing.T) {
	cases := map[float64]uint8{-1: 0, 0: 0, 0.5: 127, 1: 255, 2: 255}
	for in, want := range cases {
		if got := quantize(in); got != want {
			t.Errorf("quantize(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestRenderProducesNonBlackBoundedImage(t *testing.T) {
	light := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuseLight(texture.NewConstant(core.NewVec3(4, 4, 4))))
	floor := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(texture.NewConstant(core.NewVec3(0.5, 0.5, 0.5))))

	rng := rand.New(rand.NewSource(9))
	cam := camera.New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1, 0, 1, 0, 0)
	s := scene.Build([]geometry.Hittable{light, floor}, nil, cam, scene.ConstantAmbient{}, rng)

	img := Render(s, Options{Width: 16, Height: 16, Samples: 8, Threads: 2, Seed: 9})

	if got := img.Bounds(); got.Dx() != 16 || got.Dy() != 16 {
		t.Fatalf("image bounds = %v, want 16x16", got)
	}

	anyLit := false
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := img.At(x, y).(color.RGBA)
			if c.A != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %v, want 255", x, y, c.A)
			}
			if c.R > 0 || c.G > 0 || c.B > 0 {
				anyLit = true
			}
		}
	}
	if !anyLit {
		t.Error("rendered image is entirely black")
	}
}

func TestRenderIsDeterministicForFixedSeedAndThreadCount(t *testing.T) {
	build := func() *scene.Scene {
		rng := rand.New(rand.NewSource(3))
		sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(texture.NewConstant(core.NewVec3(0.7, 0.2, 0.2))))
		floor := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(texture.NewConstant(core.NewVec3(0.8, 0.8, 0.0))))
		cam := camera.New(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 1, 0, 1, 0, 0)
		return scene.Build([]geometry.Hittable{sphere, floor}, nil, cam, scene.ConstantAmbient{Color: core.NewVec3(0.5, 0.7, 1)}, rng)
	}

	opts := Options{Width: 16, Height: 16, Samples: 8, Threads: 1, Seed: 3}
	a := Render(build(), opts)
	b := Render(build(), opts)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs between identically seeded single-threaded renders: %v vs %v", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}
