// Package renderer drives the tiled, multi-threaded rendering loop: it
// partitions the image into tiles, farms them out to a worker pool, and
// assembles the results into a final image.
package renderer

import (
	"image"
	"image/color"
	"math/rand"
	"sync"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/integrator"
	"github.com/dlrow/pathtracer/pkg/scene"
)

// Options configures a render.
type Options struct {
	Width, Height int
	Samples       int
	Threads       int
	Seed          int64
}

// Tile is a rectangular region of the image, [X0,X1) x [Y0,Y1).
type Tile struct {
	X0, Y0, X1, Y1 int
}

// tileResult carries a finished tile's pixels back to the assembler.
type tileResult struct {
	tile   Tile
	pixels []core.Vec3 // row-major within the tile, length (X1-X0)*(Y1-Y0)
}

// tiles partitions a Width x Height image into four equal quadrants.
func tiles(width, height int) []Tile {
	midX, midY := width/2, height/2
	return []Tile{
		{X0: 0, Y0: 0, X1: midX, Y1: midY},
		{X0: midX, Y0: 0, X1: width, Y1: midY},
		{X0: 0, Y0: midY, X1: midX, Y1: height},
		{X0: midX, Y0: midY, X1: width, Y1: height},
	}
}

// Render traces s with the given options and returns the final image, top
// row first. Work is partitioned into tiles and distributed across
// opts.Threads worker goroutines over a shared channel; each worker owns
// its own *rand.Rand seeded from opts.Seed so results are reproducible
// for a fixed thread count and tile order.
func Render(s *scene.Scene, opts Options) *image.RGBA {
	work := tiles(opts.Width, opts.Height)

	tasks := make(chan Tile, len(work))
	results := make(chan tileResult, len(work))

	threads := opts.Threads
	if threads < 1 {
		threads = 1
	}

	var wg sync.WaitGroup
	for worker := 0; worker < threads; worker++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(opts.Seed + int64(workerID)))
			for tile := range tasks {
				results <- tileResult{tile: tile, pixels: renderTile(s, opts, tile, rng)}
			}
		}(worker)
	}

	for _, t := range work {
		tasks <- t
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for res := range results {
		writeTile(img, opts, res)
	}
	return img
}

// renderTile traces every pixel in tile at opts.Samples samples each,
// using stratified jitter within the pixel footprint.
func renderTile(s *scene.Scene, opts Options, tile Tile, rng *rand.Rand) []core.Vec3 {
	pixels := make([]core.Vec3, (tile.X1-tile.X0)*(tile.Y1-tile.Y0))
	idx := 0
	for j := tile.Y0; j < tile.Y1; j++ {
		for i := tile.X0; i < tile.X1; i++ {
			var sum core.Vec3
			for sample := 0; sample < opts.Samples; sample++ {
				u := (float64(i) + rng.Float64()) / float64(opts.Width)
				v := (float64(j) + rng.Float64()) / float64(opts.Height)
				ray := s.Camera.GetRay(u, v, rng)
				c := integrator.Radiance(ray, s, 0, rng)
				if c.HasNaN() {
					continue
				}
				sum = sum.Add(c)
			}
			pixels[idx] = sum.Multiply(1.0 / float64(opts.Samples))
			idx++
		}
	}
	return pixels
}

// writeTile gamma-corrects, quantizes, and copies one finished tile into
// img, flipping vertically so row 0 of the render (v=0, the bottom of the
// image plane) lands at the bottom of the output image.
func writeTile(img *image.RGBA, opts Options, res tileResult) {
	const gamma = 2.0
	idx := 0
	for j := res.tile.Y0; j < res.tile.Y1; j++ {
		outY := opts.Height - 1 - j
		for i := res.tile.X0; i < res.tile.X1; i++ {
			c := res.pixels[idx].Clamp(0, 1).GammaCorrect(gamma)
			idx++
			img.Set(i, outY, color.RGBA{
				R: quantize(c.X),
				G: quantize(c.Y),
				B: quantize(c.Z),
				A: 255,
			})
		}
	}
}

func quantize(c float64) uint8 {
	v := int(255.99 * c)
	return uint8(max(0, min(255, v)))
}
