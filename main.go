package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"time"

	"github.com/dlrow/pathtracer/pkg/loaders"
	"github.com/dlrow/pathtracer/pkg/renderer"
)

// Config holds the command-line configuration for a single render.
type Config struct {
	Width   int
	Height  int
	Samples int
	Output  string
	Scene   string
	Threads int
}

func main() {
	config := parseFlags()
	if config.Scene == "" {
		fmt.Println("Error: --scene is required")
		flag.Usage()
		os.Exit(1)
	}

	fmt.Printf("Loading scene %s...\n", config.Scene)
	rng := rand.New(rand.NewSource(1))
	aspectRatio := float64(config.Width) / float64(config.Height)
	s, err := loaders.BuildScene(config.Scene, aspectRatio, rng)
	if err != nil {
		fmt.Printf("Error building scene: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d at %d samples/pixel on %d threads...\n",
		config.Width, config.Height, config.Samples, config.Threads)
	startTime := time.Now()

	img := renderer.Render(s, renderer.Options{
		Width:   config.Width,
		Height:  config.Height,
		Samples: config.Samples,
		Threads: config.Threads,
		Seed:    1,
	})

	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if err := writeImage(config.Output, img); err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", config.Output)
}

// parseFlags parses command line flags and returns configuration. Short
// and long forms of every flag share a destination, matching the --w/--h
// style conventions of the CLI surface this raytracer exposes.
func parseFlags() Config {
	config := Config{}

	flag.IntVar(&config.Width, "width", 200, "output image width")
	flag.IntVar(&config.Width, "w", 200, "output image width (shorthand)")
	flag.IntVar(&config.Height, "height", 100, "output image height")
	flag.IntVar(&config.Height, "h", 100, "output image height (shorthand)")
	flag.IntVar(&config.Samples, "samples", 100, "samples per pixel")
	flag.IntVar(&config.Samples, "s", 100, "samples per pixel (shorthand)")
	flag.StringVar(&config.Output, "output", "output.png", "output image path")
	flag.StringVar(&config.Output, "o", "output.png", "output image path (shorthand)")
	flag.StringVar(&config.Scene, "scene", "", "scene file path (required)")
	flag.StringVar(&config.Scene, "S", "", "scene file path (shorthand, required)")
	flag.IntVar(&config.Threads, "threads", 4, "number of render worker goroutines")
	flag.IntVar(&config.Threads, "t", 4, "number of render worker goroutines (shorthand)")
	flag.Parse()

	return config
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return nil
}
