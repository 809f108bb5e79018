package texture

import (
	"image"

	"github.com/dlrow/pathtracer/pkg/core"
)

// Image samples a decoded raster image, clamping (u, 1-v) into the pixel
// grid. Decoding, format registration, resizing and caching live in
// pkg/loaders; this type only needs the already-decoded pixels.
type Image struct {
	Pixels image.Image
	Width  int
	Height int
}

// NewImage wraps a decoded image for texture sampling.
func NewImage(img image.Image) *Image {
	bounds := img.Bounds()
	return &Image{Pixels: img, Width: bounds.Dx(), Height: bounds.Dy()}
}

// Value implements Texture.
func (it *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	if it.Width <= 0 || it.Height <= 0 {
		return core.NewVec3(0, 1, 1) // cyan debug color, mirrors missing-texture convention
	}

	u = clamp01(u)
	v = 1 - clamp01(v)

	i := int(u * float64(it.Width))
	j := int(v * float64(it.Height))
	if i >= it.Width {
		i = it.Width - 1
	}
	if j >= it.Height {
		j = it.Height - 1
	}

	bounds := it.Pixels.Bounds()
	r, g, b, _ := it.Pixels.At(bounds.Min.X+i, bounds.Min.Y+j).RGBA()
	const maxChannel = 65535.0
	return core.NewVec3(float64(r)/maxChannel, float64(g)/maxChannel, float64(b)/maxChannel)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
