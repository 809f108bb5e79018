package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru"
	_ "golang.org/x/image/bmp"

	"github.com/dlrow/pathtracer/pkg/texture"
)

func absolutePath(path string) (string, error) {
	return filepath.Abs(path)
}

// maxTextureDimension bounds a decoded texture's longest side. Designer
// art frequently arrives at print resolution; nothing in this renderer
// samples a texture more finely than its target pixel footprint, so
// anything larger than this is wasted decode and memory.
const maxTextureDimension = 2048

// decodeCacheSize is the number of distinct texture files kept decoded in
// memory at once; scenes referencing more distinct textures than this will
// simply re-decode the least recently used ones.
const decodeCacheSize = 64

var decodeCache *lru.Cache

func init() {
	c, err := lru.New(decodeCacheSize)
	if err != nil {
		panic(fmt.Sprintf("loaders: building texture decode cache: %v", err))
	}
	decodeCache = c
}

// LoadImageTexture decodes the raster file at path, resampling it down to
// maxTextureDimension if needed, and memoizes the result by absolute path
// so repeated references across materials decode it only once.
func LoadImageTexture(path string) (*texture.Image, error) {
	abs, err := absolutePath(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: resolve texture path %q: %w", path, err)
	}

	if cached, ok := decodeCache.Get(abs); ok {
		return cached.(*texture.Image), nil
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("loaders: open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxTextureDimension || bounds.Dy() > maxTextureDimension {
		img = imaging.Fit(img, maxTextureDimension, maxTextureDimension, imaging.Lanczos)
	}

	result := texture.NewImage(img)
	decodeCache.Add(abs, result)
	return result, nil
}
