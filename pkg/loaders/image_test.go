package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "texture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return path
}

func TestLoadImageTextureDecodesAndCaches(t *testing.T) {
	path := writeTestPNG(t, 8, 8)

	first, err := LoadImageTexture(path)
	if err != nil {
		t.Fatalf("LoadImageTexture() error = %v", err)
	}
	second, err := LoadImageTexture(path)
	if err != nil {
		t.Fatalf("LoadImageTexture() second call error = %v", err)
	}
	if first != second {
		t.Error("LoadImageTexture() did not return the cached instance on a repeat call")
	}
}

func TestLoadImageTextureDownsizesOversizedTextures(t *testing.T) {
	path := writeTestPNG(t, maxTextureDimension+100, 50)

	tex, err := LoadImageTexture(path)
	if err != nil {
		t.Fatalf("LoadImageTexture() error = %v", err)
	}
	if tex.Width > maxTextureDimension || tex.Height > maxTextureDimension {
		t.Errorf("decoded texture is %dx%d, want both dimensions <= %d", tex.Width, tex.Height, maxTextureDimension)
	}
}

func TestLoadImageTextureMissingFileErrors(t *testing.T) {
	if _, err := LoadImageTexture(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadImageTexture() error = nil, want an error for a missing file")
	}
}
