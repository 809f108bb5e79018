package loaders

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

const minimalScene = `
[camera]
position = [0, 0, 0]
look = [0, 0, -1]
focus_dist = 1
aperture = 0
fov = 90
t0 = 0
t1 = 0

[textures.red]
type = "constant"
color = [0.8, 0.2, 0.2]

[textures.sky]
type = "constant"
color = [0.5, 0.7, 1.0]

[materials.matte]
type = "lambertian"
texture = "red"

[objects.ball]
type = "sphere"
material = "matte"
position = [0, 0, -1]
radius = 0.5

[world.ambient]
type = "constant"
color = [0.5, 0.7, 1.0]
`

const emptyScene = `
[camera]
position = [0, 0, 0]
look = [0, 0, -1]
focus_dist = 1
aperture = 0
fov = 90
`

func writeSceneFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	return path
}

func TestDecodeFileParsesMinimalScene(t *testing.T) {
	path := writeSceneFile(t, minimalScene)

	sf, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if sf.Camera.Fov != 90 {
		t.Errorf("Camera.Fov = %v, want 90", sf.Camera.Fov)
	}
	if tex, ok := sf.Textures["red"]; !ok || tex.Type != "constant" {
		t.Errorf("Textures[\"red\"] = %+v, want a constant texture", tex)
	}
	if obj, ok := sf.Objects["ball"]; !ok || obj.Type != "sphere" {
		t.Errorf("Objects[\"ball\"] = %+v, want a sphere", obj)
	}
}

func TestDecodeFileMissingFileReturnsWrappedError(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("DecodeFile() error = nil, want non-nil for a missing file")
	}
}

func TestBuildSceneEndToEnd(t *testing.T) {
	path := writeSceneFile(t, minimalScene)
	rng := rand.New(rand.NewSource(1))

	s, err := BuildScene(path, 1.0, rng)
	if err != nil {
		t.Fatalf("BuildScene() error = %v", err)
	}
	if s.Camera == nil {
		t.Fatal("BuildScene() returned a scene with no camera")
	}
	if s.Root == nil {
		t.Fatal("BuildScene() returned a scene with no root geometry")
	}
}

func TestBuildSceneWithNoObjectsIsValid(t *testing.T) {
	path := writeSceneFile(t, emptyScene)
	rng := rand.New(rand.NewSource(1))

	s, err := BuildScene(path, 1.0, rng)
	if err != nil {
		t.Fatalf("BuildScene() error = %v", err)
	}
	if s.Root == nil {
		t.Fatal("BuildScene() on an object-less scene returned a nil root")
	}
}

func TestBuildSceneUnknownTextureTypeErrors(t *testing.T) {
	path := writeSceneFile(t, `
[camera]
position = [0, 0, 0]
look = [0, 0, -1]
focus_dist = 1
aperture = 0
fov = 90

[textures.bogus]
type = "holographic"
`)
	if _, err := BuildScene(path, 1.0, rand.New(rand.NewSource(1))); err == nil {
		t.Error("BuildScene() error = nil, want an error for an unknown texture type")
	}
}

func TestBuildSceneMaterialReferencingMissingTextureErrors(t *testing.T) {
	path := writeSceneFile(t, `
[camera]
position = [0, 0, 0]
look = [0, 0, -1]
focus_dist = 1
aperture = 0
fov = 90

[materials.matte]
type = "lambertian"
texture = "nonexistent"
`)
	if _, err := BuildScene(path, 1.0, rand.New(rand.NewSource(1))); err == nil {
		t.Error("BuildScene() error = nil, want an error for a dangling texture reference")
	}
}

func TestBuildSceneObjectReferencingMissingMaterialErrors(t *testing.T) {
	path := writeSceneFile(t, `
[camera]
position = [0, 0, 0]
look = [0, 0, -1]
focus_dist = 1
aperture = 0
fov = 90

[objects.ball]
type = "sphere"
material = "nonexistent"
position = [0, 0, -1]
radius = 0.5
`)
	if _, err := BuildScene(path, 1.0, rand.New(rand.NewSource(1))); err == nil {
		t.Error("BuildScene() error = nil, want an error for a dangling material reference")
	}
}

func TestBuildSceneDiffuseLightIsAutomaticallyImportant(t *testing.T) {
	path := writeSceneFile(t, `
[camera]
position = [0, 0, 0]
look = [0, 0, -1]
focus_dist = 1
aperture = 0
fov = 90

[textures.bright]
type = "constant"
color = [4, 4, 4]

[materials.light]
type = "diffuse_light"
texture = "bright"

[objects.panel]
type = "xzrect"
material = "light"
bounds = [-1, 1, -1, 1]
k = 2
`)
	s, err := BuildScene(path, 1.0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BuildScene() error = %v", err)
	}
	if !s.HasImportanceTargets() {
		t.Error("HasImportanceTargets() = false, want true for a scene containing a diffuse light")
	}
}
