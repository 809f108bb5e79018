// Package loaders reads a scene description off disk: the TOML scene
// file, its referenced textures, and any glTF mesh assets, and builds the
// in-memory pkg/scene.Scene the renderer runs against.
package loaders

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// SceneFile is the decoded shape of a scene's TOML document.
type SceneFile struct {
	Camera    CameraConfig              `toml:"camera"`
	Textures  map[string]TextureConfig  `toml:"textures"`
	Materials map[string]MaterialConfig `toml:"materials"`
	Objects   map[string]ObjectConfig   `toml:"objects"`
	World     WorldConfig               `toml:"world"`
}

// CameraConfig is the `[camera]` table.
type CameraConfig struct {
	Position  [3]float64 `toml:"position"`
	Look      [3]float64 `toml:"look"`
	FocusDist float64    `toml:"focus_dist"`
	Aperture  float64    `toml:"aperture"`
	Fov       float64    `toml:"fov"`
	T0        float64    `toml:"t0"`
	T1        float64    `toml:"t1"`
}

// TextureConfig is one `[textures.<name>]` table.
type TextureConfig struct {
	Type       string     `toml:"type"` // "constant" | "perlin" | "image"
	Color      [3]float64 `toml:"color"`
	Scale      float64    `toml:"scale"`
	Turbulence int        `toml:"turbulence"`
	Path       string     `toml:"path"`
}

// MaterialConfig is one `[materials.<name>]` table.
type MaterialConfig struct {
	Type     string     `toml:"type"` // "lambertian" | "dielectric" | "metal" | "diffuse_light"
	Texture  string     `toml:"texture"`
	RefIndex float64    `toml:"ref_index"`
	Albedo   [3]float64 `toml:"albedo"`
	Fuzz     float64    `toml:"fuzz"`
}

// ObjectConfig is one `[objects.<name>]` table. Fields not relevant to the
// object's Type are left zero.
type ObjectConfig struct {
	Type      string     `toml:"type"` // "sphere" | "xyrect" | "xzrect" | "yzrect" | "cube" | "triangle" | "mesh"
	Material  string     `toml:"material"`
	Position  [3]float64 `toml:"position"`
	Radius    float64    `toml:"radius"`
	Bounds    [4]float64 `toml:"bounds"`
	K         float64    `toml:"k"`
	Flip      bool       `toml:"flip"`
	Min       [3]float64 `toml:"min"`
	Max       [3]float64 `toml:"max"`
	RotateY   float64    `toml:"rotate_y"`
	Translate [3]float64 `toml:"translate"`
	V0        [3]float64 `toml:"v0"`
	V1        [3]float64 `toml:"v1"`
	V2        [3]float64 `toml:"v2"`
	Path      string     `toml:"path"` // glTF asset path for type="mesh"
	Important bool       `toml:"important"`
}

// WorldConfig is the optional `[world]` table.
type WorldConfig struct {
	Ambient AmbientConfig `toml:"ambient"`
}

// AmbientConfig is the `[world.ambient]` sub-table.
type AmbientConfig struct {
	Type  string     `toml:"type"` // "constant" | "blended"
	Color [3]float64 `toml:"color"`
	Start [3]float64 `toml:"start"`
	End   [3]float64 `toml:"end"`
}

// DecodeFile reads and parses the scene file at path.
func DecodeFile(path string) (*SceneFile, error) {
	var sf SceneFile
	if _, err := toml.DecodeFile(path, &sf); err != nil {
		return nil, fmt.Errorf("loaders: decode scene %q: %w", path, err)
	}
	return &sf, nil
}
