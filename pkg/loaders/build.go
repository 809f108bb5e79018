package loaders

import (
	"fmt"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/camera"
	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/geometry"
	"github.com/dlrow/pathtracer/pkg/material"
	"github.com/dlrow/pathtracer/pkg/scene"
	"github.com/dlrow/pathtracer/pkg/texture"
)

// BuildScene reads the scene file at path and every asset it references,
// returning a fully constructed scene.Scene ready to render. aspectRatio
// comes from the caller's requested output dimensions, since the scene
// file itself is resolution-independent.
func BuildScene(path string, aspectRatio float64, rng *rand.Rand) (*scene.Scene, error) {
	sf, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	textures, err := buildTextures(sf.Textures)
	if err != nil {
		return nil, err
	}

	materials, err := buildMaterials(sf.Materials, textures)
	if err != nil {
		return nil, err
	}

	shapes, important, err := buildObjects(sf.Objects, materials, rng)
	if err != nil {
		return nil, err
	}
	if len(shapes) == 0 {
		// An empty world is valid (scenario 1 of the end-to-end suite): the
		// renderer just sees the ambient on every ray.
		shapes = []geometry.Hittable{geometry.NewList()}
	}

	cam := buildCamera(sf.Camera, aspectRatio)
	ambient := buildAmbient(sf.World.Ambient)

	return scene.Build(shapes, important, cam, ambient, rng), nil
}

func buildTextures(configs map[string]TextureConfig) (map[string]texture.Texture, error) {
	result := make(map[string]texture.Texture, len(configs))
	for name, cfg := range configs {
		switch cfg.Type {
		case "constant":
			result[name] = texture.NewConstant(vec3From(cfg.Color))
		case "perlin":
			// turbulence=0 selects the marble variant (sin(scale*z + 10*turb(p)));
			// any positive value selects raw turbulence with that many octaves.
			mode := texture.PerlinTurbulence
			if cfg.Turbulence == 0 {
				mode = texture.PerlinMarble
			}
			result[name] = texture.NewPerlin(cfg.Scale, cfg.Turbulence, mode, rand.New(rand.NewSource(1)))
		case "image":
			img, err := LoadImageTexture(cfg.Path)
			if err != nil {
				return nil, fmt.Errorf("loaders: textures.%s: %w", name, err)
			}
			result[name] = img
		default:
			return nil, fmt.Errorf("loaders: textures.%s: unknown type %q", name, cfg.Type)
		}
	}
	return result, nil
}

func buildMaterials(configs map[string]MaterialConfig, textures map[string]texture.Texture) (map[string]material.Material, error) {
	result := make(map[string]material.Material, len(configs))
	for name, cfg := range configs {
		switch cfg.Type {
		case "lambertian":
			tex, err := lookupTexture(textures, cfg.Texture, name)
			if err != nil {
				return nil, err
			}
			result[name] = material.NewLambertian(tex)
		case "diffuse_light":
			tex, err := lookupTexture(textures, cfg.Texture, name)
			if err != nil {
				return nil, err
			}
			result[name] = material.NewDiffuseLight(tex)
		case "dielectric":
			result[name] = material.NewDielectric(cfg.RefIndex)
		case "metal":
			result[name] = material.NewMetal(vec3From(cfg.Albedo), cfg.Fuzz)
		default:
			return nil, fmt.Errorf("loaders: materials.%s: unknown type %q", name, cfg.Type)
		}
	}
	return result, nil
}

func lookupTexture(textures map[string]texture.Texture, name, materialName string) (texture.Texture, error) {
	tex, ok := textures[name]
	if !ok {
		return nil, fmt.Errorf("loaders: materials.%s: references unknown texture %q", materialName, name)
	}
	return tex, nil
}

func buildObjects(configs map[string]ObjectConfig, materials map[string]material.Material, rng *rand.Rand) ([]geometry.Hittable, []geometry.Hittable, error) {
	var shapes, important []geometry.Hittable
	for name, cfg := range configs {
		mat, ok := materials[cfg.Material]
		if !ok {
			return nil, nil, fmt.Errorf("loaders: objects.%s: references unknown material %q", name, cfg.Material)
		}

		shape, err := buildObject(name, cfg, mat, rng)
		if err != nil {
			return nil, nil, err
		}

		shapes = append(shapes, shape)
		if cfg.Important || mat.IsImportantSampleSource() {
			important = append(important, shape)
		}
	}
	return shapes, important, nil
}

func buildObject(name string, cfg ObjectConfig, mat material.Material, rng *rand.Rand) (geometry.Hittable, error) {
	switch cfg.Type {
	case "sphere":
		return geometry.NewSphere(vec3From(cfg.Position), cfg.Radius, mat), nil
	case "xyrect":
		return maybeFlip(geometry.NewXYRect(cfg.Bounds[0], cfg.Bounds[1], cfg.Bounds[2], cfg.Bounds[3], cfg.K, mat), cfg.Flip), nil
	case "xzrect":
		return maybeFlip(geometry.NewXZRect(cfg.Bounds[0], cfg.Bounds[1], cfg.Bounds[2], cfg.Bounds[3], cfg.K, mat), cfg.Flip), nil
	case "yzrect":
		return maybeFlip(geometry.NewYZRect(cfg.Bounds[0], cfg.Bounds[1], cfg.Bounds[2], cfg.Bounds[3], cfg.K, mat), cfg.Flip), nil
	case "cube":
		var shape geometry.Hittable = geometry.NewBox(vec3From(cfg.Min), vec3From(cfg.Max), mat)
		if cfg.RotateY != 0 {
			shape = geometry.NewRotateY(shape, cfg.RotateY)
		}
		if cfg.Translate != [3]float64{} {
			shape = geometry.NewTranslate(shape, vec3From(cfg.Translate))
		}
		return shape, nil
	case "triangle":
		return geometry.NewTriangle(vec3From(cfg.V0), vec3From(cfg.V1), vec3From(cfg.V2), core.Vec2{}, core.Vec2{}, core.Vec2{}, mat), nil
	case "mesh":
		return LoadMesh(cfg.Path, mat, rng)
	default:
		return nil, fmt.Errorf("loaders: objects.%s: unknown type %q", name, cfg.Type)
	}
}

func maybeFlip(r *geometry.Rect, flip bool) geometry.Hittable {
	if !flip {
		return r
	}
	return geometry.NewFlipNormals(r)
}

func buildCamera(cfg CameraConfig, aspectRatio float64) *camera.Camera {
	up := core.NewVec3(0, 1, 0)
	return camera.New(vec3From(cfg.Position), vec3From(cfg.Look), up, cfg.Fov, aspectRatio, cfg.Aperture, cfg.FocusDist, cfg.T0, cfg.T1)
}

func buildAmbient(cfg AmbientConfig) scene.Ambient {
	switch cfg.Type {
	case "blended":
		return scene.BlendedAmbient{Bottom: vec3From(cfg.Start), Top: vec3From(cfg.End)}
	case "constant", "":
		return scene.ConstantAmbient{Color: vec3From(cfg.Color)}
	default:
		return scene.ConstantAmbient{Color: core.NewVec3(0, 0, 0)}
	}
}

func vec3From(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
