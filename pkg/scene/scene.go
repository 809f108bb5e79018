// Package scene assembles a world of geometry, a camera, and an ambient
// light model into the root object the integrator renders against.
package scene

import (
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/camera"
	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/geometry"
	"github.com/dlrow/pathtracer/pkg/material"
)

// Ambient is the background radiance seen when a ray escapes the scene
// without hitting anything.
type Ambient interface {
	Value(direction core.Vec3) core.Vec3
}

// ConstantAmbient is a uniform background color.
type ConstantAmbient struct {
	Color core.Vec3
}

// Value implements Ambient.
func (a ConstantAmbient) Value(direction core.Vec3) core.Vec3 {
	return a.Color
}

// BlendedAmbient linearly interpolates between Bottom and Top based on the
// ray direction's vertical component, giving the familiar sky gradient.
type BlendedAmbient struct {
	Bottom, Top core.Vec3
}

// Value implements Ambient.
func (a BlendedAmbient) Value(direction core.Vec3) core.Vec3 {
	unit := direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return a.Bottom.Multiply(1 - t).Add(a.Top.Multiply(t))
}

// Scene is a fully built, renderable world: a BVH-accelerated hierarchy of
// every shape, a separate target for direct-light importance sampling,
// the camera that generates primary rays, and the ambient model evaluated
// on ray escape.
type Scene struct {
	Root       geometry.Hittable
	Importance geometry.Hittable
	Camera     *camera.Camera
	Ambient    Ambient
}

// Build assembles a Scene from its already-constructed parts. shapes is
// every piece of geometry in the world; importantShapes is the subset
// (typically area lights) that the integrator should sample directly
// rather than rely on BSDF sampling alone. Building the acceleration
// structure consumes randomness for its axis choices, so rng should be
// seeded deterministically by the caller for reproducible renders.
func Build(shapes []geometry.Hittable, importantShapes []geometry.Hittable, cam *camera.Camera, ambient Ambient, rng *rand.Rand) *Scene {
	root := geometry.NewBVH(shapes, 0, 1, rng)

	var importance geometry.Hittable
	if len(importantShapes) > 0 {
		importance = geometry.NewList(importantShapes...)
	}

	return &Scene{Root: root, Importance: importance, Camera: cam, Ambient: ambient}
}

// Hit tests the whole scene for the closest intersection in [tMin,tMax].
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if s.Root == nil {
		return nil, false
	}
	return s.Root.Hit(ray, tMin, tMax)
}

// HasImportanceTargets reports whether the scene has any shapes registered
// for direct-light sampling.
func (s *Scene) HasImportanceTargets() bool {
	return s.Importance != nil
}
