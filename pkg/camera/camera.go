// Package camera implements the thin-lens perspective camera used to
// generate primary rays.
package camera

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
)

// Camera is a thin-lens perspective camera. Rays leave a disk of radius
// LensRadius centered on Origin rather than a single point, giving finite
// depth of field; a zero LensRadius reproduces an ideal pinhole camera.
// Each ray is also stamped with a uniformly sampled time in
// [Time0,Time1] so moving geometry can be rendered with motion blur.
type Camera struct {
	Origin          core.Vec3
	LowerLeftCorner core.Vec3
	Horizontal      core.Vec3
	Vertical        core.Vec3
	U, V, W         core.Vec3
	LensRadius      float64
	Time0, Time1    float64
}

// New builds a camera looking from lookFrom toward lookAt, with the given
// up hint, vertical field of view in degrees, aspect ratio, aperture
// (twice the lens radius), focus distance, and shutter interval.
func New(lookFrom, lookAt, up core.Vec3, vFovDegrees, aspectRatio, aperture, focusDistance, time0, time1 float64) *Camera {
	theta := vFovDegrees * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspectRatio * halfHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := lookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))
	horizontal := u.Multiply(2 * halfWidth * focusDistance)
	vertical := v.Multiply(2 * halfHeight * focusDistance)

	return &Camera{
		Origin:          origin,
		LowerLeftCorner: lowerLeftCorner,
		Horizontal:      horizontal,
		Vertical:        vertical,
		U:               u,
		V:               v,
		W:               w,
		LensRadius:      aperture / 2,
		Time0:           time0,
		Time1:           time1,
	}
}

// GetRay returns the ray through normalized image-plane coordinates (s,t),
// jittered across the lens aperture and stamped with a random shutter
// time.
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) core.Ray {
	var offset core.Vec3
	if c.LensRadius > 0 {
		rd := core.RandomInUnitDisk(rng).Multiply(c.LensRadius)
		offset = c.U.Multiply(rd.X).Add(c.V.Multiply(rd.Y))
	}

	target := c.LowerLeftCorner.Add(c.Horizontal.Multiply(s)).Add(c.Vertical.Multiply(t))
	origin := c.Origin.Add(offset)
	direction := target.Subtract(origin)

	time := c.Time0
	if c.Time1 > c.Time0 {
		time = c.Time0 + rng.Float64()*(c.Time1-c.Time0)
	}
	return core.NewRayAtTime(origin, direction, time)
}
