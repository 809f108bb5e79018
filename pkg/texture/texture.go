// Package texture implements the surface-color lookups materials sample
// during shading: solid colors, procedural checker and Perlin patterns, and
// decoded raster images.
package texture

import "github.com/dlrow/pathtracer/pkg/core"

// Texture maps a surface parameterization to an RGB color.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// Constant returns the same color everywhere.
type Constant struct {
	Color core.Vec3
}

// NewConstant creates a constant-color texture.
func NewConstant(color core.Vec3) *Constant {
	return &Constant{Color: color}
}

// Value implements Texture.
func (c *Constant) Value(u, v float64, p core.Vec3) core.Vec3 {
	return c.Color
}
