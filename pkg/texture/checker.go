package texture

import (
	"math"

	"github.com/dlrow/pathtracer/pkg/core"
)

// Checker alternates between two child textures based on the sign of a
// 3D sine-product pattern. Period is the sines' frequency factor, so a
// larger value gives smaller checks.
type Checker struct {
	Odd, Even Texture
	Period    float64
}

// NewChecker creates a checker texture. Period defaults to 10 (matching
// the classic `sin(10x)*sin(10y)*sin(10z)` pattern) when zero.
func NewChecker(odd, even Texture, period float64) *Checker {
	if period == 0 {
		period = 10
	}
	return &Checker{Odd: odd, Even: even, Period: period}
}

// Value implements Texture.
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Period*p.X) * math.Sin(c.Period*p.Y) * math.Sin(c.Period*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
