package texture

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
)

const perlinPointCount = 256

// perlinNoise is the gradient-noise generator backing the Perlin texture:
// 256 random unit gradient vectors plus three independent 256-entry
// permutation tables for x, y, z lattice indexing.
type perlinNoise struct {
	ranVec [perlinPointCount]core.Vec3
	permX  [perlinPointCount]int
	permY  [perlinPointCount]int
	permZ  [perlinPointCount]int
}

func newPerlinNoise(rng *rand.Rand) *perlinNoise {
	p := &perlinNoise{}
	for i := range p.ranVec {
		p.ranVec[i] = core.NewVec3(2*rng.Float64()-1, 2*rng.Float64()-1, 2*rng.Float64()-1).Normalize()
	}
	p.permX = generatePerm(rng)
	p.permY = generatePerm(rng)
	p.permZ = generatePerm(rng)
	return p
}

func generatePerm(rng *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// noise returns trilinearly interpolated, Hermite-smoothed gradient noise
// at p, in roughly [-1,1].
func (pn *perlinNoise) noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.ranVec[idx]
			}
		}
	}
	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// turbulence sums |noise| over depth octaves, halving amplitude and
// doubling frequency each octave, to produce a marble-like pattern.
func (pn *perlinNoise) turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(pn.noise(temp))
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return accum
}

// PerlinMode selects how the Perlin texture combines noise into a color.
type PerlinMode int

const (
	// PerlinMarble uses a sine-distorted-by-turbulence grayscale pattern.
	PerlinMarble PerlinMode = iota
	// PerlinTurbulence returns raw turbulence, replicated across channels.
	PerlinTurbulence
)

// Perlin is a turbulent gradient-noise texture.
type Perlin struct {
	noise *perlinNoise
	Scale float64
	Depth int
	Mode  PerlinMode
}

// NewPerlin creates a Perlin texture with the given spatial scale and
// turbulence octave depth, seeded from rng.
func NewPerlin(scale float64, depth int, mode PerlinMode, rng *rand.Rand) *Perlin {
	if depth <= 0 {
		depth = 7
	}
	return &Perlin{noise: newPerlinNoise(rng), Scale: scale, Depth: depth, Mode: mode}
}

// Value implements Texture.
func (pt *Perlin) Value(u, v float64, p core.Vec3) core.Vec3 {
	scaled := p.Multiply(pt.Scale)
	if pt.Mode == PerlinTurbulence {
		t := pt.noise.turbulence(scaled, pt.Depth)
		return core.NewVec3(t, t, t)
	}
	gray := 0.5 * (1 + math.Sin(scaled.Z+10*pt.noise.turbulence(p, pt.Depth)))
	return core.NewVec3(gray, gray, gray)
}
