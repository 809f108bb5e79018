package material

import (
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/texture"
)

// DiffuseLight emits light from its front face and otherwise absorbs.
type DiffuseLight struct {
	Base
	Emission texture.Texture
}

// NewDiffuseLight creates an emissive material from an emission texture
// (components may exceed 1).
func NewDiffuseLight(emission texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements Material: lights never scatter.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emit implements Material: emits only out of the front face, as recorded
// in hit.FrontFace (hit.N has already been turned to face the ray).
func (d *DiffuseLight) Emit(rayIn core.Ray, hit *HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emission.Value(u, v, p)
}

// IsImportantSampleSource implements Material: lights seed the importance set.
func (d *DiffuseLight) IsImportantSampleSource() bool {
	return true
}
