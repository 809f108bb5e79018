package material

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/pdf"
	"github.com/dlrow/pathtracer/pkg/texture"
)

// Isotropic is the phase function of a homogeneous participating medium:
// it scatters incoming light uniformly in every direction.
type Isotropic struct {
	Base
	Albedo texture.Texture
}

// NewIsotropic creates an isotropic volume material.
func NewIsotropic(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements Material.
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Kind:        Diffuse,
		PDF:         pdf.NewUniformSphere(),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.P),
	}, true
}

// ScatteringPDF implements Material: uniform over the sphere.
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
