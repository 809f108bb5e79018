package material

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/pdf"
	"github.com/dlrow/pathtracer/pkg/texture"
)

// Lambertian is a perfectly diffuse material.
type Lambertian struct {
	Base
	Albedo texture.Texture
}

// NewLambertian creates a Lambertian material with the given albedo texture.
func NewLambertian(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements Material.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Kind:        Diffuse,
		PDF:         pdf.NewCosine(hit.N),
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.P),
	}, true
}

// ScatteringPDF implements Material.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	cosine := hit.N.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}
