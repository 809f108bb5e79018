// Package material implements the surface and volume shading model:
// materials that scatter or absorb incoming rays, and the PDFs/textures
// they lean on to do it.
package material

import (
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/pdf"
)

// HitRecord is produced by a geometry hit query and carries everything the
// integrator and material need to shade the point: the ray parameter, the
// world-space point, texture coordinates, the outward-facing normal, and
// the hit material.
type HitRecord struct {
	T         float64
	P         core.Vec3
	U, V      float64
	N         core.Vec3
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients N against the ray direction and records which face
// was hit, so outward normals always point into the half-space the ray
// came from.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.N = outwardNormal
	} else {
		h.N = outwardNormal.Negate()
	}
}

// ScatterKind tags a ScatterRecord as either a delta (specular) interaction
// or a PDF-sampled diffuse interaction. The integrator's downstream logic
// for these two cases is fundamentally different (skip MIS weighting vs
// apply it), so this stays a tagged variant rather than being unified
// behind a single PDF interface.
type ScatterKind int

const (
	// Specular scattering traces a single deterministic ray with no PDF
	// weighting, as with a mirror reflection or a glass refraction.
	Specular ScatterKind = iota
	// Diffuse scattering samples a direction from an attached PDF and
	// weights the result by the material's own scattering PDF.
	Diffuse
)

// ScatterRecord is the result of a material scatter query.
type ScatterRecord struct {
	Kind        ScatterKind
	SpecularRay core.Ray // valid when Kind == Specular
	PDF         pdf.PDF  // valid when Kind == Diffuse
	Attenuation core.Vec3
}

// Material scatters (or absorbs) an incoming ray at a hit point.
type Material interface {
	// Scatter returns the scattered ray/PDF and attenuation, or ok=false if
	// the material absorbs the ray (e.g. a light).
	Scatter(rayIn core.Ray, hit *HitRecord, rng *rand.Rand) (ScatterRecord, bool)
	// ScatteringPDF evaluates the material's own PDF for a specific
	// scattered direction. Zero for materials that never produce a
	// Diffuse ScatterRecord.
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64
	// Emit returns emitted radiance at the hit point; zero for
	// non-emissive materials.
	Emit(rayIn core.Ray, hit *HitRecord, u, v float64, p core.Vec3) core.Vec3
	// IsImportantSampleSource reports whether geometry using this material
	// should be added to the scene's importance set for next-event
	// estimation. True only for emissive materials.
	IsImportantSampleSource() bool
}

// Base supplies the default Material behavior (no scattering PDF, no
// emission, not an importance-sample source) so each concrete material
// only implements what it overrides.
type Base struct{}

// ScatteringPDF implements Material's default: zero.
func (Base) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emit implements Material's default: black.
func (Base) Emit(rayIn core.Ray, hit *HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// IsImportantSampleSource implements Material's default: false.
func (Base) IsImportantSampleSource() bool {
	return false
}
