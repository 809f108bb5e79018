// Package integrator implements the Monte Carlo light transport estimator:
// given a scene and a primary ray, it returns a noisy but unbiased
// estimate of the radiance arriving along that ray.
package integrator

import (
	"math"
	"math/rand"

	"github.com/dlrow/pathtracer/pkg/core"
	"github.com/dlrow/pathtracer/pkg/material"
	"github.com/dlrow/pathtracer/pkg/pdf"
	"github.com/dlrow/pathtracer/pkg/scene"
)

// MaxDepth bounds path length: beyond this many bounces a path contributes
// nothing further, which biases the estimator only in proportion to how
// rarely a path survives that long at typical albedos.
const MaxDepth = 50

// Radiance estimates the color seen along ray by recursively sampling
// scatter events, using next-event estimation against the scene's
// importance targets (usually area lights) mixed with each material's own
// BSDF sampling. A bounce whose result contains a NaN - which can happen
// at grazing angles or with degenerate PDFs - has its scattered
// contribution dropped (only the emitted term is returned) rather than
// allowed to poison the pixel average; infinite values are not checked.
func Radiance(ray core.Ray, s *scene.Scene, depth int, rng *rand.Rand) core.Vec3 {
	hit, ok := s.Hit(ray, 1e-3, math.Inf(1))
	if !ok {
		return s.Ambient.Value(ray.Direction)
	}

	emitted := hit.Material.Emit(ray, hit, hit.U, hit.V, hit.P)

	if depth >= MaxDepth {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, rng)
	if !didScatter {
		return emitted
	}

	if scatter.Kind == material.Specular {
		incoming := Radiance(scatter.SpecularRay, s, depth+1, rng)
		result := emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
		if result.HasNaN() {
			return emitted
		}
		return result
	}

	samplingPDF := scatter.PDF
	if s.HasImportanceTargets() {
		lightPDF := pdf.NewHittable(hit.P, s.Importance)
		samplingPDF = pdf.NewMixture(lightPDF, scatter.PDF)
	}

	direction := samplingPDF.Generate(rng)
	scattered := core.NewRayAtTime(hit.P, direction, ray.Time)

	pdfValue := samplingPDF.Value(direction)
	if pdfValue <= 0 {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	incoming := Radiance(scattered, s, depth+1, rng)

	weight := scatteringPDF / pdfValue
	contribution := scatter.Attenuation.MultiplyVec(incoming).Multiply(weight)
	result := emitted.Add(contribution)
	if result.HasNaN() {
		return emitted
	}
	return result
}
