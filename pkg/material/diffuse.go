package material

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// Diffuse is a Lambertian reflector
type Diffuse struct {
	Albedo ColorSource
}

// NewDiffuse creates a diffuse material with a solid albedo
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: NewSolidColor(albedo)}
}

// NewTexturedDiffuse creates a diffuse material with a textured albedo
func NewTexturedDiffuse(albedo ColorSource) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Sample draws a cosine-weighted direction in the upper hemisphere. The
// f·cosθ/pdf terms cancel, leaving the plain albedo as the weight.
func (d *Diffuse) Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sample core.Vec2) (SampledDirection, bool) {
	if wo.Z < 0 {
		return SampledDirection{}, false
	}

	wi := core.SampleCosineHemisphere(sample)
	return SampledDirection{
		Wi:     wi,
		Weight: d.Albedo.Evaluate(uv, p),
	}, true
}

// Evaluate returns albedo·cosθ/π, zero below the horizon
func (d *Diffuse) Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return d.Albedo.Evaluate(uv, p).Multiply(d.PDF(wo, wi, uv, p))
}

// PDF returns the cosine-hemisphere density for wi
func (d *Diffuse) PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64 {
	return core.PdfCosineHemisphere(wi)
}

// IsDelta reports false; diffuse scattering has a smooth density
func (d *Diffuse) IsDelta() bool {
	return false
}

// Emit returns zero; diffuse surfaces do not emit
func (d *Diffuse) Emit(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// IsEmissive reports false
func (d *Diffuse) IsEmissive() bool {
	return false
}
