package material

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// Metal is a mirror-like conductor: a perfect specular reflector at zero
// roughness, otherwise a Phong lobe around the mirror direction. With
// Fresnel set, the tint blends toward white at grazing incidence.
type Metal struct {
	Albedo   ColorSource
	Fresnel  bool
	exponent float64
	delta    bool
}

// NewMetal creates a metal with the given tint and roughness in [0, 1].
// Zero roughness produces a delta mirror.
func NewMetal(albedo core.Vec3, roughness float64) *Metal {
	return NewTexturedMetal(NewSolidColor(albedo), roughness)
}

// NewTexturedMetal creates a metal with a textured tint
func NewTexturedMetal(albedo ColorSource, roughness float64) *Metal {
	exponent, delta := roughnessToExponent(roughness)
	return &Metal{Albedo: albedo, exponent: exponent, delta: delta}
}

// roughnessToExponent converts a perceptual roughness to a Phong exponent;
// zero roughness has no finite exponent and marks the lobe as delta
func roughnessToExponent(roughness float64) (exponent float64, delta bool) {
	if roughness <= 0 {
		return 0, true
	}
	if roughness > 1 {
		roughness = 1
	}
	return 2.0/(roughness*roughness) - 2.0, false
}

// mirrorDirection reflects wo about the local normal
func mirrorDirection(wo core.Vec3) core.Vec3 {
	return core.NewVec3(-wo.X, -wo.Y, wo.Z)
}

// Sample reflects wo about the normal, perturbed by the Phong lobe for
// rough metals. Directions scattered below the surface are rejected.
func (m *Metal) Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sample core.Vec2) (SampledDirection, bool) {
	if wo.Z < 0 {
		return SampledDirection{}, false
	}

	weight := m.Albedo.Evaluate(uv, p)
	if m.Fresnel {
		// Schlick: the tint washes out toward white at grazing incidence
		schlick := math.Pow(1.0-wo.Z, 5)
		weight = weight.Add(core.NewVec3(1, 1, 1).Subtract(weight).Multiply(schlick))
	}
	if m.delta {
		return SampledDirection{Wi: mirrorDirection(wo), Weight: weight}, true
	}

	frame := core.NewFrame(mirrorDirection(wo))
	wi := frame.ToWorld(core.SamplePhongLobe(sample, m.exponent))
	if wi.Z <= 0 {
		return SampledDirection{}, false
	}
	return SampledDirection{Wi: wi, Weight: weight}, true
}

// Evaluate returns tint·pdf for rough metals and zero for delta mirrors
func (m *Metal) Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	if m.delta || wi.Z < 0 {
		return core.Vec3{}
	}
	return m.Albedo.Evaluate(uv, p).Multiply(m.PDF(wo, wi, uv, p))
}

// PDF returns the Phong-lobe density around the mirror direction, zero for
// delta mirrors
func (m *Metal) PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64 {
	if m.delta || wi.Z < 0 {
		return 0
	}
	frame := core.NewFrame(mirrorDirection(wo))
	return core.PdfPhongLobe(frame.ToLocal(wi), m.exponent)
}

// IsDelta reports whether this metal is a perfect mirror
func (m *Metal) IsDelta() bool {
	return m.delta
}

// Emit returns zero; metals do not emit
func (m *Metal) Emit(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// IsEmissive reports false
func (m *Metal) IsEmissive() bool {
	return false
}
