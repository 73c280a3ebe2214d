package material

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// SampledDirection is the outcome of importance-sampling a material: a
// scattered direction in the local shading frame and the sampling weight,
// equal to f·cosθ/pdf for smooth lobes or the reflection/transmission tint
// for delta lobes.
type SampledDirection struct {
	Wi     core.Vec3
	Weight core.Vec3
}

// Material describes how a surface scatters and emits light.
//
// All directions are expressed in the local shading frame built from the
// surface normal (+Z is the normal), so a direction's Z component is its
// cosine with the normal. Callers construct a core.Frame at the hit point
// and convert world directions before calling in.
type Material interface {
	// Sample draws a scattered direction for the outgoing direction wo.
	// Returning false means no valid direction exists, which legitimately
	// terminates a path; it is not an error.
	Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sample core.Vec2) (SampledDirection, bool)

	// Evaluate returns the BSDF weighted by the incident cosine, f·cosθ,
	// for the direction pair (wo, wi). Delta materials return zero.
	Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3

	// PDF returns the solid-angle density Sample uses for wi given wo.
	// Delta materials return zero.
	PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64

	// IsDelta reports whether scattering is a Dirac lobe (perfect mirror
	// or refraction); delta materials cannot be reached by next-event
	// estimation.
	IsDelta() bool

	// Emit returns the radiance emitted toward wo, zero for non-emitters.
	Emit(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3

	// IsEmissive reports whether Emit can return non-zero radiance.
	IsEmissive() bool
}
