package material

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// Dielectric is a smooth or rough glass-like interface between two media.
// Reflection versus refraction is chosen stochastically from the Schlick
// approximation of the Fresnel term; zero roughness makes both lobes delta.
type Dielectric struct {
	Tint     ColorSource
	EtaExt   float64 // refractive index outside the surface
	EtaInt   float64 // refractive index inside the surface
	exponent float64
	delta    bool
}

// NewDielectric creates a dielectric with the given interior/exterior
// refractive indices and roughness
func NewDielectric(tint core.Vec3, etaExt, etaInt, roughness float64) *Dielectric {
	exponent, delta := roughnessToExponent(roughness)
	return &Dielectric{
		Tint:     NewSolidColor(tint),
		EtaExt:   etaExt,
		EtaInt:   etaInt,
		exponent: exponent,
		delta:    delta,
	}
}

// Sample chooses between specular reflection and refraction. The ray may
// arrive from either side of the interface; the indices swap when it
// arrives from inside.
func (d *Dielectric) Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sample core.Vec2) (SampledDirection, bool) {
	etaI, etaT := d.EtaExt, d.EtaInt
	if wo.Z < 0 {
		etaI, etaT = d.EtaInt, d.EtaExt
	}

	cosThetaI := math.Abs(wo.Z)
	sinThetaI := math.Sqrt(math.Max(0, 1.0-cosThetaI*cosThetaI))
	sinThetaT := sinThetaI * etaI / etaT

	weight := d.Tint.Evaluate(uv, p)

	// Total internal reflection leaves only the mirror lobe
	if sinThetaT > 1.0 {
		return SampledDirection{Wi: d.perturb(mirrorDirection(wo), sample), Weight: weight}, true
	}

	f0 := ((etaI - etaT) / (etaI + etaT)) * ((etaI - etaT) / (etaI + etaT))
	fresnel := f0 + (1.0-f0)*math.Pow(1.0-cosThetaI, 5)

	if sample.X < fresnel {
		return SampledDirection{Wi: d.perturb(mirrorDirection(wo), sample), Weight: weight}, true
	}

	// Refract across the interface toward the opposite hemisphere
	eta := etaI / etaT
	cosThetaT := math.Sqrt(math.Max(0, 1.0-sinThetaT*sinThetaT))
	sign := math.Copysign(1.0, wo.Z)
	refracted := wo.Multiply(-eta).
		Add(core.NewVec3(0, 0, 1).Multiply((eta*cosThetaI - cosThetaT) * sign)).
		Normalize()
	return SampledDirection{Wi: d.perturb(refracted, sample), Weight: weight}, true
}

// perturb spreads a delta direction into a Phong lobe for rough interfaces
func (d *Dielectric) perturb(dir core.Vec3, sample core.Vec2) core.Vec3 {
	if d.delta {
		return dir
	}
	frame := core.NewFrame(dir)
	return frame.ToWorld(core.SamplePhongLobe(sample, d.exponent))
}

// Evaluate returns tint·pdf for rough interfaces and zero for delta ones
func (d *Dielectric) Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	if d.delta {
		return core.Vec3{}
	}
	return d.Tint.Evaluate(uv, p).Multiply(d.PDF(wo, wi, uv, p))
}

// PDF returns the Phong-lobe density around the mirror direction, zero for
// delta interfaces
func (d *Dielectric) PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64 {
	if d.delta {
		return 0
	}
	frame := core.NewFrame(mirrorDirection(wo))
	return core.PdfPhongLobe(frame.ToLocal(wi), d.exponent)
}

// IsDelta reports whether both lobes are Dirac distributions
func (d *Dielectric) IsDelta() bool {
	return d.delta
}

// Emit returns zero; dielectrics do not emit
func (d *Dielectric) Emit(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// IsEmissive reports false
func (d *Dielectric) IsEmissive() bool {
	return false
}
