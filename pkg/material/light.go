package material

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// DiffuseLight emits uniformly from its front face and does not scatter.
// Paths terminate when they reach one.
type DiffuseLight struct {
	Radiance core.Vec3
}

// NewDiffuseLight creates an emitter with the given radiance
func NewDiffuseLight(radiance core.Vec3) *DiffuseLight {
	return &DiffuseLight{Radiance: radiance}
}

// Sample returns false; emitters have no scatter lobe
func (l *DiffuseLight) Sample(wo core.Vec3, uv core.Vec2, p core.Vec3, sample core.Vec2) (SampledDirection, bool) {
	return SampledDirection{}, false
}

// Evaluate returns zero; emitters have no scatter lobe
func (l *DiffuseLight) Evaluate(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// PDF returns zero; emitters have no scatter lobe
func (l *DiffuseLight) PDF(wo, wi core.Vec3, uv core.Vec2, p core.Vec3) float64 {
	return 0
}

// IsDelta reports false
func (l *DiffuseLight) IsDelta() bool {
	return false
}

// Emit returns the radiance on the front face and zero on the back
func (l *DiffuseLight) Emit(wo core.Vec3, uv core.Vec2, p core.Vec3) core.Vec3 {
	if wo.Z > 0 {
		return l.Radiance
	}
	return core.Vec3{}
}

// IsEmissive reports true
func (l *DiffuseLight) IsEmissive() bool {
	return true
}
