// Package sdf provides signed-distance surfaces and the sphere-tracing
// raymarcher that renders them alongside analytic geometry.
package sdf

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

// Object is a renderable signed-distance surface. Distance reports the
// signed distance from p to the surface, negative inside. Settings returns
// the object's marching overrides, or nil to inherit the scene defaults.
type Object interface {
	Distance(p core.Vec3) float64
	Bounds() core.AABB
	Material() material.Material
	Settings() *Settings
	SetSettings(settings Settings)
}

// StepScaler is implemented by objects whose field underestimates the true
// distance, such as fractal estimators. The scale shrinks every marching
// step; values must lie in (0, 1].
type StepScaler interface {
	StepScale() float64
}

// GradientField is implemented by objects with a closed-form field
// gradient. Reporting false falls back to finite differences.
type GradientField interface {
	Gradient(p core.Vec3) (core.Vec3, bool)
}

// objectStepScale resolves the marching step scale of an object, treating
// missing or out-of-range scales as 1
func objectStepScale(obj Object) float64 {
	if scaler, ok := obj.(StepScaler); ok {
		if scale := scaler.StepScale(); scale > 0 && scale <= 1 {
			return scale
		}
	}
	return 1.0
}

// object carries the material and settings fields every primitive shares
type object struct {
	mat      material.Material
	override *Settings
}

// Material returns the object's surface material
func (o *object) Material() material.Material {
	return o.mat
}

// Settings returns the object's marching overrides, nil when none are set
func (o *object) Settings() *Settings {
	return o.override
}

// SetSettings installs per-object marching overrides
func (o *object) SetSettings(settings Settings) {
	o.override = &settings
}
