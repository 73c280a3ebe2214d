package scene

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// Background supplies the radiance for rays that leave the scene
type Background interface {
	Radiance(direction core.Vec3) core.Vec3
}

// UniformBackground returns the same radiance in every direction
type UniformBackground struct {
	Color core.Vec3
}

// NewUniformBackground creates a constant-color background
func NewUniformBackground(color core.Vec3) *UniformBackground {
	return &UniformBackground{Color: color}
}

// Radiance returns the uniform color
func (b *UniformBackground) Radiance(direction core.Vec3) core.Vec3 {
	return b.Color
}

// GradientBackground blends from a bottom color to a top color along the
// vertical axis, a simple sky model
type GradientBackground struct {
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{TopColor: top, BottomColor: bottom}
}

// Radiance linearly interpolates on the direction's y component
func (b *GradientBackground) Radiance(direction core.Vec3) core.Vec3 {
	unit := direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return b.BottomColor.Multiply(1.0 - t).Add(b.TopColor.Multiply(t))
}
