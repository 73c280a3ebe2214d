package material

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at the given UV coordinates and 3D point
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates two colors in a UV-aligned checkerboard pattern
type Checker struct {
	Color1 core.Vec3
	Color2 core.Vec3
	Scale  float64 // number of checks per unit of UV space
}

// NewChecker creates a checkerboard color source
func NewChecker(color1, color2 core.Vec3, scale float64) *Checker {
	return &Checker{Color1: color1, Color2: color2, Scale: scale}
}

// Evaluate returns the check color containing the UV coordinate
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	u := int(math.Floor(uv.X * c.Scale))
	v := int(math.Floor(uv.Y * c.Scale))
	if (u+v)&1 == 0 {
		return c.Color1
	}
	return c.Color2
}
