package sdf

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

// Sphere is the signed distance field of a sphere
type Sphere struct {
	object
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new SDF sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		object: object{mat: mat},
		Center: center,
		Radius: radius,
	}
}

// Distance returns the exact signed distance to the sphere surface
func (s *Sphere) Distance(p core.Vec3) float64 {
	return p.Subtract(s.Center).Length() - s.Radius
}

// Gradient returns the exact field gradient, the unit vector away from the
// center. At the center itself no direction is defined.
func (s *Sphere) Gradient(p core.Vec3) (core.Vec3, bool) {
	offset := p.Subtract(s.Center)
	if offset.LengthSquared() <= machineEpsilon {
		return core.Vec3{}, false
	}
	return offset.Normalize(), true
}

// Bounds returns the tight bounding box of the sphere
func (s *Sphere) Bounds() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}
