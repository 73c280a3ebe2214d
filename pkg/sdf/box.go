package sdf

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

// RoundBox is the signed distance field of an axis-aligned box with rounded
// edges. The rounding radius is carved out of the half extent, so the
// surface stays within Center ± HalfExtent.
type RoundBox struct {
	object
	Center     core.Vec3
	HalfExtent core.Vec3
	Rounding   float64
}

// NewRoundBox creates a new rounded box field
func NewRoundBox(center, halfExtent core.Vec3, rounding float64, mat material.Material) *RoundBox {
	return &RoundBox{
		object:     object{mat: mat},
		Center:     center,
		HalfExtent: halfExtent,
		Rounding:   rounding,
	}
}

// Distance returns the signed distance to the rounded box surface
func (b *RoundBox) Distance(p core.Vec3) float64 {
	local := p.Subtract(b.Center)
	q := core.NewVec3(
		math.Abs(local.X)-b.HalfExtent.X+b.Rounding,
		math.Abs(local.Y)-b.HalfExtent.Y+b.Rounding,
		math.Abs(local.Z)-b.HalfExtent.Z+b.Rounding,
	)

	outside := core.NewVec3(math.Max(q.X, 0), math.Max(q.Y, 0), math.Max(q.Z, 0))
	inside := math.Min(math.Max(q.X, math.Max(q.Y, q.Z)), 0)
	return outside.Length() + inside - b.Rounding
}

// Bounds returns the tight bounding box of the rounded box
func (b *RoundBox) Bounds() core.AABB {
	return core.NewAABB(b.Center.Subtract(b.HalfExtent), b.Center.Add(b.HalfExtent))
}

// sdBox is the sharp-edged box distance used as a building block by other
// fields
func sdBox(p, halfExtent core.Vec3) float64 {
	q := core.NewVec3(
		math.Abs(p.X)-halfExtent.X,
		math.Abs(p.Y)-halfExtent.Y,
		math.Abs(p.Z)-halfExtent.Z,
	)
	outside := core.NewVec3(math.Max(q.X, 0), math.Max(q.Y, 0), math.Max(q.Z, 0))
	inside := math.Min(math.Max(q.X, math.Max(q.Y, q.Z)), 0)
	return outside.Length() + inside
}
