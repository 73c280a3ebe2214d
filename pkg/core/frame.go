package core

import "math"

// Frame is an orthonormal basis around a surface normal. Materials work in
// the local space of this frame, where the normal is +Z and a direction's
// Z component is the cosine with the normal.
type Frame struct {
	Tangent   Vec3
	Bitangent Vec3
	Normal    Vec3
}

// NewFrame builds an orthonormal basis around the unit normal n, using the
// branchless construction from "Building an Orthonormal Basis, Revisited"
// (Duff, Burgess, Christensen, Hery, Kensler, Liani, Villemin).
func NewFrame(n Vec3) Frame {
	sign := math.Copysign(1.0, n.Z)
	a := -1.0 / (sign + n.Z)
	b := n.X * n.Y * a
	return Frame{
		Tangent:   NewVec3(1.0+sign*n.X*n.X*a, sign*b, -sign*n.X),
		Bitangent: NewVec3(b, sign+n.Y*n.Y*a, -n.Y),
		Normal:    n,
	}
}

// ToLocal expresses the world-space direction v in this frame
func (f Frame) ToLocal(v Vec3) Vec3 {
	return NewVec3(v.Dot(f.Tangent), v.Dot(f.Bitangent), v.Dot(f.Normal))
}

// ToWorld expresses the frame-local direction v in world space
func (f Frame) ToWorld(v Vec3) Vec3 {
	return f.Tangent.Multiply(v.X).
		Add(f.Bitangent.Multiply(v.Y)).
		Add(f.Normal.Multiply(v.Z))
}
