package sdf

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

// operator carries the shared material/settings override logic of the CSG
// nodes: an explicit override wins, otherwise the first child's material is
// inherited for the whole combined surface.
type operator struct {
	object
	first Object
}

// Material returns the override when set, else the first child's material
func (o *operator) Material() material.Material {
	if o.mat != nil {
		return o.mat
	}
	if o.first == nil {
		return nil
	}
	return o.first.Material()
}

// SetMaterial installs a material override for the combined surface
func (o *operator) SetMaterial(mat material.Material) {
	o.mat = mat
}

// Settings returns the override when set, else the first child's settings
func (o *operator) Settings() *Settings {
	if o.override != nil {
		return o.override
	}
	if o.first == nil {
		return nil
	}
	return o.first.Settings()
}

// minStepScale returns the most conservative step scale among the children,
// so a combined field marches no faster than its trickiest part
func minStepScale(children []Object) float64 {
	scale := 1.0
	for _, child := range children {
		scale = math.Min(scale, objectStepScale(child))
	}
	return scale
}

// Union is the surface enclosing all of its children
type Union struct {
	operator
	children []Object
	bounds   core.AABB
}

// NewUnion combines the children into a single surface
func NewUnion(children ...Object) *Union {
	u := &Union{children: children}
	if len(children) > 0 {
		u.first = children[0]
		u.bounds = children[0].Bounds()
		for _, child := range children[1:] {
			u.bounds = u.bounds.Union(child.Bounds())
		}
	}
	return u
}

// Distance returns the minimum distance over all children
func (u *Union) Distance(p core.Vec3) float64 {
	d := math.Inf(1)
	for _, child := range u.children {
		d = math.Min(d, child.Distance(p))
	}
	return d
}

// Bounds returns the union of all child bounds
func (u *Union) Bounds() core.AABB {
	return u.bounds
}

// StepScale returns the most conservative child scale
func (u *Union) StepScale() float64 {
	return minStepScale(u.children)
}

// Intersection is the surface common to all of its children
type Intersection struct {
	operator
	children []Object
	bounds   core.AABB
}

// NewIntersection keeps only the volume shared by every child. The first
// child's bounds are used as a conservative enclosure.
func NewIntersection(children ...Object) *Intersection {
	i := &Intersection{children: children}
	if len(children) > 0 {
		i.first = children[0]
		i.bounds = children[0].Bounds()
	}
	return i
}

// Distance returns the maximum distance over all children
func (i *Intersection) Distance(p core.Vec3) float64 {
	d := math.Inf(-1)
	for _, child := range i.children {
		d = math.Max(d, child.Distance(p))
	}
	return d
}

// Bounds returns the first child's bounds
func (i *Intersection) Bounds() core.AABB {
	return i.bounds
}

// StepScale returns the most conservative child scale
func (i *Intersection) StepScale() float64 {
	return minStepScale(i.children)
}

// Difference is the left surface with the right volume carved out
type Difference struct {
	operator
	left  Object
	right Object
}

// NewDifference subtracts right from left
func NewDifference(left, right Object) *Difference {
	d := &Difference{left: left, right: right}
	d.first = left
	return d
}

// Distance returns max(left, -right), the carved surface
func (d *Difference) Distance(p core.Vec3) float64 {
	return math.Max(d.left.Distance(p), -d.right.Distance(p))
}

// Bounds returns the left child's bounds; carving only removes volume
func (d *Difference) Bounds() core.AABB {
	return d.left.Bounds()
}

// StepScale returns the more conservative of the two child scales
func (d *Difference) StepScale() float64 {
	return math.Min(objectStepScale(d.left), objectStepScale(d.right))
}
