package geometry

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// Group is a flat aggregate of shapes that also tracks which of its direct
// members are emissive, so direct lighting can pick one uniformly.
type Group struct {
	shapes   []Shape
	emitters []Emitter
	bounds   core.AABB
	accel    *BVH
}

// NewGroup creates a group containing the given shapes
func NewGroup(shapes ...Shape) *Group {
	g := &Group{}
	for _, shape := range shapes {
		g.Add(shape)
	}
	return g
}

// Add appends a shape to the group. Shapes with an emissive material are
// registered for direct-lighting sampling; shapes nested inside aggregates
// are not inspected.
func (g *Group) Add(shape Shape) {
	g.shapes = append(g.shapes, shape)
	if len(g.shapes) == 1 {
		g.bounds = shape.Bounds()
	} else {
		g.bounds = g.bounds.Union(shape.Bounds())
	}

	if emitter, ok := shape.(Emitter); ok {
		if mat := emitter.Material(); mat != nil && mat.IsEmissive() {
			g.emitters = append(g.emitters, emitter)
		}
	}
	g.accel = nil
}

// Accelerate builds a BVH over the current members and uses it for
// intersection tests from then on. Adding more shapes discards the
// hierarchy until Accelerate is called again.
func (g *Group) Accelerate() {
	if len(g.shapes) > 0 {
		g.accel = NewBVH(g.shapes)
	}
}

// Hit tests the ray against every member and returns the closest hit
func (g *Group) Hit(ray core.Ray, stats *core.Stats) (*Intersection, bool) {
	if g.accel != nil {
		return g.accel.Hit(ray, stats)
	}
	var closest *Intersection
	for _, shape := range g.shapes {
		if isect, ok := shape.Hit(ray, stats); ok {
			closest = isect
			ray.TMax = isect.T
		}
	}
	return closest, closest != nil
}

// Bounds returns the union of all member bounds
func (g *Group) Bounds() core.AABB {
	return g.bounds
}

// EmitterCount returns the number of emissive members
func (g *Group) EmitterCount() int {
	return len(g.emitters)
}

// SampleDirect picks one emitter uniformly and delegates to it, folding the
// selection probability into the returned density. The first sample
// dimension is rescaled after the pick so the emitter still sees a uniform
// value.
func (g *Group) SampleDirect(ref core.Vec3, sample core.Vec2) (EmitterSample, bool) {
	n := len(g.emitters)
	if n == 0 {
		return EmitterSample{}, false
	}

	scaled := sample.X * float64(n)
	index := int(scaled)
	if index >= n {
		index = n - 1
	}
	sample.X = scaled - float64(index)

	es, ok := g.emitters[index].SampleDirect(ref, sample)
	if !ok {
		return EmitterSample{}, false
	}
	es.Pdf /= float64(n)
	return es, true
}

// PdfDirect returns the solid-angle density with which SampleDirect would
// have produced the given emitter intersection from ref
func (g *Group) PdfDirect(ref core.Vec3, isect *Intersection) float64 {
	n := len(g.emitters)
	if n == 0 {
		return 0
	}
	emitter, ok := isect.Shape.(Emitter)
	if !ok {
		return 0
	}
	return emitter.PdfDirect(ref, isect.Point, isect.Normal) / float64(n)
}
