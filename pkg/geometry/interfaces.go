package geometry

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

// Intersection describes a ray-surface hit in world space. The normal is the
// outward geometric normal; materials resolve sidedness themselves from the
// sign of the local outgoing direction.
type Intersection struct {
	T        float64
	Point    core.Vec3
	Normal   core.Vec3
	UV       core.Vec2
	Material material.Material
	Shape    Shape // shape that produced the hit, for emitter density lookups
}

// EmitterSample is one direct-lighting sample on an emissive surface
type EmitterSample struct {
	Point     core.Vec3 // position on the emitter surface
	Normal    core.Vec3 // emitter surface normal at Point
	Direction core.Vec3 // unit direction from the reference point to Point
	Distance  float64   // distance from the reference point to Point
	Emission  core.Vec3 // radiance leaving Point toward the reference point
	Pdf       float64   // solid-angle density of this sample as seen from the reference point
}

// Shape is any surface a ray can hit. Implementations record intersection
// tests on stats when it is non-nil.
type Shape interface {
	Hit(ray core.Ray, stats *core.Stats) (*Intersection, bool)
	Bounds() core.AABB
}

// Emitter is a shape that can be sampled for direct lighting. SampleDirect
// picks a point on the surface as seen from ref; PdfDirect returns the
// solid-angle density of reaching the surface point with the given normal
// from ref under the same strategy.
type Emitter interface {
	Shape
	Material() material.Material
	SampleDirect(ref core.Vec3, sample core.Vec2) (EmitterSample, bool)
	PdfDirect(ref, point, normal core.Vec3) float64
}
