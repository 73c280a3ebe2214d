package geometry

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

// Quad represents a rectangular surface defined by a corner and two edge
// vectors. The normal is U × V normalized; emission leaves the front face
// only.
type Quad struct {
	Corner core.Vec3
	U      core.Vec3
	V      core.Vec3
	Normal core.Vec3
	mat    material.Material
	d      float64   // plane equation constant: normal · x = d
	w      core.Vec3 // cached cross product for barycentric coordinates
	area   float64
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		mat:    mat,
		d:      normal.Dot(corner),
		w:      normal.Multiply(1.0 / normal.Dot(cross)),
		area:   cross.Length(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, stats *core.Stats) (*Intersection, bool) {
	stats.CountIntersection()

	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if !ray.WithinRange(t) {
		return nil, false
	}

	// Barycentric coordinates within the quad bounds
	point := ray.At(t)
	hitVector := point.Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	return &Intersection{
		T:        t,
		Point:    point,
		Normal:   q.Normal,
		UV:       core.NewVec2(alpha, beta),
		Material: q.mat,
		Shape:    q,
	}, true
}

// Bounds returns the bounding box of the four corners, padded so an
// axis-aligned quad does not produce a zero-thickness box
func (q *Quad) Bounds() core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	).Expand(1e-4)
}

// Material returns the quad's surface material
func (q *Quad) Material() material.Material {
	return q.mat
}

// SampleDirect samples a point uniformly on the quad for direct lighting
func (q *Quad) SampleDirect(ref core.Vec3, sample core.Vec2) (EmitterSample, bool) {
	point := q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))

	toPoint := point.Subtract(ref)
	distance := toPoint.Length()
	if distance < core.RayEpsilon {
		return EmitterSample{}, false
	}

	pdf := core.SurfaceToSolidAngle(1.0/q.area, ref, point, q.Normal)
	if pdf <= 0 {
		return EmitterSample{}, false
	}

	es := EmitterSample{
		Point:     point,
		Normal:    q.Normal,
		Direction: toPoint.Multiply(1.0 / distance),
		Distance:  distance,
		Pdf:       pdf,
	}
	es.Emission = emittedRadiance(q.mat, core.NewVec2(sample.X, sample.Y), es)
	return es, true
}

// PdfDirect returns the solid-angle density of sampling the given surface
// point from ref
func (q *Quad) PdfDirect(ref, point, normal core.Vec3) float64 {
	return core.SurfaceToSolidAngle(1.0/q.area, ref, point, normal)
}
