package geometry

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, mat: mat}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, stats *core.Stats) (*Intersection, bool) {
	stats.CountIntersection()

	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if !ray.WithinRange(root) {
		root = (-halfB + sqrtD) / a
		if !ray.WithinRange(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return &Intersection{
		T:        root,
		Point:    point,
		Normal:   normal,
		UV:       sphereUV(normal),
		Material: s.mat,
		Shape:    s,
	}, true
}

// sphereUV maps an outward unit normal to spherical surface coordinates
func sphereUV(normal core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, normal.Y)))
	phi := math.Atan2(-normal.Z, normal.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) Bounds() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}

// Material returns the sphere's surface material
func (s *Sphere) Material() material.Material {
	return s.mat
}

// SampleDirect samples a point on the sphere for direct lighting. Reference
// points outside the sphere sample the subtended cone; points inside sample
// the whole surface uniformly.
func (s *Sphere) SampleDirect(ref core.Vec3, sample core.Vec2) (EmitterSample, bool) {
	toCenter := s.Center.Subtract(ref)
	distSq := toCenter.LengthSquared()

	if distSq <= s.Radius*s.Radius {
		return s.sampleUniform(ref, sample)
	}

	// Sample a direction inside the cone subtended by the sphere
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-s.Radius*s.Radius/distSq))
	frame := core.NewFrame(toCenter.Normalize())
	direction := frame.ToWorld(core.SampleCone(sample, cosThetaMax))

	isect, ok := s.Hit(core.NewRayRange(ref, direction, core.RayEpsilon, math.Inf(1)), nil)
	if !ok {
		// Grazing cone directions can miss numerically
		return s.sampleUniform(ref, sample)
	}

	es := EmitterSample{
		Point:     isect.Point,
		Normal:    isect.Normal,
		Direction: direction,
		Distance:  isect.T,
		Pdf:       1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax)),
	}
	if es.Pdf <= 0 || math.IsInf(es.Pdf, 1) {
		return EmitterSample{}, false
	}
	es.Emission = emittedRadiance(s.mat, isect.UV, es)
	return es, true
}

// sampleUniform samples the whole sphere surface uniformly by area
func (s *Sphere) sampleUniform(ref core.Vec3, sample core.Vec2) (EmitterSample, bool) {
	normal := core.SampleUniformSphere(sample)
	point := s.Center.Add(normal.Multiply(s.Radius))

	toPoint := point.Subtract(ref)
	distance := toPoint.Length()
	if distance < core.RayEpsilon {
		return EmitterSample{}, false
	}

	areaPdf := 1.0 / (4.0 * math.Pi * s.Radius * s.Radius)
	pdf := core.SurfaceToSolidAngle(areaPdf, ref, point, normal)
	if pdf <= 0 {
		return EmitterSample{}, false
	}

	es := EmitterSample{
		Point:     point,
		Normal:    normal,
		Direction: toPoint.Multiply(1.0 / distance),
		Distance:  distance,
		Pdf:       pdf,
	}
	es.Emission = emittedRadiance(s.mat, sphereUV(normal), es)
	return es, true
}

// PdfDirect returns the solid-angle density of sampling the given surface
// point from ref under the same strategy SampleDirect uses
func (s *Sphere) PdfDirect(ref, point, normal core.Vec3) float64 {
	toCenter := s.Center.Subtract(ref)
	distSq := toCenter.LengthSquared()

	if distSq <= s.Radius*s.Radius {
		areaPdf := 1.0 / (4.0 * math.Pi * s.Radius * s.Radius)
		return core.SurfaceToSolidAngle(areaPdf, ref, point, normal)
	}

	cosThetaMax := math.Sqrt(math.Max(0, 1.0-s.Radius*s.Radius/distSq))
	frame := core.NewFrame(toCenter.Normalize())
	local := frame.ToLocal(point.Subtract(ref).Normalize())
	return core.PdfCone(local, cosThetaMax)
}

// emittedRadiance evaluates the emitter material toward the reference point
func emittedRadiance(mat material.Material, uv core.Vec2, es EmitterSample) core.Vec3 {
	if mat == nil || !mat.IsEmissive() {
		return core.Vec3{}
	}
	frame := core.NewFrame(es.Normal)
	return mat.Emit(frame.ToLocal(es.Direction.Negate()), uv, es.Point)
}
