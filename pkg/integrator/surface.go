// Package integrator implements the light transport algorithms: a path
// tracer that combines emitter and material sampling over both analytic
// and marched surfaces, plus normal and albedo debug modes.
package integrator

import (
	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/scene"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/sdf"
)

// ImplicitHit pairs a raymarch hit with the object that produced it
type ImplicitHit struct {
	Object sdf.Object
	Hit    sdf.Hit
}

// SurfaceHit holds the closest analytic and marched candidates found along
// one ray. Either or both may be nil; Resolve picks the winner.
type SurfaceHit struct {
	Analytic *geometry.Intersection
	Implicit *ImplicitHit
}

// Valid reports whether any surface was found
func (h SurfaceHit) Valid() bool {
	return h.Analytic != nil || h.Implicit != nil
}

// Shading is a resolved surface point ready for shading. SpawnOrigin is
// where secondary and shadow rays start: the hit point itself for analytic
// surfaces, a normal-biased point outside the hit epsilon shell for
// marched ones.
type Shading struct {
	T           float64
	Position    core.Vec3
	Normal      core.Vec3
	UV          core.Vec2
	Material    material.Material
	SpawnOrigin core.Vec3
	Analytic    *geometry.Intersection // nil when the point lies on a marched surface
}

// Resolve picks the winning candidate. The marched surface wins only when
// strictly closer, so exact ties go to the analytic surface.
func (h SurfaceHit) Resolve(s *scene.Scene) (Shading, bool) {
	if h.Implicit != nil && (h.Analytic == nil || h.Implicit.Hit.T < h.Analytic.T) {
		hit := h.Implicit.Hit
		settings := s.SettingsFor(h.Implicit.Object)
		return Shading{
			T:           hit.T,
			Position:    hit.Position,
			Normal:      hit.Normal,
			Material:    hit.Material,
			SpawnOrigin: sdf.SurfaceBias(hit.Position, hit.Normal, settings),
		}, true
	}
	if h.Analytic != nil {
		isect := h.Analytic
		return Shading{
			T:           isect.T,
			Position:    isect.Point,
			Normal:      isect.Normal,
			UV:          isect.UV,
			Material:    isect.Material,
			SpawnOrigin: isect.Point,
			Analytic:    isect,
		}, true
	}
	return Shading{}, false
}

// CollectSurfaceHits traces one ray against the analytic geometry and every
// signed-distance object. Marched objects without a material are invisible,
// and a march that runs out of steps counts as a miss for that object.
func CollectSurfaceHits(ray core.Ray, s *scene.Scene, stats *core.Stats) SurfaceHit {
	stats.CountRay()

	var result SurfaceHit
	if isect, ok := s.Root.Hit(ray, stats); ok {
		result.Analytic = isect
	}

	for _, obj := range s.SDFObjects {
		if obj.Material() == nil {
			continue
		}
		stats.CountIntersection()
		marched := sdf.Raymarch(ray, obj, s.SettingsFor(obj))
		if marched.Status != sdf.StatusHit {
			continue
		}
		if result.Implicit == nil || marched.Hit.T < result.Implicit.Hit.T {
			result.Implicit = &ImplicitHit{Object: obj, Hit: *marched.Hit}
		}
	}
	return result
}
