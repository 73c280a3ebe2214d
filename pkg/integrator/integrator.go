package integrator

import (
	"fmt"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/scene"
)

// Integrator estimates the radiance arriving along one camera ray
type Integrator interface {
	RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler, stats *core.Stats) core.Vec3
}

// Integrator names accepted by New and by scene descriptions
const (
	TypePathMIS = "path-mis"
	TypeNormal  = "normal"
	TypeAlbedo  = "albedo"
)

// New creates an integrator by name; the empty name selects the path
// tracer. Unknown names are construction errors.
func New(name string, config scene.SamplingConfig) (Integrator, error) {
	switch name {
	case "", TypePathMIS:
		return NewPathMIS(config.MaxDepth), nil
	case TypeNormal:
		return NewNormal(), nil
	case TypeAlbedo:
		return NewAlbedo(), nil
	default:
		return nil, fmt.Errorf("unknown integrator type %q (want %q, %q or %q)",
			name, TypePathMIS, TypeNormal, TypeAlbedo)
	}
}
