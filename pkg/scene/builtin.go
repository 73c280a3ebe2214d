package scene

import (
	"fmt"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/sdf"
)

// BuiltinScenes returns the names accepted by NewBuiltinScene
func BuiltinScenes() []string {
	return []string{"cornell", "sdf-showcase", "spheres"}
}

// NewBuiltinScene creates one of the built-in scenes by name. Camera
// overrides, when given, overlay the scene's default camera configuration.
func NewBuiltinScene(name string, cameraOverrides ...CameraConfig) (*Scene, error) {
	switch name {
	case "cornell":
		return NewCornellScene(cameraOverrides...), nil
	case "sdf-showcase":
		return NewSDFShowcaseScene(cameraOverrides...), nil
	case "spheres":
		return NewSpheresScene(cameraOverrides...), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (have %v)", name, BuiltinScenes())
	}
}

// NewGroundQuad creates a large horizontal quad centered at the given point
// with its normal pointing up
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z+size/2)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, -size)
	return geometry.NewQuad(corner, u, v, mat)
}

func resolveCamera(defaults CameraConfig, overrides []CameraConfig) *Camera {
	config := defaults
	if len(overrides) > 0 {
		config = MergeCameraConfig(defaults, overrides[0])
	}
	return NewCamera(config)
}

// NewCornellScene creates a classic Cornell box with quad walls, a ceiling
// light, and one metal and one glass sphere. Wall quads are wound so their
// normals face the interior.
func NewCornellScene(cameraOverrides ...CameraConfig) *Scene {
	camera := resolveCamera(CameraConfig{
		Center:      core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	}, cameraOverrides)

	s := NewScene(camera)
	s.SamplingConfig = SamplingConfig{SamplesPerPixel: 64, MaxDepth: 16, Seed: 42}

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))

	boxSize := 555.0

	// Floor, normal +y
	s.Add(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		white,
	))
	// Ceiling, normal -y
	s.Add(geometry.NewQuad(
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white,
	))
	// Back wall, normal -z toward the camera
	s.Add(geometry.NewQuad(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		white,
	))
	// Left wall, normal +x
	s.Add(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
		red,
	))
	// Right wall, normal -x
	s.Add(geometry.NewQuad(
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		green,
	))

	// Ceiling light slightly below the ceiling, facing down
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.Add(geometry.NewQuad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		material.NewDiffuseLight(core.NewVec3(15, 15, 15)),
	))

	s.Add(geometry.NewSphere(
		core.NewVec3(185, 82.5, 169), 82.5,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0),
	))
	s.Add(geometry.NewSphere(
		core.NewVec3(370, 90, 351), 90,
		material.NewDielectric(core.NewVec3(1, 1, 1), 1.0, 1.5, 0.0),
	))

	return s
}

// NewSDFShowcaseScene mixes implicit and analytic geometry: a Menger
// sponge, a carved rounded box and a mirrored SDF sphere on a ground quad,
// lit by an overhead area light
func NewSDFShowcaseScene(cameraOverrides ...CameraConfig) *Scene {
	camera := resolveCamera(CameraConfig{
		Center:      core.NewVec3(0, 2.5, 8),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       512,
		AspectRatio: 16.0 / 9.0,
		VFov:        45.0,
	}, cameraOverrides)

	s := NewScene(camera)
	s.SamplingConfig = SamplingConfig{SamplesPerPixel: 64, MaxDepth: 16, Seed: 42}
	s.Background = NewGradientBackground(
		core.NewVec3(0.05, 0.07, 0.10),
		core.NewVec3(0.01, 0.01, 0.015),
	)

	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 30, material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6))))

	// Overhead light facing down
	s.Add(geometry.NewQuad(
		core.NewVec3(-2, 6, -2),
		core.NewVec3(4, 0, 0),
		core.NewVec3(0, 0, 4),
		material.NewDiffuseLight(core.NewVec3(12, 12, 12)),
	))

	sponge := sdf.NewMenger(
		core.NewVec3(-2.5, 1, 0), 1.0, 3,
		material.NewDiffuse(core.NewVec3(0.85, 0.6, 0.3)),
	)
	s.AddSDF(sponge)

	// Rounded box with a sphere bitten out of its top
	carved := sdf.NewDifference(
		sdf.NewRoundBox(core.NewVec3(0, 0.8, 0), core.NewVec3(0.8, 0.8, 0.8), 0.1, nil),
		sdf.NewSphere(core.NewVec3(0, 1.9, 0), 0.7, nil),
	)
	carved.SetMaterial(material.NewTexturedDiffuse(
		material.NewChecker(core.NewVec3(0.2, 0.3, 0.7), core.NewVec3(0.9, 0.9, 0.9), 6),
	))
	s.AddSDF(carved)

	mirror := sdf.NewSphere(
		core.NewVec3(2.5, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.9, 0.85, 0.7), 0.0),
	)
	s.AddSDF(mirror)

	return s
}

// NewSpheresScene is a simple daylight scene with no analytic emitters;
// all light comes from the gradient sky
func NewSpheresScene(cameraOverrides ...CameraConfig) *Scene {
	camera := resolveCamera(CameraConfig{
		Center:      core.NewVec3(0, 1.5, 4),
		LookAt:      core.NewVec3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       640,
		AspectRatio: 16.0 / 9.0,
		VFov:        50.0,
	}, cameraOverrides)

	s := NewScene(camera)
	s.SamplingConfig = SamplingConfig{SamplesPerPixel: 32, MaxDepth: 8, Seed: 42}
	s.Background = NewGradientBackground(
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(1.0, 1.0, 1.0),
	)

	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 40, material.NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))))

	checker := material.NewTexturedDiffuse(
		material.NewChecker(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.9, 0.9, 0.9), 8),
	)
	s.Add(geometry.NewSphere(core.NewVec3(-1.8, 0.8, 0), 0.8, checker))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0.8, 0), 0.8,
		material.NewDielectric(core.NewVec3(1, 1, 1), 1.0, 1.5, 0.0)))
	s.Add(geometry.NewSphere(core.NewVec3(1.8, 0.8, 0), 0.8,
		material.NewMetal(core.NewVec3(0.9, 0.7, 0.3), 0.25)))

	return s
}
