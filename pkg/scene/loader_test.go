package scene

import (
	"strings"
	"testing"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/sdf"
)

const fullSceneJSON = `{
	"camera": {
		"center": [0, 2, 8],
		"look_at": [0, 1, 0],
		"width": 128,
		"aspect_ratio": 1.0,
		"vfov": 45
	},
	"sampler": {"samples_per_pixel": 8, "seed": 7},
	"integrator": {"type": "path-mis", "max_depth": 4},
	"accelerator": "linear",
	"raymarch": {"max_steps": 64, "hit_epsilon": 1e-5},
	"background": {"type": "gradient", "top": [0.5, 0.7, 1.0], "bottom": [1, 1, 1]},
	"materials": {
		"white": {"type": "diffuse", "albedo": [0.73, 0.73, 0.73]},
		"floor": {"type": "diffuse", "texture": {"type": "checker", "color1": [0.1, 0.1, 0.1], "color2": [0.9, 0.9, 0.9], "scale": 4}},
		"steel": {"type": "metal", "albedo": [0.8, 0.8, 0.9], "roughness": 0.1},
		"glass": {"type": "dielectric", "eta_int": 1.5},
		"lamp": {"type": "light", "radiance": [10, 10, 10]}
	},
	"shapes": [
		{"type": "quad", "material": "floor", "corner": [-5, 0, 5], "u": [0, 0, -10], "v": [10, 0, 0]},
		{"type": "quad", "material": "lamp", "corner": [-1, 4, -1], "u": [2, 0, 0], "v": [0, 0, 2]},
		{"type": "sphere", "material": "glass", "center": [0, 1, 0], "radius": 1}
	],
	"sdf_objects": [
		{"type": "sphere", "material": "steel", "center": [2, 1, 0], "radius": 1,
		 "settings": {"max_steps": 256}},
		{"type": "difference", "material": "white",
		 "children": [
			{"type": "round_box", "center": [-2, 1, 0], "half_extent": [0.8, 0.8, 0.8], "rounding": 0.1},
			{"type": "sphere", "center": [-2, 1.8, 0], "radius": 0.6}
		 ]}
	]
}`

func TestLoad_FullScene(t *testing.T) {
	s, err := Load([]byte(fullSceneJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Camera.Width() != 128 || s.Camera.Height() != 128 {
		t.Errorf("camera resolution: got %dx%d, expected 128x128", s.Camera.Width(), s.Camera.Height())
	}
	if s.SamplingConfig.SamplesPerPixel != 8 {
		t.Errorf("samples per pixel: got %d, expected 8", s.SamplingConfig.SamplesPerPixel)
	}
	if s.SamplingConfig.Seed != 7 {
		t.Errorf("seed: got %d, expected 7", s.SamplingConfig.Seed)
	}
	if s.SamplingConfig.MaxDepth != 4 {
		t.Errorf("max depth: got %d, expected 4", s.SamplingConfig.MaxDepth)
	}
	if s.Integrator != "path-mis" {
		t.Errorf("integrator: got %q, expected path-mis", s.Integrator)
	}
	if s.Accelerator != AcceleratorLinear {
		t.Errorf("accelerator: got %q, expected linear", s.Accelerator)
	}

	if s.SDFSettings.MaxSteps != 64 || s.SDFSettings.HitEpsilon != 1e-5 {
		t.Errorf("raymarch settings not applied: %+v", s.SDFSettings)
	}
	// Unspecified raymarch fields fall back to the defaults
	if s.SDFSettings.StepClamp != sdf.DefaultSettings().StepClamp {
		t.Errorf("step clamp: got %f, expected default", s.SDFSettings.StepClamp)
	}

	if _, ok := s.Background.(*GradientBackground); !ok {
		t.Errorf("background: got %T, expected gradient", s.Background)
	}

	if n := s.Root.EmitterCount(); n != 1 {
		t.Errorf("emitter count: got %d, expected 1", n)
	}
	if len(s.SDFObjects) != 2 {
		t.Fatalf("sdf objects: got %d, expected 2", len(s.SDFObjects))
	}

	// Per-object settings replace the scene defaults entirely
	if got := s.SettingsFor(s.SDFObjects[0]).MaxSteps; got != 256 {
		t.Errorf("sdf override max steps: got %d, expected 256", got)
	}
	if got := s.SettingsFor(s.SDFObjects[1]).MaxSteps; got != 64 {
		t.Errorf("sdf default max steps: got %d, expected 64", got)
	}
	if s.SDFObjects[1].Material() == nil {
		t.Error("difference operator should carry its material override")
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	s, err := Load([]byte(`{"camera": {"center": [0, 0, 5], "look_at": [0, 0, 0]}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SamplingConfig.SamplesPerPixel != 16 || s.SamplingConfig.MaxDepth != 16 {
		t.Errorf("sampling defaults: got %+v", s.SamplingConfig)
	}
	if s.SamplingConfig.Seed != 42 {
		t.Errorf("seed default: got %d, expected 42", s.SamplingConfig.Seed)
	}
	if _, ok := s.Background.(*UniformBackground); !ok {
		t.Errorf("background default: got %T, expected uniform", s.Background)
	}
	if s.HasAnalyticEmitters() {
		t.Error("empty scene should have no emitters")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			"missing camera",
			`{}`,
			"no camera",
		},
		{
			"camera missing look_at",
			`{"camera": {"center": [0, 0, 5]}}`,
			"missing look_at",
		},
		{
			"malformed json",
			`{"camera":`,
			"failed to parse",
		},
		{
			"unknown material type",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "materials": {"cloth": {"type": "velvet"}}}`,
			`unknown material type "velvet"`,
		},
		{
			"unknown shape type",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "materials": {"white": {"type": "diffuse", "albedo": [1,1,1]}},
			  "shapes": [{"type": "cone", "material": "white"}]}`,
			"unknown shape type",
		},
		{
			"unknown material reference",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "shapes": [{"type": "sphere", "material": "nope", "center": [0,0,0], "radius": 1}]}`,
			`unknown material "nope"`,
		},
		{
			"sphere radius must be positive",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "materials": {"white": {"type": "diffuse", "albedo": [1,1,1]}},
			  "shapes": [{"type": "sphere", "material": "white", "center": [0,0,0]}]}`,
			"radius must be positive",
		},
		{
			"unknown sdf type",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "sdf_objects": [{"type": "torus"}]}`,
			"unknown sdf type",
		},
		{
			"sdf object without material",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "sdf_objects": [{"type": "sphere", "center": [0,0,0], "radius": 1}]}`,
			"no material resolvable",
		},
		{
			"difference arity",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "materials": {"white": {"type": "diffuse", "albedo": [1,1,1]}},
			  "sdf_objects": [{"type": "difference", "material": "white",
				"children": [{"type": "sphere", "center": [0,0,0], "radius": 1}]}]}`,
			"exactly two children",
		},
		{
			"dielectric needs eta_int",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "materials": {"glass": {"type": "dielectric"}}}`,
			"eta_int must be positive",
		},
		{
			"unknown background type",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "background": {"type": "hdri"}}`,
			"unknown background type",
		},
		{
			"unknown accelerator",
			`{"camera": {"center": [0,0,5], "look_at": [0,0,0]},
			  "accelerator": "octree"}`,
			"unknown accelerator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.json))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoad_MetalFresnelFlag(t *testing.T) {
	s, err := Load([]byte(`{
		"camera": {"center": [0, 0, 5], "look_at": [0, 0, 0]},
		"materials": {"chrome": {"type": "metal", "albedo": [0.9, 0.9, 0.9], "fresnel": true}},
		"sdf_objects": [{"type": "sphere", "material": "chrome", "center": [0, 0, 0], "radius": 1}]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	metal, ok := s.SDFObjects[0].Material().(*material.Metal)
	if !ok {
		t.Fatalf("material: got %T, expected *material.Metal", s.SDFObjects[0].Material())
	}
	if !metal.Fresnel {
		t.Error("fresnel flag should carry through to the material")
	}
}

func TestLoad_SDFMaterialInheritsFromFirstChild(t *testing.T) {
	s, err := Load([]byte(`{
		"camera": {"center": [0, 0, 5], "look_at": [0, 0, 0]},
		"materials": {"white": {"type": "diffuse", "albedo": [1, 1, 1]}},
		"sdf_objects": [{"type": "union", "children": [
			{"type": "sphere", "material": "white", "center": [0, 0, 0], "radius": 1},
			{"type": "sphere", "center": [2, 0, 0], "radius": 1}
		]}]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SDFObjects[0].Material() == nil {
		t.Error("union should inherit its first child's material")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "failed to read scene file") {
		t.Errorf("error should mention the read failure, got: %v", err)
	}
}
