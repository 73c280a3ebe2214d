package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/geometry"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/material"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/sdf"
)

// sceneFile is the top-level JSON scene description. Vectors are encoded
// as [x, y, z] arrays. Unknown "type" discriminators anywhere in the file
// are construction errors.
type sceneFile struct {
	Camera      *cameraDesc             `json:"camera"`
	Sampler     *samplerDesc            `json:"sampler,omitempty"`
	Integrator  *integratorDesc         `json:"integrator,omitempty"`
	Accelerator string                  `json:"accelerator,omitempty"`
	Raymarch    *sdf.Settings           `json:"raymarch,omitempty"`
	Background  *backgroundDesc         `json:"background,omitempty"`
	Materials   map[string]materialDesc `json:"materials,omitempty"`
	Shapes      []shapeDesc             `json:"shapes,omitempty"`
	SDFObjects  []sdfDesc               `json:"sdf_objects,omitempty"`
}

type cameraDesc struct {
	Center        *[3]float64 `json:"center"`
	LookAt        *[3]float64 `json:"look_at"`
	Up            *[3]float64 `json:"up,omitempty"`
	Width         int         `json:"width,omitempty"`
	AspectRatio   float64     `json:"aspect_ratio,omitempty"`
	VFov          float64     `json:"vfov,omitempty"`
	Aperture      float64     `json:"aperture,omitempty"`
	FocusDistance float64     `json:"focus_distance,omitempty"`
}

type samplerDesc struct {
	SamplesPerPixel int   `json:"samples_per_pixel,omitempty"`
	Seed            int64 `json:"seed,omitempty"`
}

type integratorDesc struct {
	Type     string `json:"type,omitempty"`
	MaxDepth int    `json:"max_depth,omitempty"`
}

type backgroundDesc struct {
	Type   string      `json:"type"`
	Color  *[3]float64 `json:"color,omitempty"`
	Top    *[3]float64 `json:"top,omitempty"`
	Bottom *[3]float64 `json:"bottom,omitempty"`
}

type materialDesc struct {
	Type      string       `json:"type"`
	Albedo    *[3]float64  `json:"albedo,omitempty"`
	Texture   *textureDesc `json:"texture,omitempty"`
	Roughness float64      `json:"roughness,omitempty"`
	Fresnel   bool         `json:"fresnel,omitempty"`
	Tint      *[3]float64  `json:"tint,omitempty"`
	EtaExt    float64      `json:"eta_ext,omitempty"`
	EtaInt    float64      `json:"eta_int,omitempty"`
	Radiance  *[3]float64  `json:"radiance,omitempty"`
}

type textureDesc struct {
	Type   string      `json:"type"`
	Color  *[3]float64 `json:"color,omitempty"`
	Color1 *[3]float64 `json:"color1,omitempty"`
	Color2 *[3]float64 `json:"color2,omitempty"`
	Scale  float64     `json:"scale,omitempty"`
}

type shapeDesc struct {
	Type     string      `json:"type"`
	Material string      `json:"material"`
	Center   *[3]float64 `json:"center,omitempty"`
	Radius   float64     `json:"radius,omitempty"`
	Corner   *[3]float64 `json:"corner,omitempty"`
	U        *[3]float64 `json:"u,omitempty"`
	V        *[3]float64 `json:"v,omitempty"`
}

type sdfDesc struct {
	Type       string        `json:"type"`
	Material   string        `json:"material,omitempty"`
	Center     *[3]float64   `json:"center,omitempty"`
	Radius     float64       `json:"radius,omitempty"`
	HalfExtent *[3]float64   `json:"half_extent,omitempty"`
	Rounding   float64       `json:"rounding,omitempty"`
	Scale      float64       `json:"scale,omitempty"`
	Iterations int           `json:"iterations,omitempty"`
	Children   []sdfDesc     `json:"children,omitempty"`
	Settings   *sdf.Settings `json:"settings,omitempty"`
}

// LoadFile reads and parses a JSON scene description from disk
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load parses a JSON scene description into a renderable scene
func Load(data []byte) (*Scene, error) {
	var file sceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene description: %w", err)
	}

	if file.Camera == nil {
		return nil, fmt.Errorf("scene description has no camera")
	}
	config, err := file.Camera.toConfig()
	if err != nil {
		return nil, err
	}

	s := NewScene(NewCamera(config))

	if file.Sampler != nil {
		if file.Sampler.SamplesPerPixel > 0 {
			s.SamplingConfig.SamplesPerPixel = file.Sampler.SamplesPerPixel
		}
		if file.Sampler.Seed != 0 {
			s.SamplingConfig.Seed = file.Sampler.Seed
		}
	}
	if file.Integrator != nil {
		s.Integrator = file.Integrator.Type
		if file.Integrator.MaxDepth > 0 {
			s.SamplingConfig.MaxDepth = file.Integrator.MaxDepth
		}
	}

	switch file.Accelerator {
	case "", AcceleratorBVH, AcceleratorLinear:
		s.Accelerator = file.Accelerator
	default:
		return nil, fmt.Errorf("unknown accelerator %q (want %q or %q)",
			file.Accelerator, AcceleratorBVH, AcceleratorLinear)
	}

	if file.Raymarch != nil {
		s.SDFSettings = file.Raymarch.Sanitized()
	}

	if file.Background != nil {
		background, err := file.Background.build()
		if err != nil {
			return nil, err
		}
		s.Background = background
	}

	materials := make(map[string]material.Material, len(file.Materials))
	for name, desc := range file.Materials {
		mat, err := desc.build(name)
		if err != nil {
			return nil, err
		}
		materials[name] = mat
	}

	for i, desc := range file.Shapes {
		shape, err := desc.build(i, materials)
		if err != nil {
			return nil, err
		}
		s.Add(shape)
	}

	for i, desc := range file.SDFObjects {
		obj, err := desc.build(materials)
		if err != nil {
			return nil, fmt.Errorf("sdf object %d: %w", i, err)
		}
		if obj.Material() == nil {
			return nil, fmt.Errorf("sdf object %d (%s): no material resolvable", i, desc.Type)
		}
		s.AddSDF(obj)
	}

	return s, nil
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func (d *cameraDesc) toConfig() (CameraConfig, error) {
	if d.Center == nil {
		return CameraConfig{}, fmt.Errorf("camera: missing center")
	}
	if d.LookAt == nil {
		return CameraConfig{}, fmt.Errorf("camera: missing look_at")
	}
	config := CameraConfig{
		Center:        toVec3(*d.Center),
		LookAt:        toVec3(*d.LookAt),
		Width:         d.Width,
		AspectRatio:   d.AspectRatio,
		VFov:          d.VFov,
		Aperture:      d.Aperture,
		FocusDistance: d.FocusDistance,
	}
	if d.Up != nil {
		config.Up = toVec3(*d.Up)
	}
	return config, nil
}

func (d *backgroundDesc) build() (Background, error) {
	switch d.Type {
	case "uniform":
		if d.Color == nil {
			return nil, fmt.Errorf("uniform background: missing color")
		}
		return NewUniformBackground(toVec3(*d.Color)), nil
	case "gradient":
		if d.Top == nil || d.Bottom == nil {
			return nil, fmt.Errorf("gradient background: missing top or bottom color")
		}
		return NewGradientBackground(toVec3(*d.Top), toVec3(*d.Bottom)), nil
	default:
		return nil, fmt.Errorf("unknown background type %q", d.Type)
	}
}

func (d *textureDesc) build(owner string) (material.ColorSource, error) {
	switch d.Type {
	case "solid":
		if d.Color == nil {
			return nil, fmt.Errorf("material %q: solid texture missing color", owner)
		}
		return material.NewSolidColor(toVec3(*d.Color)), nil
	case "checker":
		if d.Color1 == nil || d.Color2 == nil {
			return nil, fmt.Errorf("material %q: checker texture missing color1 or color2", owner)
		}
		scale := d.Scale
		if scale <= 0 {
			scale = 1
		}
		return material.NewChecker(toVec3(*d.Color1), toVec3(*d.Color2), scale), nil
	default:
		return nil, fmt.Errorf("material %q: unknown texture type %q", owner, d.Type)
	}
}

func (d *materialDesc) albedoSource(owner string) (material.ColorSource, error) {
	if d.Texture != nil {
		return d.Texture.build(owner)
	}
	if d.Albedo != nil {
		return material.NewSolidColor(toVec3(*d.Albedo)), nil
	}
	return nil, fmt.Errorf("material %q: missing albedo or texture", owner)
}

func (d *materialDesc) build(name string) (material.Material, error) {
	switch d.Type {
	case "diffuse":
		albedo, err := d.albedoSource(name)
		if err != nil {
			return nil, err
		}
		return material.NewTexturedDiffuse(albedo), nil
	case "metal":
		albedo, err := d.albedoSource(name)
		if err != nil {
			return nil, err
		}
		metal := material.NewTexturedMetal(albedo, d.Roughness)
		metal.Fresnel = d.Fresnel
		return metal, nil
	case "dielectric":
		tint := core.NewVec3(1, 1, 1)
		if d.Tint != nil {
			tint = toVec3(*d.Tint)
		}
		etaExt := d.EtaExt
		if etaExt == 0 {
			etaExt = 1.0
		}
		if d.EtaInt <= 0 {
			return nil, fmt.Errorf("material %q: dielectric eta_int must be positive", name)
		}
		return material.NewDielectric(tint, etaExt, d.EtaInt, d.Roughness), nil
	case "light":
		if d.Radiance == nil {
			return nil, fmt.Errorf("material %q: light missing radiance", name)
		}
		return material.NewDiffuseLight(toVec3(*d.Radiance)), nil
	default:
		return nil, fmt.Errorf("material %q: unknown material type %q", name, d.Type)
	}
}

func resolveMaterial(name string, materials map[string]material.Material) (material.Material, error) {
	if name == "" {
		return nil, fmt.Errorf("missing material name")
	}
	mat, ok := materials[name]
	if !ok {
		return nil, fmt.Errorf("unknown material %q", name)
	}
	return mat, nil
}

func (d *shapeDesc) build(index int, materials map[string]material.Material) (geometry.Shape, error) {
	mat, err := resolveMaterial(d.Material, materials)
	if err != nil {
		return nil, fmt.Errorf("shape %d (%s): %w", index, d.Type, err)
	}

	switch d.Type {
	case "sphere":
		if d.Center == nil {
			return nil, fmt.Errorf("shape %d: sphere missing center", index)
		}
		if d.Radius <= 0 {
			return nil, fmt.Errorf("shape %d: sphere radius must be positive", index)
		}
		return geometry.NewSphere(toVec3(*d.Center), d.Radius, mat), nil
	case "quad":
		if d.Corner == nil || d.U == nil || d.V == nil {
			return nil, fmt.Errorf("shape %d: quad missing corner, u or v", index)
		}
		return geometry.NewQuad(toVec3(*d.Corner), toVec3(*d.U), toVec3(*d.V), mat), nil
	default:
		return nil, fmt.Errorf("shape %d: unknown shape type %q", index, d.Type)
	}
}

func (d *sdfDesc) build(materials map[string]material.Material) (sdf.Object, error) {
	var mat material.Material
	if d.Material != "" {
		var err error
		mat, err = resolveMaterial(d.Material, materials)
		if err != nil {
			return nil, err
		}
	}

	var obj sdf.Object
	switch d.Type {
	case "sphere":
		if d.Center == nil {
			return nil, fmt.Errorf("sphere missing center")
		}
		if d.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive")
		}
		obj = sdf.NewSphere(toVec3(*d.Center), d.Radius, mat)
	case "round_box":
		if d.Center == nil || d.HalfExtent == nil {
			return nil, fmt.Errorf("round_box missing center or half_extent")
		}
		obj = sdf.NewRoundBox(toVec3(*d.Center), toVec3(*d.HalfExtent), d.Rounding, mat)
	case "menger":
		if d.Center == nil {
			return nil, fmt.Errorf("menger missing center")
		}
		if d.Scale <= 0 {
			return nil, fmt.Errorf("menger scale must be positive")
		}
		obj = sdf.NewMenger(toVec3(*d.Center), d.Scale, d.Iterations, mat)
	case "union":
		if len(d.Children) == 0 {
			return nil, fmt.Errorf("union needs at least one child")
		}
		children, err := d.buildChildren(materials)
		if err != nil {
			return nil, err
		}
		union := sdf.NewUnion(children...)
		if mat != nil {
			union.SetMaterial(mat)
		}
		obj = union
	case "intersection":
		if len(d.Children) == 0 {
			return nil, fmt.Errorf("intersection needs at least one child")
		}
		children, err := d.buildChildren(materials)
		if err != nil {
			return nil, err
		}
		intersection := sdf.NewIntersection(children...)
		if mat != nil {
			intersection.SetMaterial(mat)
		}
		obj = intersection
	case "difference":
		if len(d.Children) != 2 {
			return nil, fmt.Errorf("difference needs exactly two children, got %d", len(d.Children))
		}
		children, err := d.buildChildren(materials)
		if err != nil {
			return nil, err
		}
		difference := sdf.NewDifference(children[0], children[1])
		if mat != nil {
			difference.SetMaterial(mat)
		}
		obj = difference
	default:
		return nil, fmt.Errorf("unknown sdf type %q", d.Type)
	}

	if d.Settings != nil {
		obj.SetSettings(d.Settings.Sanitized())
	}
	return obj, nil
}

func (d *sdfDesc) buildChildren(materials map[string]material.Material) ([]sdf.Object, error) {
	children := make([]sdf.Object, 0, len(d.Children))
	for i := range d.Children {
		child, err := d.Children[i].build(materials)
		if err != nil {
			return nil, fmt.Errorf("%s child %d: %w", d.Type, i, err)
		}
		children = append(children, child)
	}
	return children, nil
}
