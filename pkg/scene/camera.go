package scene

import (
	"math"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// CameraConfig describes a pinhole or thin-lens camera
type CameraConfig struct {
	Center        core.Vec3 // camera position
	LookAt        core.Vec3 // point the camera looks at
	Up            core.Vec3 // world up direction
	Width         int       // image width in pixels
	AspectRatio   float64   // width / height
	VFov          float64   // vertical field of view in degrees
	Aperture      float64   // lens diameter, zero for a pinhole
	FocusDistance float64   // focal plane distance, zero to focus on LookAt
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if !override.Center.IsZero() {
		merged.Center = override.Center
	}
	if !override.LookAt.IsZero() {
		merged.LookAt = override.LookAt
	}
	if !override.Up.IsZero() {
		merged.Up = override.Up
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.Aperture != 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	return merged
}

// Camera generates primary rays for image coordinates
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // lens plane basis
	lensRadius      float64
	width           int
	height          int
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	if config.Up.IsZero() {
		config.Up = core.NewVec3(0, 1, 0)
	}
	if config.AspectRatio == 0 {
		config.AspectRatio = 16.0 / 9.0
	}
	if config.Width == 0 {
		config.Width = 400
	}
	if config.VFov == 0 {
		config.VFov = 40.0
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
		if focusDistance <= 0 {
			focusDistance = 1.0
		}
	}

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis: w points from the target back toward the camera
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	return &Camera{
		config:          config,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		width:           config.Width,
		height:          height,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// GetRay generates a ray through screen coordinates (s, t) in [0,1]², with
// t=0 at the bottom of the image. The lens sample defocuses the ray when
// the aperture is non-zero.
func (c *Camera) GetRay(s, t float64, lens core.Vec2) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(lens).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction.Normalize())
}

// RayForPixel generates a ray through the given pixel, jittered by the
// sample offset in [0,1)². Pixel rows run top to bottom.
func (c *Camera) RayForPixel(x, y int, jitter, lens core.Vec2) core.Ray {
	s := (float64(x) + jitter.X) / float64(c.width)
	t := 1.0 - (float64(y)+jitter.Y)/float64(c.height)
	return c.GetRay(s, t, lens)
}
