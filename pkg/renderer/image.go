// Package renderer turns a scene and an integrator into an image, fanning
// the work out over fixed-size tiles.
package renderer

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
)

// Image is a film of linear RGB radiance values. Tiles render into private
// sub-images which the scheduler blits into the final film; conversion to
// display sRGB happens only when encoding.
type Image struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewImage creates a black film of the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the film width in pixels
func (im *Image) Width() int {
	return im.width
}

// Height returns the film height in pixels
func (im *Image) Height() int {
	return im.height
}

// Rect returns the film bounds as an image rectangle
func (im *Image) Rect() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

// At returns the linear radiance stored at pixel (x, y)
func (im *Image) At(x, y int) core.Vec3 {
	return im.pixels[y*im.width+x]
}

// Set stores linear radiance at pixel (x, y)
func (im *Image) Set(x, y int, value core.Vec3) {
	im.pixels[y*im.width+x] = value
}

// Blit copies a sub-image into this film with its top-left corner at the
// given point. The sub-image must fit within the film bounds.
func (im *Image) Blit(sub *Image, at image.Point) {
	for y := 0; y < sub.height; y++ {
		src := sub.pixels[y*sub.width : (y+1)*sub.width]
		offset := (at.Y+y)*im.width + at.X
		copy(im.pixels[offset:offset+sub.width], src)
	}
}

// ToRGBA converts the film to an 8-bit sRGB image
func (im *Image) ToRGBA() *image.RGBA {
	img := image.NewRGBA(im.Rect())
	for y := 0; y < im.height; y++ {
		for x := 0; x < im.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(im.At(x, y)))
		}
	}
	return img
}

// EncodePNG writes the film to w as an sRGB PNG
func (im *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, im.ToRGBA())
}

// vec3ToColor converts linear radiance to an 8-bit display color using the
// piecewise sRGB transfer function
func vec3ToColor(value core.Vec3) color.RGBA {
	value = value.ToSRGB().Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * value.X),
		G: uint8(255 * value.Y),
		B: uint8(255 * value.Z),
		A: 255,
	}
}
