package renderer

import (
	"image"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Framebuffer holds one unclamped linear color per pixel. Row y=0 is the
// bottom of the picture, matching NDC y=-1.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []mgl64.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]mgl64.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (f *Framebuffer) At(x, y int) mgl64.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color of pixel (x, y)
func (f *Framebuffer) Set(x, y int, c mgl64.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// Image converts to an 8-bit image, clamping each channel to [0, 1].
// Rows are flipped so the bottom row of the framebuffer is the last image row.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, f.Height-1-y, core.ToRGBA(f.At(x, y)))
		}
	}
	return img
}
