package material

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []mgl64.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []mgl64.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample returns the nearest pixel to uv
func (t *ImageTexture) Sample(uv mgl64.Vec2) mgl64.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return mgl64.Vec3{}
	}

	u := wrap(uv.X())
	v := wrap(uv.Y())

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	// Clamp to image bounds
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}
