package material

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 mgl64.Vec3) *ImageTexture {
	if checkSize < 1 {
		checkSize = 1
	}
	pixels := make([]mgl64.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := color2
			if (x/checkSize+y/checkSize)%2 == 0 {
				color = color1
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red, V to green. Both grow toward the right and the top.
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]mgl64.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := span(x, width)
			v := 1 - span(y, height)
			pixels[y*width+x] = mgl64.Vec3{u, v, 0}
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from top (V=1) to bottom (V=0)
func NewGradientTexture(width, height int, top, bottom mgl64.Vec3) *ImageTexture {
	pixels := make([]mgl64.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := span(y, height)
		color := top.Mul(1.0 - t).Add(bottom.Mul(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

// span maps index i of n to [0, 1]. A single pixel maps to 0.
func span(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(i) / float64(n-1)
}
