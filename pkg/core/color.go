package core

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Modulate returns the component-wise product of two colors
func Modulate(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Clamp returns a color with components clamped to [minVal, maxVal]
func Clamp(c mgl64.Vec3, minVal, maxVal float64) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(c[0], minVal, maxVal),
		mgl64.Clamp(c[1], minVal, maxVal),
		mgl64.Clamp(c[2], minVal, maxVal),
	}
}

// GammaCorrect applies gamma correction to color values
func GammaCorrect(c mgl64.Vec3, gamma float64) mgl64.Vec3 {
	invGamma := 1.0 / gamma
	return mgl64.Vec3{
		math.Pow(c[0], invGamma),
		math.Pow(c[1], invGamma),
		math.Pow(c[2], invGamma),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func Luminance(c mgl64.Vec3) float64 {
	return 0.299*c[0] + 0.587*c[1] + 0.114*c[2]
}

// ToRGBA converts a linear color to 8-bit RGBA, clamping to [0, 1].
// No gamma is applied; channel values are written as-is.
func ToRGBA(c mgl64.Vec3) color.RGBA {
	c = Clamp(c, 0.0, 1.0)
	return color.RGBA{
		R: uint8(math.Round(255 * c[0])),
		G: uint8(math.Round(255 * c[1])),
		B: uint8(math.Round(255 * c[2])),
		A: 255,
	}
}

// Vec3FromArray converts a config triple to a vector
func Vec3FromArray(a [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{a[0], a[1], a[2]}
}
