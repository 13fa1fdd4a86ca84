package material

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Texture provides a color for a 2D texture coordinate
type Texture interface {
	// Sample returns the color at uv. Coordinates outside [0, 1] wrap.
	Sample(uv mgl64.Vec2) mgl64.Vec3
}

// wrap maps x into [0, 1). Non-finite coordinates map to 0.
func wrap(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	x -= math.Floor(x)
	if x >= 1 {
		// -tiny - Floor(-tiny) rounds up to 1
		return 0
	}
	return x
}
