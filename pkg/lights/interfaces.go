package lights

import "github.com/go-gl/mathgl/mgl64"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypePoint       LightType = "point"
)

// Light interface for sources used in direct illumination
type Light interface {
	Type() LightType

	// Illuminate returns the light arriving at point
	Illuminate(point mgl64.Vec3) Illumination
}

// Illumination describes the light one source delivers to a surface point
type Illumination struct {
	Direction mgl64.Vec3 // Unit direction FROM the point TO the light
	Color     mgl64.Vec3 // Light color, no falloff applied
	Distance  float64    // Distance to the light, +Inf for directional lights
}
