package geometry

import (
	"math"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Invert returns the inverse of m, or core.ErrSingularMatrix when m has no
// inverse. mgl64.Mat4.Inv alone would return the zero matrix in that case.
func Invert(m mgl64.Mat4) (mgl64.Mat4, error) {
	det := m.Det()
	if math.IsNaN(det) || mgl64.FloatEqual(det, 0) {
		return mgl64.Mat4{}, core.ErrSingularMatrix
	}
	return m.Inv(), nil
}

// Translation returns a translation by v
func Translation(v mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(v[0], v[1], v[2])
}

// Scaling returns a non-uniform scale
func Scaling(s mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Scale3D(s[0], s[1], s[2])
}

// UniformScaling returns a uniform scale
func UniformScaling(s float64) mgl64.Mat4 {
	return mgl64.Scale3D(s, s, s)
}

// RotationX returns a rotation of degrees about the X axis
func RotationX(degrees float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(mgl64.DegToRad(degrees))
}

// RotationY returns a rotation of degrees about the Y axis
func RotationY(degrees float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(mgl64.DegToRad(degrees))
}

// RotationZ returns a rotation of degrees about the Z axis
func RotationZ(degrees float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(mgl64.DegToRad(degrees))
}

// RotationAxis returns a rotation of degrees about an arbitrary axis
func RotationAxis(axis mgl64.Vec3, degrees float64) mgl64.Mat4 {
	return mgl64.QuatRotate(mgl64.DegToRad(degrees), axis.Normalize()).Mat4()
}

// Compose multiplies the matrices left to right. The last matrix is the
// first one applied to the object, so Compose(Translation(t), Scaling(s))
// scales and then translates.
func Compose(matrices ...mgl64.Mat4) mgl64.Mat4 {
	result := mgl64.Ident4()
	for _, m := range matrices {
		result = result.Mul4(m)
	}
	return result
}
