package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform places a primitive in the world through an affine matrix.
// Rays are mapped into the object's local space instead of moving the
// object, so any primitive can be transformed.
type Transform struct {
	object       Primitive
	matrix       mgl64.Mat4
	inverse      mgl64.Mat4
	normalMatrix mgl64.Mat4 // (M⁻¹)ᵗ
	singular     bool
}

// NewTransform wraps object under matrix m. A singular m yields a transform
// that never intersects; check Singular to detect it.
func NewTransform(m mgl64.Mat4, object Primitive) *Transform {
	t := &Transform{object: object, matrix: m}

	inverse, err := Invert(m)
	if err != nil {
		t.singular = true
		return t
	}
	t.inverse = inverse
	t.normalMatrix = inverse.Transpose()
	return t
}

// Object returns the untransformed primitive
func (t *Transform) Object() Primitive { return t.object }

// Matrix returns the object-to-world matrix
func (t *Transform) Matrix() mgl64.Mat4 { return t.matrix }

// Singular reports whether the matrix could not be inverted
func (t *Transform) Singular() bool { return t.singular }

// Intersect maps the ray into local space, origin as a point (w=1) and
// direction as a vector (w=0), and intersects the wrapped primitive there.
//
// The local direction is rescaled to the world direction's length. With
// k = |M⁻¹d| / |d|, a local distance equals k times the world distance. The
// hit window is converted into local units before the call and the result
// back afterwards, so t stays comparable with untransformed siblings under
// any invertible matrix, including non-uniform scale.
func (t *Transform) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	if t.singular {
		return false
	}

	localOrigin := t.inverse.Mul4x1(ray.Origin.Vec4(1)).Vec3()
	localDir := t.inverse.Mul4x1(ray.Direction.Vec4(0)).Vec3()

	worldLen := ray.Direction.Len()
	localLen := localDir.Len()
	if worldLen == 0 || localLen == 0 {
		return false
	}
	k := localLen / worldLen

	localRay := core.NewRay(localOrigin, localDir.Mul(1/k))
	local := *hit
	local.T = hit.T * k
	if !t.object.Intersect(localRay, &local, tMin*k) {
		return false
	}

	worldT := local.T / k
	if !hit.Accepts(worldT, tMin) {
		return false
	}

	worldPoint := t.matrix.Mul4x1(local.Point.Vec4(1)).Vec3()
	worldNormal := t.normalMatrix.Mul4x1(local.Normal.Vec4(0)).Vec3().Normalize()
	hit.Set(worldT, worldPoint, worldNormal, local.Material)
	if local.HasTexture {
		hit.SetTexCoord(local.TexCoord)
	}
	return true
}
