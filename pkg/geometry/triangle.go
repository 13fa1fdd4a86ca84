package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Triangle represents a single triangle defined by three vertices, with
// optional per-vertex normals and texture coordinates
type Triangle struct {
	a, b, c   mgl64.Vec3
	normals   [3]mgl64.Vec3 // Per-vertex normals, all equal to the face normal by default
	texCoords [3]mgl64.Vec2
	hasTex    bool
	material  core.Shader
}

// NewTriangle creates a flat-shaded triangle. The face normal is
// (b-a)×(c-a), so counter-clockwise vertices face the viewer.
func NewTriangle(a, b, c mgl64.Vec3, material core.Shader) *Triangle {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return &Triangle{
		a:        a,
		b:        b,
		c:        c,
		normals:  [3]mgl64.Vec3{n, n, n},
		material: material,
	}
}

// NewTriangleWithNormals creates a smooth-shaded triangle from per-vertex normals
func NewTriangleWithNormals(a, b, c mgl64.Vec3, normals [3]mgl64.Vec3, material core.Shader) *Triangle {
	t := NewTriangle(a, b, c, material)
	for i, n := range normals {
		t.normals[i] = n.Normalize()
	}
	return t
}

// SetTexCoords attaches per-vertex texture coordinates
func (t *Triangle) SetTexCoords(uv [3]mgl64.Vec2) {
	t.texCoords = uv
	t.hasTex = true
}

// Vertices returns the three vertices
func (t *Triangle) Vertices() (a, b, c mgl64.Vec3) {
	return t.a, t.b, t.c
}

// Normals returns the per-vertex normals
func (t *Triangle) Normals() [3]mgl64.Vec3 {
	return t.normals
}

// HasTexCoords reports whether texture coordinates were attached
func (t *Triangle) HasTexCoords() bool {
	return t.hasTex
}

// Intersect solves a + β(b-a) + γ(c-a) = o + s·d by Cramer's rule on the
// raw direction, then records t = s·|d| so that, as for the sphere and
// plane, t is a distance along the ray.
func (t *Triangle) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	dirLen := ray.Direction.Len()
	if dirLen == 0 {
		return false
	}

	ab := t.a.Sub(t.b)
	ac := t.a.Sub(t.c)
	rhs := t.a.Sub(ray.Origin)

	det := mgl64.Mat3FromCols(ab, ac, ray.Direction).Det()
	if det == 0 {
		// Ray parallel to the triangle plane, or a degenerate triangle
		return false
	}

	tParam := mgl64.Mat3FromCols(ab, ac, rhs).Det() / det
	dist := tParam * dirLen
	if !hit.Accepts(dist, tMin) {
		return false
	}

	beta := mgl64.Mat3FromCols(rhs, ac, ray.Direction).Det() / det
	gamma := mgl64.Mat3FromCols(ab, rhs, ray.Direction).Det() / det
	if beta < 0 || gamma < 0 || beta+gamma > 1 {
		return false
	}

	alpha := 1 - beta - gamma
	normal := t.normals[0].Mul(alpha).
		Add(t.normals[1].Mul(beta)).
		Add(t.normals[2].Mul(gamma)).
		Normalize()

	hit.Set(dist, ray.At(tParam), normal, t.material)
	if t.hasTex {
		hit.SetTexCoord(t.texCoords[0].Mul(alpha).
			Add(t.texCoords[1].Mul(beta)).
			Add(t.texCoords[2].Mul(gamma)))
	}
	return true
}
