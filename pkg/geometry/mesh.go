package geometry

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a collection of triangles sharing one material. It intersects as
// a plain Group of its triangles.
type Mesh struct {
	group     *Group
	triangles []*Triangle
}

// MeshOptions contains optional per-vertex attributes for mesh creation
type MeshOptions struct {
	Normals   []mgl64.Vec3 // Optional per-vertex normals (len == len(vertices))
	TexCoords []mgl64.Vec2 // Optional per-vertex texture coordinates (len == len(vertices))
}

// NewMesh creates a mesh from vertices and face indices.
// Each group of 3 indices in faces forms a triangle.
func NewMesh(vertices []mgl64.Vec3, faces []int, material core.Shader, options *MeshOptions) (*Mesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	if options != nil {
		if options.Normals != nil && len(options.Normals) != len(vertices) {
			return nil, fmt.Errorf("got %d normals for %d vertices", len(options.Normals), len(vertices))
		}
		if options.TexCoords != nil && len(options.TexCoords) != len(vertices) {
			return nil, fmt.Errorf("got %d texture coordinates for %d vertices", len(options.TexCoords), len(vertices))
		}
	}

	numTriangles := len(faces) / 3
	mesh := &Mesh{
		group:     &Group{objects: make([]Primitive, 0, numTriangles)},
		triangles: make([]*Triangle, 0, numTriangles),
	}

	for i := 0; i < numTriangles; i++ {
		idx := [3]int{faces[i*3], faces[i*3+1], faces[i*3+2]}
		for _, v := range idx {
			if err := core.CheckIndex(v, len(vertices)); err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
		}

		a, b, c := vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]

		var tri *Triangle
		if options != nil && options.Normals != nil {
			tri = NewTriangleWithNormals(a, b, c,
				[3]mgl64.Vec3{options.Normals[idx[0]], options.Normals[idx[1]], options.Normals[idx[2]]},
				material)
		} else {
			tri = NewTriangle(a, b, c, material)
		}

		if options != nil && options.TexCoords != nil {
			tri.SetTexCoords([3]mgl64.Vec2{options.TexCoords[idx[0]], options.TexCoords[idx[1]], options.TexCoords[idx[2]]})
		}

		mesh.triangles = append(mesh.triangles, tri)
		mesh.group.Add(tri)
	}

	return mesh, nil
}

// Intersect tests the ray against every triangle of the mesh
func (m *Mesh) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	return m.group.Intersect(ray, hit, tMin)
}

// TriangleCount returns the number of triangles in this mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Triangles returns the individual triangles
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles
}
