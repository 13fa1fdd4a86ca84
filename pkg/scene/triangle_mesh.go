package scene

import (
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// NewTriangleScene creates a scene showcasing triangle and mesh geometry
func NewTriangleScene() *Scene {
	camera := geometry.NewPerspectiveCamera(
		mgl64.Vec3{0, 1.2, 4},
		mgl64.Vec3{0, -0.2, -1},
		mgl64.Vec3{0, 1, 0},
		50,
		1,
	)

	s := New(
		WithCamera(camera),
		WithAmbient(mgl64.Vec3{0.15, 0.15, 0.15}),
		WithDefaultMaterial(DefaultMaterial()),
	)

	stone := material.NewMaterial(mgl64.Vec3{0.7, 0.6, 0.45}, mgl64.Vec3{0.3, 0.3, 0.3}, 20)
	uvDebug := material.NewTexturedMaterial(mgl64.Vec3{0.8, 0.8, 0.8}, material.NewUVDebugTexture(256, 256))
	floor := material.NewDiffuseMaterial(mgl64.Vec3{0.4, 0.4, 0.4})
	for _, m := range []*material.Material{stone, uvDebug, floor} {
		s.AddMaterial(m)
	}

	textured := geometry.NewTriangle(
		mgl64.Vec3{0.5, 0, -1},
		mgl64.Vec3{2, 0, -1},
		mgl64.Vec3{1.25, 1.5, -1},
		uvDebug,
	)
	textured.SetTexCoords([3]mgl64.Vec2{{0, 0}, {1, 0}, {0.5, 1}})

	s.Add(
		newPyramid(mgl64.Vec3{-1, 0, -1}, 1.5, 1.2, stone),
		textured,
		geometry.NewPlane(mgl64.Vec3{0, 1, 0}, 0, floor),
	)

	s.AddLight(lights.NewDirectionalLight(mgl64.Vec3{-0.5, -1, -0.8}, mgl64.Vec3{0.8, 0.8, 0.8}))

	return s
}

// newPyramid builds a square pyramid with smooth normals pointing away
// from a point inside it
func newPyramid(baseCenter mgl64.Vec3, size, height float64, m *material.Material) *geometry.Mesh {
	h := size / 2
	vertices := []mgl64.Vec3{
		baseCenter.Add(mgl64.Vec3{-h, 0, h}),
		baseCenter.Add(mgl64.Vec3{h, 0, h}),
		baseCenter.Add(mgl64.Vec3{h, 0, -h}),
		baseCenter.Add(mgl64.Vec3{-h, 0, -h}),
		baseCenter.Add(mgl64.Vec3{0, height, 0}), // Apex
	}
	faces := []int{
		0, 1, 4, // Front
		1, 2, 4, // Right
		2, 3, 4, // Back
		3, 0, 4, // Left
	}

	inside := baseCenter.Add(mgl64.Vec3{0, height / 3, 0})
	normals := make([]mgl64.Vec3, len(vertices))
	for i, v := range vertices {
		normals[i] = v.Sub(inside).Normalize()
	}

	return mustMesh(vertices, faces, m, &geometry.MeshOptions{Normals: normals})
}

// newQuad builds a parallelogram from two triangles. Texture coordinates
// run from 0 to uvScale along each edge so textures repeat uvScale times.
// The face normal is u×v.
func newQuad(corner, u, v mgl64.Vec3, uvScale float64, m *material.Material) *geometry.Mesh {
	vertices := []mgl64.Vec3{corner, corner.Add(u), corner.Add(u).Add(v), corner.Add(v)}
	texCoords := []mgl64.Vec2{{0, 0}, {uvScale, 0}, {uvScale, uvScale}, {0, uvScale}}

	return mustMesh(vertices, []int{0, 1, 2, 0, 2, 3}, m, &geometry.MeshOptions{TexCoords: texCoords})
}

// newCube builds an axis-aligned cube of half-size h centered at the origin
func newCube(h float64, m *material.Material) *geometry.Mesh {
	vertices := []mgl64.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	// Counter-clockwise seen from outside
	faces := []int{
		4, 5, 6, 4, 6, 7, // +Z
		1, 0, 3, 1, 3, 2, // -Z
		5, 1, 2, 5, 2, 6, // +X
		0, 4, 7, 0, 7, 3, // -X
		7, 6, 2, 7, 2, 3, // +Y
		0, 1, 5, 0, 5, 4, // -Y
	}

	return mustMesh(vertices, faces, m, nil)
}

// mustMesh builds a mesh from static data and panics if the data is invalid
func mustMesh(vertices []mgl64.Vec3, faces []int, m *material.Material, options *geometry.MeshOptions) *geometry.Mesh {
	mesh, err := geometry.NewMesh(vertices, faces, m, options)
	if err != nil {
		panic(err)
	}
	return mesh
}
