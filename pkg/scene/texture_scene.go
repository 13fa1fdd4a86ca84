package scene

import (
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// NewTextureScene creates a scene demonstrating texture mapping. Material 1
// is the checkerboard floor, the usual target for an image texture.
func NewTextureScene() *Scene {
	camera := geometry.NewPerspectiveCamera(
		mgl64.Vec3{0, 2, 6},
		mgl64.Vec3{0, -0.3, -1},
		mgl64.Vec3{0, 1, 0},
		55,
		1,
	)

	s := New(
		WithCamera(camera),
		WithBackground(mgl64.Vec3{0.3, 0.4, 0.6}), // Subtle blue
		WithAmbient(mgl64.Vec3{0.2, 0.2, 0.2}),
		WithDefaultMaterial(DefaultMaterial()),
	)

	// Create procedural textures
	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		mgl64.Vec3{0.9, 0.9, 0.9}, // White
		mgl64.Vec3{0.2, 0.2, 0.8}, // Blue
	)
	redGreenGradient := material.NewGradientTexture(256, 256,
		mgl64.Vec3{1.0, 0.2, 0.2}, // Red (top)
		mgl64.Vec3{0.2, 1.0, 0.2}, // Green (bottom)
	)
	marble := material.NewPerlinTexture(6,
		mgl64.Vec3{0.95, 0.92, 0.85},
		mgl64.Vec3{0.35, 0.3, 0.3},
		7,
	)

	checkerMat := material.NewTexturedMaterial(mgl64.Vec3{0.5, 0.5, 0.5}, checkerboard)
	gradientMat := material.NewTexturedMaterial(mgl64.Vec3{0.6, 0.6, 0.2}, redGreenGradient)
	marbleMat := &material.Material{
		Diffuse:   mgl64.Vec3{0.8, 0.8, 0.8},
		Specular:  mgl64.Vec3{0.5, 0.5, 0.5},
		Shininess: 25,
		Texture:   marble,
	}
	for _, m := range []*material.Material{checkerMat, gradientMat, marbleMat} {
		s.AddMaterial(m)
	}

	gradientTriangle := geometry.NewTriangle(
		mgl64.Vec3{1, 0, -1},
		mgl64.Vec3{3, 0, -1},
		mgl64.Vec3{2, 2, -1},
		gradientMat,
	)
	gradientTriangle.SetTexCoords([3]mgl64.Vec2{{0, 0}, {1, 0}, {0.5, 1}})

	s.Add(
		// Floor tiled four times in each direction
		newQuad(mgl64.Vec3{-4, 0, 2}, mgl64.Vec3{8, 0, 0}, mgl64.Vec3{0, 0, -8}, 4, checkerMat),
		// Upright marble panel facing the camera
		newQuad(mgl64.Vec3{-2.5, 0, -1.5}, mgl64.Vec3{2, 0, 0}, mgl64.Vec3{0, 2, 0}, 1, marbleMat),
		gradientTriangle,
		// Spheres carry no texture coordinates and shade with the flat color
		geometry.NewSphere(mgl64.Vec3{0.3, 0.5, 0.5}, 0.5, checkerMat),
	)

	s.AddLight(lights.NewPointLight(mgl64.Vec3{0, 6, 4}, mgl64.Vec3{0.9, 0.9, 0.9}))

	return s
}
