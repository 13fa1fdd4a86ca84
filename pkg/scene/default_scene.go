package scene

import (
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene() *Scene {
	camera := geometry.NewPerspectiveCamera(
		mgl64.Vec3{0, 1, 5},      // Position camera higher and farther back
		mgl64.Vec3{0, -0.15, -1}, // Look slightly down at the spheres
		mgl64.Vec3{0, 1, 0},      // Standard up direction
		45,
		1,
	)

	s := New(
		WithCamera(camera),
		WithBackground(mgl64.Vec3{0.5, 0.7, 1.0}), // Light blue sky
		WithAmbient(mgl64.Vec3{0.1, 0.1, 0.1}),
		WithDefaultMaterial(DefaultMaterial()),
	)

	// Create materials
	ground := material.NewDiffuseMaterial(mgl64.Vec3{0.8, 0.8, 0.0}.Mul(0.6))
	shinyRed := material.NewMaterial(mgl64.Vec3{0.65, 0.25, 0.2}, mgl64.Vec3{0.9, 0.9, 0.9}, 40)
	matteBlue := material.NewDiffuseMaterial(mgl64.Vec3{0.1, 0.2, 0.5})
	gold := material.NewMaterial(mgl64.Vec3{0.8, 0.6, 0.2}, mgl64.Vec3{1, 0.9, 0.6}, 12)
	for _, m := range []*material.Material{ground, shinyRed, matteBlue, gold} {
		s.AddMaterial(m)
	}

	// Flattened, tilted ellipsoid standing in for a third sphere
	ellipsoid := geometry.NewTransform(
		geometry.Compose(
			geometry.Translation(mgl64.Vec3{1.2, 0.35, -1}),
			geometry.RotationZ(-20),
			geometry.Scaling(mgl64.Vec3{0.6, 0.35, 0.5}),
		),
		geometry.NewSphere(mgl64.Vec3{}, 1, gold),
	)

	s.Add(
		geometry.NewPlane(mgl64.Vec3{0, 1, 0}, 0, ground),
		geometry.NewSphere(mgl64.Vec3{0, 0.5, -1}, 0.5, shinyRed),
		geometry.NewSphere(mgl64.Vec3{-1.2, 0.5, -1.5}, 0.5, matteBlue),
		ellipsoid,
	)

	s.AddLight(lights.NewDirectionalLight(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{0.7, 0.7, 0.7}))
	s.AddLight(lights.NewPointLight(mgl64.Vec3{2, 4, 3}, mgl64.Vec3{0.5, 0.5, 0.45}))

	return s
}

// NewSphereScene creates the smallest useful scene: a red sphere five
// units in front of a camera that carries a white point light
func NewSphereScene() *Scene {
	camera := geometry.NewPerspectiveCamera(
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 0, -1},
		mgl64.Vec3{0, 1, 0},
		90,
		1,
	)

	s := New(WithCamera(camera), WithDefaultLight(DefaultLight()))

	red := material.NewDiffuseMaterial(mgl64.Vec3{1, 0, 0})
	s.AddMaterial(red)
	s.Add(geometry.NewSphere(mgl64.Vec3{0, 0, -5}, 1, red))

	return s
}
