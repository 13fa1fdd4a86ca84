package scene

import (
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// NewTransformScene creates a scene of primitives placed through transforms
func NewTransformScene() *Scene {
	camera := geometry.NewPerspectiveCamera(
		mgl64.Vec3{0, 1.5, 6},
		mgl64.Vec3{0, -0.2, -1},
		mgl64.Vec3{0, 1, 0},
		50,
		1,
	)

	s := New(
		WithCamera(camera),
		WithAmbient(mgl64.Vec3{0.1, 0.1, 0.1}),
		WithDefaultMaterial(DefaultMaterial()),
	)

	green := material.NewMaterial(mgl64.Vec3{0.2, 0.7, 0.3}, mgl64.Vec3{0.6, 0.6, 0.6}, 30)
	orange := material.NewMaterial(mgl64.Vec3{0.9, 0.5, 0.1}, mgl64.Vec3{0.4, 0.4, 0.4}, 8)
	purple := material.NewDiffuseMaterial(mgl64.Vec3{0.5, 0.2, 0.6})
	floor := material.NewDiffuseMaterial(mgl64.Vec3{0.6, 0.6, 0.6})
	for _, m := range []*material.Material{green, orange, purple, floor} {
		s.AddMaterial(m)
	}

	// Non-uniformly scaled sphere, tilted about Z
	ellipsoid := geometry.NewTransform(
		geometry.Compose(
			geometry.Translation(mgl64.Vec3{-1.8, 1, 0}),
			geometry.RotationZ(30),
			geometry.Scaling(mgl64.Vec3{0.9, 0.4, 0.4}),
		),
		geometry.NewSphere(mgl64.Vec3{}, 1, green),
	)

	// Cube balanced on a corner
	cube := geometry.NewTransform(
		geometry.Compose(
			geometry.Translation(mgl64.Vec3{1.6, 0.9, 0}),
			geometry.RotationY(45),
			geometry.RotationX(35.26),
		),
		newCube(0.5, orange),
	)

	// Transforms nest: the pair of spheres is placed as one object
	pair := geometry.NewGroup(
		geometry.NewSphere(mgl64.Vec3{-0.4, 0, 0}, 0.3, purple),
		geometry.NewSphere(mgl64.Vec3{0.4, 0, 0}, 0.3, purple),
	)
	spinning := geometry.NewTransform(
		geometry.Compose(
			geometry.Translation(mgl64.Vec3{0, 0.6, -1.5}),
			geometry.RotationAxis(mgl64.Vec3{1, 1, 0}, 40),
		),
		geometry.NewTransform(geometry.UniformScaling(1.5), pair),
	)

	s.Add(
		ellipsoid,
		cube,
		spinning,
		geometry.NewPlane(mgl64.Vec3{0, 1, 0}, 0, floor),
	)

	s.AddLight(lights.NewPointLight(mgl64.Vec3{0, 5, 4}, mgl64.Vec3{0.8, 0.8, 0.8}))
	s.AddLight(lights.NewDirectionalLight(mgl64.Vec3{1, -1, -0.5}, mgl64.Vec3{0.3, 0.3, 0.35}))

	return s
}
