package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/lights"
	"github.com/df07/go-raycaster/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// DefaultBackground is the color of rays that hit nothing
	DefaultBackground = mgl64.Vec3{0.5, 0.5, 0.5}
	// DefaultAmbient is the ambient light of a new scene
	DefaultAmbient = mgl64.Vec3{0, 0, 0}
)

// Scene contains all the elements needed for rendering. Lights and
// materials live in index-addressed collections that may only be edited
// between renders.
type Scene struct {
	Camera     geometry.Camera
	Root       *geometry.Group // Objects in the scene
	Background mgl64.Vec3
	Ambient    mgl64.Vec3

	lights    []lights.Light
	materials []*material.Material
}

// Option configures a new scene
type Option func(*Scene)

// WithCamera sets the camera
func WithCamera(camera geometry.Camera) Option {
	return func(s *Scene) { s.Camera = camera }
}

// WithBackground sets the background color
func WithBackground(color mgl64.Vec3) Option {
	return func(s *Scene) { s.Background = color }
}

// WithAmbient sets the ambient light color
func WithAmbient(color mgl64.Vec3) Option {
	return func(s *Scene) { s.Ambient = color }
}

// WithDefaultMaterial adds m as material 0
func WithDefaultMaterial(m *material.Material) Option {
	return func(s *Scene) { s.materials = append(s.materials, m) }
}

// WithDefaultLight adds l as light 0
func WithDefaultLight(l lights.Light) Option {
	return func(s *Scene) { s.lights = append(s.lights, l) }
}

// DefaultMaterial returns a black diffuse material
func DefaultMaterial() *material.Material {
	return material.NewDiffuseMaterial(mgl64.Vec3{0, 0, 0})
}

// DefaultLight returns a white point light at the origin
func DefaultLight() lights.Light {
	return lights.NewPointLight(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
}

// New creates an empty scene with the default background and ambient light
func New(opts ...Option) *Scene {
	s := &Scene{
		Root:       geometry.NewGroup(),
		Background: DefaultBackground,
		Ambient:    DefaultAmbient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends primitives to the root group
func (s *Scene) Add(objects ...geometry.Primitive) {
	for _, obj := range objects {
		s.Root.Add(obj)
	}
}

// AddLight appends a light and returns its index
func (s *Scene) AddLight(l lights.Light) int {
	s.lights = append(s.lights, l)
	return len(s.lights) - 1
}

// Light returns the light at index i
func (s *Scene) Light(i int) (lights.Light, error) {
	if err := core.CheckIndex(i, len(s.lights)); err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	return s.lights[i], nil
}

// ModifyLight replaces the light at index i
func (s *Scene) ModifyLight(i int, l lights.Light) error {
	if err := core.CheckIndex(i, len(s.lights)); err != nil {
		return fmt.Errorf("light: %w", err)
	}
	s.lights[i] = l
	return nil
}

// RemoveLight deletes the light at index i, shifting later lights down
func (s *Scene) RemoveLight(i int) error {
	if err := core.CheckIndex(i, len(s.lights)); err != nil {
		return fmt.Errorf("light: %w", err)
	}
	s.lights = append(s.lights[:i], s.lights[i+1:]...)
	return nil
}

// NumLights returns the number of lights
func (s *Scene) NumLights() int { return len(s.lights) }

// Lights returns the lights. The slice must not be modified.
func (s *Scene) Lights() []lights.Light { return s.lights }

// AddMaterial appends a material and returns its index
func (s *Scene) AddMaterial(m *material.Material) int {
	s.materials = append(s.materials, m)
	return len(s.materials) - 1
}

// Material returns the material at index i
func (s *Scene) Material(i int) (*material.Material, error) {
	if err := core.CheckIndex(i, len(s.materials)); err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}
	return s.materials[i], nil
}

// ModifyMaterial replaces the material at index i. Primitives built with
// the old material keep referencing it.
func (s *Scene) ModifyMaterial(i int, m *material.Material) error {
	if err := core.CheckIndex(i, len(s.materials)); err != nil {
		return fmt.Errorf("material: %w", err)
	}
	s.materials[i] = m
	return nil
}

// RemoveMaterial deletes the material at index i, shifting later ones down
func (s *Scene) RemoveMaterial(i int) error {
	if err := core.CheckIndex(i, len(s.materials)); err != nil {
		return fmt.Errorf("material: %w", err)
	}
	s.materials = append(s.materials[:i], s.materials[i+1:]...)
	return nil
}

// NumMaterials returns the number of materials
func (s *Scene) NumMaterials() int { return len(s.materials) }

// LoadTexture loads an image texture onto material i. A missing or
// unreadable file is not an error: the material stays untextured and the
// result is false.
func (s *Scene) LoadTexture(i int, path string, logger *zap.Logger) (bool, error) {
	m, err := s.Material(i)
	if err != nil {
		return false, err
	}
	return m.LoadTexture(path, logger), nil
}

// Validate reports every problem that would prevent a render
func (s *Scene) Validate() error {
	var err error
	if s.Camera == nil {
		err = multierr.Append(err, errors.New("scene has no camera"))
	}
	if s.Root == nil {
		err = multierr.Append(err, errors.New("scene has no root group"))
	}
	for i, l := range s.lights {
		if l == nil {
			err = multierr.Append(err, fmt.Errorf("light %d is nil", i))
		}
	}
	for i, m := range s.materials {
		if m == nil {
			err = multierr.Append(err, fmt.Errorf("material %d is nil", i))
		}
	}
	return err
}

// PrimitiveCount returns the number of leaf primitives, counting each mesh
// triangle and looking through groups and transforms
func (s *Scene) PrimitiveCount() int {
	if s.Root == nil {
		return 0
	}
	return countPrimitives(s.Root)
}

func countPrimitives(p geometry.Primitive) int {
	switch obj := p.(type) {
	case *geometry.Group:
		count := 0
		for _, child := range obj.Objects() {
			count += countPrimitives(child)
		}
		return count
	case *geometry.Transform:
		return countPrimitives(obj.Object())
	case *geometry.Mesh:
		return obj.TriangleCount()
	default:
		return 1
	}
}
