package geometry

import (
	"github.com/df07/go-raycaster/pkg/core"
)

// Group is an ordered collection of primitives that is itself a primitive.
// Children are referenced, not owned: the same primitive may appear in
// several groups.
type Group struct {
	objects []Primitive
}

// NewGroup creates a group holding the given primitives
func NewGroup(objects ...Primitive) *Group {
	g := &Group{objects: make([]Primitive, 0, len(objects))}
	g.objects = append(g.objects, objects...)
	return g
}

// Intersect tests every child in order. Each child only overwrites hit with
// a strictly closer intersection, so after the loop hit holds the nearest
// one in the whole subtree.
func (g *Group) Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool {
	isHit := false
	for _, obj := range g.objects {
		if obj.Intersect(ray, hit, tMin) {
			isHit = true
		}
	}
	return isHit
}

// Add appends a primitive
func (g *Group) Add(obj Primitive) {
	g.objects = append(g.objects, obj)
}

// Get returns the primitive at index i
func (g *Group) Get(i int) (Primitive, error) {
	if err := core.CheckIndex(i, len(g.objects)); err != nil {
		return nil, err
	}
	return g.objects[i], nil
}

// Replace swaps the primitive at index i for obj
func (g *Group) Replace(i int, obj Primitive) error {
	if err := core.CheckIndex(i, len(g.objects)); err != nil {
		return err
	}
	g.objects[i] = obj
	return nil
}

// Remove deletes the primitive at index i, shifting later ones down
func (g *Group) Remove(i int) error {
	if err := core.CheckIndex(i, len(g.objects)); err != nil {
		return err
	}
	g.objects = append(g.objects[:i], g.objects[i+1:]...)
	return nil
}

// Len returns the number of direct children
func (g *Group) Len() int {
	return len(g.objects)
}

// Objects returns the direct children. The slice must not be modified.
func (g *Group) Objects() []Primitive {
	return g.objects
}
