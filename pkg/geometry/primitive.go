package geometry

import "github.com/df07/go-raycaster/pkg/core"

// Primitive is anything a ray can be intersected with.
//
// Intersect returns true only when it improved hit, i.e. it found an
// intersection t with tMin <= t < hit.T, in which case hit has been
// overwritten. Otherwise hit is left untouched.
type Primitive interface {
	Intersect(ray core.Ray, hit *core.Hit, tMin float64) bool
}
