package bound

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a parametric segment Origin + t*Dir for t in [Near, Far].
//
// The constructor precomputes the reciprocal direction and per-axis sign
// bits so that repeated box tests against the same ray pay no divisions and
// no per-axis sign branches.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
	Near   float64
	Far    float64

	invDir mgl64.Vec3
	sign   [3]int
}

// NewRay builds a ray over the parametric interval [near, far].
// A zero direction component gets a signed-infinity reciprocal rather than
// tripping a division; the slab test below handles the infinities.
func NewRay(origin, dir mgl64.Vec3, near, far float64) Ray {
	r := Ray{Origin: origin, Dir: dir, Near: near, Far: far}
	for i := 0; i < 3; i++ {
		if dir[i] != 0 {
			r.invDir[i] = 1 / dir[i]
		} else {
			r.invDir[i] = math.Inf(1)
		}
		if dir[i] < 0 {
			r.sign[i] = 1
		}
	}
	return r
}

// NewRayTo builds a ray covering the whole non-negative parameter range.
func NewRayTo(origin, dir mgl64.Vec3) Ray {
	return NewRay(origin, dir, 0, math.Inf(1))
}

// At returns the point at parameter t.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// HitsAABB reports whether the ray intersects the box, by the slab method:
// each axis in turn narrows the running [near, far] interval, with the
// min/max slab picked via the precomputed sign bit, and the test aborts as
// soon as the interval empties. No hit distance is computed.
func (r Ray) HitsAABB(box AABB) bool {
	bounds := [2]mgl64.Vec3{box.Min, box.Max}
	near, far := r.Near, r.Far

	for axis := 0; axis < 3; axis++ {
		tNear := (bounds[r.sign[axis]][axis] - r.Origin[axis]) * r.invDir[axis]
		tFar := (bounds[1-r.sign[axis]][axis] - r.Origin[axis]) * r.invDir[axis]

		if tNear > near {
			near = tNear
		}
		if tFar < far {
			far = tFar
		}
		if near >= far {
			return false
		}
	}

	return true
}
