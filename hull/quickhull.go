// Package hull builds 3D convex hulls with the quickhull algorithm.
//
// Quickhull grows the hull incrementally: pick a point known to be outside
// the current polyhedron, discard every face visible from it, and patch the
// resulting hole with new triangles connecting the horizon (the border of
// the removed region) to that point. Each face carries an "outside set" of
// points still in front of its plane; the construction terminates once every
// outside set is empty.
//
// References:
//   - Barber, Dobkin, Huhdanpaa: "The Quickhull Algorithm for Convex Hulls"
//     (1996)
package hull

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInsufficientPoints reports a Quickhull input below the minimum size.
var ErrInsufficientPoints = errors.New("hull: insufficient points")

// builder holds the per-construction working state: the face worklist, the
// merged candidate pool of one expansion step, the visible-face indices and
// the horizon accumulator. Builders are pooled so repeated constructions
// reuse their buffers.
type builder struct {
	faces   []Face
	pool    []mgl64.Vec3
	visible []int
	horizon *horizon
}

var builderPool = sync.Pool{
	New: func() interface{} {
		return &builder{horizon: newHorizon()}
	},
}

func (b *builder) reset() {
	b.faces = b.faces[:0]
	b.pool = b.pool[:0]
	b.visible = b.visible[:0]
	b.horizon.reset()
}

// Quickhull computes the convex hull of the given points and returns its
// triangular faces. The face list is unordered; each face's plane normal
// points out of the hull, but winding is not guaranteed to be consistent
// across faces.
//
// Fewer than 3 points is a precondition failure reported as
// ErrInsufficientPoints.
func Quickhull(points []mgl64.Vec3) ([]Face, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d, need at least 3", ErrInsufficientPoints, len(points))
	}

	b := builderPool.Get().(*builder)
	defer func() {
		b.reset()
		builderPool.Put(b)
	}()

	b.seed(points)
	for b.expand() {
	}

	// Copy out of the pooled buffer; outside sets are all empty by now.
	out := make([]Face, len(b.faces))
	for i, f := range b.faces {
		f.outside = nil
		out[i] = f
	}
	return out, nil
}

// seed builds the initial two-sided hull: a degenerate polyhedron of two
// opposite-winding triangles over the seed points, with every other input
// point partitioned between their outside sets.
func (b *builder) seed(points []mgl64.Vec3) {
	// Deterministic seed pair: lexicographic order of the first two points,
	// refined to the true lexicographic min/max of the whole input in a
	// single pass.
	m1, m2 := points[0], points[1]
	if lexLess(m2, m1) {
		m1, m2 = m2, m1
	}
	for _, p := range points[2:] {
		if lexLess(p, m1) {
			m1 = p
		} else if lexLess(m2, p) {
			m2 = p
		}
	}

	// Third seed: the point scoring highest on distance-to-midpoint scaled
	// down by alignment with the segment, approximating "farthest from the
	// line M1-M2". Coincident points score zero and never win.
	mid := m1.Add(m2).Mul(0.5)
	line := safeNormalize(m2.Sub(m1))

	t3 := m1
	best := -1.0
	for _, p := range points {
		if p == m1 || p == m2 {
			continue
		}
		if score := lineScore(p, mid, line); score > best {
			best = score
			t3 = p
		}
	}

	fa := newFace(m1, m2, t3)
	fb := newFace(m2, m1, t3)

	// Partition the rest by the sign of the distance to face A; the reverse
	// face B picks up everything else, coplanar points included.
	for _, p := range points {
		if p == m1 || p == m2 || p == t3 {
			continue
		}
		if d := fa.Plane.SignedDistance(p); d > 0 {
			fa.claim(p, d)
		} else {
			fb.claim(p, -d)
		}
	}

	b.faces = append(b.faces, fa, fb)
}

// expand runs one quickhull step: take the farthest pending point of the
// first unfinished face, remove every face visible from it, and patch the
// horizon with new faces claiming the orphaned candidates. It reports
// whether any face still has pending outside points.
func (b *builder) expand() bool {
	active := -1
	for i := range b.faces {
		if len(b.faces[i].outside) > 0 {
			active = i
			break
		}
	}
	if active < 0 {
		return false
	}
	apex := b.faces[active].outside[0]

	// The active face is visible by construction; any other face with the
	// apex strictly in front joins it.
	b.visible = b.visible[:0]
	for i := range b.faces {
		if i == active || b.faces[i].Plane.SignedDistance(apex) > 0 {
			b.visible = append(b.visible, i)
		}
	}

	// Merge the visible faces' outside sets into one candidate pool and
	// accumulate their edge cycles; interior edges cancel, leaving the
	// horizon border in encounter order.
	b.pool = b.pool[:0]
	b.horizon.reset()
	for _, i := range b.visible {
		for _, p := range b.faces[i].outside {
			if p != apex {
				b.pool = append(b.pool, p)
			}
		}
		b.horizon.addFace(b.faces[i])
	}

	b.removeVisible()

	// One new face per horizon edge, keeping the directed order so the new
	// winding stays outward. Each face greedily claims the still-unassigned
	// candidates in front of its plane; points claimed by no new face lie
	// inside the updated hull and are dropped.
	for _, e := range b.horizon.edges {
		f := newFace(e.a, e.b, apex)

		unclaimed := b.pool[:0]
		for _, p := range b.pool {
			if d := f.Plane.SignedDistance(p); d > 0 {
				f.claim(p, d)
			} else {
				unclaimed = append(unclaimed, p)
			}
		}
		b.pool = unclaimed

		b.faces = append(b.faces, f)
	}

	return true
}

// removeVisible deletes the faces indexed by b.visible (ascending) from the
// worklist, preserving the order of the remaining faces.
func (b *builder) removeVisible() {
	kept := b.faces[:0]
	vi := 0
	for i := range b.faces {
		if vi < len(b.visible) && b.visible[vi] == i {
			vi++
			continue
		}
		kept = append(kept, b.faces[i])
	}
	b.faces = kept
}

// lineScore rates a candidate third seed point: its distance to the segment
// midpoint, scaled by how far its direction is from the segment direction.
// Degenerate (zero-length) vectors contribute zero rather than dividing by
// zero.
func lineScore(p, mid, line mgl64.Vec3) float64 {
	v := p.Sub(mid)
	dist := v.Len()
	if dist == 0 {
		return 0
	}
	cos := v.Mul(1 / dist).Dot(line)
	if cos < 0 {
		cos = -cos
	}
	return dist * (1 - cos)
}

// lexLess orders points lexicographically, x then y then z.
func lexLess(a, b mgl64.Vec3) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}
