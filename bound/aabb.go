// Package bound provides axis-aligned bounding volumes and ray queries
// over them: boxes, spheres, and a slab-method ray/box intersection test.
//
// All values are immutable; every operation returns a fresh value and never
// mutates its receiver or arguments, so independent queries may run
// concurrently without coordination.
package bound

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis identifies one of the three coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AABB is an axis-aligned bounding box given by its minimum and maximum
// corners. A valid box satisfies Min ≤ Max componentwise. The zero extent
// sentinel returned by Empty has Min = +Inf and Max = -Inf on every axis
// and is absorbed by Union with anything.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Empty returns the "no extent yet" sentinel box. It contains no point and
// unions with any box or point to that box or point.
func Empty() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// FromCorners builds the minimal box containing both corner points; the
// arguments need not be ordered.
func FromCorners(a, b mgl64.Vec3) AABB {
	return AABB{
		Min: mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])},
		Max: mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])},
	}
}

// FromPoints builds the minimal box enclosing every given point.
// With no points it returns the Empty sentinel.
func FromPoints(points ...mgl64.Vec3) AABB {
	box := Empty()
	for _, p := range points {
		box = box.ExtendPoint(p)
	}
	return box
}

// FromPointsMargin builds the minimal box enclosing every point, then grows
// every side by margin.
func FromPointsMargin(points []mgl64.Vec3, margin float64) AABB {
	return FromPoints(points...).Expand(margin)
}

// Expand grows every side of the box by s (negative s shrinks it).
func (a AABB) Expand(s float64) AABB {
	return a.ExpandVec(mgl64.Vec3{s, s, s})
}

// ExpandVec grows the box by a per-axis margin on every side.
func (a AABB) ExpandVec(margin mgl64.Vec3) AABB {
	return AABB{
		Min: a.Min.Sub(margin),
		Max: a.Max.Add(margin),
	}
}

// IsEmpty reports whether the box is degenerate: inverted on some axis,
// enclosing no volume. The Empty sentinel is empty on all three axes.
func (a AABB) IsEmpty() bool {
	return a.Min[0] > a.Max[0] || a.Min[1] > a.Max[1] || a.Min[2] > a.Max[2]
}

// Union returns the minimal box enclosing both boxes. If either box already
// encloses the other it is returned unchanged.
func (a AABB) Union(b AABB) AABB {
	if a.ContainsAABB(b) {
		return a
	}
	if b.ContainsAABB(a) {
		return b
	}
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min[0], b.Min[0]),
			math.Min(a.Min[1], b.Min[1]),
			math.Min(a.Min[2], b.Min[2]),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max[0], b.Max[0]),
			math.Max(a.Max[1], b.Max[1]),
			math.Max(a.Max[2], b.Max[2]),
		},
	}
}

// ExtendPoint returns the minimal box enclosing the box and the point.
// A box already containing the point is returned unchanged.
func (a AABB) ExtendPoint(p mgl64.Vec3) AABB {
	if a.ContainsPoint(p) {
		return a
	}
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min[0], p[0]),
			math.Min(a.Min[1], p[1]),
			math.Min(a.Min[2], p[2]),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max[0], p[0]),
			math.Max(a.Max[1], p[1]),
			math.Max(a.Max[2], p[2]),
		},
	}
}

// Overlaps reports whether the two boxes intersect as closed regions;
// boxes that merely touch on a face, edge or corner count as overlapping.
func (a AABB) Overlaps(b AABB) bool {
	return a.Max[0] >= b.Min[0] && a.Min[0] <= b.Max[0] &&
		a.Max[1] >= b.Min[1] && a.Min[1] <= b.Max[1] &&
		a.Max[2] >= b.Min[2] && a.Min[2] <= b.Max[2]
}

// Dist returns the minimal Euclidean separation between two disjoint boxes.
// The second result is false when the boxes overlap, in which case the
// distance is meaningless.
func (a AABB) Dist(b AABB) (float64, bool) {
	if a.Overlaps(b) {
		return 0, false
	}

	var sum float64
	for i := 0; i < 3; i++ {
		if gap := b.Min[i] - a.Max[i]; gap > 0 {
			sum += gap * gap
		} else if gap := a.Min[i] - b.Max[i]; gap > 0 {
			sum += gap * gap
		}
	}

	return math.Sqrt(sum), true
}

// ContainsPoint reports whether the point lies in the closed box.
func (a AABB) ContainsPoint(p mgl64.Vec3) bool {
	return p[0] >= a.Min[0] && p[0] <= a.Max[0] &&
		p[1] >= a.Min[1] && p[1] <= a.Max[1] &&
		p[2] >= a.Min[2] && p[2] <= a.Max[2]
}

// ContainsAABB reports whether b lies entirely inside the closed box a.
func (a AABB) ContainsAABB(b AABB) bool {
	return b.Min[0] >= a.Min[0] && b.Max[0] <= a.Max[0] &&
		b.Min[1] >= a.Min[1] && b.Max[1] <= a.Max[1] &&
		b.Min[2] >= a.Min[2] && b.Max[2] <= a.Max[2]
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the per-axis extent of the box.
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// SurfaceArea returns the total area of the six sides, or 0 for a
// degenerate box.
func (a AABB) SurfaceArea() float64 {
	if a.IsEmpty() {
		return 0
	}
	size := a.Size()
	return 2 * (size[0]*size[1] + size[0]*size[2] + size[1]*size[2])
}

// Volume returns the enclosed volume, or 0 for a degenerate box.
func (a AABB) Volume() float64 {
	if a.IsEmpty() {
		return 0
	}
	size := a.Size()
	return size[0] * size[1] * size[2]
}

// MaxExtent returns the axis along which the box is largest. The second
// result is false for a degenerate box, whose longest axis is undefined.
func (a AABB) MaxExtent() (Axis, bool) {
	if a.IsEmpty() {
		return AxisX, false
	}
	size := a.Size()
	axis := AxisX
	if size[1] > size[axis] {
		axis = AxisY
	}
	if size[2] > size[axis] {
		axis = AxisZ
	}
	return axis, true
}

// Corners returns the eight corner points of the box.
func (a AABB) Corners() [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{
		{a.Min[0], a.Min[1], a.Min[2]},
		{a.Max[0], a.Min[1], a.Min[2]},
		{a.Min[0], a.Max[1], a.Min[2]},
		{a.Max[0], a.Max[1], a.Min[2]},
		{a.Min[0], a.Min[1], a.Max[2]},
		{a.Max[0], a.Min[1], a.Max[2]},
		{a.Min[0], a.Max[1], a.Max[2]},
		{a.Max[0], a.Max[1], a.Max[2]},
	}
}

// Sphere returns the minimal sphere enclosing the box: centered at the box
// midpoint, with squared radius reaching the farthest corner. A degenerate
// box yields a zero-radius sphere.
func (a AABB) Sphere() Sphere {
	center := a.Center()
	if !a.ContainsPoint(center) {
		return Sphere{Center: center}
	}
	return Sphere{
		Center:  center,
		Radius2: a.Max.Sub(center).Dot(a.Max.Sub(center)),
	}
}

// Type reports the volume tag for the Volume interface.
func (a AABB) Type() VolumeType {
	return VolumeBox
}
