package wings

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brodao/wings/bound"
)

// OrientedBox is a bounding box aligned to an arbitrary orthonormal frame.
// Axes holds the frame's unit axes as columns; HalfExtents are the box
// half-sizes along those axes.
type OrientedBox struct {
	Center      mgl64.Vec3
	Axes        mgl64.Mat3
	HalfExtents mgl64.Vec3
}

// FitOrientedBox computes a tight oriented bounding box for a point cloud:
// the box axes are the principal axes of the cloud's convex hull, and the
// extents come from projecting every input point onto those axes.
func FitOrientedBox(points []mgl64.Vec3) (OrientedBox, error) {
	_, frame, err := EigenVecs(points)
	if err != nil {
		return OrientedBox{}, err
	}

	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		for axis := 0; axis < 3; axis++ {
			t := frame.Col(axis).Dot(p)
			lo[axis] = math.Min(lo[axis], t)
			hi[axis] = math.Max(hi[axis], t)
		}
	}

	mid := lo.Add(hi).Mul(0.5)
	center := frame.Col(0).Mul(mid[0]).
		Add(frame.Col(1).Mul(mid[1])).
		Add(frame.Col(2).Mul(mid[2]))

	return OrientedBox{
		Center:      center,
		Axes:        frame,
		HalfExtents: hi.Sub(lo).Mul(0.5),
	}, nil
}

// Corners returns the eight corner points of the box.
func (o OrientedBox) Corners() [8]mgl64.Vec3 {
	var corners [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		c := o.Center
		for axis := 0; axis < 3; axis++ {
			sign := 1.0
			if i&(1<<axis) != 0 {
				sign = -1
			}
			c = c.Add(o.Axes.Col(axis).Mul(sign * o.HalfExtents[axis]))
		}
		corners[i] = c
	}
	return corners
}

// ContainsPoint reports whether the point lies in the closed box, by
// projecting its offset from the center onto each axis.
func (o OrientedBox) ContainsPoint(p mgl64.Vec3) bool {
	d := p.Sub(o.Center)
	for axis := 0; axis < 3; axis++ {
		if math.Abs(o.Axes.Col(axis).Dot(d)) > o.HalfExtents[axis] {
			return false
		}
	}
	return true
}

// AABB returns the axis-aligned box enclosing the oriented box.
func (o OrientedBox) AABB() bound.AABB {
	corners := o.Corners()
	return bound.FromPoints(corners[:]...)
}

// Volume returns the enclosed volume.
func (o OrientedBox) Volume() float64 {
	return 8 * o.HalfExtents[0] * o.HalfExtents[1] * o.HalfExtents[2]
}
