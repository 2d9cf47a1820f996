package hull

import "github.com/go-gl/mathgl/mgl64"

// Plane is a signed half-space test surface given by a point on the plane
// and its unit normal. Points with positive signed distance are "in front".
type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// SignedDistance returns the signed distance from p to the plane, positive
// in front (along the normal), negative behind.
func (pl Plane) SignedDistance(p mgl64.Vec3) float64 {
	return pl.Normal.Dot(p.Sub(pl.Point))
}

// Face is a triangular face of the polyhedron under construction. Its plane
// normal follows the vertex winding (right-hand rule); the outside set holds
// the points known to lie strictly in front of the plane, farthest first.
type Face struct {
	Points [3]mgl64.Vec3
	Plane  Plane

	outside []mgl64.Vec3
}

// newFace builds a face from three vertices. The plane normal comes from
// the winding via cross product; a zero-area triangle gets a zero normal,
// so nothing ever tests in front of it.
func newFace(a, b, c mgl64.Vec3) Face {
	normal := safeNormalize(b.Sub(a).Cross(c.Sub(a)))
	return Face{
		Points: [3]mgl64.Vec3{a, b, c},
		Plane:  Plane{Point: a, Normal: normal},
	}
}

// Outside returns the face's pending outside set. It is empty for every
// face of a finished hull.
func (f Face) Outside() []mgl64.Vec3 {
	return f.outside
}

// Centroid returns the average of the face's three vertices.
func (f Face) Centroid() mgl64.Vec3 {
	return f.Points[0].Add(f.Points[1]).Add(f.Points[2]).Mul(1.0 / 3.0)
}

// claim appends p to the outside set, keeping the farthest point at the
// head so the expansion step can pick it without a scan.
func (f *Face) claim(p mgl64.Vec3, dist float64) {
	if len(f.outside) > 0 && dist > f.Plane.SignedDistance(f.outside[0]) {
		f.outside = append(f.outside, f.outside[0])
		f.outside[0] = p
		return
	}
	f.outside = append(f.outside, p)
}

// safeNormalize normalizes v, with a zero-vector result for a zero-length
// input instead of a division blowup.
func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	len2 := v.Dot(v)
	if len2 == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / v.Len())
}
