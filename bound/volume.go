package bound

import "github.com/go-gl/mathgl/mgl64"

// VolumeType tags the concrete representation behind a Volume.
type VolumeType int

const (
	VolumeBox VolumeType = iota
	VolumeSphere
)

// Volume is a bounding volume of either representation. The tag makes the
// variant explicit; callers never infer the shape from field layouts.
type Volume interface {
	Type() VolumeType
	ContainsPoint(p mgl64.Vec3) bool
}

// Inside reports whether the point lies in the closed volume, whichever
// representation it carries.
func Inside(p mgl64.Vec3, v Volume) bool {
	return v.ContainsPoint(p)
}

// Center returns the center of a volume of either representation.
func Center(v Volume) mgl64.Vec3 {
	switch vol := v.(type) {
	case AABB:
		return vol.Center()
	case Sphere:
		return vol.Center
	default:
		return mgl64.Vec3{}
	}
}
