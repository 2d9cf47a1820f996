package bound

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sphere is a bounding sphere. The radius is kept squared so that deriving
// and testing spheres never pays for a square root until one is asked for.
type Sphere struct {
	Center  mgl64.Vec3
	Radius2 float64
}

// Radius returns the sphere radius.
func (s Sphere) Radius() float64 {
	return math.Sqrt(s.Radius2)
}

// ContainsPoint reports whether the point lies in the closed sphere.
func (s Sphere) ContainsPoint(p mgl64.Vec3) bool {
	d := p.Sub(s.Center)
	return d.Dot(d) <= s.Radius2
}

// Type reports the volume tag for the Volume interface.
func (s Sphere) Type() VolumeType {
	return VolumeSphere
}
