package hull

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNewFaceNormal(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c mgl64.Vec3
		want    mgl64.Vec3
	}{
		{
			name: "counter-clockwise in xy plane",
			a:    mgl64.Vec3{0, 0, 0}, b: mgl64.Vec3{1, 0, 0}, c: mgl64.Vec3{0, 1, 0},
			want: mgl64.Vec3{0, 0, 1},
		},
		{
			name: "reverse winding flips the normal",
			a:    mgl64.Vec3{1, 0, 0}, b: mgl64.Vec3{0, 0, 0}, c: mgl64.Vec3{0, 1, 0},
			want: mgl64.Vec3{0, 0, -1},
		},
		{
			name: "zero-area triangle gets a zero normal",
			a:    mgl64.Vec3{0, 0, 0}, b: mgl64.Vec3{1, 1, 1}, c: mgl64.Vec3{2, 2, 2},
			want: mgl64.Vec3{},
		},
		{
			name: "coincident vertices get a zero normal",
			a:    mgl64.Vec3{3, 3, 3}, b: mgl64.Vec3{3, 3, 3}, c: mgl64.Vec3{3, 3, 3},
			want: mgl64.Vec3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFace(tt.a, tt.b, tt.c)
			assert.InDelta(t, tt.want[0], f.Plane.Normal[0], 1e-12)
			assert.InDelta(t, tt.want[1], f.Plane.Normal[1], 1e-12)
			assert.InDelta(t, tt.want[2], f.Plane.Normal[2], 1e-12)
		})
	}
}

func TestNewFaceUnitNormal(t *testing.T) {
	f := newFace(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{0, 4, 0})
	assert.InDelta(t, 1.0, f.Plane.Normal.Len(), 1e-12)
}

func TestSignedDistance(t *testing.T) {
	f := newFace(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})

	tests := []struct {
		name  string
		point mgl64.Vec3
		want  float64
	}{
		{"in front", mgl64.Vec3{0.2, 0.2, 2}, 2},
		{"behind", mgl64.Vec3{0.2, 0.2, -3}, -3},
		{"on the plane", mgl64.Vec3{5, -2, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, f.Plane.SignedDistance(tt.point), 1e-12)
		})
	}
}

func TestClaimKeepsFarthestFirst(t *testing.T) {
	f := newFace(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0})

	near := mgl64.Vec3{0.1, 0.1, 1}
	far := mgl64.Vec3{0.1, 0.1, 5}
	mid := mgl64.Vec3{0.1, 0.1, 3}

	f.claim(near, f.Plane.SignedDistance(near))
	f.claim(far, f.Plane.SignedDistance(far))
	f.claim(mid, f.Plane.SignedDistance(mid))

	outside := f.Outside()
	if len(outside) != 3 {
		t.Fatalf("outside set has %d points, want 3", len(outside))
	}
	if outside[0] != far {
		t.Errorf("head of outside set = %v, want the farthest point %v", outside[0], far)
	}
}

func TestCentroid(t *testing.T) {
	f := newFace(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{0, 3, 3})
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, f.Centroid())
}

func TestSafeNormalize(t *testing.T) {
	if got := safeNormalize(mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Errorf("safeNormalize(0) = %v, want zero vector", got)
	}
	got := safeNormalize(mgl64.Vec3{0, 3, 4})
	if math.Abs(got.Len()-1) > 1e-12 {
		t.Errorf("safeNormalize result has length %v, want 1", got.Len())
	}
}
