// Command fitdemo builds the convex hull of a small point cloud, derives
// its principal-axis frame and oriented bounding box, and runs a few
// spatial queries against the result.
package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brodao/wings"
	"github.com/brodao/wings/bound"
	"github.com/brodao/wings/hull"
)

func main() {
	// An elongated, slightly tilted cloud.
	points := []mgl64.Vec3{
		{0, 0, 0}, {4, 1, 0}, {4.2, 1.1, 1}, {0.2, 0.1, 1},
		{1, 0.4, 0.2}, {3, 0.8, 0.9}, {2, 0.5, 0.5}, {0.1, 0, 0.9},
	}

	faces, err := hull.Quickhull(points)
	if err != nil {
		fmt.Println("hull failed:", err)
		return
	}
	fmt.Printf("convex hull: %d faces\n", len(faces))

	evals, frame, err := wings.EigenVecs(points)
	if err != nil {
		fmt.Println("eigen frame failed:", err)
		return
	}
	fmt.Printf("eigenvalues: %.4f %.4f %.4f\n", evals[0], evals[1], evals[2])
	fmt.Printf("major axis:  %v\n", frame.Col(2))

	obb, err := wings.FitOrientedBox(points)
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}
	fmt.Printf("oriented box: center=%v halfExtents=%v volume=%.4f\n",
		obb.Center, obb.HalfExtents, obb.Volume())

	aabb := bound.FromPoints(points...)
	fmt.Printf("axis-aligned box: %v volume=%.4f\n", aabb, aabb.Volume())
	fmt.Printf("bounding sphere: radius=%.4f\n", aabb.Sphere().Radius())

	ray := bound.NewRayTo(mgl64.Vec3{-1, 0.5, 0.5}, mgl64.Vec3{1, 0, 0})
	fmt.Printf("pick ray hits cloud bounds: %v\n", ray.HitsAABB(aabb))

	// Broad phase: which of a few object bounds overlap each other.
	grid := wings.NewGrid(1.0, 256)
	grid.Insert(aabb)
	grid.Insert(obb.AABB())
	grid.Insert(bound.FromCorners(mgl64.Vec3{10, 10, 10}, mgl64.Vec3{11, 11, 11}))
	grid.SortCells()
	fmt.Printf("overlapping pairs: %v\n", grid.FindPairs())
}
