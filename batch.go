package wings

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

const defaultWorkers = 1

// task fans a slice out over a fixed number of worker goroutines in
// contiguous chunks and waits for them all.
func task[T any](workersCount int, data []T, fn func(data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}

// FitResult is the outcome of fitting one point cloud in a batch.
type FitResult struct {
	Box OrientedBox
	Err error
}

// FitBoxes fits an oriented box to each point cloud, spreading the clouds
// over the given number of workers. Each fit is an independent computation
// over its own cloud, so the hull construction itself stays sequential and
// only whole clouds run in parallel.
func FitBoxes(clouds [][]mgl64.Vec3, workers int) []FitResult {
	workers = max(defaultWorkers, workers)

	results := make([]FitResult, len(clouds))
	indices := make([]int, len(clouds))
	for i := range indices {
		indices[i] = i
	}

	task(workers, indices, func(i int) {
		box, err := FitOrientedBox(clouds[i])
		results[i] = FitResult{Box: box, Err: err}
	})

	return results
}
