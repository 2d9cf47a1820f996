package wings

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brodao/wings/bound"
)

// cellKey addresses a cell of the uniform grid in 3D space.
type cellKey struct {
	X, Y, Z int
}

// cell holds the indices of the boxes overlapping one grid cell.
type cell struct {
	boxIndices []int
}

// Pair is a pair of box indices whose bounds overlap.
type Pair struct {
	A, B int
}

// Grid is a uniform hashed spatial grid over axis-aligned boxes, used as a
// broad phase for overlap queries: insert every object's AABB, then
// FindPairs reports the index pairs whose boxes overlap. Cell coordinates
// hash into a fixed power-of-two table, so the grid covers unbounded space
// with bounded memory at the cost of hash aliasing (aliased candidates are
// rejected by the exact AABB test).
type Grid struct {
	cellSize float64
	cells    []cell
	cellMask int
	boxes    []bound.AABB
}

// NewGrid creates a grid with the given cell size and (approximate) cell
// count; the count is rounded up to a power of two for mask hashing.
func NewGrid(cellSize float64, numCells int) *Grid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]cell, numCells)
	for i := range cells {
		cells[i].boxIndices = make([]int, 0, 8)
	}

	return &Grid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert registers a box in every cell it overlaps and returns its index.
func (g *Grid) Insert(box bound.AABB) int {
	index := len(g.boxes)
	g.boxes = append(g.boxes, box)

	minCell := g.worldToCell(box.Min)
	maxCell := g.worldToCell(box.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := g.hashCell(cellKey{x, y, z})
				g.cells[cellIdx].boxIndices = append(g.cells[cellIdx].boxIndices, index)
			}
		}
	}

	return index
}

// Clear empties the grid without releasing its cell storage.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].boxIndices = g.cells[i].boxIndices[:0]
	}
	g.boxes = g.boxes[:0]
}

// SortCells orders each cell's contents so pair enumeration is
// deterministic regardless of insertion pattern.
func (g *Grid) SortCells() {
	for i := range g.cells {
		if len(g.cells[i].boxIndices) > 1 {
			sort.Ints(g.cells[i].boxIndices)
		}
	}
}

// FindPairs returns every pair of inserted boxes that overlap, each pair
// reported once with A < B.
func (g *Grid) FindPairs() []Pair {
	pairs := make([]Pair, 0, len(g.boxes)/2)
	seen := make([]bool, len(g.boxes))

	for boxIdx := range g.boxes {
		for i := range seen {
			seen[i] = false
		}

		boxA := g.boxes[boxIdx]
		minCell := g.worldToCell(boxA.Min)
		maxCell := g.worldToCell(boxA.Max)

		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					cellIdx := g.hashCell(cellKey{x, y, z})

					for _, otherIdx := range g.cells[cellIdx].boxIndices {
						// Each unordered pair once, and a cell pair shared
						// across several cells only once.
						if otherIdx <= boxIdx || seen[otherIdx] {
							continue
						}
						seen[otherIdx] = true

						if boxA.Overlaps(g.boxes[otherIdx]) {
							pairs = append(pairs, Pair{A: boxIdx, B: otherIdx})
						}
					}
				}
			}
		}
	}

	return pairs
}

// worldToCell converts a world position to grid cell coordinates.
func (g *Grid) worldToCell(pos mgl64.Vec3) cellKey {
	return cellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
		Z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

// hashCell maps cell coordinates to a slot of the cell table.
func (g *Grid) hashCell(key cellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}
