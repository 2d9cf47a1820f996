package wings

import (
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brodao/wings/bound"
)

func TestWorldToCell(t *testing.T) {
	grid := NewGrid(1.0, 16)

	tests := []struct {
		name     string
		position mgl64.Vec3
		expected cellKey
	}{
		{"origin", mgl64.Vec3{0, 0, 0}, cellKey{0, 0, 0}},
		{"positive", mgl64.Vec3{1.5, 2.3, 3.7}, cellKey{1, 2, 3}},
		{"negative", mgl64.Vec3{-1.5, -2.3, -3.7}, cellKey{-2, -3, -4}},
		{"fractional", mgl64.Vec3{0.5, 0.5, 0.5}, cellKey{0, 0, 0}},
		{"large", mgl64.Vec3{100.7, -200.3, 50.1}, cellKey{100, -201, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := grid.worldToCell(tt.position)
			if result != tt.expected {
				t.Errorf("worldToCell(%v) = %v, want %v", tt.position, result, tt.expected)
			}
		})
	}
}

func TestHashCellRange(t *testing.T) {
	grid := NewGrid(1.0, 16)

	keys := []cellKey{
		{0, 0, 0},
		{1, 2, 3},
		{-1, -2, -3},
		{100, 200, 300},
	}

	for _, key := range keys {
		result := grid.hashCell(key)
		if result < 0 || result >= len(grid.cells) {
			t.Errorf("hashCell(%v) = %d, out of range [0, %d)", key, result, len(grid.cells))
		}
	}
}

func TestGridFindPairs(t *testing.T) {
	tests := []struct {
		name  string
		boxes []bound.AABB
		want  []Pair
	}{
		{
			name: "two overlapping boxes",
			boxes: []bound.AABB{
				bound.FromCorners(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2}),
				bound.FromCorners(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{3, 3, 3}),
			},
			want: []Pair{{A: 0, B: 1}},
		},
		{
			name: "two separated boxes",
			boxes: []bound.AABB{
				bound.FromCorners(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
				bound.FromCorners(mgl64.Vec3{5, 5, 5}, mgl64.Vec3{6, 6, 6}),
			},
			want: nil,
		},
		{
			name: "three boxes, one pair",
			boxes: []bound.AABB{
				bound.FromCorners(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
				bound.FromCorners(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{1.5, 1, 1}),
				bound.FromCorners(mgl64.Vec3{10, 10, 10}, mgl64.Vec3{11, 11, 11}),
			},
			want: []Pair{{A: 0, B: 1}},
		},
		{
			name: "touching faces count as overlap",
			boxes: []bound.AABB{
				bound.FromCorners(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
				bound.FromCorners(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 1, 1}),
			},
			want: []Pair{{A: 0, B: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewGrid(1.0, 64)
			for _, box := range tt.boxes {
				grid.Insert(box)
			}
			grid.SortCells()

			pairs := grid.FindPairs()
			sort.Slice(pairs, func(i, j int) bool {
				if pairs[i].A != pairs[j].A {
					return pairs[i].A < pairs[j].A
				}
				return pairs[i].B < pairs[j].B
			})

			if len(pairs) != len(tt.want) {
				t.Fatalf("FindPairs() = %v, want %v", pairs, tt.want)
			}
			for i := range pairs {
				if pairs[i] != tt.want[i] {
					t.Errorf("FindPairs()[%d] = %v, want %v", i, pairs[i], tt.want[i])
				}
			}
		})
	}
}

func TestGridPairsReportedOnce(t *testing.T) {
	grid := NewGrid(1.0, 64)

	// A large box spanning many cells against a small one inside it: the
	// shared-cell pair must not be duplicated per cell.
	grid.Insert(bound.FromCorners(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{5, 5, 5}))
	grid.Insert(bound.FromCorners(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{3, 3, 3}))
	grid.SortCells()

	pairs := grid.FindPairs()
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one pair, got %v", pairs)
	}
	if pairs[0] != (Pair{A: 0, B: 1}) {
		t.Errorf("pair = %v, want {0 1}", pairs[0])
	}
}

func TestGridClear(t *testing.T) {
	grid := NewGrid(1.0, 16)
	grid.Insert(bound.FromCorners(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}))
	grid.Insert(bound.FromCorners(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}))

	grid.Clear()

	if pairs := grid.FindPairs(); len(pairs) != 0 {
		t.Errorf("expected no pairs after Clear, got %v", pairs)
	}
}
