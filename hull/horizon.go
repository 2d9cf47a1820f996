package hull

import "github.com/go-gl/mathgl/mgl64"

// edge is a directed edge between two hull vertices. mgl64.Vec3 is a plain
// array type, so edges are comparable and usable as map keys.
type edge struct {
	a, b mgl64.Vec3
}

// horizon accumulates the border of a merged set of visible faces as the
// symmetric difference of their directed edge cycles: inserting an edge
// whose reverse is already present cancels both, so an edge interior to two
// visible faces disappears and only border edges survive. Surviving edges
// keep the order in which they were first seen.
type horizon struct {
	edges []edge
	index map[edge]int
}

func newHorizon() *horizon {
	return &horizon{index: make(map[edge]int)}
}

func (h *horizon) reset() {
	h.edges = h.edges[:0]
	for k := range h.index {
		delete(h.index, k)
	}
}

// add inserts a directed edge, cancelling against its reverse if present.
func (h *horizon) add(a, b mgl64.Vec3) {
	reverse := edge{b, a}
	if i, ok := h.index[reverse]; ok {
		// Interior edge: the two visible faces sharing it cancel out.
		h.edges = append(h.edges[:i], h.edges[i+1:]...)
		delete(h.index, reverse)
		for j := i; j < len(h.edges); j++ {
			h.index[h.edges[j]] = j
		}
		return
	}
	h.index[edge{a, b}] = len(h.edges)
	h.edges = append(h.edges, edge{a, b})
}

// addFace inserts the three directed edges of a face's triangle boundary.
func (h *horizon) addFace(f Face) {
	h.add(f.Points[0], f.Points[1])
	h.add(f.Points[1], f.Points[2])
	h.add(f.Points[2], f.Points[0])
}
