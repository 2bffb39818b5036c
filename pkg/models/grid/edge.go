package grid

import (
	"fmt"
	"sync"
)

const (
	edgeShift = dotShift << 1
	edgeMask  = 1<<edgeShift - 1
)

// Edge is a unit segment between two adjacent dots, packed into a single int
// with the smaller dot in the high bits. The packed value is the canonical
// form: the same physical segment always packs to the same value no matter
// which endpoint came first, so an Edge is its own set-membership key.
type Edge int

// NewEdge packs the two endpoints in canonical order. It does not check
// adjacency; untrusted input goes through NewValidEdge instead.
func NewEdge(dot1, dot2 Dot) Edge {
	if dot1 > dot2 {
		dot1, dot2 = dot2, dot1
	}
	return Edge(int(dot1)<<edgeShift | int(dot2))
}

// NewValidEdge is the only construction path for edges coming from outside
// the engine. It reports false for endpoints off the grid and for anything
// that is not exactly one unit long along exactly one axis.
func NewValidEdge(x1, y1, x2, y2, gridSize int) (Edge, bool) {
	if !NewDot(x1, y1).InGrid(gridSize) || !NewDot(x2, y2).InGrid(gridSize) {
		return 0, false
	}

	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	if dx+dy != 1 {
		return 0, false
	}

	return NewEdge(NewDot(x1, y1), NewDot(x2, y2)), true
}

func (e Edge) Dot1() Dot {
	return Dot(e) >> edgeShift
}

func (e Edge) Dot2() Dot {
	return Dot(e) & edgeMask
}

// Valid reports whether e is a well-formed unit segment inside the grid.
func (e Edge) Valid(gridSize int) bool {
	_, ok := NewValidEdge(e.Dot1().X(), e.Dot1().Y(), e.Dot2().X(), e.Dot2().Y(), gridSize)
	return ok
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", e.Dot1().X(), e.Dot1().Y(), e.Dot2().X(), e.Dot2().Y())
}

// NearBoxes returns the one or two in-grid boxes this edge borders.
func (e Edge) NearBoxes(gridSize int) (nearBoxes []Box) {
	if b := Box(e.Dot1()); b.InGrid(gridSize) {
		nearBoxes = append(nearBoxes, b)
	}

	x := e.Dot2().X() - 1
	y := e.Dot2().Y() - 1
	if x >= 0 && y >= 0 {
		if b := Box(NewDot(x, y)); b.InGrid(gridSize) {
			nearBoxes = append(nearBoxes, b)
		}
	}
	return
}

var (
	edgesMu    sync.RWMutex
	edgesCache = make(map[int][]Edge)
)

// Edges enumerates every drawable edge of the grid in a fixed row-major
// traversal. Strategies rely on this order being stable.
func Edges(gridSize int) []Edge {
	edgesMu.RLock()
	if res, ok := edgesCache[gridSize]; ok {
		edgesMu.RUnlock()
		return res
	}
	edgesMu.RUnlock()

	var edges []Edge
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			d := NewDot(i, j)
			if i+1 < gridSize {
				edges = append(edges, NewEdge(d, NewDot(i+1, j)))
			}
			if j+1 < gridSize {
				edges = append(edges, NewEdge(d, NewDot(i, j+1)))
			}
		}
	}

	edgesMu.Lock()
	edgesCache[gridSize] = edges
	edgesMu.Unlock()
	return edges
}

// TotalEdges is the number of drawable edges on a gridSize x gridSize grid.
func TotalEdges(gridSize int) int {
	return 2 * gridSize * (gridSize - 1)
}
