package grid

// Board is the set of drawn edges on a grid. It has value semantics: Append
// returns a fresh board and never touches the receiver, so boards can be
// shared freely between simulation branches.
type Board struct {
	GridSize int
	Edges    map[Edge]struct{}
}

func NewBoard(gridSize int, edges ...Edge) (newBoard Board) {
	newBoard = Board{
		GridSize: gridSize,
		Edges:    make(map[Edge]struct{}, len(edges)),
	}

	for _, e := range edges {
		newBoard.Edges[e] = struct{}{}
	}

	return
}

func (b Board) Contains(e Edge) bool {
	_, ok := b.Edges[e]
	return ok
}

func (b Board) Size() int {
	return len(b.Edges)
}

// Append returns a copy of the board with e drawn.
func (b Board) Append(e Edge) (newBoard Board) {
	newBoard = Board{
		GridSize: b.GridSize,
		Edges:    make(map[Edge]struct{}, len(b.Edges)+1),
	}

	for drawn := range b.Edges {
		newBoard.Edges[drawn] = struct{}{}
	}
	newBoard.Edges[e] = struct{}{}
	return
}

// CountInBox counts how many of the box's four edges are drawn.
func (b Board) CountInBox(box Box) (count int) {
	for _, e := range box.Edges() {
		if b.Contains(e) {
			count++
		}
	}
	return
}

func (b Board) BoxComplete(box Box) bool {
	return b.CountInBox(box) == 4
}

// FreeEdges enumerates the undrawn edges in the fixed Edges traversal order.
func (b Board) FreeEdges() (freeEdges []Edge) {
	for _, e := range Edges(b.GridSize) {
		if !b.Contains(e) {
			freeEdges = append(freeEdges, e)
		}
	}
	return
}

func (b Board) FreeEdgeCount() int {
	return TotalEdges(b.GridSize) - len(b.Edges)
}

// CompletesBoxes returns the boxes that drawing e would bring from three
// edges to four. Empty when e is already drawn.
func (b Board) CompletesBoxes(e Edge) (boxes []Box) {
	if b.Contains(e) {
		return
	}

	for _, box := range e.NearBoxes(b.GridSize) {
		if b.CountInBox(box) == 3 {
			boxes = append(boxes, box)
		}
	}
	return
}
