package grid

import "sync"

// Box is a unit cell identified by its top-left dot.
type Box Dot

func (b Box) Dots() [4]Dot {
	x := Dot(b).X()
	y := Dot(b).Y()

	return [...]Dot{
		NewDot(x, y),
		NewDot(x+1, y),
		NewDot(x, y+1),
		NewDot(x+1, y+1),
	}
}

// Edges derives the four bounding edges of the box.
func (b Box) Edges() [4]Edge {
	x := Dot(b).X()
	y := Dot(b).Y()

	d00 := NewDot(x, y)
	d10 := NewDot(x+1, y)
	d01 := NewDot(x, y+1)
	d11 := NewDot(x+1, y+1)

	return [...]Edge{
		NewEdge(d00, d01),
		NewEdge(d00, d10),
		NewEdge(d10, d11),
		NewEdge(d01, d11),
	}
}

func (b Box) InGrid(gridSize int) bool {
	return Dot(b).X() >= 0 && Dot(b).X() < gridSize-1 && Dot(b).Y() >= 0 && Dot(b).Y() < gridSize-1
}

func (b Box) String() string {
	return Dot(b).String()
}

var (
	boxesMu    sync.RWMutex
	boxesCache = make(map[int][]Box)
)

// Boxes enumerates every unit cell of the grid in row-major order.
func Boxes(gridSize int) []Box {
	boxesMu.RLock()
	if res, ok := boxesCache[gridSize]; ok {
		boxesMu.RUnlock()
		return res
	}
	boxesMu.RUnlock()

	var boxes []Box
	for _, d := range Dots(gridSize - 1) {
		boxes = append(boxes, Box(d))
	}

	boxesMu.Lock()
	boxesCache[gridSize] = boxes
	boxesMu.Unlock()
	return boxes
}
