package grid

import (
	"fmt"
	"sync"
)

const (
	dotShift = 8
	dotMask  = 1<<dotShift - 1
)

// Dot is a grid point packed into a single int, x in the high bits, y in the low.
type Dot int

func NewDot(x, y int) Dot {
	return Dot(x<<dotShift | y)
}

func (d Dot) X() int {
	return int(d) >> dotShift
}

func (d Dot) Y() int {
	return int(d) & dotMask
}

func (d Dot) InGrid(gridSize int) bool {
	return d.X() >= 0 && d.X() < gridSize && d.Y() >= 0 && d.Y() < gridSize
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.X(), d.Y())
}

var (
	dotsMu    sync.RWMutex
	dotsCache = make(map[int][]Dot)
)

// Dots enumerates every point of a gridSize x gridSize grid in row-major order.
func Dots(gridSize int) []Dot {
	dotsMu.RLock()
	if res, ok := dotsCache[gridSize]; ok {
		dotsMu.RUnlock()
		return res
	}
	dotsMu.RUnlock()

	var dots []Dot
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			dots = append(dots, NewDot(i, j))
		}
	}

	dotsMu.Lock()
	dotsCache[gridSize] = dots
	dotsMu.Unlock()
	return dots
}
