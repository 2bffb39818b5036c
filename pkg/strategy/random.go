package strategy

import (
	"boxline/pkg/models/grid"
	"boxline/pkg/models/match"
)

// Random picks uniformly among the free edges.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) SelectMove(s match.State, player int) (grid.Edge, bool) {
	free := s.FreeEdges()
	if len(free) == 0 {
		return 0, false
	}
	return free[newRand().Intn(len(free))], true
}
