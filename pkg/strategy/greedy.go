package strategy

import (
	"boxline/pkg/models/grid"
	"boxline/pkg/models/match"
)

// Greedy takes the first box-completing move it finds, otherwise a random
// safe move, otherwise any move.
//
// The completing branch deliberately keeps the first edge in enumeration
// order instead of weighing all completing candidates; downstream behavior
// depends on that positional tie-break.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) SelectMove(s match.State, player int) (grid.Edge, bool) {
	free := s.FreeEdges()
	if len(free) == 0 {
		return 0, false
	}

	for _, e := range free {
		if len(s.Board.CompletesBoxes(e)) > 0 {
			return e, true
		}
	}

	var safe []grid.Edge
	for _, e := range free {
		if !leavesBoxTakeable(s, e) {
			safe = append(safe, e)
		}
	}

	rng := newRand()
	if len(safe) > 0 {
		return safe[rng.Intn(len(safe))], true
	}

	// every move hands the opponent a box; sacrifice one at random
	return free[rng.Intn(len(free))], true
}

// leavesBoxTakeable reports whether drawing e leaves any unowned box one
// edge away from completion.
func leavesBoxTakeable(s match.State, e grid.Edge) bool {
	after := s.Board.Append(e)
	for _, box := range grid.Boxes(s.GridSize) {
		if _, owned := s.Owners[box]; owned {
			continue
		}
		if after.CountInBox(box) == 3 {
			return true
		}
	}
	return false
}
