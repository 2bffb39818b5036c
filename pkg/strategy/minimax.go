package strategy

import (
	"math"

	"boxline/pkg/models/grid"
	"boxline/pkg/models/match"
)

const (
	// Once this few edges remain the tree is searched to the end of the
	// game; the branching factor shrinks by one per ply, so the exhaustive
	// regime stays tractable under pruning.
	exhaustiveThreshold = 12

	maxDepth = 6
)

// Minimax is a depth-bounded alpha-beta search over the exact game rules.
// It is fully deterministic: for a fixed position it always returns the
// same edge, ties going to the first candidate in enumeration order.
type Minimax struct{}

func (Minimax) Name() string { return "minimax" }

func (Minimax) SelectMove(s match.State, player int) (grid.Edge, bool) {
	free := s.FreeEdges()
	if len(free) == 0 {
		return 0, false
	}

	depth := maxDepth
	if len(free) <= exhaustiveThreshold {
		depth = len(free)
	}

	best := free[0]
	bestScore := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)

	for _, e := range free {
		next, err := s.Apply(e, s.CurrentPlayer)
		if err != nil {
			continue
		}
		value := search(next, player, depth-1, alpha, beta)
		if value > bestScore {
			bestScore = value
			best = e
		}
		alpha = math.Max(alpha, value)
	}

	return best, true
}

func search(s match.State, player, depth int, alpha, beta float64) float64 {
	if s.GameOver || depth <= 0 {
		return evaluate(s, player)
	}

	// box completion keeps the mover's turn, so the side only flips when
	// the simulated move scored nothing
	if s.CurrentPlayer == player {
		best := math.Inf(-1)
		for _, e := range s.FreeEdges() {
			next, err := s.Apply(e, s.CurrentPlayer)
			if err != nil {
				continue
			}
			value := search(next, player, depth-1, alpha, beta)
			best = math.Max(best, value)
			alpha = math.Max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, e := range s.FreeEdges() {
		next, err := s.Apply(e, s.CurrentPlayer)
		if err != nil {
			continue
		}
		value := search(next, player, depth-1, alpha, beta)
		best = math.Min(best, value)
		beta = math.Min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return best
}

// evaluate scores a position from the bot's side: its boxes minus everyone
// else's.
func evaluate(s match.State, player int) float64 {
	others := 0
	for p, score := range s.Scores {
		if p != player {
			others += score
		}
	}
	return float64(s.Scores[player] - others)
}
