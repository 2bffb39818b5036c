// Package strategy holds the move-selection engines for bot players. Every
// strategy treats the match state as a pure simulation oracle: candidate
// continuations are scored on hypothetical copies and the real state is
// never touched.
package strategy

import (
	"math/rand"
	"time"

	"boxline/pkg/models/grid"
	"boxline/pkg/models/match"
)

type Strategy interface {
	Name() string

	// SelectMove picks the bot's next edge. It reports false when the
	// position has no legal moves left. Callers must not invoke it on a
	// finished game.
	SelectMove(s match.State, player int) (grid.Edge, bool)
}

// ByName resolves a configured difficulty to its engine.
func ByName(name string) (Strategy, bool) {
	switch name {
	case "random":
		return Random{}, true
	case "greedy":
		return Greedy{}, true
	case "minimax":
		return Minimax{}, true
	}
	return nil, false
}

// Names lists the accepted difficulty names.
func Names() []string {
	return []string{"random", "greedy", "minimax"}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
