package strategy

import (
	"testing"

	"boxline/pkg/models/grid"
	"boxline/pkg/models/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edge(x1, y1, x2, y2 int) grid.Edge {
	return grid.NewEdge(grid.NewDot(x1, y1), grid.NewDot(x2, y2))
}

// boardWithout draws every edge of a 3-grid except the given ones.
func boardWithout(free ...grid.Edge) grid.Board {
	skip := make(map[grid.Edge]struct{}, len(free))
	for _, e := range free {
		skip[e] = struct{}{}
	}

	var drawn []grid.Edge
	for _, e := range grid.Edges(3) {
		if _, ok := skip[e]; !ok {
			drawn = append(drawn, e)
		}
	}
	return grid.NewBoard(3, drawn...)
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		s, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, s.Name())
	}

	_, ok := ByName("grandmaster")
	assert.False(t, ok)
}

func TestSelectMoveOnEmptyEnumerator(t *testing.T) {
	s := match.NewState(3, 2)
	for _, e := range grid.Edges(3) {
		var err error
		s, err = s.Apply(e, s.CurrentPlayer)
		require.NoError(t, err)
	}
	require.True(t, s.GameOver)

	for _, name := range Names() {
		engine, _ := ByName(name)
		_, ok := engine.SelectMove(s, 0)
		assert.False(t, ok, "%s should report no move", name)
	}
}

func TestRandomReturnsFreeEdge(t *testing.T) {
	s := match.NewState(4, 2)
	free := s.FreeEdges()

	for n := 0; n < 20; n++ {
		e, ok := Random{}.SelectMove(s, 0)
		require.True(t, ok)
		assert.Contains(t, free, e)
	}
}

func TestGreedyTakesFirstCompletingMove(t *testing.T) {
	// two boxes are one edge away; the completer for (0,0) comes first in
	// enumeration order and must win the positional tie-break
	missingFirst := edge(0, 1, 1, 1)
	missingLast := edge(2, 1, 2, 2)

	s := match.State{
		GridSize: 3,
		Players:  2,
		Board: grid.NewBoard(3,
			edge(0, 0, 1, 0), edge(0, 0, 0, 1), edge(1, 0, 1, 1),
			edge(1, 1, 2, 1), edge(1, 1, 1, 2), edge(1, 2, 2, 2),
		),
		Owners: map[grid.Box]int{},
		Scores: []int{0, 0},
		Winner: match.NoWinner,
	}

	require.Len(t, s.Board.CompletesBoxes(missingFirst), 1)
	require.Len(t, s.Board.CompletesBoxes(missingLast), 1)

	for n := 0; n < 10; n++ {
		got, ok := Greedy{}.SelectMove(s, 0)
		require.True(t, ok)
		assert.Equal(t, missingFirst, got)
	}
}

func TestGreedyAvoidsUnsafeMoves(t *testing.T) {
	// box (0,0) already has two edges: anything giving it a third hands
	// the opponent a box next turn
	s := match.State{
		GridSize: 3,
		Players:  2,
		Board:    grid.NewBoard(3, edge(0, 0, 1, 0), edge(0, 0, 0, 1)),
		Owners:   map[grid.Box]int{},
		Scores:   []int{0, 0},
		Winner:   match.NoWinner,
	}

	for n := 0; n < 50; n++ {
		got, ok := Greedy{}.SelectMove(s, 0)
		require.True(t, ok)
		assert.Empty(t, s.Board.CompletesBoxes(got))
		assert.False(t, leavesBoxTakeable(s, got), "greedy picked unsafe edge %v", got)
	}
}

func TestGreedyForcedSacrifice(t *testing.T) {
	// all x-direction edges drawn: every box sits at two edges, every free
	// edge is unsafe and none completes anything
	var drawn []grid.Edge
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			drawn = append(drawn, edge(i, j, i+1, j))
		}
	}

	s := match.State{
		GridSize: 3,
		Players:  2,
		Board:    grid.NewBoard(3, drawn...),
		Owners:   map[grid.Box]int{},
		Scores:   []int{0, 0},
		Winner:   match.NoWinner,
	}

	free := s.FreeEdges()
	require.Len(t, free, 6)
	for _, e := range free {
		require.True(t, leavesBoxTakeable(s, e))
	}

	got, ok := Greedy{}.SelectMove(s, 0)
	require.True(t, ok)
	assert.Contains(t, free, got)
}

func TestMinimaxDeterminism(t *testing.T) {
	s := match.NewState(3, 2)
	opening := []grid.Edge{edge(0, 0, 1, 0), edge(1, 1, 2, 1), edge(0, 2, 1, 2)}
	for _, e := range opening {
		var err error
		s, err = s.Apply(e, s.CurrentPlayer)
		require.NoError(t, err)
	}

	first, ok := Minimax{}.SelectMove(s, s.CurrentPlayer)
	require.True(t, ok)
	for n := 0; n < 5; n++ {
		again, ok := Minimax{}.SelectMove(s, s.CurrentPlayer)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestMinimaxTieBreaksByEnumerationOrder(t *testing.T) {
	// two free edges, both losing by the same margin: the first one in
	// enumeration order must be chosen
	f1 := edge(1, 0, 2, 0)
	f2 := edge(2, 0, 2, 1)

	s := match.State{
		GridSize: 3,
		Players:  2,
		Board:    boardWithout(f1, f2),
		Owners: map[grid.Box]int{
			grid.Box(grid.NewDot(0, 0)): 0,
			grid.Box(grid.NewDot(0, 1)): 1,
			grid.Box(grid.NewDot(1, 1)): 1,
		},
		Scores: []int{1, 2},
		Winner: match.NoWinner,
	}

	got, ok := Minimax{}.SelectMove(s, 0)
	require.True(t, ok)
	assert.Equal(t, f1, got)
}

func TestMinimaxTakesTheWinningLine(t *testing.T) {
	// player 0 to move, three free edges: completing box (1,0) now and then
	// conceding (1,1) salvages a draw; any other first move loses 1-3
	completer := edge(2, 0, 2, 1)
	concede1 := edge(2, 1, 2, 2)
	concede2 := edge(1, 2, 2, 2)

	s := match.State{
		GridSize: 3,
		Players:  2,
		Board:    boardWithout(completer, concede1, concede2),
		Owners: map[grid.Box]int{
			grid.Box(grid.NewDot(0, 0)): 0,
			grid.Box(grid.NewDot(0, 1)): 1,
		},
		Scores: []int{1, 1},
		Winner: match.NoWinner,
	}

	require.Len(t, s.Board.CompletesBoxes(completer), 1)

	got, ok := Minimax{}.SelectMove(s, 0)
	require.True(t, ok)
	assert.Equal(t, completer, got)
}

func TestMinimaxSingleMove(t *testing.T) {
	last := edge(2, 1, 2, 2)

	s := match.State{
		GridSize: 3,
		Players:  2,
		Board:    boardWithout(last),
		Owners: map[grid.Box]int{
			grid.Box(grid.NewDot(0, 0)): 0,
			grid.Box(grid.NewDot(0, 1)): 1,
			grid.Box(grid.NewDot(1, 0)): 0,
		},
		Scores: []int{2, 1},
		Winner: match.NoWinner,
	}

	got, ok := Minimax{}.SelectMove(s, 0)
	require.True(t, ok)
	assert.Equal(t, last, got)
}
