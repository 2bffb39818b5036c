package match

import "boxline/pkg/models/grid"

// NoWinner marks a drawn game.
const NoWinner = -1

// Move is one applied move, kept in order so clients can replay the game.
type Move struct {
	Edge   grid.Edge `json:"edge"`
	Player int       `json:"player"`
	Gained int       `json:"gained"`
}

// State is a full game position. It is a pure value: Apply and Start return
// fresh states and never mutate the receiver, so a State can be copied into
// any number of simulation branches without locking.
type State struct {
	GridSize      int
	Players       int
	Moves         []Move
	Board         grid.Board
	Owners        map[grid.Box]int
	Scores        []int
	CurrentPlayer int
	Started       bool
	GameOver      bool
	Winner        int
}

// NewState builds an empty position for a gridSize x gridSize grid.
func NewState(gridSize, players int) State {
	return State{
		GridSize: gridSize,
		Players:  players,
		Board:    grid.NewBoard(gridSize),
		Owners:   make(map[grid.Box]int),
		Scores:   make([]int, players),
		Winner:   NoWinner,
	}
}

func (s State) clone() State {
	next := s

	next.Moves = make([]Move, len(s.Moves), len(s.Moves)+1)
	copy(next.Moves, s.Moves)

	next.Owners = make(map[grid.Box]int, len(s.Owners)+2)
	for box, owner := range s.Owners {
		next.Owners[box] = owner
	}

	next.Scores = make([]int, len(s.Scores))
	copy(next.Scores, s.Scores)

	return next
}

// Start returns a copy of the state with the started flag set. The session
// layer calls it once all seats are taken.
func (s State) Start() State {
	next := s.clone()
	next.Started = true
	return next
}

// Apply validates and plays one move for player, returning the resulting
// state. On rejection the returned state is the untouched receiver and the
// error is a *Rejection carrying the reason tag.
//
// A completed box keeps the turn with the mover; otherwise the turn passes
// to the next player. Drawing the last edge finishes the game and settles
// the winner.
func (s State) Apply(e grid.Edge, player int) (State, error) {
	if s.GameOver {
		return s, reject(GameAlreadyOver)
	}
	if player != s.CurrentPlayer {
		return s, reject(OutOfTurn)
	}
	if !e.Valid(s.GridSize) {
		return s, reject(GeometryInvalid)
	}
	if s.Board.Contains(e) {
		return s, reject(EdgeAlreadyDrawn)
	}

	next := s.clone()
	next.Board = next.Board.Append(e)

	gained := 0
	for _, box := range e.NearBoxes(s.GridSize) {
		if _, owned := next.Owners[box]; owned {
			continue
		}
		if next.Board.BoxComplete(box) {
			next.Owners[box] = player
			next.Scores[player]++
			gained++
		}
	}

	next.Moves = append(next.Moves, Move{Edge: e, Player: player, Gained: gained})

	if gained == 0 {
		next.CurrentPlayer = (player + 1) % next.Players
	}

	if next.Board.Size() == grid.TotalEdges(next.GridSize) {
		next.GameOver = true
		next.Winner = settleWinner(next.Scores)
	}

	return next, nil
}

// FreeEdges enumerates the currently legal moves in the fixed board order.
func (s State) FreeEdges() []grid.Edge {
	return s.Board.FreeEdges()
}

func (s State) FreeEdgeCount() int {
	return s.Board.FreeEdgeCount()
}

// settleWinner picks the strictly highest score; any shared maximum is a draw.
func settleWinner(scores []int) int {
	winner := NoWinner
	best := -1
	for player, score := range scores {
		switch {
		case score > best:
			best = score
			winner = player
		case score == best:
			winner = NoWinner
		}
	}
	return winner
}
