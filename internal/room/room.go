package room

import (
	"errors"
	"sync"
	"time"

	"boxline/internal/ws"
	"boxline/pkg/models/grid"
	"boxline/pkg/models/match"
	"boxline/pkg/strategy"
)

var (
	ErrRoomFull   = errors.New("room is full")
	ErrNotStarted = errors.New("game has not started")
)

// Room owns the live state of one game. The engine state inside is a pure
// value; the room serializes access to the latest version and tracks the
// session bookkeeping (seats, activity, spectator hub) the engine refuses
// to know about.
type Room struct {
	ID  string
	Bot strategy.Strategy // nil for player-vs-player
	hub *ws.Hub

	mu         sync.Mutex
	state      match.State
	seats      int // human seats handed out so far
	botSeat    int
	lastActive time.Time
}

func newRoom(id string, gridSize, players int, bot strategy.Strategy) *Room {
	r := &Room{
		ID:         id,
		Bot:        bot,
		hub:        ws.NewHub(),
		state:      match.NewState(gridSize, players),
		botSeat:    -1,
		lastActive: time.Now(),
	}

	if bot != nil {
		// the bot takes the last seat so the creating human moves first
		r.botSeat = players - 1
	}
	return r
}

func (r *Room) Hub() *ws.Hub {
	return r.hub
}

// Join hands out the next free seat.
func (r *Room) Join() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	humanSeats := r.state.Players
	if r.Bot != nil {
		humanSeats--
	}
	if r.seats >= humanSeats {
		return 0, ErrRoomFull
	}

	seat := r.seats
	r.seats++
	r.lastActive = time.Now()

	if r.full() {
		r.state = r.state.Start()
	}
	return seat, nil
}

func (r *Room) full() bool {
	humanSeats := r.state.Players
	if r.Bot != nil {
		humanSeats--
	}
	return r.seats >= humanSeats
}

// State returns a snapshot of the latest game state.
func (r *Room) State() match.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// ApplyMove plays one human move against the current state.
func (r *Room) ApplyMove(e grid.Edge, player int) (match.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.Started {
		return r.state, ErrNotStarted
	}

	next, err := r.state.Apply(e, player)
	if err != nil {
		return r.state, err
	}

	r.state = next
	r.lastActive = time.Now()
	return next, nil
}

// PlayBot runs the bot for as long as it holds the turn, invoking observe
// after each applied move so the caller can broadcast intermediate states.
func (r *Room) PlayBot(observe func(match.State)) (match.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.Bot != nil && !r.state.GameOver && r.state.CurrentPlayer == r.botSeat {
		e, ok := r.Bot.SelectMove(r.state, r.botSeat)
		if !ok {
			break
		}

		next, err := r.state.Apply(e, r.botSeat)
		if err != nil {
			return r.state, err
		}

		r.state = next
		r.lastActive = time.Now()
		if observe != nil {
			observe(next)
		}
	}

	return r.state, nil
}

// BotTurn reports whether the bot holds the turn right now.
func (r *Room) BotTurn() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Bot != nil && !r.state.GameOver && r.state.CurrentPlayer == r.botSeat
}

func (r *Room) Touch() {
	r.mu.Lock()
	r.lastActive = time.Now()
	r.mu.Unlock()
}

func (r *Room) idleSince(now time.Time) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return now.Sub(r.lastActive)
}
