// Package room owns the lifetime of active game sessions. The store is
// built by the service context and passed down explicitly; create, lookup,
// sweep and delete all go through it.
package room

import (
	"sync"
	"time"

	"boxline/pkg/strategy"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

type Store struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		rooms: make(map[string]*Room),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
}

// Create registers a new room and returns it. A nil bot means every seat is
// human.
func (st *Store) Create(gridSize, players int, bot strategy.Strategy) *Room {
	r := newRoom(uuid.New().String(), gridSize, players, bot)

	st.mu.Lock()
	st.rooms[r.ID] = r
	st.mu.Unlock()
	return r
}

func (st *Store) Get(id string) (*Room, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	r, ok := st.rooms[id]
	return r, ok
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	r, ok := st.rooms[id]
	delete(st.rooms, id)
	st.mu.Unlock()

	if ok {
		r.Hub().CloseAll()
	}
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.rooms)
}

// StartSweeper expires idle rooms in the background until StopSweeper.
func (st *Store) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				st.Sweep(time.Now())
			case <-st.stop:
				return
			}
		}
	}()
}

func (st *Store) StopSweeper() {
	st.once.Do(func() {
		close(st.stop)
	})
}

// Sweep removes every room idle for longer than the store TTL.
func (st *Store) Sweep(now time.Time) (removed int) {
	st.mu.Lock()
	var expired []*Room
	for id, r := range st.rooms {
		if r.idleSince(now) > st.ttl {
			delete(st.rooms, id)
			expired = append(expired, r)
		}
	}
	st.mu.Unlock()

	for _, r := range expired {
		r.Hub().CloseAll()
		logx.Infof("swept idle room %s", r.ID)
	}
	return len(expired)
}
