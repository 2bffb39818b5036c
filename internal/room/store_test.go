package room

import (
	"testing"
	"time"

	"boxline/pkg/models/grid"
	"boxline/pkg/models/match"
	"boxline/pkg/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateGetDelete(t *testing.T) {
	st := NewStore(time.Minute)

	r := st.Create(3, 2, nil)
	require.NotEmpty(t, r.ID)
	assert.Equal(t, 1, st.Len())

	got, ok := st.Get(r.ID)
	require.True(t, ok)
	assert.Same(t, r, got)

	st.Delete(r.ID)
	_, ok = st.Get(r.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestStoreSweep(t *testing.T) {
	st := NewStore(time.Minute)
	stale := st.Create(3, 2, nil)
	fresh := st.Create(3, 2, nil)

	fresh.Touch()
	removed := st.Sweep(time.Now().Add(30 * time.Second))
	assert.Equal(t, 0, removed, "nothing idle past the TTL yet")

	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	removed = st.Sweep(time.Now())
	assert.Equal(t, 1, removed)
	_, ok := st.Get(stale.ID)
	assert.False(t, ok)
	_, ok = st.Get(fresh.ID)
	assert.True(t, ok)
}

func TestRoomJoinAndStart(t *testing.T) {
	st := NewStore(time.Minute)
	r := st.Create(3, 2, nil)

	seat, err := r.Join()
	require.NoError(t, err)
	assert.Equal(t, 0, seat)
	assert.False(t, r.State().Started, "one seat left")

	seat, err = r.Join()
	require.NoError(t, err)
	assert.Equal(t, 1, seat)
	assert.True(t, r.State().Started)

	_, err = r.Join()
	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestRoomWithBotStartsAfterOneJoin(t *testing.T) {
	st := NewStore(time.Minute)
	bot, _ := strategy.ByName("greedy")
	r := st.Create(3, 2, bot)

	seat, err := r.Join()
	require.NoError(t, err)
	assert.Equal(t, 0, seat)
	assert.True(t, r.State().Started)

	_, err = r.Join()
	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestRoomApplyMoveRequiresStart(t *testing.T) {
	st := NewStore(time.Minute)
	r := st.Create(3, 2, nil)

	e, ok := grid.NewValidEdge(0, 0, 1, 0, 3)
	require.True(t, ok)

	_, err := r.ApplyMove(e, 0)
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestRoomBotPlaysUntilTurnPasses(t *testing.T) {
	st := NewStore(time.Minute)
	bot, _ := strategy.ByName("random")
	r := st.Create(3, 2, bot)

	_, err := r.Join()
	require.NoError(t, err)

	e, ok := grid.NewValidEdge(0, 0, 1, 0, 3)
	require.True(t, ok)
	state, err := r.ApplyMove(e, 0)
	require.NoError(t, err)
	require.Equal(t, 1, state.CurrentPlayer)

	observed := 0
	state, err = r.PlayBot(func(match.State) { observed++ })
	require.NoError(t, err)
	assert.False(t, r.BotTurn())
	assert.GreaterOrEqual(t, observed, 1)
	assert.GreaterOrEqual(t, state.Board.Size(), 2)
}
