package logic

import (
	"boxline/internal/room"
	"boxline/internal/types"
	"boxline/pkg/models/grid"
	"boxline/pkg/models/match"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/logx"
)

// NewStateView flattens an engine state into the wire shape clients consume.
func NewStateView(s match.State) types.StateView {
	view := types.StateView{
		GridSize:      s.GridSize,
		Players:       s.Players,
		Scores:        s.Scores,
		CurrentPlayer: s.CurrentPlayer,
		Started:       s.Started,
		GameOver:      s.GameOver,
		Winner:        s.Winner,
		Moves:         make([]types.MoveView, 0, len(s.Moves)),
		Boxes:         make([]types.BoxView, 0, len(s.Owners)),
	}

	for _, m := range s.Moves {
		view.Moves = append(view.Moves, types.MoveView{
			X1:     m.Edge.Dot1().X(),
			Y1:     m.Edge.Dot1().Y(),
			X2:     m.Edge.Dot2().X(),
			Y2:     m.Edge.Dot2().Y(),
			Player: m.Player,
			Gained: m.Gained,
		})
	}

	// walk boxes in grid order so the view is stable across snapshots
	for _, box := range grid.Boxes(s.GridSize) {
		if owner, ok := s.Owners[box]; ok {
			view.Boxes = append(view.Boxes, types.BoxView{
				X:     grid.Dot(box).X(),
				Y:     grid.Dot(box).Y(),
				Owner: owner,
			})
		}
	}

	return view
}

// broadcastState pushes a snapshot to every connection attached to the room.
func broadcastState(r *room.Room, s match.State) {
	data, err := sonic.Marshal(NewStateView(s))
	if err != nil {
		logx.Errorf("marshal state for room %s: %v", r.ID, err)
		return
	}
	r.Hub().Broadcast(data)
}
