package logic

import (
	"context"
	"fmt"

	"boxline/internal/room"
	"boxline/internal/svc"
	"boxline/internal/types"
	"boxline/pkg/models/grid"
	"boxline/pkg/models/match"
	"boxline/pkg/models/record"

	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/logx"
)

type MoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MoveLogic {
	return &MoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *MoveLogic) Move(req *types.MoveRequest) (*types.MoveResponse, error) {
	r, ok := l.svcCtx.Rooms.Get(req.RoomID)
	if !ok {
		return nil, ErrRoomNotFound
	}

	if err := l.takeMoveToken(req.RoomID, req.Player); err != nil {
		return nil, err
	}

	// the candidate segment enters through the normalization path; anything
	// malformed is classified here, never applied
	e, ok := grid.NewValidEdge(req.Edge.X1, req.Edge.Y1, req.Edge.X2, req.Edge.Y2, r.State().GridSize)
	if !ok {
		return nil, &match.Rejection{Reason: match.GeometryInvalid}
	}

	state, err := r.ApplyMove(e, req.Player)
	if err != nil {
		return nil, err
	}
	broadcastState(r, state)

	if r.BotTurn() {
		state, err = r.PlayBot(func(s match.State) {
			broadcastState(r, s)
		})
		if err != nil {
			l.Errorf("bot move in room %s: %v", r.ID, err)
		}
	}

	if state.GameOver {
		l.archive(r, state)
	}

	return &types.MoveResponse{State: NewStateView(state)}, nil
}

// takeMoveToken enforces the per-player move quota when Redis is wired.
func (l *MoveLogic) takeMoveToken(roomID string, player int) error {
	if l.svcCtx.MoveLimiter == nil {
		return nil
	}

	code, err := l.svcCtx.MoveLimiter.Take(fmt.Sprintf("%s:%d", roomID, player))
	if err != nil {
		// a broken limiter should not freeze the game
		l.Errorf("move limiter: %v", err)
		return nil
	}

	if code == limit.OverQuota {
		return ErrRateLimited
	}
	return nil
}

func (l *MoveLogic) archive(r *room.Room, s match.State) {
	result := &record.GameResult{
		RoomID:   r.ID,
		GridSize: s.GridSize,
		Scores:   s.Scores,
		Winner:   s.Winner,
	}
	if r.Bot != nil {
		result.Bot = r.Bot.Name()
	}

	l.svcCtx.ArchiveResult(result)
	l.Infof("game over in room %s winner=%d scores=%v", r.ID, s.Winner, s.Scores)
}
