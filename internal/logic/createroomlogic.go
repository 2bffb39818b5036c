package logic

import (
	"context"

	"boxline/internal/svc"
	"boxline/internal/types"
	"boxline/pkg/strategy"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateRoomLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateRoomLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateRoomLogic {
	return &CreateRoomLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CreateRoomLogic) CreateRoom(req *types.CreateRoomRequest) (*types.CreateRoomResponse, error) {
	cfg := l.svcCtx.Config.Game
	if req.GridSize < cfg.MinGridSize || req.GridSize > cfg.MaxGridSize {
		return nil, ErrGridSizeOutOfRange
	}
	if req.Players < 2 || req.Players > cfg.MaxPlayers {
		return nil, ErrPlayersOutOfRange
	}

	var bot strategy.Strategy
	if req.Difficulty != "" {
		var ok bool
		if bot, ok = strategy.ByName(req.Difficulty); !ok {
			return nil, ErrUnknownDifficulty
		}
	}

	r := l.svcCtx.Rooms.Create(req.GridSize, req.Players, bot)
	seat, err := r.Join()
	if err != nil {
		return nil, err
	}

	l.Infof("created room %s grid=%d players=%d bot=%v", r.ID, req.GridSize, req.Players, req.Difficulty)

	return &types.CreateRoomResponse{
		RoomID:      r.ID,
		PlayerIndex: seat,
		State:       NewStateView(r.State()),
	}, nil
}
