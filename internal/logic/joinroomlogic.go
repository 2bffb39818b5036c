package logic

import (
	"context"

	"boxline/internal/svc"
	"boxline/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type JoinRoomLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewJoinRoomLogic(ctx context.Context, svcCtx *svc.ServiceContext) *JoinRoomLogic {
	return &JoinRoomLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *JoinRoomLogic) JoinRoom(req *types.JoinRoomRequest) (*types.JoinRoomResponse, error) {
	r, ok := l.svcCtx.Rooms.Get(req.RoomID)
	if !ok {
		return nil, ErrRoomNotFound
	}

	seat, err := r.Join()
	if err != nil {
		return nil, err
	}

	state := r.State()
	if state.Started {
		// the last seat just filled; let everyone already attached know
		broadcastState(r, state)
	}

	return &types.JoinRoomResponse{
		PlayerIndex: seat,
		State:       NewStateView(state),
	}, nil
}
