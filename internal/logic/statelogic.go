package logic

import (
	"context"

	"boxline/internal/svc"
	"boxline/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type StateLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewStateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StateLogic {
	return &StateLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *StateLogic) State(req *types.StateRequest) (*types.StateView, error) {
	r, ok := l.svcCtx.Rooms.Get(req.RoomID)
	if !ok {
		return nil, ErrRoomNotFound
	}

	view := NewStateView(r.State())
	return &view, nil
}
