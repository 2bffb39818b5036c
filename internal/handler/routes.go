package handler

import (
	"net/http"

	"boxline/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, svcCtx *svc.ServiceContext) {
	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodPost,
			Path:    "/api/room/create",
			Handler: CreateRoomHandler(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/api/room/join",
			Handler: JoinRoomHandler(svcCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/api/room/move",
			Handler: MoveHandler(svcCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/room/state",
			Handler: StateHandler(svcCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/api/room/attach",
			Handler: AttachHandler(svcCtx),
		},
	})
}
