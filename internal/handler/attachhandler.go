package handler

import (
	"net/http"

	"boxline/internal/logic"
	"boxline/internal/svc"
	"boxline/internal/types"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// AttachHandler upgrades the request to a websocket and subscribes it to the
// room's state broadcasts. Clients only listen; moves go through the REST
// endpoint.
func AttachHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AttachRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		rm, ok := svcCtx.Rooms.Get(req.RoomID)
		if !ok {
			httpx.ErrorCtx(r.Context(), w, logic.ErrRoomNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			logx.WithContext(r.Context()).Errorf("websocket accept: %v", err)
			return
		}

		hub := rm.Hub()
		hub.Add(conn)

		// hand the newcomer the current position right away
		if data, err := sonic.Marshal(logic.NewStateView(rm.State())); err == nil {
			_ = conn.Write(r.Context(), websocket.MessageText, data)
		}

		// drain until the peer goes away, then detach
		ctx := r.Context()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				hub.Remove(conn)
				_ = conn.Close(websocket.StatusNormalClosure, "")
				return
			}
		}
	}
}
