// Package ws fans game snapshots out to the spectating connections of one
// room. Connection identity stays here; the rules engine never sees it.
package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 3 * time.Second

type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast writes message to every connection, dropping the ones that fail.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()
}

// CloseAll disconnects every client, used when the room is swept.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	for conn := range h.clients {
		_ = conn.Close(websocket.StatusGoingAway, "room closed")
		delete(h.clients, conn)
	}
	h.mu.Unlock()
}
