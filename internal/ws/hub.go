package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ciganahub/cigana-hub/internal/market"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub pushes newly inserted messages to the receiver's open websocket
// connections. A user may hold several connections (tabs).
type Hub struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool
	log   *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{conns: make(map[string]map[*websocket.Conn]bool), log: log}
}

// Serve upgrades the request and parks the connection until the client
// goes away. Inbound frames are drained and discarded; the socket is
// push-only.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.add(userID, conn)
	defer func() {
		h.remove(userID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Push sends the message to every connection of the given user.
func (h *Hub) Push(userID string, m market.Message) {
	data, err := json.Marshal(m)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[userID] {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Debug("ws write failed, dropping conn", zap.String("user", userID), zap.Error(err))
			delete(h.conns[userID], conn)
			conn.Close()
		}
	}
}

func (h *Hub) add(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[userID] == nil {
		h.conns[userID] = make(map[*websocket.Conn]bool)
	}
	h.conns[userID][conn] = true
}

func (h *Hub) remove(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[userID], conn)
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
	}
}
