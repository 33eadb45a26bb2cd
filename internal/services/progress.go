package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// ProgressEvent is one batch progress message pushed to connected
// admin sessions.
type ProgressEvent struct {
	Type      string `json:"type"`
	Operation string `json:"operation"`
	Processed int    `json:"processed"`
	Success   int    `json:"success"`
	Skipped   int    `json:"skipped"`
	Errors    int    `json:"errors"`
	HasMore   bool   `json:"has_more"`
	Timestamp string `json:"timestamp"`
}

// ProgressHub fans batch progress out to websocket subscribers. A dead
// connection is dropped on its first failed write.
type ProgressHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewProgressHub creates a new progress hub
func NewProgressHub() *ProgressHub {
	return &ProgressHub{conns: make(map[*websocket.Conn]struct{})}
}

// Register adds a subscriber connection
func (h *ProgressHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
	log.Debug().Int("subscribers", len(h.conns)).Msg("Progress subscriber connected")
}

// Unregister removes a subscriber connection
func (h *ProgressHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Broadcast pushes one event to every subscriber
func (h *ProgressHub) Broadcast(event ProgressEvent) {
	event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
