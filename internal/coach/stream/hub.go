package stream

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"daybalance/internal/coach/directive"
	pkgLog "daybalance/pkg/log"
)

// Frame is one websocket message sent to coach chat listeners. A chunk
// frame carries the whole response buffer accumulated so far, not a
// delta; the client just replaces what it shows.
type Frame struct {
	Type      string             `json:"type"` // "connection", "chunk", "done", "error"
	Text      string             `json:"text,omitempty"`
	Thought   string             `json:"thought,omitempty"`
	Actions   []directive.Action `json:"actions,omitempty"`
	Message   string             `json:"message,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// Hub maintains the set of active chat listeners and fans frames out to
// them. Slow listeners are dropped rather than allowed to stall the
// generation stream.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	l          pkgLog.Logger
}

// NewHub creates a websocket hub.
func NewHub(l pkgLog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		l:          l,
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	h.l.Infof(context.Background(), "stream: client registered, connections=%d", len(h.clients))

	client.SendFrame(Frame{
		Type:      "connection",
		Message:   "connected",
		Timestamp: time.Now(),
	})
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.l.Infof(context.Background(), "stream: client unregistered, connections=%d", len(h.clients))
	}
}

// Broadcast sends a frame to every connected listener.
func (h *Hub) Broadcast(frame Frame) {
	if frame.Timestamp.IsZero() {
		frame.Timestamp = time.Now()
	}
	data, err := json.Marshal(frame)
	if err != nil {
		h.l.Errorf(context.Background(), "stream: marshal frame: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.l.Warnf(context.Background(), "stream: listener too slow, dropping connection")
			close(client.send)
			delete(h.clients, client)
		}
	}
}

// ConnectionCount returns the number of active listeners.
func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
