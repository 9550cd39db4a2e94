package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single-user personal service behind the user's own origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one websocket listener attached to the hub.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// ServeWS upgrades the request and attaches the connection to the hub.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(c.Request.Context(), "stream: websocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 256),
		hub:  h,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection. Listeners are receive-only apart from
// pings; one reader per connection.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.l.Warnf(context.Background(), "stream: connection closed unexpectedly: %v", err)
			}
			break
		}
		c.handleMessage(message)
	}
}

// writePump serializes all writes to the connection; one writer per
// connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(data []byte) {
	var msg Frame
	if err := json.Unmarshal(data, &msg); err != nil {
		c.hub.l.Debugf(context.Background(), "stream: bad client message: %v", err)
		return
	}

	if msg.Type == "ping" {
		c.SendFrame(Frame{Type: "pong", Timestamp: time.Now()})
	}
}

// SendFrame sends a frame to this client only.
func (c *Client) SendFrame(frame Frame) {
	data, err := json.Marshal(frame)
	if err != nil {
		c.hub.l.Errorf(context.Background(), "stream: marshal frame: %v", err)
		return
	}

	select {
	case c.send <- data:
	default:
		c.hub.l.Warnf(context.Background(), "stream: client send buffer full")
	}
}
