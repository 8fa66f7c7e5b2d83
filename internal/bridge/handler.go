package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512 * 1024 // 512KB
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The desktop shell connects from its own origin; accept all.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades shell connections and runs the per-connection pumps.
type Handler struct {
	registry *Registry
	logger   zerolog.Logger
}

// NewHandler creates a bridge handler over the given registry.
func NewHandler(registry *Registry, logger zerolog.Logger) *Handler {
	return &Handler{registry: registry, logger: logger}
}

// Serve upgrades the HTTP request and services the connection until the
// peer disconnects.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade bridge connection")
		return
	}

	client := &client{
		registry: h.registry,
		conn:     conn,
		send:     make(chan []byte, 256),
		logger:   h.logger,
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("Bridge connection established")
}

// client is a middleman between one websocket connection and the registry.
type client struct {
	registry *Registry

	// The WebSocket connection
	conn *websocket.Conn

	// Buffered channel of outbound frames
	send chan []byte

	// Logger instance
	logger zerolog.Logger
}

// readPump pumps requests from the websocket connection through the
// registry. Each request is dispatched on its own goroutine so a slow
// query does not block subsequent reads.
func (c *client) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().Msg("Bridge connection closed normally")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("Unexpected bridge connection close")
			} else {
				c.logger.Debug().Err(err).Msg("Bridge read error")
			}
			break
		}

		var req Request
		if err := json.Unmarshal(message, &req); err != nil {
			c.logger.Error().
				Err(err).
				Str("message", string(message)).
				Msg("Failed to unmarshal bridge request")
			c.push(&Response{
				Channel:    "error:response",
				StatusCode: http.StatusBadRequest,
				Data:       map[string]string{"error": "Malformed request frame"},
			})
			continue
		}

		go func() {
			c.push(c.registry.Dispatch(context.Background(), &req))
		}()
	}
}

// push marshals a response onto the send queue. A full queue drops the
// frame rather than stalling the reader.
func (c *client) push(resp *Response) {
	defer func() {
		// send may have been closed by readPump while a dispatch was
		// still in flight.
		if r := recover(); r != nil {
			c.logger.Debug().Str("channel", resp.Channel).Msg("Dropped response for closed connection")
		}
	}()

	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Error().Err(err).Str("channel", resp.Channel).Msg("Failed to marshal bridge response")
		return
	}

	select {
	case c.send <- data:
	default:
		c.logger.Warn().Str("channel", resp.Channel).Msg("Bridge send queue full, dropping frame")
	}
}

// writePump pumps frames from the send queue to the websocket connection.
func (c *client) writePump() {
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
