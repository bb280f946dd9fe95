package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mapleleafu/cheesechase/models"
	"github.com/mapleleafu/cheesechase/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 16
)

var errSendQueueFull = errors.New("send queue full")

// Connection represents a WebSocket connection and the player it belongs to.
type Connection struct {
	ws    *websocket.Conn
	send  chan []byte
	codec protocol.Codec
	label string

	// Set and read on the hub goroutine only.
	playerID string

	closeOnce sync.Once
	logger    *slog.Logger
}

// Send encodes msg and queues it for the write pump without blocking.
func (c *Connection) Send(msg models.ServerMessage) error {
	b, err := c.codec.Encode(msg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msg.Type, err)
	}
	select {
	case c.send <- b:
		return nil
	default:
		return errSendQueueFull
	}
}

// Close drops the network connection. The read pump notices and unregisters.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.ws.Close()
	})
	return err
}

func (h *Hub) WsHandler(w http.ResponseWriter, r *http.Request) {
	codec := protocol.Lookup(r.URL.Query().Get("codec"))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	connection := &Connection{
		ws:     conn,
		send:   make(chan []byte, h.sendBuffer),
		codec:  codec,
		label:  remoteLabel(r),
		logger: h.logger,
	}

	go connection.writePump()

	select {
	case h.register <- connection:
	case <-h.done:
		connection.Close()
		return
	}
	h.logger.Debug("connection registered", "label", connection.label, "codec", codec.Name())

	connection.readPump(h)
}

func (c *Connection) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				c.logger.Warn("connection read error", "label", c.label, "err", err)
			}
			return
		}
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))

		msg, ok := processMessage(c, message)
		if !ok {
			continue
		}
		select {
		case h.inbound <- inboundMessage{conn: c, msg: msg}:
		case <-h.done:
			return
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	frameType := websocket.TextMessage
	if c.codec.Binary() {
		frameType = websocket.BinaryMessage
	}

	for {
		select {
		case message, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteMessage(frameType, message); err != nil {
				c.logger.Debug("error writing message", "label", c.label, "err", err)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// remoteLabel is the display label of a player: the peer's IP address.
func remoteLabel(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return strings.TrimPrefix(host, "::ffff:")
}
