package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mapleleafu/cheesechase/game"
	"github.com/mapleleafu/cheesechase/models"
)

var ErrHubStopped = errors.New("hub stopped")

type HubConfig struct {
	SendBuffer    int
	AllowedOrigin string
	Logger        *slog.Logger
	Game          game.Options
}

type inboundMessage struct {
	conn *Connection
	msg  models.ClientMessage
}

// Hub maintains the set of active connections and owns the game engine.
// Everything that touches the engine (joins, leaves, client messages, clock
// ticks, lobby queries) is funnelled through channels into Run, so the world
// only ever changes on that one goroutine.
type Hub struct {
	engine *game.Engine

	// Registered connections.
	connections map[*Connection]bool

	register   chan *Connection
	unregister chan *Connection

	// Decoded messages from the connections.
	inbound chan inboundMessage

	lobby chan chan models.LobbyInfo

	// Closed when Run returns.
	done chan struct{}

	upgrader   websocket.Upgrader
	sendBuffer int
	logger     *slog.Logger
}

func NewHub(cfg HubConfig) *Hub {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = 256
	}
	if cfg.Game.Logger == nil {
		cfg.Game.Logger = cfg.Logger
	}
	allowed := cfg.AllowedOrigin
	return &Hub{
		engine:      game.NewEngine(cfg.Game),
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		inbound:     make(chan inboundMessage, 256),
		lobby:       make(chan chan models.LobbyInfo),
		done:        make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowed == "" || allowed == "*" || origin == "" || origin == allowed
			},
		},
		sendBuffer: cfg.SendBuffer,
		logger:     cfg.Logger,
	}
}

// Run is the game loop. It returns when ctx is cancelled, after closing every
// connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case connection := <-h.register:
			h.connections[connection] = true
			player := h.engine.Connect(connection.label, connection)
			connection.playerID = player.ID
		case connection := <-h.unregister:
			if _, ok := h.connections[connection]; ok {
				delete(h.connections, connection)
				h.engine.Disconnect(connection.playerID)
				close(connection.send)
			}
		case in := <-h.inbound:
			if h.connections[in.conn] {
				h.dispatch(in.conn, in.msg)
			}
		case <-h.engine.Clock():
			h.engine.Tick()
		case reply := <-h.lobby:
			reply <- h.engine.Lobby()
		}
	}
}

func (h *Hub) shutdown() {
	h.engine.Shutdown()
	for connection := range h.connections {
		delete(h.connections, connection)
		close(connection.send)
	}
	h.logger.Info("hub stopped")
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Lobby asks the game loop for the current arena summary.
func (h *Hub) Lobby(ctx context.Context) (models.LobbyInfo, error) {
	reply := make(chan models.LobbyInfo, 1)
	select {
	case h.lobby <- reply:
	case <-h.done:
		return models.LobbyInfo{}, ErrHubStopped
	case <-ctx.Done():
		return models.LobbyInfo{}, ctx.Err()
	}
	select {
	case info := <-reply:
		return info, nil
	case <-ctx.Done():
		return models.LobbyInfo{}, ctx.Err()
	}
}
