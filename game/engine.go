package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mapleleafu/cheesechase/models"
)

// Client is the engine's handle on one player's connection. Send must not
// block; a failed Send gets the client closed, and the close comes back to the
// engine as a Disconnect.
type Client interface {
	Send(msg models.ServerMessage) error
	Close() error
}

// Recorder receives every finished match. Record must not block.
type Recorder interface {
	Record(rec models.MatchRecord)
}

type nopRecorder struct{}

func (nopRecorder) Record(models.MatchRecord) {}

type Options struct {
	Rand      *rand.Rand
	Now       func() time.Time
	NewTicker TickerFunc
	NewID     func() string
	Recorder  Recorder
	Logger    *slog.Logger
}

// Engine owns the world and is the only thing that mutates it. It is not safe
// for concurrent use: every method must be called from the same goroutine,
// which is also the one selecting on Clock.
type Engine struct {
	world   World
	clock   Clock
	clients map[string]Client
	session *gameSession
	nextSeq uint64

	rng      *rand.Rand
	now      func() time.Time
	newID    func() string
	recorder Recorder
	logger   *slog.Logger
}

func NewEngine(opts Options) *Engine {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewTicker == nil {
		opts.NewTicker = NewRealTicker
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Engine{
		world:    World{Phase: PhaseLobby},
		clock:    Clock{newTicker: opts.NewTicker},
		clients:  make(map[string]Client),
		rng:      opts.Rand,
		now:      opts.Now,
		newID:    opts.NewID,
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}
}

// World exposes the state for reading on the engine goroutine.
func (e *Engine) World() *World {
	return &e.world
}

// Clock is the tick channel of the running match, nil between matches.
func (e *Engine) Clock() <-chan time.Time {
	return e.clock.C()
}

// Connect registers a new player as a mouse, tells the connection its id and
// sends the new roster to everyone.
func (e *Engine) Connect(label string, c Client) *Player {
	p := &Player{
		ID:     e.newID(),
		Label:  label,
		Role:   RoleMouse,
		Radius: MouseRadius,
		seq:    e.nextSeq,
	}
	e.nextSeq++

	pos, ok := findSpawn(e.rng, playerGrid(p.Radius), p.Radius, e.world.Obstacles, e.world.Players)
	if !ok {
		e.logger.Warn("no free spawn point, using arena centre", "player", p.ID)
	}
	p.Position = pos

	e.world.Players = append(e.world.Players, p)
	e.clients[p.ID] = c
	e.logger.Info("player connected", "player", p.ID, "label", label, "players", len(e.world.Players))

	e.sendTo(p.ID, models.ServerMessage{Type: models.MsgID, ID: p.ID})
	e.broadcastRoster()
	return p
}

// Disconnect removes the player whatever the phase. A departure can end a
// running match, so the win conditions are checked afterwards.
func (e *Engine) Disconnect(id string) {
	delete(e.clients, id)
	p, i := e.world.player(id)
	if p == nil {
		return
	}
	e.world.Players = append(e.world.Players[:i], e.world.Players[i+1:]...)
	e.logger.Info("player disconnected", "player", id, "label", p.Label, "players", len(e.world.Players))
	e.journal(models.ActionLeave, id, "", e.now().UnixMilli())

	if e.world.Phase == PhaseLobby {
		e.broadcastRoster()
	}
	e.evaluate()
}

// Roster lists the connected players in join order.
func (e *Engine) Roster() []*Player {
	out := make([]*Player, len(e.world.Players))
	copy(out, e.world.Players)
	return out
}

func (e *Engine) Lobby() models.LobbyInfo {
	info := models.LobbyInfo{
		Phase:     string(e.world.Phase),
		Countdown: e.world.Countdown,
		Players:   len(e.world.Players),
		Cats:      e.world.count(RoleCat),
		Mice:      e.world.count(RoleMouse),
		CanStart:  e.world.Phase == PhaseLobby && len(e.world.Players) >= MinPlayers,
	}
	if e.session != nil {
		info.MatchID = e.session.id
	}
	return info
}

// Shutdown ends a running match without a winner, so its journal still
// reaches the recorder, and halts the clock. Nobody is told; the connections
// are about to close.
func (e *Engine) Shutdown() {
	if e.world.Phase == PhaseActive {
		e.logger.Info("aborting running match", "players", len(e.world.Players))
		e.endMatch(WinnerNone)
	}
	e.clock.Stop()
}
