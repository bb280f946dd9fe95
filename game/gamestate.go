package game

import (
	"errors"
	"fmt"

	"github.com/mapleleafu/cheesechase/models"
)

var (
	ErrMatchActive      = errors.New("match already running")
	ErrNotEnoughPlayers = errors.New("not enough players")
)

// StartMatch moves the arena from Lobby to Active: roles and scores are reset,
// cats are drawn, obstacles regenerated, cheese cleared, everyone respawned and
// the countdown started.
func (e *Engine) StartMatch() error {
	if e.world.Phase != PhaseLobby {
		return ErrMatchActive
	}
	if n := len(e.world.Players); n < MinPlayers {
		return fmt.Errorf("%w: have %d, need %d", ErrNotEnoughPlayers, n, MinPlayers)
	}

	e.world.Phase = PhaseActive
	e.broadcast(models.ServerMessage{Type: models.MsgGameStarted})

	cats := assignRoles(e.world.Players, e.rng)
	e.world.Cheese = nil
	e.world.Obstacles = GenerateObstacles(e.rng)

	placed := make([]*Player, 0, len(e.world.Players))
	for _, p := range e.world.Players {
		pos, ok := findSpawn(e.rng, playerGrid(p.Radius), p.Radius, e.world.Obstacles, placed)
		if !ok {
			e.logger.Warn("no free spawn point, using arena centre", "player", p.ID)
		}
		p.Position = pos
		placed = append(placed, p)
	}

	e.world.Countdown = MatchDuration
	now := e.now()
	e.session = newGameSession(e.newID(), now, e.world.Players)
	e.journal(models.ActionStart, serverActor, "", now.UnixMilli())
	e.logger.Info("match started", "match", e.session.id, "players", len(e.world.Players), "cats", len(cats))

	e.broadcastUpdate()
	e.clock.Start()
	return nil
}

// Tick is one second of match time.
func (e *Engine) Tick() {
	if e.world.Phase != PhaseActive {
		return
	}
	e.world.Countdown--
	e.broadcastUpdate()

	if mice := e.world.count(RoleMouse); mice > 0 {
		interval := CheeseDropWindow / mice
		if interval < 1 {
			interval = 1
		}
		if (MatchDuration-e.world.Countdown)%interval == 0 {
			e.dropCheese()
		}
	}

	if e.world.Countdown <= 0 {
		e.clock.Stop()
		e.evaluate()
	}
}

// dropCheese places one cheese clear of obstacles and players. If the arena
// has no such point the drop is skipped.
func (e *Engine) dropCheese() {
	pos, ok := findSpawn(e.rng, cheeseGrid(), CheeseRadius, e.world.Obstacles, e.world.Players)
	if !ok {
		e.logger.Warn("no free cheese spot, skipping drop")
		return
	}
	e.world.Cheese = append(e.world.Cheese, Cheese{Position: pos, Radius: CheeseRadius})
}

// evaluate ends the match when one side is gone or time is up. It only acts
// while a match is running.
func (e *Engine) evaluate() {
	if e.world.Phase != PhaseActive {
		return
	}
	switch {
	case len(e.world.Players) == 0:
		e.logger.Info("all players left, resetting match")
		e.endMatch(WinnerNone)
	case e.world.count(RoleMouse) == 0:
		e.endMatch(WinnerCats)
	case e.world.count(RoleCat) == 0 || e.world.Countdown <= 0:
		e.endMatch(WinnerMice)
	}
}

// endMatch stops the clock and returns the arena to Lobby. Players, obstacles
// and cheese stay as they are until the next start. Unless the arena emptied,
// everyone gets the final snapshot.
func (e *Engine) endMatch(w Winner) {
	e.clock.Stop()
	e.world.Phase = PhaseEnded
	final := e.gameOverMessage(w)
	e.world.Phase = PhaseLobby
	e.finishSession(w)

	if w == WinnerNone {
		return
	}
	e.logger.Info("match over", "winner", string(w))
	e.broadcast(final)
}
