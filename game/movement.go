package game

import (
	"time"

	"github.com/mapleleafu/cheesechase/models"
)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

func ParseDirection(s string) (Direction, bool) {
	d := Direction(s)
	_, ok := d.delta()
	return d, ok
}

func (d Direction) delta() (Vec, bool) {
	switch d {
	case Up:
		return Vec{Y: -MoveStep}, true
	case Down:
		return Vec{Y: MoveStep}, true
	case Left:
		return Vec{X: -MoveStep}, true
	case Right:
		return Vec{X: MoveStep}, true
	}
	return Vec{}, false
}

type MoveResult int

const (
	MoveIgnored   MoveResult = iota // no match, unknown player or direction
	MoveThrottled                   // inside the cooldown window, nothing changed
	MoveBlocked                     // hit an obstacle, cooldown consumed
	MoveApplied
)

func (r MoveResult) String() string {
	switch r {
	case MoveThrottled:
		return "throttled"
	case MoveBlocked:
		return "blocked"
	case MoveApplied:
		return "applied"
	}
	return "ignored"
}

// Move steps a player one unit in the given direction.
//
// A throttled attempt changes nothing, not even the cooldown timestamp. An
// attempt into an obstacle leaves the player where it is but still restarts
// the cooldown. Every attempt past the cooldown runs capture resolution and
// the win check, then broadcasts an update.
func (e *Engine) Move(id string, dir Direction) MoveResult {
	if e.world.Phase != PhaseActive {
		return MoveIgnored
	}
	p, _ := e.world.player(id)
	if p == nil {
		return MoveIgnored
	}
	d, ok := dir.delta()
	if !ok {
		return MoveIgnored
	}

	now := e.now()
	if now.Sub(p.LastMoveAcceptedAt) < MoveCooldown {
		return MoveThrottled
	}

	result := MoveBlocked
	candidate := Vec{X: p.Position.X + d.X, Y: p.Position.Y + d.Y}
	if !circleIntersectsAnyObstacle(candidate, p.Radius, e.world.Obstacles) {
		p.Position = ClampToCanvas(candidate, p.Radius)
		result = MoveApplied
	}
	p.LastMoveAcceptedAt = now

	e.resolveCaptures(now)
	e.evaluate()
	e.broadcastUpdate()
	return result
}

// resolveCaptures checks every cat against every mouse, then every mouse
// against every cheese. A caught mouse turns into a cat on the spot, so later
// cats in the same pass no longer see it as prey.
func (e *Engine) resolveCaptures(now time.Time) {
	ts := now.UnixMilli()

	for _, cat := range e.world.Players {
		if cat.Role != RoleCat {
			continue
		}
		for _, mouse := range e.world.Players {
			if mouse.Role != RoleMouse {
				continue
			}
			if !touching(cat.Position, cat.Radius, mouse.Position, mouse.Radius) {
				continue
			}
			cat.Score.CapturesAsCat += PointsPerCatch
			cat.Score.LastEventTimestamp = ts
			mouse.becomeCat()
			e.journal(models.ActionCatch, cat.ID, mouse.ID, ts)
			e.logger.Info("mouse caught", "cat", cat.ID, "mouse", mouse.ID)
		}
	}

	for _, mouse := range e.world.Players {
		if mouse.Role != RoleMouse {
			continue
		}
		kept := e.world.Cheese[:0]
		for _, c := range e.world.Cheese {
			if touching(mouse.Position, mouse.Radius, c.Position, c.Radius) {
				mouse.Score.CheeseAsMouse += PointsPerCheese
				mouse.Score.LastEventTimestamp = ts
				e.journal(models.ActionCheese, mouse.ID, "", ts)
				continue
			}
			kept = append(kept, c)
		}
		e.world.Cheese = kept
	}
}
