package game

import "time"

// Internal truth, authoritative world state. Only the Engine mutates it.

type Phase string

const (
	PhaseLobby  Phase = "lobby"
	PhaseActive Phase = "active"
	PhaseEnded  Phase = "ended"
)

type Role string

const (
	RoleMouse Role = "mouse"
	RoleCat   Role = "cat"
)

// Radius is the collision radius a player of this role carries.
func (r Role) Radius() float64 {
	if r == RoleCat {
		return CatRadius
	}
	return MouseRadius
}

type Winner string

const (
	WinnerNone Winner = ""
	WinnerCats Winner = "cats"
	WinnerMice Winner = "mice"
)

type Vec struct {
	X, Y float64
}

type Score struct {
	CapturesAsCat      int
	CheeseAsMouse      int
	LastEventTimestamp int64 // unix millis of the last scoring event
}

func (s Score) Total() int {
	return s.CapturesAsCat + s.CheeseAsMouse
}

type Player struct {
	ID       string
	Label    string
	Role     Role
	Score    Score
	Position Vec
	Radius   float64

	LastMoveAcceptedAt time.Time

	seq uint64 // join order, used as the last ranking tie-break
}

// becomeCat grows the player to cat size. A mouse caught against an edge is
// pushed back inside so the larger circle stays on the canvas.
func (p *Player) becomeCat() {
	p.Role = RoleCat
	p.Radius = CatRadius
	p.Position = ClampToCanvas(p.Position, p.Radius)
}

func (p *Player) resetForMatch() {
	p.Role = RoleMouse
	p.Radius = MouseRadius
	p.Score = Score{}
}

type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

type Cheese struct {
	Position Vec
	Radius   float64
}

type World struct {
	Phase     Phase
	Countdown int
	Players   []*Player
	Obstacles []Obstacle
	Cheese    []Cheese
}

func (w *World) player(id string) (*Player, int) {
	for i, p := range w.Players {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

func (w *World) count(role Role) int {
	n := 0
	for _, p := range w.Players {
		if p.Role == role {
			n++
		}
	}
	return n
}
