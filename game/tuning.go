package game

import "time"

const (
	CanvasWidth      = 800.0
	CanvasHeight     = 600.0
	MoveStep         = 10.0
	MoveCooldown     = 100 * time.Millisecond
	MouseRadius      = 8.0
	CatRadius        = 12.0
	CheeseRadius     = 10.0
	GridCell         = 40.0
	ObstacleCount    = 15
	MatchDuration    = 300 // seconds
	TickInterval     = time.Second
	MinPlayers       = 2
	MaxCats          = 2
	PointsPerCatch   = 5
	PointsPerCheese  = 1
	CheeseDropWindow = 30 // seconds, shared out between the living mice
	MaxSpawnAttempts = 1000
	medalSlots       = 3
)

// ObstacleSizes are the allowed widths and heights of a generated obstacle.
var ObstacleSizes = [...]float64{GridCell, 2 * GridCell, 3 * GridCell}
