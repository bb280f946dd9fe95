package game

import "math/rand"

// spawnGrid is the lattice of candidate spawn points, inclusive on both ends.
type spawnGrid struct {
	minX, maxX float64
	minY, maxY float64
	step       float64
}

// playerGrid walks the movement lattice, inset by the player's radius.
func playerGrid(radius float64) spawnGrid {
	return spawnGrid{
		minX: radius, maxX: CanvasWidth - radius,
		minY: radius, maxY: CanvasHeight - radius,
		step: MoveStep,
	}
}

// cheeseGrid uses the obstacle lattice, one cell in from the top/left edge and
// two from the bottom/right.
func cheeseGrid() spawnGrid {
	return spawnGrid{
		minX: GridCell, maxX: CanvasWidth - 2*GridCell,
		minY: GridCell, maxY: CanvasHeight - 2*GridCell,
		step: GridCell,
	}
}

func (g spawnGrid) cols() int { return int((g.maxX-g.minX)/g.step) + 1 }

func (g spawnGrid) rows() int { return int((g.maxY-g.minY)/g.step) + 1 }

func (g spawnGrid) at(col, row int) Vec {
	return Vec{X: g.minX + float64(col)*g.step, Y: g.minY + float64(row)*g.step}
}

func (g spawnGrid) random(rng *rand.Rand) Vec {
	return g.at(rng.Intn(g.cols()), rng.Intn(g.rows()))
}

// findSpawn draws random grid points until one is clear of every obstacle and
// every listed player. After MaxSpawnAttempts misses it scans the grid row by
// row and takes the first clear point; if the whole grid is blocked it falls
// back to the arena centre. The boolean is false only for that last resort.
func findSpawn(rng *rand.Rand, g spawnGrid, radius float64, obstacles []Obstacle, players []*Player) (Vec, bool) {
	clear := func(c Vec) bool {
		return !circleIntersectsAnyObstacle(c, radius, obstacles) &&
			!circleIntersectsAnyPlayer(c, radius, players)
	}

	for i := 0; i < MaxSpawnAttempts; i++ {
		if c := g.random(rng); clear(c) {
			return c, true
		}
	}
	for row := 0; row < g.rows(); row++ {
		for col := 0; col < g.cols(); col++ {
			if c := g.at(col, row); clear(c) {
				return c, true
			}
		}
	}
	return ClampToCanvas(Vec{X: CanvasWidth / 2, Y: CanvasHeight / 2}, radius), false
}

// GenerateObstacles lays out ObstacleCount cell-aligned rectangles. They may
// overlap each other and may run past the right or bottom edge.
func GenerateObstacles(rng *rand.Rand) []Obstacle {
	cols := int(CanvasWidth / GridCell)
	rows := int(CanvasHeight / GridCell)
	obstacles := make([]Obstacle, 0, ObstacleCount)
	for i := 0; i < ObstacleCount; i++ {
		obstacles = append(obstacles, Obstacle{
			X:      float64(rng.Intn(cols)) * GridCell,
			Y:      float64(rng.Intn(rows)) * GridCell,
			Width:  ObstacleSizes[rng.Intn(len(ObstacleSizes))],
			Height: ObstacleSizes[rng.Intn(len(ObstacleSizes))],
		})
	}
	return obstacles
}
