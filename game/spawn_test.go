package game

import (
	"math/rand"
	"testing"
)

func TestFindSpawnAvoidsObstaclesAndPlayers(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		obstacles := GenerateObstacles(rng)

		var placed []*Player
		for i := 0; i < 10; i++ {
			role := RoleMouse
			if i%3 == 0 {
				role = RoleCat
			}
			r := role.Radius()
			pos, ok := findSpawn(rng, playerGrid(r), r, obstacles, placed)
			if !ok {
				t.Fatalf("seed %d: no spawn for player %d", seed, i)
			}
			if pos.X < r || pos.X > CanvasWidth-r || pos.Y < r || pos.Y > CanvasHeight-r {
				t.Fatalf("seed %d: spawn %+v outside the arena", seed, pos)
			}
			if circleIntersectsAnyObstacle(pos, r, obstacles) {
				t.Fatalf("seed %d: spawn %+v overlaps an obstacle", seed, pos)
			}
			if circleIntersectsAnyPlayer(pos, r, placed) {
				t.Fatalf("seed %d: spawn %+v overlaps a player", seed, pos)
			}
			placed = append(placed, &Player{Position: pos, Radius: r})
		}

		cheese, ok := findSpawn(rng, cheeseGrid(), CheeseRadius, obstacles, placed)
		if !ok {
			t.Fatalf("seed %d: no cheese spot", seed)
		}
		if int(cheese.X)%int(GridCell) != 0 || int(cheese.Y)%int(GridCell) != 0 {
			t.Fatalf("seed %d: cheese %+v off the grid", seed, cheese)
		}
		if cheese.X < GridCell || cheese.X > CanvasWidth-2*GridCell || cheese.Y < GridCell || cheese.Y > CanvasHeight-2*GridCell {
			t.Fatalf("seed %d: cheese %+v outside its area", seed, cheese)
		}
	}
}

func TestFindSpawnFindsLastFreeRow(t *testing.T) {
	// Only the bottom cheese row is free.
	obstacles := []Obstacle{{X: 0, Y: 0, Width: CanvasWidth, Height: 500}}
	pos, ok := findSpawn(rand.New(rand.NewSource(1)), cheeseGrid(), CheeseRadius, obstacles, nil)
	if !ok || pos.Y != CanvasHeight-2*GridCell {
		t.Fatalf("findSpawn = %+v %v, want a point on the last row", pos, ok)
	}
}

func TestFindSpawnFallsBackToCentre(t *testing.T) {
	obstacles := []Obstacle{{X: 0, Y: 0, Width: CanvasWidth, Height: CanvasHeight}}
	pos, ok := findSpawn(rand.New(rand.NewSource(1)), playerGrid(MouseRadius), MouseRadius, obstacles, nil)
	if ok {
		t.Fatalf("expected no free point")
	}
	if pos != (Vec{X: CanvasWidth / 2, Y: CanvasHeight / 2}) {
		t.Fatalf("fallback = %+v, want arena centre", pos)
	}
}

func TestGenerateObstacles(t *testing.T) {
	obstacles := GenerateObstacles(rand.New(rand.NewSource(42)))
	if len(obstacles) != ObstacleCount {
		t.Fatalf("got %d obstacles, want %d", len(obstacles), ObstacleCount)
	}
	validSize := func(v float64) bool {
		for _, s := range ObstacleSizes {
			if v == s {
				return true
			}
		}
		return false
	}
	for _, o := range obstacles {
		if int(o.X)%int(GridCell) != 0 || int(o.Y)%int(GridCell) != 0 {
			t.Fatalf("obstacle %+v not cell aligned", o)
		}
		if o.X < 0 || o.X >= CanvasWidth || o.Y < 0 || o.Y >= CanvasHeight {
			t.Fatalf("obstacle %+v starts outside the arena", o)
		}
		if !validSize(o.Width) || !validSize(o.Height) {
			t.Fatalf("obstacle %+v has an unexpected size", o)
		}
	}
}
