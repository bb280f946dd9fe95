package game

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// CircleIntersectsRect reports whether a circle touches or overlaps the
// obstacle, measured from the circle centre to the nearest point of the rect.
func CircleIntersectsRect(c Vec, radius float64, o Obstacle) bool {
	closestX := clampFloat(c.X, o.X, o.X+o.Width)
	closestY := clampFloat(c.Y, o.Y, o.Y+o.Height)
	dx := c.X - closestX
	dy := c.Y - closestY
	return dx*dx+dy*dy <= radius*radius
}

func circleIntersectsAnyObstacle(c Vec, radius float64, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if CircleIntersectsRect(c, radius, o) {
			return true
		}
	}
	return false
}

// CirclesOverlap reports whether two circles touch or overlap.
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	return distSq(a, b) <= (ra+rb)*(ra+rb)
}

// touching is the strict proximity test used for catches and pickups.
func touching(a Vec, ra float64, b Vec, rb float64) bool {
	return distSq(a, b) < (ra+rb)*(ra+rb)
}

func circleIntersectsAnyPlayer(c Vec, radius float64, players []*Player) bool {
	for _, p := range players {
		if CirclesOverlap(c, radius, p.Position, p.Radius) {
			return true
		}
	}
	return false
}

// ClampToCanvas keeps a circle of the given radius fully inside the arena.
func ClampToCanvas(c Vec, radius float64) Vec {
	return Vec{
		X: clampFloat(c.X, radius, CanvasWidth-radius),
		Y: clampFloat(c.Y, radius, CanvasHeight-radius),
	}
}

func distSq(a, b Vec) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
