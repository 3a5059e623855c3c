package world

// Point is a grid coordinate. X grows rightward, Y grows downward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance to another point.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbors4 returns the four orthogonally adjacent points.
func (p Point) Neighbors4() [4]Point {
	return [4]Point{
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
