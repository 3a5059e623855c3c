package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerush/internal/telemetry"
)

// MinDimension is the smallest usable maze dimension. Requested sizes
// below it are clamped up; a 1-wide maze has no carvable lattice.
const MinDimension = 3

// RNG supplies the randomness used by generation, placement and monster
// movement. *math/rand.Rand satisfies it; tests may supply a scripted
// implementation for fixed sequences.
type RNG interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Maze is a rectangular grid of tiles. Both dimensions are always odd:
// the carve algorithm works on the odd-coordinate cell lattice and opens
// the wall cells between lattice cells.
type Maze struct {
	Width  int
	Height int
	Tiles  [][]Tile
	rng    RNG
}

// NewMaze creates a maze of the given size, filled with walls.
// Even dimensions are reduced by one; anything below MinDimension is
// clamped to MinDimension.
func NewMaze(width, height int, rng RNG) *Maze {
	width = EnsureOdd(width)
	height = EnsureOdd(height)

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Maze{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		rng:    rng,
	}
}

// EnsureOdd coerces n to an odd value of at least MinDimension.
// Even values round down so the result stays within the requested bounds.
func EnsureOdd(n int) int {
	if n < MinDimension {
		return MinDimension
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// Generate carves a perfect maze with a randomized depth-first
// backtracker: starting from a random odd-coordinate cell it repeatedly
// opens the wall toward an unvisited cell two steps away, backtracking
// when no unvisited neighbor remains. The resulting floor cells form a
// spanning tree over the lattice, so every floor cell is reachable from
// every other and there are no loops.
func (m *Maze) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	start := Point{
		X: 1 + 2*m.rng.Intn((m.Width-1)/2),
		Y: 1 + 2*m.rng.Intn((m.Height-1)/2),
	}
	m.Tiles[start.Y][start.X] = TileFloor

	dirs := [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	stack := []Point{start}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates := make([]Point, 0, 4)
		for _, d := range dirs {
			n := curr.Add(d.X, d.Y)
			if n.X > 0 && n.X < m.Width-1 && n.Y > 0 && n.Y < m.Height-1 && m.Tiles[n.Y][n.X] == TileWall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[m.rng.Intn(len(candidates))]
		wall := curr.Add(d.X/2, d.Y/2)
		next := curr.Add(d.X, d.Y)
		m.Tiles[wall.Y][wall.X] = TileFloor
		m.Tiles[next.Y][next.X] = TileFloor
		stack = append(stack, next)
	}

	span.SetAttributes(
		attribute.Int("maze.width", m.Width),
		attribute.Int("maze.height", m.Height),
		attribute.Int("maze.floor_cells", len(m.FloorCells())),
	)
}

// InBounds returns true if the point lies inside the grid.
func (m *Maze) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// TileAt returns the tile at the given point. Out-of-bounds reads
// return TileWall.
func (m *Maze) TileAt(p Point) Tile {
	if !m.InBounds(p) {
		return TileWall
	}
	return m.Tiles[p.Y][p.X]
}

// SetTile writes the tile at the given point. Out-of-bounds writes are
// ignored.
func (m *Maze) SetTile(p Point, t Tile) {
	if m.InBounds(p) {
		m.Tiles[p.Y][p.X] = t
	}
}

// IsPassable returns true if the point is inside the grid and walkable.
func (m *Maze) IsPassable(p Point) bool {
	return m.InBounds(p) && m.Tiles[p.Y][p.X].IsPassable()
}

// FloorCells returns every passable cell in row-major order.
func (m *Maze) FloorCells() []Point {
	cells := make([]Point, 0, m.Width*m.Height/2)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x].IsPassable() {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// CountGold returns the number of uncollected gold cells.
func (m *Maze) CountGold() int {
	count := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileGold {
				count++
			}
		}
	}
	return count
}

// Rows renders the grid as one string per row. The result is a copy;
// mutating it does not affect the maze.
func (m *Maze) Rows() []string {
	rows := make([]string, m.Height)
	for y := 0; y < m.Height; y++ {
		row := make([]rune, m.Width)
		for x := 0; x < m.Width; x++ {
			row[x] = m.Tiles[y][x].Rune()
		}
		rows[y] = string(row)
	}
	return rows
}
