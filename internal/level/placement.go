package level

import (
	"github.com/samdwyer/mazerush/internal/gamedata"
	"github.com/samdwyer/mazerush/internal/world"
)

const (
	// exitRetryCap bounds the rejection sampling for the exit cell.
	exitRetryCap = 64
	// minFloorCells marks a maze as pathologically small; the build
	// loop regenerates the maze when fewer floors exist.
	minFloorCells = 5
)

// Layout is the result of placing entities onto a maze. Gold cells are
// additionally marked TileGold in the grid; monsters are only tracked
// here, since a monster may later stand on a gold cell.
type Layout struct {
	Start    world.Point
	Exit     world.Point
	Gold     []world.Point
	Monsters []world.Point
}

// PlaceEntities scatters the player start, exit, gold and monsters onto
// the maze's floor cells. The exit is chosen by rejection sampling until
// its Manhattan distance from the start reaches width/exitDistanceDivisor,
// falling back to the farthest floor cell when the retry budget runs out.
// If the maze has fewer floor cells than requested gold or monsters, as
// many as available are placed.
func PlaceEntities(m *world.Maze, p Params, rules gamedata.Rules, rng world.RNG) Layout {
	floors := m.FloorCells()
	start := floors[rng.Intn(len(floors))]
	exit := chooseExit(floors, start, m.Width/rules.ExitDistanceDivisor, rng)

	pool := make([]world.Point, 0, len(floors))
	for _, c := range floors {
		if c != start && c != exit {
			pool = append(pool, c)
		}
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	goldCount := min(p.GoldTotal, len(pool))
	gold := make([]world.Point, goldCount)
	copy(gold, pool[:goldCount])
	for _, g := range gold {
		m.SetTile(g, world.TileGold)
	}

	rest := pool[goldCount:]
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	monsterCount := min(p.MonsterCount, len(rest))
	monsters := make([]world.Point, monsterCount)
	copy(monsters, rest[:monsterCount])

	return Layout{
		Start:    start,
		Exit:     exit,
		Gold:     gold,
		Monsters: monsters,
	}
}

// chooseExit rejection-samples an exit at least minDist from the start.
// On retry exhaustion it returns the floor cell farthest from the start,
// which guarantees termination. A single-cell maze degenerates to the
// start itself.
func chooseExit(floors []world.Point, start world.Point, minDist int, rng world.RNG) world.Point {
	for i := 0; i < exitRetryCap; i++ {
		c := floors[rng.Intn(len(floors))]
		if c != start && start.Manhattan(c) >= minDist {
			return c
		}
	}

	farthest := start
	best := -1
	for _, c := range floors {
		if c == start {
			continue
		}
		if d := start.Manhattan(c); d > best {
			best = d
			farthest = c
		}
	}
	return farthest
}
