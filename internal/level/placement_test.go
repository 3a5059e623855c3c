package level

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/mazerush/internal/gamedata"
	"github.com/samdwyer/mazerush/internal/world"
)

func generated(t *testing.T, w, h int, seed int64) (*world.Maze, *rand.Rand) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := world.NewMaze(w, h, rng)
	m.Generate(context.Background())
	return m, rng
}

func TestPlaceEntitiesInvariants(t *testing.T) {
	rules := gamedata.DefaultRules()
	params := ComputeParams(8) // 2 monsters, mid-size maze

	for _, seed := range []int64{1, 9, 77, 4242} {
		m, rng := generated(t, params.Width, params.Height, seed)
		layout := PlaceEntities(m, params, rules, rng)

		if layout.Start == layout.Exit {
			t.Fatalf("seed %d: start equals exit", seed)
		}
		if !m.IsPassable(layout.Start) || !m.IsPassable(layout.Exit) {
			t.Fatalf("seed %d: start or exit on a wall", seed)
		}
		if d := layout.Start.Manhattan(layout.Exit); d < m.Width/rules.ExitDistanceDivisor {
			t.Errorf("seed %d: start-exit distance %d below threshold %d",
				seed, d, m.Width/rules.ExitDistanceDivisor)
		}
		if m.TileAt(layout.Exit) == world.TileGold {
			t.Errorf("seed %d: exit cell holds gold", seed)
		}

		if len(layout.Gold) != params.GoldTotal {
			t.Errorf("seed %d: placed %d gold, want %d", seed, len(layout.Gold), params.GoldTotal)
		}
		for _, g := range layout.Gold {
			if m.TileAt(g) != world.TileGold {
				t.Errorf("seed %d: gold cell %v not marked in grid", seed, g)
			}
			if g == layout.Start || g == layout.Exit {
				t.Errorf("seed %d: gold placed on start or exit %v", seed, g)
			}
		}
		if m.CountGold() != len(layout.Gold) {
			t.Errorf("seed %d: grid gold count %d != layout %d", seed, m.CountGold(), len(layout.Gold))
		}

		if len(layout.Monsters) != params.MonsterCount {
			t.Errorf("seed %d: placed %d monsters, want %d", seed, len(layout.Monsters), params.MonsterCount)
		}
		seen := make(map[world.Point]bool)
		for _, pos := range layout.Monsters {
			if !m.IsPassable(pos) {
				t.Errorf("seed %d: monster on wall at %v", seed, pos)
			}
			if m.TileAt(pos) == world.TileGold {
				t.Errorf("seed %d: monster on gold at %v", seed, pos)
			}
			if pos == layout.Start || pos == layout.Exit {
				t.Errorf("seed %d: monster on start or exit at %v", seed, pos)
			}
			if seen[pos] {
				t.Errorf("seed %d: two monsters share %v", seed, pos)
			}
			seen[pos] = true
		}
	}
}

func TestPlaceEntitiesSaturates(t *testing.T) {
	m, rng := generated(t, 5, 5, 11)
	floors := len(m.FloorCells())

	params := Params{
		Level:        1,
		Width:        m.Width,
		Height:       m.Height,
		StepBudget:   50,
		GoldNeeded:   1,
		GoldTotal:    100,
		MonsterCount: 50,
	}
	layout := PlaceEntities(m, params, gamedata.DefaultRules(), rng)

	if len(layout.Gold) > floors-2 {
		t.Errorf("placed %d gold with only %d floors", len(layout.Gold), floors)
	}
	if len(layout.Gold)+len(layout.Monsters) > floors-2 {
		t.Errorf("placed %d gold and %d monsters with only %d floors",
			len(layout.Gold), len(layout.Monsters), floors)
	}
}

func TestChooseExitFallsBackToFarthest(t *testing.T) {
	floors := []world.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 9, Y: 1}}
	start := floors[0]
	rng := rand.New(rand.NewSource(2))

	// Threshold impossible to satisfy: rejection budget runs out and the
	// farthest cell wins.
	exit := chooseExit(floors, start, 1000, rng)
	if exit != (world.Point{X: 9, Y: 1}) {
		t.Errorf("fallback exit = %v, want farthest cell {9 1}", exit)
	}
}

func TestBuildProducesUsableLevel(t *testing.T) {
	ctx := context.Background()
	rules := gamedata.DefaultRules()

	for lvl := 1; lvl <= MaxLevel; lvl++ {
		m, params, layout := Build(ctx, lvl, rules, rand.New(rand.NewSource(int64(lvl))))

		if params.Level != lvl {
			t.Fatalf("Build(%d) params carry level %d", lvl, params.Level)
		}
		if m.Width != params.Width || m.Height != params.Height {
			t.Errorf("level %d: maze %dx%d does not match params %dx%d",
				lvl, m.Width, m.Height, params.Width, params.Height)
		}
		if len(m.FloorCells()) < minFloorCells {
			t.Errorf("level %d: pathologically small maze survived the build loop", lvl)
		}
		if !m.IsPassable(layout.Start) || !m.IsPassable(layout.Exit) {
			t.Errorf("level %d: start or exit not on a floor cell", lvl)
		}
	}
}
