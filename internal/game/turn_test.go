package game

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/mazerush/internal/entity"
	"github.com/samdwyer/mazerush/internal/gamedata"
	"github.com/samdwyer/mazerush/internal/world"
)

// mazeFromRows builds a maze from literal rows ('#' wall, ' ' floor,
// 'G' gold). Rows must form an odd-by-odd grid.
func mazeFromRows(t *testing.T, rows []string) *world.Maze {
	t.Helper()
	m := world.NewMaze(len(rows[0]), len(rows), rand.New(rand.NewSource(1)))
	if m.Width != len(rows[0]) || m.Height != len(rows) {
		t.Fatalf("test maze must be odd-sized, got %dx%d", len(rows[0]), len(rows))
	}
	for y, row := range rows {
		for x, ch := range row {
			m.SetTile(world.Point{X: x, Y: y}, world.Tile(ch))
		}
	}
	return m
}

// craftLevel assembles a LevelState directly, bypassing generation.
func craftLevel(t *testing.T, rows []string, player, exit world.Point, steps, goldNeeded int, monsters ...world.Point) *LevelState {
	t.Helper()
	st := &LevelState{
		Maze:       mazeFromRows(t, rows),
		Player:     entity.NewPlayer(player),
		Exit:       exit,
		StepsLeft:  steps,
		GoldNeeded: goldNeeded,
	}
	for _, pos := range monsters {
		st.Monsters = append(st.Monsters, entity.NewMonster(pos))
	}
	return st
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func hasEvent(events []Event, typ EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}

func TestMoveIntoWallIsNoOpCostingOneStep(t *testing.T) {
	st := craftLevel(t, []string{
		"#####",
		"#   #",
		"#####",
	}, world.Point{X: 1, Y: 1}, world.Point{X: 3, Y: 1}, 10, 1)

	events := st.applyMove(DirUp, 1, gamedata.DefaultRules(), testRNG())

	if st.Player.Pos != (world.Point{X: 1, Y: 1}) {
		t.Errorf("player moved into wall: %v", st.Player.Pos)
	}
	if st.StepsLeft != 9 {
		t.Errorf("blocked move cost %d steps, want 1", 10-st.StepsLeft)
	}
	if len(events) != 0 {
		t.Errorf("blocked move produced events: %v", events)
	}
}

func TestDashStopsAtWall(t *testing.T) {
	st := craftLevel(t, []string{
		"#####",
		"#   #",
		"#####",
	}, world.Point{X: 1, Y: 1}, world.Point{X: 3, Y: 1}, 10, 5)

	st.applyMove(DirRight, 5, gamedata.DefaultRules(), testRNG())

	if st.Player.Pos != (world.Point{X: 3, Y: 1}) {
		t.Errorf("dash ended at %v, want {3 1}", st.Player.Pos)
	}
	if st.StepsLeft != 8 {
		t.Errorf("dash cost %d steps, want 2 (cells traversed)", 10-st.StepsLeft)
	}
}

func TestDashCollectsGoldAlongThePath(t *testing.T) {
	st := craftLevel(t, []string{
		"#######",
		"# GG  #",
		"#######",
	}, world.Point{X: 1, Y: 1}, world.Point{X: 5, Y: 1}, 10, 2)

	events := st.applyMove(DirRight, 3, gamedata.DefaultRules(), testRNG())

	if st.Player.Gold != 2 {
		t.Errorf("collected gold = %d, want 2", st.Player.Gold)
	}
	if st.Maze.CountGold() != 0 {
		t.Errorf("gold left in grid = %d, want 0", st.Maze.CountGold())
	}
	if !hasEvent(events, EventGoldCollected) {
		t.Errorf("no gold_collected event in %v", events)
	}
	for _, e := range events {
		if e.Type == EventGoldCollected && e.Amount != 2 {
			t.Errorf("gold_collected amount = %d, want 2", e.Amount)
		}
	}
}

func TestSpeedClampedToRules(t *testing.T) {
	rules := gamedata.DefaultRules()
	rules.MaxDashSpeed = 2

	st := craftLevel(t, []string{
		"#########",
		"#       #",
		"#########",
	}, world.Point{X: 1, Y: 1}, world.Point{X: 7, Y: 1}, 10, 1)

	st.applyMove(DirRight, 99, rules, testRNG())

	if st.Player.Pos != (world.Point{X: 3, Y: 1}) {
		t.Errorf("clamped dash ended at %v, want {3 1}", st.Player.Pos)
	}
}

func TestStepsLeftFloorsAtZero(t *testing.T) {
	st := craftLevel(t, []string{
		"#####",
		"#   #",
		"#####",
	}, world.Point{X: 1, Y: 1}, world.Point{X: 3, Y: 1}, 1, 1)

	st.applyMove(DirRight, 3, gamedata.DefaultRules(), testRNG())

	if st.StepsLeft != 0 {
		t.Errorf("stepsLeft = %d, want 0", st.StepsLeft)
	}
}

func TestMonsterWithNoOpenNeighborStays(t *testing.T) {
	st := craftLevel(t, []string{
		"#####",
		"# # #",
		"#####",
	}, world.Point{X: 1, Y: 1}, world.Point{X: 1, Y: 1}, 10, 1, world.Point{X: 3, Y: 1})

	st.applyMove(DirUp, 1, gamedata.DefaultRules(), testRNG())

	if st.Monsters[0].Pos != (world.Point{X: 3, Y: 1}) {
		t.Errorf("boxed-in monster moved to %v", st.Monsters[0].Pos)
	}
}

func TestMonsterHitPenaltyClampsAtZero(t *testing.T) {
	// Two-cell corridor: the monster's only open neighbor is the
	// player's cell, so it lands on the player every other turn.
	st := craftLevel(t, []string{
		"#####",
		"#  ##",
		"#####",
	}, world.Point{X: 1, Y: 1}, world.Point{X: 1, Y: 1}, 50, 1, world.Point{X: 2, Y: 1})
	rules := gamedata.DefaultRules()

	for i := 0; i < 5; i++ {
		events := st.applyMove(DirUp, 1, rules, testRNG())
		if st.Player.Gold < 0 {
			t.Fatalf("gold went negative: %d", st.Player.Gold)
		}
		// The monster alternates between the player's cell and its own.
		if st.Monsters[0].Pos == st.Player.Pos && !hasEvent(events, EventMonsterHit) {
			t.Errorf("turn %d: monster on player without monster_hit event", i)
		}
	}
	if st.Player.Gold != 0 {
		t.Errorf("gold = %d after repeated penalties, want 0", st.Player.Gold)
	}
}

func TestMonstersAvoidEachOther(t *testing.T) {
	st := craftLevel(t, []string{
		"#####",
		"#   #",
		"#####",
	}, world.Point{X: 1, Y: 1}, world.Point{X: 1, Y: 1}, 10, 1,
		world.Point{X: 2, Y: 1}, world.Point{X: 3, Y: 1})

	for i := 0; i < 20; i++ {
		st.applyMove(DirUp, 1, gamedata.DefaultRules(), testRNG())
		if st.Monsters[0].Pos == st.Monsters[1].Pos {
			t.Fatalf("turn %d: monsters share cell %v", i, st.Monsters[0].Pos)
		}
		for _, m := range st.Monsters {
			if !st.Maze.IsPassable(m.Pos) {
				t.Fatalf("turn %d: monster on wall at %v", i, m.Pos)
			}
		}
	}
}

func TestGoldPerPickupRule(t *testing.T) {
	rules := gamedata.DefaultRules()
	rules.GoldPerPickup = 10

	st := craftLevel(t, []string{
		"#####",
		"#G  #",
		"#####",
	}, world.Point{X: 2, Y: 1}, world.Point{X: 3, Y: 1}, 10, 1)

	events := st.applyMove(DirLeft, 1, rules, testRNG())

	if st.Player.Gold != 10 {
		t.Errorf("gold = %d with goldPerPickup 10, want 10", st.Player.Gold)
	}
	if !hasEvent(events, EventGoldCollected) {
		t.Error("missing gold_collected event")
	}
}
