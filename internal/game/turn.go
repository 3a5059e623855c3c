package game

import (
	"github.com/samdwyer/mazerush/internal/gamedata"
	"github.com/samdwyer/mazerush/internal/world"
)

// applyMove resolves one player intent against the level: a dash of up
// to speed cells, then one step for every monster. It reports what
// happened but leaves win/loss evaluation to the session.
func (st *LevelState) applyMove(dir Direction, speed int, rules gamedata.Rules, rng world.RNG) []Event {
	if speed < 1 {
		speed = 1
	}
	if speed > rules.MaxDashSpeed {
		speed = rules.MaxDashSpeed
	}

	dx, dy := dir.Delta()
	moved := 0
	picked := 0
	for i := 0; i < speed; i++ {
		next := st.Player.Pos.Add(dx, dy)
		if !st.Maze.IsPassable(next) {
			break
		}
		st.Player.Pos = next
		moved++
		if st.Maze.TileAt(next) == world.TileGold {
			st.Maze.SetTile(next, world.TileFloor)
			picked++
		}
	}

	// A fully blocked dash is a legal no-op but still spends a step.
	cost := moved
	if cost < 1 {
		cost = 1
	}
	st.StepsLeft -= cost
	if st.StepsLeft < 0 {
		st.StepsLeft = 0
	}

	var events []Event
	if picked > 0 {
		gain := picked * rules.GoldPerPickup
		st.Player.AddGold(gain)
		events = append(events, Event{Type: EventGoldCollected, Amount: gain})
	}

	return append(events, st.moveMonsters(rules, rng)...)
}

// moveMonsters gives every monster one random step into an adjacent
// floor cell not occupied by another monster; a monster with no open
// neighbor stays put. The move order is shuffled each tick to avoid
// positional bias. Monsters may share the player's cell - doing so
// costs the player gold.
func (st *LevelState) moveMonsters(rules gamedata.Rules, rng world.RNG) []Event {
	if len(st.Monsters) == 0 {
		return nil
	}

	occupied := make(map[world.Point]bool, len(st.Monsters))
	for _, m := range st.Monsters {
		occupied[m.Pos] = true
	}

	order := make([]int, len(st.Monsters))
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	var events []Event
	for _, idx := range order {
		m := st.Monsters[idx]

		candidates := make([]world.Point, 0, 4)
		for _, n := range m.Pos.Neighbors4() {
			if st.Maze.IsPassable(n) && !occupied[n] {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		delete(occupied, m.Pos)
		occupied[next] = true
		m.Pos = next

		if next == st.Player.Pos {
			st.Player.LoseGold(rules.MonsterPenalty)
			events = append(events, Event{Type: EventMonsterHit, Amount: rules.MonsterPenalty})
		}
	}
	return events
}
