// Package level derives per-level parameters and places entities onto a
// freshly generated maze.
package level

import "github.com/samdwyer/mazerush/internal/world"

const (
	// MaxLevel is the final level; winning it completes the game.
	MaxLevel = 20

	baseWidth  = 19
	baseHeight = 11

	baseStepBudget  = 150
	stepBudgetFloor = 40
	// Fixed decay keeps ComputeParams pure; randomizing it would make
	// level parameters depend on the RNG stream.
	stepDecayPerLevel = 4

	baseGoldNeeded = 3
	goldSurplus    = 2
)

// Params holds everything derived from a level index.
type Params struct {
	Level        int
	Width        int
	Height       int
	StepBudget   int
	GoldNeeded   int
	GoldTotal    int
	MonsterCount int
}

// ComputeParams maps a level index to its parameters. It is pure: the
// same level always yields the same parameters. Levels below 1 clamp
// to 1.
func ComputeParams(level int) Params {
	if level < 1 {
		level = 1
	}

	// Maze grows by 2 in both dimensions every 3 levels.
	inc := (level - 1) / 3 * 2
	width := world.EnsureOdd(baseWidth + inc)
	height := world.EnsureOdd(baseHeight + inc)

	steps := baseStepBudget - stepDecayPerLevel*(level-1)
	if steps < stepBudgetFloor {
		steps = stepBudgetFloor
	}

	goldNeeded := baseGoldNeeded + (level - 1)
	goldTotal := goldNeeded + goldSurplus + level/5

	return Params{
		Level:        level,
		Width:        width,
		Height:       height,
		StepBudget:   steps,
		GoldNeeded:   goldNeeded,
		GoldTotal:    goldTotal,
		MonsterCount: monsterCount(level),
	}
}

// monsterCount steps through a fixed level-range table.
func monsterCount(level int) int {
	switch {
	case level <= 2:
		return 0
	case level <= 7:
		return 1
	case level <= 14:
		return 2
	default:
		return 3
	}
}
