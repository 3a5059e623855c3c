// Package game provides the turn engine and the session that owns the
// current level.
package game

import (
	"github.com/samdwyer/mazerush/internal/entity"
	"github.com/samdwyer/mazerush/internal/level"
	"github.com/samdwyer/mazerush/internal/world"
)

// Status represents the session state machine.
type Status int

const (
	// StatusActive - the current level is in play.
	StatusActive Status = iota
	// StatusLevelLost - the level was lost; a retry (or a forced skip)
	// is offered.
	StatusLevelLost
	// StatusGameCompleted - the final level was won. Terminal.
	StatusGameCompleted
	// StatusGameOverFinal - the final level was lost. Terminal.
	StatusGameOverFinal
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusLevelLost:
		return "level_lost"
	case StatusGameCompleted:
		return "game_completed"
	case StatusGameOverFinal:
		return "game_over_final"
	default:
		return "unknown"
	}
}

// Terminal returns true for states only RestartGame can exit.
func (s Status) Terminal() bool {
	return s == StatusGameCompleted || s == StatusGameOverFinal
}

// LevelState holds everything belonging to the level in play. It is
// exclusively owned by its Session and discarded wholesale on any level
// transition.
type LevelState struct {
	Maze       *world.Maze
	Player     *entity.Player
	Exit       world.Point
	Monsters   []*entity.Monster
	StepsLeft  int
	GoldNeeded int
}

// newLevelState assembles a level from its generated parts.
func newLevelState(m *world.Maze, params level.Params, layout level.Layout) *LevelState {
	monsters := make([]*entity.Monster, len(layout.Monsters))
	for i, pos := range layout.Monsters {
		monsters[i] = entity.NewMonster(pos)
	}

	return &LevelState{
		Maze:       m,
		Player:     entity.NewPlayer(layout.Start),
		Exit:       layout.Exit,
		Monsters:   monsters,
		StepsLeft:  params.StepBudget,
		GoldNeeded: params.GoldNeeded,
	}
}
