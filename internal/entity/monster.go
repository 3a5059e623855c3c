package entity

import "github.com/samdwyer/mazerush/internal/world"

// Monster is a wandering hazard. Monsters carry no state beyond their
// position; the turn engine decides where they step.
type Monster struct {
	Pos world.Point
}

// NewMonster creates a monster at the given position.
func NewMonster(pos world.Point) *Monster {
	return &Monster{Pos: pos}
}
