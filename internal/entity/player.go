// Package entity provides the game entities: the player and the
// wandering monsters. Entities live outside the grid as coordinates so
// that standing on a gold cell stays unambiguous.
package entity

import "github.com/samdwyer/mazerush/internal/world"

// Player is the player-controlled runner.
type Player struct {
	Pos  world.Point
	Gold int
}

// NewPlayer creates a player at the given position with no gold.
func NewPlayer(pos world.Point) *Player {
	return &Player{Pos: pos}
}

// AddGold credits collected gold.
func (p *Player) AddGold(n int) {
	p.Gold += n
}

// LoseGold applies a penalty, clamped so the total never goes negative.
func (p *Player) LoseGold(n int) {
	p.Gold -= n
	if p.Gold < 0 {
		p.Gold = 0
	}
}
