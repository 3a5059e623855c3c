// Package world provides the maze grid and its generator.
package world

// Tile represents a single grid cell.
type Tile rune

const (
	// TileWall represents an impassable wall cell.
	TileWall Tile = '#'
	// TileFloor represents a passable floor cell.
	TileFloor Tile = ' '
	// TileGold represents a floor cell holding an uncollected gold piece.
	TileGold Tile = 'G'
)

// IsPassable returns true if the tile can be walked on.
// Gold cells are floor cells that happen to hold a pickup.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
