package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerush/internal/game"
	"github.com/samdwyer/mazerush/internal/gamedata"
	"github.com/samdwyer/mazerush/internal/world"
)

// Glyphs for layered entities. The grid itself renders as colored cells.
const (
	glyphPlayer  = '@'
	glyphExit    = '>'
	glyphMonster = 'M'
	glyphGold    = '*'
)

// Renderer draws session snapshots to the screen using the palette from
// the embedded rules file.
type Renderer struct {
	screen *Screen

	wall    tcell.Style
	floor   tcell.Style
	gold    tcell.Style
	player  tcell.Style
	exit    tcell.Style
	monster tcell.Style
	hud     tcell.Style
}

// NewRenderer creates a renderer for the given screen and palette.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	floorBG := gamedata.MustParseHexColor(palette.Floor)
	return &Renderer{
		screen:  screen,
		wall:    tcell.StyleDefault.Background(gamedata.MustParseHexColor(palette.Wall)),
		floor:   tcell.StyleDefault.Background(floorBG),
		gold:    tcell.StyleDefault.Background(floorBG).Foreground(gamedata.MustParseHexColor(palette.Gold)).Bold(true),
		player:  tcell.StyleDefault.Background(gamedata.MustParseHexColor(palette.Player)).Foreground(tcell.ColorWhite).Bold(true),
		exit:    tcell.StyleDefault.Background(gamedata.MustParseHexColor(palette.Exit)).Foreground(tcell.ColorWhite).Bold(true),
		monster: tcell.StyleDefault.Background(gamedata.MustParseHexColor(palette.Monster)).Foreground(tcell.ColorWhite).Bold(true),
		hud:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// Render draws the maze, the layered entities and the HUD.
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()

	for y, row := range snap.Grid {
		for x, ch := range row {
			switch world.Tile(ch) {
			case world.TileWall:
				r.screen.SetContent(x, y, ' ', r.wall)
			case world.TileGold:
				r.screen.SetContent(x, y, glyphGold, r.gold)
			default:
				r.screen.SetContent(x, y, ' ', r.floor)
			}
		}
	}

	// Entities layer over the grid; draw order puts the player on top.
	r.screen.SetContent(snap.Exit.X, snap.Exit.Y, glyphExit, r.exit)
	for _, m := range snap.Monsters {
		r.screen.SetContent(m.X, m.Y, glyphMonster, r.monster)
	}
	r.screen.SetContent(snap.Player.X, snap.Player.Y, glyphPlayer, r.player)

	r.renderHUD(snap)
	r.screen.Show()
}

func (r *Renderer) renderHUD(snap game.Snapshot) {
	hud := fmt.Sprintf("Level %d/%d  Steps %d  Gold %d/%d  (%d left in maze)",
		snap.Level, snap.MaxLevel, snap.StepsLeft,
		snap.GoldCollected, snap.GoldNeeded, snap.GoldRemaining)
	r.renderLine(hud, snap.Height+1)

	switch snap.Status {
	case "level_lost":
		r.renderLine("Out of steps! r: retry level  n: skip level  q: quit", snap.Height+2)
	case "game_completed":
		r.renderLine("You completed all levels! g: new game  q: quit", snap.Height+2)
	case "game_over_final":
		r.renderLine("Game over on the final level. g: new game  q: quit", snap.Height+2)
	default:
		r.renderLine("Arrows/WASD: move  1-5: dash speed  .: repeat  r: retry  g: new game  q: quit", snap.Height+2)
	}
}

// renderLine displays a message at the given row.
func (r *Renderer) renderLine(msg string, y int) {
	width, _ := r.screen.Size()
	for i := 0; i < width; i++ {
		r.screen.SetContent(i, y, ' ', tcell.StyleDefault)
	}
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, r.hud)
	}
}
