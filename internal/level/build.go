package level

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerush/internal/gamedata"
	"github.com/samdwyer/mazerush/internal/telemetry"
	"github.com/samdwyer/mazerush/internal/world"
)

// buildRetryCap bounds maze regeneration for pathologically small mazes.
// At the sizes ComputeParams produces the first attempt always succeeds;
// the cap only matters when callers request degenerate dimensions.
const buildRetryCap = 8

// Build generates a maze for the given level and places its entities,
// regenerating the maze when it carves fewer than minFloorCells floors.
// After the retry cap the last maze is used as-is with saturated
// placement, so Build always terminates with a usable layout.
func Build(ctx context.Context, levelIdx int, rules gamedata.Rules, rng world.RNG) (*world.Maze, Params, Layout) {
	tracer := telemetry.Tracer("level")
	ctx, span := tracer.Start(ctx, "level.build")
	defer span.End()

	params := ComputeParams(levelIdx)

	var m *world.Maze
	attempts := 0
	for {
		attempts++
		m = world.NewMaze(params.Width, params.Height, rng)
		m.Generate(ctx)
		if len(m.FloorCells()) >= minFloorCells || attempts >= buildRetryCap {
			break
		}
	}

	layout := PlaceEntities(m, params, rules, rng)

	span.SetAttributes(
		attribute.Int("level.index", params.Level),
		attribute.Int("level.width", m.Width),
		attribute.Int("level.height", m.Height),
		attribute.Int("level.gold_total", len(layout.Gold)),
		attribute.Int("level.monsters", len(layout.Monsters)),
		attribute.Int("level.build_attempts", attempts),
	)

	return m, params, layout
}
