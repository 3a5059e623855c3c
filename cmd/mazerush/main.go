// Package main is the terminal client for Maze Rush.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/samdwyer/mazerush/internal/game"
	"github.com/samdwyer/mazerush/internal/gamedata"
	"github.com/samdwyer/mazerush/internal/telemetry"
	"github.com/samdwyer/mazerush/internal/ui"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context) error {
	rules := gamedata.MustLoadRules()
	session := game.NewSession(ctx, game.Config{
		Seed:  seedFromEnv(),
		Rules: rules.Rules,
	})

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()
	renderer := ui.NewRenderer(screen, rules.Palette)

	speed := 1
	lastDir := game.DirRight
	moved := false

	for {
		renderer.Render(session.Snapshot())

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyUp:
				lastDir, moved = game.DirUp, true
			case tcell.KeyDown:
				lastDir, moved = game.DirDown, true
			case tcell.KeyLeft:
				lastDir, moved = game.DirLeft, true
			case tcell.KeyRight:
				lastDir, moved = game.DirRight, true
			case tcell.KeyRune:
				switch r := ev.Rune(); r {
				case 'q', 'Q':
					return nil
				case 'w', 'W':
					lastDir, moved = game.DirUp, true
				case 's', 'S':
					lastDir, moved = game.DirDown, true
				case 'a', 'A':
					lastDir, moved = game.DirLeft, true
				case 'd', 'D':
					lastDir, moved = game.DirRight, true
				case '.':
					// Repeat the previous move, the poor man's auto-run.
					moved = true
				case '1', '2', '3', '4', '5':
					speed = int(r - '0')
				case 'r', 'R':
					session.RestartLevel(ctx)
				case 'g', 'G':
					session.RestartGame(ctx)
				case 'n', 'N':
					session.ForceNextLevel(ctx)
				}
			}

			if moved {
				session.SubmitMove(ctx, lastDir, speed)
				moved = false
			}
		}
	}
}

// seedFromEnv reads MAZERUSH_SEED; 0 (or unset) means a random seed.
func seedFromEnv() int64 {
	raw := os.Getenv("MAZERUSH_SEED")
	if raw == "" {
		return 0
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Warning: ignoring invalid MAZERUSH_SEED %q: %v", raw, err)
		return 0
	}
	return seed
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_MAZERUSH_API_KEY")
	dataset := os.Getenv("HONEYCOMB_MAZERUSH_DATASET")
	if dataset == "" {
		dataset = "mazerush"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
