// Package main runs the websocket snapshot server for Maze Rush. A
// browser (or any other renderer) connects to /ws, receives JSON
// snapshots and submits move intents.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazerush/internal/game"
	"github.com/samdwyer/mazerush/internal/gamedata"
	"github.com/samdwyer/mazerush/internal/server"
	"github.com/samdwyer/mazerush/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Server will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	rules := gamedata.MustLoadRules()
	handler := server.NewHandler(game.Config{
		Seed:  seedFromEnv(),
		Rules: rules.Rules,
	})
	http.Handle("/ws", handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

// seedFromEnv reads MAZERUSH_SEED; 0 (or unset) seeds each session from
// the clock.
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
