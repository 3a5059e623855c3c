package game

import "github.com/samdwyer/mazerush/internal/gamedata"

// Config holds session configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Rules tunes the gameplay constants. A zero value falls back to
	// gamedata.DefaultRules.
	Rules gamedata.Rules
}
