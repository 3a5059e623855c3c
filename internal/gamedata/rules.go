package gamedata

import (
	"errors"
	"fmt"
)

// Rules holds the tunable gameplay constants. The upstream variants of
// this game forked whole files to change these values; here they are
// data instead, loaded from the embedded rules.json.
type Rules struct {
	GoldPerPickup       int `json:"goldPerPickup"`       // Gold credited per collected piece
	MonsterPenalty      int `json:"monsterPenalty"`      // Gold lost when a monster lands on the player
	ExitDistanceDivisor int `json:"exitDistanceDivisor"` // Min start-exit distance is width / this
	MaxDashSpeed        int `json:"maxDashSpeed"`        // Upper clamp for the per-move speed multiplier
}

// Palette holds the render colors as hex strings. The renderer converts
// them with ParseHexColor.
type Palette struct {
	Background string `json:"background"`
	Wall       string `json:"wall"`
	Floor      string `json:"floor"`
	Gold       string `json:"gold"`
	Player     string `json:"player"`
	Exit       string `json:"exit"`
	Monster    string `json:"monster"`
}

// RulesFile represents the structure of rules.json.
type RulesFile struct {
	Rules   Rules   `json:"rules"`
	Palette Palette `json:"palette"`
}

// Validate checks that the loaded rules are usable.
func (r Rules) Validate() error {
	if r.GoldPerPickup < 1 {
		return fmt.Errorf("goldPerPickup must be >= 1, got %d", r.GoldPerPickup)
	}
	if r.MonsterPenalty < 0 {
		return fmt.Errorf("monsterPenalty must be >= 0, got %d", r.MonsterPenalty)
	}
	if r.ExitDistanceDivisor < 1 {
		return fmt.Errorf("exitDistanceDivisor must be >= 1, got %d", r.ExitDistanceDivisor)
	}
	if r.MaxDashSpeed < 1 {
		return fmt.Errorf("maxDashSpeed must be >= 1, got %d", r.MaxDashSpeed)
	}
	return nil
}

// LoadRules loads the rules and palette from the embedded rules.json.
func LoadRules() (RulesFile, error) {
	file, err := Load[RulesFile]("rules.json")
	if err != nil {
		return RulesFile{}, err
	}
	if err := file.Rules.Validate(); err != nil {
		return RulesFile{}, errors.Join(errors.New("invalid rules.json"), err)
	}
	return file, nil
}

// MustLoadRules loads the rules file, panicking on error.
func MustLoadRules() RulesFile {
	file, err := LoadRules()
	if err != nil {
		panic(err)
	}
	return file
}

// DefaultRules returns the canonical rule set, matching rules.json.
// Tests use it to avoid depending on the embedded file.
func DefaultRules() Rules {
	return Rules{
		GoldPerPickup:       1,
		MonsterPenalty:      1,
		ExitDistanceDivisor: 2,
		MaxDashSpeed:        5,
	}
}
