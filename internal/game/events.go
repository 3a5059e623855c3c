package game

import "encoding/json"

// EventType classifies what happened while resolving a turn.
type EventType int

const (
	// EventGoldCollected - the player picked up gold; Amount carries
	// the credited total for the move.
	EventGoldCollected EventType = iota
	// EventMonsterHit - a monster landed on the player; Amount carries
	// the gold penalty applied.
	EventMonsterHit
	// EventLevelWon - the player reached the exit with enough gold.
	EventLevelWon
	// EventLevelLost - the step budget ran out before winning.
	EventLevelLost
	// EventGameCompleted - the final level was won.
	EventGameCompleted
	// EventGameOverFinal - the final level was lost.
	EventGameOverFinal
)

// String returns the event type's wire name.
func (t EventType) String() string {
	switch t {
	case EventGoldCollected:
		return "gold_collected"
	case EventMonsterHit:
		return "monster_hit"
	case EventLevelWon:
		return "level_won"
	case EventLevelLost:
		return "level_lost"
	case EventGameCompleted:
		return "game_completed"
	case EventGameOverFinal:
		return "game_over_final"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by the turn engine.
type Event struct {
	Type   EventType
	Amount int
}

// MarshalJSON serializes the event with its wire name instead of the
// numeric type.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Amount int    `json:"amount,omitempty"`
	}{Type: e.Type.String(), Amount: e.Amount})
}
