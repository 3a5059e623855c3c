package game

import (
	"github.com/samdwyer/mazerush/internal/level"
	"github.com/samdwyer/mazerush/internal/world"
)

// Snapshot is the read-only view of a session handed to renderers and
// input sources. The grid is copied; mutating a snapshot never touches
// the live state.
type Snapshot struct {
	SessionID     string        `json:"sessionId"`
	Level         int           `json:"level"`
	MaxLevel      int           `json:"maxLevel"`
	Width         int           `json:"width"`
	Height        int           `json:"height"`
	Grid          []string      `json:"grid"`
	Player        world.Point   `json:"player"`
	Exit          world.Point   `json:"exit"`
	Monsters      []world.Point `json:"monsters"`
	GoldCollected int           `json:"goldCollected"`
	GoldNeeded    int           `json:"goldNeeded"`
	GoldRemaining int           `json:"goldRemaining"`
	StepsLeft     int           `json:"stepsLeft"`
	Status        string        `json:"status"`
	Terminal      bool          `json:"terminal"`
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	st := s.state
	monsters := make([]world.Point, len(st.Monsters))
	for i, m := range st.Monsters {
		monsters[i] = m.Pos
	}

	return Snapshot{
		SessionID:     s.id,
		Level:         s.level,
		MaxLevel:      level.MaxLevel,
		Width:         st.Maze.Width,
		Height:        st.Maze.Height,
		Grid:          st.Maze.Rows(),
		Player:        st.Player.Pos,
		Exit:          st.Exit,
		Monsters:      monsters,
		GoldCollected: st.Player.Gold,
		GoldNeeded:    st.GoldNeeded,
		GoldRemaining: st.Maze.CountGold(),
		StepsLeft:     st.StepsLeft,
		Status:        s.status.String(),
		Terminal:      s.status.Terminal(),
	}
}
