package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerush/internal/gamedata"
	"github.com/samdwyer/mazerush/internal/level"
	"github.com/samdwyer/mazerush/internal/telemetry"
)

// Session owns the current level and the level index, and routes every
// player intent through the turn engine. It holds no game rules of its
// own beyond the win/loss/advance policy. A session is exclusively
// owned by a single control loop; its methods are not safe for
// concurrent use.
type Session struct {
	id     string
	rules  gamedata.Rules
	rng    *rand.Rand
	level  int
	state  *LevelState
	status Status
}

// NewSession starts a new game at level 1.
func NewSession(ctx context.Context, cfg Config) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rules := cfg.Rules
	if rules.Validate() != nil {
		rules = gamedata.DefaultRules()
	}

	s := &Session{
		id:     uuid.NewString(),
		rules:  rules,
		rng:    rand.New(rand.NewSource(seed)),
		level:  1,
		status: StatusActive,
	}
	s.state = s.buildLevel(ctx)

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.new")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int64("session.seed", seed),
	)
	span.End()

	return s
}

// SubmitMove resolves one player intent: the dash, the monster turn,
// then win/loss evaluation and any level transition. In a terminal or
// lost state it is a no-op returning the unchanged snapshot and no
// events.
func (s *Session) SubmitMove(ctx context.Context, dir Direction, speed int) (Snapshot, []Event) {
	if s.status != StatusActive {
		return s.Snapshot(), nil
	}

	st := s.state
	events := st.applyMove(dir, speed, s.rules, s.rng)

	switch {
	case st.Player.Pos == st.Exit && st.Player.Gold >= st.GoldNeeded:
		events = append(events, Event{Type: EventLevelWon})
		if s.level >= level.MaxLevel {
			s.status = StatusGameCompleted
			events = append(events, Event{Type: EventGameCompleted})
		} else {
			s.level++
			s.state = s.buildLevel(ctx)
		}

	case st.StepsLeft == 0:
		events = append(events, Event{Type: EventLevelLost})
		if s.level >= level.MaxLevel {
			s.status = StatusGameOverFinal
			events = append(events, Event{Type: EventGameOverFinal})
		} else {
			s.status = StatusLevelLost
		}
	}

	return s.Snapshot(), events
}

// RestartLevel rebuilds the current level with a fresh step budget.
// Terminal states are unaffected; only RestartGame exits those.
func (s *Session) RestartLevel(ctx context.Context) Snapshot {
	if s.status.Terminal() {
		return s.Snapshot()
	}
	s.state = s.buildLevel(ctx)
	s.status = StatusActive
	return s.Snapshot()
}

// RestartGame starts over at level 1, clearing any terminal state.
func (s *Session) RestartGame(ctx context.Context) Snapshot {
	s.level = 1
	s.state = s.buildLevel(ctx)
	s.status = StatusActive
	return s.Snapshot()
}

// ForceNextLevel skips past a lost non-final level without clearing it.
// In any other state it is a no-op.
func (s *Session) ForceNextLevel(ctx context.Context) Snapshot {
	if s.status != StatusLevelLost || s.level >= level.MaxLevel {
		return s.Snapshot()
	}
	s.level++
	s.state = s.buildLevel(ctx)
	s.status = StatusActive
	return s.Snapshot()
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

// Level returns the current level index.
func (s *Session) Level() int {
	return s.level
}

// Status returns the session's state-machine status.
func (s *Session) Status() Status {
	return s.status
}

func (s *Session) buildLevel(ctx context.Context) *LevelState {
	m, params, layout := level.Build(ctx, s.level, s.rules, s.rng)
	return newLevelState(m, params, layout)
}
