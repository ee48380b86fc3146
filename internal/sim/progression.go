package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/rockdodge/internal/config"
)

// Phase is the session phase.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SessionState is the health, score and level of a session.
type SessionState struct {
	Health            int
	MaxHealth         int
	Score             int
	Level             int
	AsteroidsSurvived int
	Phase             Phase
}

// IsGameOver reports whether the session has ended.
func (s SessionState) IsGameOver() bool {
	return s.Phase == PhaseGameOver
}

// TickOutcome describes what changed during one Apply.
type TickOutcome struct {
	Damaged   bool
	LeveledUp bool
	GameOver  bool // Set only on the tick that ended the session
}

// Progression owns the session state. Once the phase is PhaseGameOver the
// state never changes again.
type Progression struct {
	state     SessionState
	scoreUnit time.Duration
	base      int
	offset    int
	rule      config.LevelUpRule
}

// NewProgression creates a session at full health on level 1.
func NewProgression(cfg config.GameConfig) *Progression {
	return &Progression{
		state: SessionState{
			Health:    cfg.Session.MaxHealth,
			MaxHealth: cfg.Session.MaxHealth,
			Level:     1,
			Phase:     PhasePlaying,
		},
		scoreUnit: cfg.Session.ScoreUnit,
		base:      cfg.Progression.LevelBase,
		offset:    cfg.Progression.LevelOffset,
		rule:      cfg.Progression.LevelUp,
	}
}

// State returns a copy of the session state.
func (p *Progression) State() SessionState {
	return p.state
}

// Threshold returns the score at which the current level advances.
func (p *Progression) Threshold() int {
	return intPow(p.base, p.state.Level+p.offset)
}

// Apply runs one fast tick of the state machine: damage, the game-over
// check, the score update from elapsed time, then the level-up check.
// It is a no-op after game over.
func (p *Progression) Apply(collided bool, elapsed time.Duration) TickOutcome {
	var out TickOutcome
	if p.state.IsGameOver() {
		return out
	}

	if collided {
		p.state.Health--
		out.Damaged = true
		if p.state.Health <= 0 {
			p.state.Health = 0
			p.state.Phase = PhaseGameOver
			out.GameOver = true
			return out
		}
	}

	if p.scoreUnit > 0 {
		if score := int(elapsed / p.scoreUnit); score > p.state.Score {
			p.state.Score = score
		}
	}

	if p.levelReached() {
		p.state.Level++
		out.LeveledUp = true
	}
	return out
}

// levelReached applies the configured rule. The exact rule relies on the
// score visiting every integer; a score source that can skip values needs
// the reached rule.
func (p *Progression) levelReached() bool {
	threshold := p.Threshold()
	if p.rule == config.LevelUpReached {
		return p.state.Score >= threshold
	}
	return p.state.Score == threshold
}

// RecordSurvivors adds rocks that left the screen without hitting the ship.
func (p *Progression) RecordSurvivors(n int) {
	if n <= 0 || p.state.IsGameOver() {
		return
	}
	p.state.AsteroidsSurvived += n
}

// End moves the session to game over regardless of health.
func (p *Progression) End() {
	p.state.Phase = PhaseGameOver
}

// intPow returns base^exp, saturating at math.MaxInt.
func intPow(base, exp int) int {
	result := 1
	for range exp {
		if base > 1 && result > math.MaxInt/base {
			return math.MaxInt
		}
		result *= base
	}
	return result
}
