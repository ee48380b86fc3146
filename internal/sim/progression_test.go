package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/rockdodge/internal/config"
)

func newTestProgression(mutate func(*config.GameConfig)) *Progression {
	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewProgression(cfg)
}

func TestProgressionInitialState(t *testing.T) {
	st := newTestProgression(nil).State()

	if st.Health != 150 || st.MaxHealth != 150 {
		t.Errorf("health = %d/%d, expected 150/150", st.Health, st.MaxHealth)
	}
	if st.Level != 1 || st.Score != 0 || st.AsteroidsSurvived != 0 {
		t.Errorf("unexpected initial state %+v", st)
	}
	if st.Phase != PhasePlaying || st.IsGameOver() {
		t.Error("session should start playing")
	}
}

func TestProgressionLevelUpAtThreshold(t *testing.T) {
	p := newTestProgression(nil)

	if p.Threshold() != 27 {
		t.Fatalf("Threshold() = %d, expected 27", p.Threshold())
	}

	for score := 1; score <= 100; score++ {
		out := p.Apply(false, time.Duration(score)*time.Second)
		st := p.State()

		switch {
		case score < 27:
			if st.Level != 1 || out.LeveledUp {
				t.Fatalf("score %d: level = %d, expected 1", score, st.Level)
			}
		case score == 27:
			if st.Level != 2 || !out.LeveledUp {
				t.Fatalf("score 27: level = %d, expected 2", st.Level)
			}
		case score < 81:
			if st.Level != 2 || out.LeveledUp {
				t.Fatalf("score %d: level = %d, expected 2", score, st.Level)
			}
		default:
			if st.Level != 3 {
				t.Fatalf("score %d: level = %d, expected 3", score, st.Level)
			}
		}
	}
}

func TestProgressionExactRuleRepeatedScore(t *testing.T) {
	p := newTestProgression(nil)

	// Many fast ticks land on the same whole second.
	for i := 0; i < 60; i++ {
		p.Apply(false, 27*time.Second+time.Duration(i)*time.Millisecond)
	}
	if st := p.State(); st.Level != 2 {
		t.Errorf("level = %d, expected exactly one level-up", st.Level)
	}
}

func TestProgressionExactRuleSkippedScore(t *testing.T) {
	p := newTestProgression(nil)

	p.Apply(false, 26*time.Second)
	p.Apply(false, 28*time.Second)
	if st := p.State(); st.Level != 1 {
		t.Errorf("exact rule should not fire when 27 is skipped, level = %d", st.Level)
	}
}

func TestProgressionReachedRule(t *testing.T) {
	p := newTestProgression(func(c *config.GameConfig) {
		c.Progression.LevelUp = config.LevelUpReached
	})

	p.Apply(false, 26*time.Second)
	out := p.Apply(false, 28*time.Second)
	if st := p.State(); st.Level != 2 || !out.LeveledUp {
		t.Fatalf("reached rule should fire past the threshold, level = %d", st.Level)
	}

	// Same score again must not advance another level.
	p.Apply(false, 28*time.Second)
	if st := p.State(); st.Level != 2 {
		t.Errorf("level = %d, expected 2", st.Level)
	}

	// A big jump advances one level per tick.
	p.Apply(false, 300*time.Second)
	if st := p.State(); st.Level != 3 {
		t.Errorf("level = %d, expected 3 after one tick", st.Level)
	}
	p.Apply(false, 300*time.Second)
	if st := p.State(); st.Level != 4 {
		t.Errorf("level = %d, expected 4 after a second tick", st.Level)
	}
}

func TestProgressionScoreMonotonic(t *testing.T) {
	p := newTestProgression(nil)

	p.Apply(false, 10*time.Second)
	p.Apply(false, 3*time.Second)
	if st := p.State(); st.Score != 10 {
		t.Errorf("score regressed to %d", st.Score)
	}

	p.Apply(false, 10*time.Second+999*time.Millisecond)
	if st := p.State(); st.Score != 10 {
		t.Errorf("score = %d, expected whole units only", st.Score)
	}
}

func TestProgressionHealthToGameOver(t *testing.T) {
	const maxHealth = 150
	p := newTestProgression(nil)

	for tick := 1; tick <= maxHealth; tick++ {
		out := p.Apply(true, time.Duration(tick)*time.Millisecond)
		st := p.State()

		if st.Health != maxHealth-tick {
			t.Fatalf("tick %d: health = %d, expected %d", tick, st.Health, maxHealth-tick)
		}
		if tick < maxHealth && (st.IsGameOver() || out.GameOver) {
			t.Fatalf("tick %d: game over too early", tick)
		}
		if tick == maxHealth && (!st.IsGameOver() || !out.GameOver) {
			t.Fatalf("tick %d: expected game over", tick)
		}
	}

	final := p.State()
	for i := 0; i < 10; i++ {
		out := p.Apply(true, time.Hour)
		p.RecordSurvivors(5)
		if out != (TickOutcome{}) {
			t.Fatalf("Apply() after game over reported %+v", out)
		}
	}
	if p.State() != final {
		t.Errorf("state changed after game over: %+v -> %+v", final, p.State())
	}
}

func TestProgressionRecordSurvivors(t *testing.T) {
	p := newTestProgression(nil)

	p.RecordSurvivors(2)
	p.RecordSurvivors(0)
	p.RecordSurvivors(-3)
	p.RecordSurvivors(1)
	if st := p.State(); st.AsteroidsSurvived != 3 {
		t.Errorf("AsteroidsSurvived = %d, expected 3", st.AsteroidsSurvived)
	}
}

func TestProgressionEnd(t *testing.T) {
	p := newTestProgression(nil)
	p.Apply(false, 5*time.Second)
	p.End()

	st := p.State()
	if !st.IsGameOver() || st.Health != 150 {
		t.Errorf("End() should stop the session at full health, got %+v", st)
	}
	p.Apply(false, 50*time.Second)
	if p.State().Score != 5 {
		t.Error("score should freeze after End()")
	}
}

func TestIntPow(t *testing.T) {
	if intPow(3, 3) != 27 || intPow(3, 4) != 81 || intPow(2, 0) != 1 {
		t.Error("intPow returned an unexpected value")
	}
	if got := intPow(3, 1000); got <= 0 {
		t.Errorf("intPow should saturate instead of overflowing, got %d", got)
	}
}
