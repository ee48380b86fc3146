package sim

import (
	"time"

	"github.com/vovakirdan/rockdodge/internal/core"
)

// ShipView is the read-only drawing data for the ship.
type ShipView struct {
	Bounds     core.Rect
	Silhouette [3]core.Point
	Direction  core.Direction
}

// ObstacleView is the read-only drawing data for one rock.
type ObstacleView struct {
	Bounds core.Rect
	Speed  int
}

// Ellipse returns the silhouette inscribed in the bounding box.
func (v ObstacleView) Ellipse() (cx, cy, rx, ry float64) {
	rx = float64(v.Bounds.W) / 2
	ry = float64(v.Bounds.H) / 2
	return float64(v.Bounds.X) + rx, float64(v.Bounds.Y) + ry, rx, ry
}

// Snapshot captures the complete session for rendering, replay checks and
// reports. It shares no memory with the driver.
type Snapshot struct {
	Health            int
	MaxHealth         int
	Score             int
	Level             int
	AsteroidsSurvived int
	Phase             Phase
	IsGameOver        bool
	Paused            bool
	Running           bool

	Elapsed   time.Duration
	FastTicks uint64
	Spawned   uint64 // Rocks created, including the one placed at Start

	PlayArea  core.Rect
	Ship      ShipView
	Obstacles []ObstacleView
}

// HealthPercent returns health as a whole percentage of max health.
func (s Snapshot) HealthPercent() int {
	if s.MaxHealth <= 0 {
		return 0
	}
	return s.Health * 100 / s.MaxHealth
}

// Snapshot returns the current state. It is safe to keep after later ticks.
func (d *Driver) Snapshot() Snapshot {
	st := d.prog.State()
	snap := Snapshot{
		Health:            st.Health,
		MaxHealth:         st.MaxHealth,
		Score:             st.Score,
		Level:             st.Level,
		AsteroidsSurvived: st.AsteroidsSurvived,
		Phase:             st.Phase,
		IsGameOver:        st.IsGameOver(),
		Paused:            d.paused,
		Running:           d.running,
		Elapsed:           d.now - d.startedAt,
		FastTicks:         d.fastTicks,
		Spawned:           d.spawned,
		PlayArea:          d.playArea,
		Obstacles:         make([]ObstacleView, 0, d.field.Len()),
	}

	if d.ship != nil {
		ship := d.ship.Ship()
		snap.Ship = ShipView{
			Bounds:     ship.Bounds(),
			Silhouette: ship.Silhouette(),
			Direction:  ship.Direction(),
		}
	}
	for o := range d.field.All() {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{Bounds: o.Bounds(), Speed: o.Speed()})
	}
	return snap
}
