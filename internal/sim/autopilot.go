package sim

import "github.com/vovakirdan/rockdodge/internal/core"

var cardinals = [...]core.Direction{core.DirNone, core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

// Autopilot steers a headless session by picking a random cardinal
// direction (or none) every few fast ticks.
type Autopilot struct {
	rng   Rand
	every uint64
	dir   core.Direction
}

// NewAutopilot creates an autopilot that changes course every `every` ticks.
func NewAutopilot(rng Rand, every int) *Autopilot {
	return &Autopilot{rng: rng, every: uint64(max(every, 1))}
}

// Steer applies the autopilot's choice for the snapshot's tick to d.
func (a *Autopilot) Steer(d *Driver, snap Snapshot) {
	if snap.FastTicks%a.every != 0 {
		return
	}
	a.dir = cardinals[a.rng.Intn(len(cardinals))]
	d.SetPlayerDirection(a.dir)
}

// Direction returns the most recent choice.
func (a *Autopilot) Direction() core.Direction {
	return a.dir
}
