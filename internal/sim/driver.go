package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rockdodge/internal/config"
	"github.com/vovakirdan/rockdodge/internal/core"
)

// Driver runs a session on two periodic triggers sharing one manual clock:
// the fast tick moves, collides and scores; the slow tick spawns rocks.
// Callers feed time through Advance from a single goroutine.
type Driver struct {
	cfg      config.GameConfig
	rng      Rand
	logger   *log.Logger
	onFrame  func(Snapshot)
	detector Detector

	ship    *ShipController
	spawner *Spawner
	field   *Field
	prog    *Progression

	pendingDir core.Direction
	playArea   core.Rect

	started bool
	running bool
	paused  bool

	fastPeriod time.Duration
	slowPeriod time.Duration
	startedAt  time.Duration
	now        time.Duration
	nextFast   time.Duration
	nextSlow   time.Duration
	fastTicks  uint64
	spawned    uint64
}

// Option configures a Driver.
type Option func(*Driver)

// WithRand sets the random source used for spawning.
func WithRand(rng Rand) Option {
	return func(d *Driver) {
		d.rng = rng
	}
}

// WithSeed seeds a private random source for spawning.
func WithSeed(seed int64) Option {
	return func(d *Driver) {
		d.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithFrameHook registers fn to receive a snapshot after every fast tick.
func WithFrameHook(fn func(Snapshot)) Option {
	return func(d *Driver) {
		d.onFrame = fn
	}
}

// New creates a driver for a validated config. Nothing moves until Start.
func New(cfg config.GameConfig, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Driver{
		cfg:        cfg,
		logger:     log.New(io.Discard),
		field:      NewField(),
		prog:       NewProgression(cfg),
		fastPeriod: cfg.Timing.FastPeriod(),
		slowPeriod: cfg.Timing.SpawnInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d.spawner = NewSpawner(cfg.Obstacles, d.rng)
	return d, nil
}

// Start installs the movement and spawn bounds for a width x height play
// area, places the ship, spawns the first rock and arms both triggers.
func (d *Driver) Start(width, height int) error {
	if d.started {
		return ErrAlreadyStarted
	}
	if d.prog.State().IsGameOver() {
		return ErrSessionOver
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidPlayArea, width, height)
	}

	area := core.NewRect(0, 0, width, height)
	ship := NewShipController(d.cfg.Ship.SpawnX, height/d.cfg.Ship.SpawnYDivisor, d.cfg.Ship)
	if err := ship.SetMovementBounds(area); err != nil {
		return fmt.Errorf("sim: cannot start: %w", err)
	}
	if err := d.spawner.ConfigureSpawnBounds(width, 0, height); err != nil {
		return fmt.Errorf("sim: cannot start: %w", err)
	}
	ship.SetDirection(d.pendingDir)

	d.ship = ship
	d.playArea = area
	d.started = true
	d.running = true
	d.startedAt = d.now
	d.nextFast = d.now + d.fastPeriod
	d.nextSlow = d.now + d.slowPeriod

	d.logger.Info("session started",
		"width", width, "height", height,
		"max_health", d.cfg.Session.MaxHealth,
		"fast_period", d.fastPeriod, "spawn_interval", d.slowPeriod)

	if err := d.spawn(); err != nil {
		d.halt()
		return err
	}
	return nil
}

// Advance moves the clock forward by dt, firing every trigger that falls due
// in timestamp order. When both are due at the same instant the fast tick
// runs first. It is a no-op while paused or after the session has stopped.
func (d *Driver) Advance(dt time.Duration) error {
	if !d.started {
		return ErrNotStarted
	}
	if dt < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDuration, dt)
	}
	if !d.running || d.paused {
		return nil
	}

	target := d.now + dt
	for d.running {
		next := min(d.nextFast, d.nextSlow)
		if next > target {
			break
		}
		d.now = next

		if d.nextFast == next {
			d.nextFast += d.fastPeriod
			if err := d.fastTick(); err != nil {
				d.halt()
				return err
			}
		}
		if d.running && d.nextSlow == next {
			d.nextSlow += d.slowPeriod
			if err := d.spawn(); err != nil {
				d.halt()
				return err
			}
		}
	}
	if d.running {
		d.now = target
	}
	return nil
}

func (d *Driver) fastTick() error {
	if _, err := d.ship.Move(); err != nil {
		return fmt.Errorf("sim: fast tick %d: %w", d.fastTicks+1, err)
	}

	d.prog.RecordSurvivors(d.field.Advance())

	ship := d.ship.Ship()
	hit := d.detector.Check(ship, d.field.All())
	out := d.prog.Apply(hit, d.now-d.startedAt)
	d.fastTicks++

	if hit && d.logger.GetLevel() <= log.DebugLevel {
		d.logger.Debug("collision",
			"tick", d.fastTicks,
			"hits", d.detector.Hits(ship, d.field.All()),
			"health", d.prog.State().Health)
	}
	if out.LeveledUp {
		st := d.prog.State()
		d.logger.Info("level up", "level", st.Level, "score", st.Score, "next", d.prog.Threshold())
	}
	if out.GameOver {
		d.halt()
		st := d.prog.State()
		d.logger.Info("game over",
			"score", st.Score, "level", st.Level,
			"survived", st.AsteroidsSurvived, "elapsed", d.now-d.startedAt)
	}

	if d.onFrame != nil {
		d.onFrame(d.Snapshot())
	}
	return nil
}

func (d *Driver) spawn() error {
	level := d.prog.State().Level
	o, err := d.spawner.Create(level)
	if err != nil {
		return fmt.Errorf("sim: spawn at level %d: %w", level, err)
	}
	if err := d.field.Add(o); err != nil {
		return fmt.Errorf("sim: spawn at level %d: %w", level, err)
	}
	d.spawned++
	return nil
}

// halt stops both triggers together.
func (d *Driver) halt() {
	d.running = false
	d.paused = false
}

// SetPlayerDirection sets the ship's movement intent. Calls before Start are
// applied when the ship is created.
func (d *Driver) SetPlayerDirection(dir core.Direction) {
	if d.ship == nil {
		d.pendingDir = dir
		return
	}
	if !d.running {
		return
	}
	d.ship.SetDirection(dir)
}

// Stop halts both triggers and ends the session. Calling it again is a no-op.
func (d *Driver) Stop() {
	if d.prog.State().IsGameOver() && !d.running {
		return
	}
	d.halt()
	d.prog.End()
	d.logger.Info("session stopped", "score", d.prog.State().Score, "ticks", d.fastTicks)
}

// Pause suspends both triggers. Time passed to Advance while paused is dropped.
func (d *Driver) Pause() {
	if d.running {
		d.paused = true
	}
}

// Resume re-arms both triggers after Pause.
func (d *Driver) Resume() {
	d.paused = false
}

// TogglePause flips between paused and running.
func (d *Driver) TogglePause() {
	if d.paused {
		d.Resume()
	} else {
		d.Pause()
	}
}

// Paused reports whether the triggers are suspended.
func (d *Driver) Paused() bool {
	return d.paused
}

// Running reports whether the session has started and not yet stopped.
func (d *Driver) Running() bool {
	return d.running
}

// FastPeriod returns the interval between fast ticks.
func (d *Driver) FastPeriod() time.Duration {
	return d.fastPeriod
}
