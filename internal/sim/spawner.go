package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rockdodge/internal/config"
)

// Rand is the randomness the spawner draws from. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n). n is always positive.
	Intn(n int) int
}

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min, Max int
}

// Empty reports whether the range holds no values.
func (r Range) Empty() bool {
	return r.Max <= r.Min
}

// Spawner creates rocks at the right edge of the play area with sizes and
// speeds that scale with the level.
type Spawner struct {
	rng        Rand
	cfg        config.ObstacleConfig
	x          int
	y          Range
	configured bool
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.ObstacleConfig, rng Rand) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// ConfigureSpawnBounds sets the spawn column and the vertical range [yMin, yMax).
func (s *Spawner) ConfigureSpawnBounds(x, yMin, yMax int) error {
	if yMin >= yMax {
		return fmt.Errorf("%w: y in [%d, %d)", ErrInvalidSpawnRange, yMin, yMax)
	}
	s.x = x
	s.y = Range{Min: yMin, Max: yMax}
	s.configured = true
	return nil
}

// Ranges returns the size and speed ranges used at the given level.
func (s *Spawner) Ranges(level int) (size, speed Range, err error) {
	if level < 1 {
		return Range{}, Range{}, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	b := level - 1
	size = Range{
		Min: s.cfg.MinSize + s.cfg.SizeGrowth*b,
		Max: s.cfg.MaxSize + s.cfg.SizeGrowth*b,
	}
	speed = Range{
		Min: s.cfg.MinSpeed + s.cfg.SpeedGrowth*b,
		Max: s.cfg.MaxSpeed + int(math.Round(s.cfg.MaxSpeedGrowth*float64(b))),
	}
	if size.Empty() || size.Min < 1 {
		return size, speed, fmt.Errorf("%w: size [%d, %d) at level %d", ErrEmptyRange, size.Min, size.Max, level)
	}
	if speed.Empty() || speed.Min < 1 {
		return size, speed, fmt.Errorf("%w: speed [%d, %d) at level %d", ErrEmptyRange, speed.Min, speed.Max, level)
	}
	return size, speed, nil
}

// Create returns a new rock for the given level.
func (s *Spawner) Create(level int) (*Obstacle, error) {
	if !s.configured {
		return nil, ErrSpawnBoundsNotSet
	}
	size, speed, err := s.Ranges(level)
	if err != nil {
		return nil, err
	}

	y := s.draw(s.y)
	w := s.draw(size)
	h := s.draw(size)
	v := s.draw(speed)
	return NewObstacle(s.x, y, w, h, v), nil
}

func (s *Spawner) draw(r Range) int {
	return r.Min + s.rng.Intn(r.Max-r.Min)
}
