package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/rockdodge/internal/config"
)

// scriptedRand returns queued values, clamped into [0, n).
type scriptedRand struct {
	values []int
	calls  []int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return min(max(v, 0), n-1)
}

// fixedRand always returns the same value, clamped into [0, n).
type fixedRand int

func (f fixedRand) Intn(n int) int {
	return min(int(f), n-1)
}

func newTestSpawner(t *testing.T, rng Rand) *Spawner {
	t.Helper()
	s := NewSpawner(config.DefaultGameConfig().Obstacles, rng)
	if err := s.ConfigureSpawnBounds(900, 0, 700); err != nil {
		t.Fatalf("ConfigureSpawnBounds() failed: %v", err)
	}
	return s
}

func TestSpawnerLevelOneBounds(t *testing.T) {
	s := newTestSpawner(t, rand.New(rand.NewSource(7)))

	for i := 0; i < 2000; i++ {
		o, err := s.Create(1)
		if err != nil {
			t.Fatalf("Create(1) failed: %v", err)
		}
		b := o.Bounds()
		if b.W < 10 || b.W >= 40 {
			t.Fatalf("width %d outside [10, 40)", b.W)
		}
		if b.H < 10 || b.H >= 40 {
			t.Fatalf("height %d outside [10, 40)", b.H)
		}
		if o.Speed() < 1 || o.Speed() >= 4 {
			t.Fatalf("speed %d outside [1, 4)", o.Speed())
		}
		if b.X != 900 {
			t.Fatalf("x = %d, expected spawn column 900", b.X)
		}
		if b.Y < 0 || b.Y >= 700 {
			t.Fatalf("y %d outside [0, 700)", b.Y)
		}
	}
}

func TestSpawnerRanges(t *testing.T) {
	s := newTestSpawner(t, fixedRand(0))

	tests := []struct {
		level int
		size  Range
		speed Range
	}{
		{1, Range{10, 40}, Range{1, 4}},
		{2, Range{15, 45}, Range{2, 6}},  // round(1.5) = 2
		{3, Range{20, 50}, Range{3, 7}},  // round(3.0) = 3
		{4, Range{25, 55}, Range{4, 9}},  // round(4.5) = 5
		{11, Range{60, 90}, Range{11, 19}}, // round(15) = 15
	}

	for _, tc := range tests {
		size, speed, err := s.Ranges(tc.level)
		if err != nil {
			t.Fatalf("Ranges(%d) failed: %v", tc.level, err)
		}
		if size != tc.size {
			t.Errorf("Ranges(%d) size = %+v, expected %+v", tc.level, size, tc.size)
		}
		if speed != tc.speed {
			t.Errorf("Ranges(%d) speed = %+v, expected %+v", tc.level, speed, tc.speed)
		}
	}
}

func TestSpawnerDrawOrder(t *testing.T) {
	rng := &scriptedRand{values: []int{123, 5, 29, 2}}
	s := newTestSpawner(t, rng)

	o, err := s.Create(1)
	if err != nil {
		t.Fatalf("Create(1) failed: %v", err)
	}

	b := o.Bounds()
	if b.Y != 123 || b.W != 15 || b.H != 39 || o.Speed() != 3 {
		t.Errorf("obstacle = %+v speed %d, expected y=123 w=15 h=39 speed=3", b, o.Speed())
	}
	// y, width, height, speed
	wantCalls := []int{700, 30, 30, 3}
	if len(rng.calls) != len(wantCalls) {
		t.Fatalf("Intn called %d times, expected %d", len(rng.calls), len(wantCalls))
	}
	for i, n := range wantCalls {
		if rng.calls[i] != n {
			t.Errorf("call %d: Intn(%d), expected Intn(%d)", i, rng.calls[i], n)
		}
	}
}

func TestSpawnerUpperBoundExclusive(t *testing.T) {
	s := newTestSpawner(t, fixedRand(1<<30))

	o, err := s.Create(1)
	if err != nil {
		t.Fatalf("Create(1) failed: %v", err)
	}
	b := o.Bounds()
	if b.Y != 699 || b.W != 39 || b.H != 39 || o.Speed() != 3 {
		t.Errorf("max draws gave %+v speed %d, expected y=699 w=h=39 speed=3", b, o.Speed())
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a := newTestSpawner(t, rand.New(rand.NewSource(99)))
	b := newTestSpawner(t, rand.New(rand.NewSource(99)))

	for i := 0; i < 50; i++ {
		level := 1 + i%5
		oa, errA := a.Create(level)
		ob, errB := b.Create(level)
		if errA != nil || errB != nil {
			t.Fatalf("Create(%d) failed: %v, %v", level, errA, errB)
		}
		if *oa != *ob {
			t.Fatalf("draw %d differs: %+v vs %+v", i, *oa, *ob)
		}
	}
}

func TestSpawnerErrors(t *testing.T) {
	s := NewSpawner(config.DefaultGameConfig().Obstacles, fixedRand(0))

	if _, err := s.Create(1); !errors.Is(err, ErrSpawnBoundsNotSet) {
		t.Errorf("Create() before bounds: error = %v, expected ErrSpawnBoundsNotSet", err)
	}
	if err := s.ConfigureSpawnBounds(900, 700, 700); !errors.Is(err, ErrInvalidSpawnRange) {
		t.Errorf("ConfigureSpawnBounds(yMin == yMax): error = %v, expected ErrInvalidSpawnRange", err)
	}
	if err := s.ConfigureSpawnBounds(900, 10, 5); !errors.Is(err, ErrInvalidSpawnRange) {
		t.Errorf("ConfigureSpawnBounds(yMin > yMax): error = %v, expected ErrInvalidSpawnRange", err)
	}
	if err := s.ConfigureSpawnBounds(900, 0, 700); err != nil {
		t.Fatalf("ConfigureSpawnBounds() failed: %v", err)
	}
	if _, err := s.Create(0); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Create(0): error = %v, expected ErrInvalidLevel", err)
	}
}

func TestSpawnerEmptyRangeFromConfig(t *testing.T) {
	cfg := config.DefaultGameConfig().Obstacles
	cfg.MaxSize = cfg.MinSize
	s := NewSpawner(cfg, fixedRand(0))
	if err := s.ConfigureSpawnBounds(900, 0, 700); err != nil {
		t.Fatalf("ConfigureSpawnBounds() failed: %v", err)
	}

	if _, err := s.Create(1); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("Create() with empty size range: error = %v, expected ErrEmptyRange", err)
	}
}
