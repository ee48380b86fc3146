package sim

import (
	"iter"
	"slices"
	"testing"

	"github.com/vovakirdan/rockdodge/internal/core"
)

func seqOf(rocks ...*Obstacle) iter.Seq[Obstacle] {
	return func(yield func(Obstacle) bool) {
		for _, o := range rocks {
			if !yield(*o) {
				return
			}
		}
	}
}

func shipAt(x, y int) Ship {
	return NewShipController(x, y, testShipConfig()).Ship()
}

func TestDetectorCheck(t *testing.T) {
	ship := shipAt(100, 100) // bbox [100,120] x [100,120]

	tests := []struct {
		name     string
		rocks    []*Obstacle
		expected bool
	}{
		{"no rocks", nil, false},
		{"overlapping", []*Obstacle{NewObstacle(110, 110, 20, 20, 1)}, true},
		{"touching right edge", []*Obstacle{NewObstacle(120, 100, 10, 10, 1)}, true},
		{"touching bottom edge", []*Obstacle{NewObstacle(100, 120, 10, 10, 1)}, true},
		{"touching left edge", []*Obstacle{NewObstacle(90, 105, 10, 10, 1)}, true},
		{"one unit right", []*Obstacle{NewObstacle(121, 100, 10, 10, 1)}, false},
		{"one unit above", []*Obstacle{NewObstacle(100, 89, 10, 10, 1)}, false},
		{
			name: "one of many",
			rocks: []*Obstacle{
				NewObstacle(500, 500, 10, 10, 1),
				NewObstacle(0, 0, 10, 10, 1),
				NewObstacle(115, 95, 30, 10, 1),
			},
			expected: true,
		},
	}

	var det Detector
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := det.Check(ship, seqOf(tc.rocks...)); got != tc.expected {
				t.Errorf("Check() = %v, expected %v", got, tc.expected)
			}

			reversed := slices.Clone(tc.rocks)
			slices.Reverse(reversed)
			if got := det.Check(ship, seqOf(reversed...)); got != tc.expected {
				t.Errorf("Check() with reversed order = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDetectorShortCircuits(t *testing.T) {
	ship := shipAt(100, 100)
	visited := 0
	seq := func(yield func(Obstacle) bool) {
		rocks := []*Obstacle{
			NewObstacle(100, 100, 10, 10, 1),
			NewObstacle(105, 105, 10, 10, 1),
			NewObstacle(110, 110, 10, 10, 1),
		}
		for _, o := range rocks {
			visited++
			if !yield(*o) {
				return
			}
		}
	}

	if !(Detector{}).Check(ship, seq) {
		t.Fatal("Check() should report the hit")
	}
	if visited != 1 {
		t.Errorf("Check() visited %d rocks, expected to stop after the first hit", visited)
	}
	if hits := (Detector{}).Hits(ship, seq); hits != 3 {
		t.Errorf("Hits() = %d, expected 3", hits)
	}
}

func TestEntityIntersectsSymmetric(t *testing.T) {
	ship := shipAt(0, 0)
	rock := NewObstacle(20, 20, 5, 5, 1)

	var a, b Entity = ship, *rock
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("corner contact should intersect both ways")
	}
	if ship.Bounds() != core.NewRect(0, 0, 20, 20) {
		t.Errorf("ship bounds = %+v", ship.Bounds())
	}
}
