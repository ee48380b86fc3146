package sim

import "iter"

// Detector tests the ship against the rocks. It has no side effects.
type Detector struct{}

// Check reports whether the ship overlaps any rock. It stops at the first hit.
func (Detector) Check(ship Entity, obstacles iter.Seq[Obstacle]) bool {
	for o := range obstacles {
		if ship.Intersects(o) {
			return true
		}
	}
	return false
}

// Hits counts the rocks overlapping the ship.
func (Detector) Hits(ship Entity, obstacles iter.Seq[Obstacle]) int {
	n := 0
	for o := range obstacles {
		if ship.Intersects(o) {
			n++
		}
	}
	return n
}
