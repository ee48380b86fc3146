// Package sim implements the rockdodge simulation core: the player ship,
// rock spawning and movement, collision detection and the health, score and
// level progression, all driven by a manual clock.
//
// Everything here is single-threaded. The Driver mutates state only on tick
// boundaries and hands readers immutable Snapshots.
package sim

import (
	"github.com/vovakirdan/rockdodge/internal/core"
)

// Entity is anything with a bounding box that can collide.
type Entity interface {
	Bounds() core.Rect
	Intersects(other Entity) bool
}

func boundsOverlap(a, b Entity) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// Obstacle is a rock travelling left at a constant speed.
// Only x changes after creation.
type Obstacle struct {
	x, y          int
	width, height int
	speed         int
}

// NewObstacle creates a rock with its top-left corner at (x, y).
func NewObstacle(x, y, width, height, speed int) *Obstacle {
	return &Obstacle{x: x, y: y, width: width, height: height, speed: speed}
}

// Bounds returns the rock's bounding box.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.x, o.y, o.width, o.height)
}

// Intersects reports whether the bounding boxes overlap.
func (o Obstacle) Intersects(other Entity) bool {
	return boundsOverlap(o, other)
}

// Speed returns the leftward displacement per fast tick.
func (o Obstacle) Speed() int {
	return o.speed
}

// Visible reports whether the right edge has not yet passed the left screen edge.
func (o Obstacle) Visible() bool {
	return o.x >= -o.width
}

// Ellipse returns the silhouette inscribed in the bounding box, for drawing.
func (o Obstacle) Ellipse() (cx, cy, rx, ry float64) {
	rx = float64(o.width) / 2
	ry = float64(o.height) / 2
	return float64(o.x) + rx, float64(o.y) + ry, rx, ry
}

func (o *Obstacle) move() {
	o.x -= o.speed
}
