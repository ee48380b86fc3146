package sim

import (
	"fmt"

	"github.com/vovakirdan/rockdodge/internal/config"
	"github.com/vovakirdan/rockdodge/internal/core"
)

// Ship is the player's craft. Its position is the top-left corner of the
// bounding box.
type Ship struct {
	pos    core.Point
	width  int
	height int
	speed  int
	dir    core.Direction
}

// Bounds returns the ship's bounding box.
func (s Ship) Bounds() core.Rect {
	return core.NewRect(s.pos.X, s.pos.Y, s.width, s.height)
}

// Intersects reports whether the bounding boxes overlap.
func (s Ship) Intersects(other Entity) bool {
	return boundsOverlap(s, other)
}

// Direction returns the current movement intent.
func (s Ship) Direction() core.Direction {
	return s.dir
}

// Speed returns the displacement per axis per fast tick.
func (s Ship) Speed() int {
	return s.speed
}

// Silhouette returns the triangle drawn for the ship: top-left, bottom-left
// and the nose at the middle of the right edge.
func (s Ship) Silhouette() [3]core.Point {
	return [3]core.Point{
		{X: s.pos.X, Y: s.pos.Y},
		{X: s.pos.X, Y: s.pos.Y + s.height},
		{X: s.pos.X + s.width, Y: s.pos.Y + s.height/2},
	}
}

// ShipController owns the player ship and keeps it inside its movement bounds.
type ShipController struct {
	ship      Ship
	bounds    core.Rect
	boundsSet bool
}

// NewShipController creates a ship at (x, y) facing no direction.
func NewShipController(x, y int, cfg config.ShipConfig) *ShipController {
	return &ShipController{
		ship: Ship{
			pos:    core.Point{X: x, Y: y},
			width:  cfg.Width,
			height: cfg.Height,
			speed:  cfg.Speed,
			dir:    core.DirNone,
		},
	}
}

// Ship returns a copy of the controlled ship.
func (c *ShipController) Ship() Ship {
	return c.ship
}

// SetDirection records the movement intent applied on the next Move.
// Unknown directions are treated as DirNone.
func (c *ShipController) SetDirection(d core.Direction) {
	if !d.Valid() {
		d = core.DirNone
	}
	c.ship.dir = d
}

// SetMovementBounds installs the area the ship must stay within. The area is
// shrunk by the ship's width and height on every side so the whole silhouette
// stays visible.
func (c *ShipController) SetMovementBounds(area core.Rect) error {
	inset := area.Inset(c.ship.width, c.ship.height)
	if inset.Empty() {
		return fmt.Errorf("%w: %dx%d area for a %dx%d ship",
			ErrDegenerateBounds, area.W, area.H, c.ship.width, c.ship.height)
	}
	c.bounds = inset
	c.boundsSet = true
	return nil
}

// MovementBounds returns the inset bounds and whether they have been set.
func (c *ShipController) MovementBounds() (core.Rect, bool) {
	return c.bounds, c.boundsSet
}

// Move displaces the ship by speed*direction. A move that would leave the
// bounding box outside the movement bounds is dropped entirely; there is no
// partial clamping. It reports whether the ship moved.
func (c *ShipController) Move() (bool, error) {
	if !c.boundsSet {
		return false, ErrBoundsNotSet
	}
	dx, dy := c.ship.dir.Delta()
	if dx == 0 && dy == 0 {
		return false, nil
	}

	candidate := c.ship.Bounds().Translate(c.ship.speed*dx, c.ship.speed*dy)
	if !candidate.Intersects(c.bounds) {
		return false, nil
	}
	c.ship.pos = core.Point{X: candidate.X, Y: candidate.Y}
	return true, nil
}
