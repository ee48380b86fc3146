package core

import "fmt"

// Direction is a symbolic movement intent carrying a unit displacement.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirNorthwest
	DirNortheast
	DirSouthwest
	DirSoutheast
)

// deltas is indexed by Direction. Screen y grows downward.
var deltas = [...]Point{
	DirNone:      {0, 0},
	DirUp:        {0, -1},
	DirDown:      {0, 1},
	DirLeft:      {-1, 0},
	DirRight:     {1, 0},
	DirNorthwest: {-1, -1},
	DirNortheast: {1, -1},
	DirSouthwest: {-1, 1},
	DirSoutheast: {1, 1},
}

var directionNames = [...]string{
	DirNone:      "none",
	DirUp:        "up",
	DirDown:      "down",
	DirLeft:      "left",
	DirRight:     "right",
	DirNorthwest: "northwest",
	DirNortheast: "northeast",
	DirSouthwest: "southwest",
	DirSoutheast: "southeast",
}

// Directions lists every direction in declaration order.
func Directions() []Direction {
	return []Direction{
		DirNone, DirUp, DirDown, DirLeft, DirRight,
		DirNorthwest, DirNortheast, DirSouthwest, DirSoutheast,
	}
}

// Valid reports whether d is one of the nine known directions.
func (d Direction) Valid() bool {
	return d >= DirNone && d <= DirSoutheast
}

// Delta returns the unit displacement for the direction.
// Unknown values behave like DirNone.
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	p := deltas[d]
	return p.X, p.Y
}

// IsCardinal reports whether d is one of the four axis-aligned directions.
func (d Direction) IsCardinal() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection converts a name produced by String back into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions() {
		if directionNames[d] == s {
			return d, nil
		}
	}
	return DirNone, fmt.Errorf("core: unknown direction %q", s)
}

// Action represents a semantic session action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionCopy           // C - copy run summary after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionCopy:
		return "Copy"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
