package sim

import "errors"

// Precondition violations. They signal programming errors in the caller and
// are never retried.
var (
	ErrBoundsNotSet      = errors.New("sim: movement bounds not set")
	ErrDegenerateBounds  = errors.New("sim: movement bounds leave no room for the ship")
	ErrSpawnBoundsNotSet = errors.New("sim: spawn bounds not set")
	ErrInvalidSpawnRange = errors.New("sim: spawn range is empty")
	ErrInvalidLevel      = errors.New("sim: level must be at least 1")
	ErrEmptyRange        = errors.New("sim: random range is empty")
	ErrNilObstacle       = errors.New("sim: nil obstacle")
	ErrDuplicateObstacle = errors.New("sim: obstacle already in field")
	ErrNotStarted        = errors.New("sim: session not started")
	ErrAlreadyStarted    = errors.New("sim: session already started")
	ErrSessionOver       = errors.New("sim: session already over")
	ErrInvalidPlayArea   = errors.New("sim: play area must have positive size")
	ErrNegativeDuration  = errors.New("sim: cannot advance by a negative duration")
)
