package model

import "github.com/pkg/errors"

// Errors reported by the engine. Callers match them with errors.Is; the
// returned values are wrapped with the failing operation and its arguments.
var (
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrOutOfRange       = errors.New("out of range")
	ErrInvalidCapacity  = errors.New("invalid history capacity")
	ErrGridTooSmall     = errors.New("grid too small for shape")
	ErrUnknownShape     = errors.New("unknown shape")
	ErrGameOver         = errors.New("game over")
)
