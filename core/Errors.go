package core

import "errors"

// Faults a tick can hit. None of them are recoverable; the caller is expected
// to stop the game.
var (
	ErrMissingBall   = errors.New("ball entity not found")
	ErrMissingWindow = errors.New("window not found")
	ErrInvalidRandom = errors.New("random direction out of range")
)
