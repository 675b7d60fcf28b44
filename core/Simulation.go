package core

import (
	"fmt"
	"math/rand"
	"time"
)

// Simulation owns the game state and the entities and runs one tick at a time.
// It is not safe for concurrent use; the frame loop must not overlap ticks.
type Simulation struct {
	State *GameState
	World *World
	rng   RandomSource
}

// NewSimulation spawns the entities for window. A nil rng falls back to a
// time-seeded source.
func NewSimulation(window Window, rng RandomSource) (*Simulation, error) {
	world, err := Spawn(window)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulation{
		State: NewGameState(),
		World: world,
		rng:   rng,
	}, nil
}

// Tick runs the update chain once: serve, paddles, collisions, ball, scoring.
// dt is the elapsed time in seconds since the previous tick. The first
// error aborts the rest of the chain.
func (s *Simulation) Tick(dt float64, input Keyboard, window Window) error {
	if s.World == nil {
		return fmt.Errorf("tick: %w", ErrMissingBall)
	}
	if err := s.StartBall(input); err != nil {
		return err
	}
	if err := s.HandleControls(dt, input, window); err != nil {
		return err
	}
	if err := s.DetectCollisions(window); err != nil {
		return err
	}
	if err := s.MoveBall(dt); err != nil {
		return err
	}
	if _, err := s.PlayerScored(window); err != nil {
		return err
	}
	return nil
}
