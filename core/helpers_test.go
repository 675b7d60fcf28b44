package core

import (
	"math"
	"testing"
)

type fakeKeys struct {
	pressed map[Control]bool
	just    map[Control]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{pressed: map[Control]bool{}, just: map[Control]bool{}}
}

func (k *fakeKeys) Pressed(c Control) bool     { return k.pressed[c] }
func (k *fakeKeys) JustPressed(c Control) bool { return k.just[c] }

type fixedWindow struct {
	w, h float64
}

func (w fixedWindow) Width() float64  { return w.w }
func (w fixedWindow) Height() float64 { return w.h }

// fixedSource always returns the same value from Intn.
type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) }

var window800x600 = fixedWindow{w: 800, h: 600}

func newTestSimulation(t *testing.T, rng RandomSource) *Simulation {
	t.Helper()
	sim, err := NewSimulation(window800x600, rng)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}

// launch puts the ball in motion without going through a serve.
func launch(sim *Simulation, direction BallDirection, angle float64) {
	sim.State.SetBallDirection(direction)
	sim.State.SetBallAngle(angle)
	if !sim.State.BallMoving() {
		sim.State.ToggleBallMoving()
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
