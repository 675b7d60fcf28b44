package core

import "testing"

func TestNewGameState(t *testing.T) {
	s := NewGameState()

	if s.P1Score() != 0 || s.P2Score() != 0 {
		t.Errorf("expected scores 0:0, got %d:%d", s.P1Score(), s.P2Score())
	}
	if s.BallMoving() {
		t.Error("ball should be at rest")
	}
	if s.BallDirection() != Left {
		t.Errorf("expected default direction Left, got %s", s.BallDirection())
	}
	if s.BallAngle() != 0 {
		t.Errorf("expected angle 0, got %v", s.BallAngle())
	}
	if s.BallSpeedCoefficient() != 1.0 {
		t.Errorf("expected speed coefficient 1.0, got %v", s.BallSpeedCoefficient())
	}
}

func TestGameStateMutators(t *testing.T) {
	s := NewGameState()

	s.IncP1Score()
	s.IncP2Score()
	s.IncP2Score()
	if s.P1Score() != 1 || s.P2Score() != 2 {
		t.Errorf("expected 1:2, got %d:%d", s.P1Score(), s.P2Score())
	}

	s.ToggleBallMoving()
	if !s.BallMoving() {
		t.Error("ToggleBallMoving should start the ball")
	}
	s.ToggleBallMoving()
	if s.BallMoving() {
		t.Error("second ToggleBallMoving should stop the ball")
	}

	s.ToggleBallDirection()
	if s.BallDirection() != Right {
		t.Errorf("expected Right after toggle, got %s", s.BallDirection())
	}
	s.ToggleBallDirection()
	if s.BallDirection() != Left {
		t.Errorf("expected Left after second toggle, got %s", s.BallDirection())
	}

	s.SetBallDirection(Right)
	s.SetBallAngle(-45)
	if s.BallDirection() != Right || s.BallAngle() != -45 {
		t.Errorf("setters not applied: %s %v", s.BallDirection(), s.BallAngle())
	}
}

func TestBumpSpeedCoefficient(t *testing.T) {
	s := NewGameState()

	s.BumpSpeedCoefficient()
	if !near(s.BallSpeedCoefficient(), 1.2) {
		t.Errorf("expected 1.2, got %v", s.BallSpeedCoefficient())
	}
	s.BumpSpeedCoefficient()
	s.BumpSpeedCoefficient()
	if !near(s.BallSpeedCoefficient(), 1.6) {
		t.Errorf("expected 1.6, got %v", s.BallSpeedCoefficient())
	}
}

func TestWinner(t *testing.T) {
	s := NewGameState()

	if _, ok := s.Winner(0); ok {
		t.Error("final score 0 should never produce a winner")
	}
	if _, ok := s.Winner(2); ok {
		t.Error("no winner expected at 0:0")
	}

	s.IncP2Score()
	s.IncP2Score()
	winner, ok := s.Winner(2)
	if !ok || winner != P2 {
		t.Errorf("expected P2 to win, got %s %v", winner, ok)
	}

	s.IncP1Score()
	if _, ok := s.Winner(0); ok {
		t.Error("endless match reported a winner")
	}
}

func TestSpawn(t *testing.T) {
	world, err := Spawn(window800x600)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	if world.Ball.X != 0 || world.Ball.Y != 0 || world.Ball.Radius != BallRadius {
		t.Errorf("unexpected ball %+v", world.Ball)
	}
	if len(world.Paddles) != 2 {
		t.Fatalf("expected 2 paddles, got %d", len(world.Paddles))
	}

	p1, p2 := world.Paddles[0], world.Paddles[1]
	if p1.Player != P1 || p2.Player != P2 {
		t.Errorf("paddles out of spawn order: %s %s", p1.Player, p2.Player)
	}
	if p1.X != -385 || p2.X != 385 {
		t.Errorf("expected paddles at -385 and 385, got %v and %v", p1.X, p2.X)
	}
	if p1.Height != PaddleHeight || p1.Width != PaddleWidth {
		t.Errorf("unexpected paddle size %vx%v", p1.Width, p1.Height)
	}
	if world.Paddle(P2) != p2 {
		t.Error("Paddle(P2) should return the second paddle")
	}
}

func TestSpawnWithoutWindow(t *testing.T) {
	if _, err := Spawn(nil); err == nil {
		t.Error("expected an error without a window")
	}
}
