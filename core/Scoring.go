package core

import (
	"fmt"

	"TermPong/logger"
)

// scoreEdgeOffset puts the scoring point on the ball's leading side.
const scoreEdgeOffset = 5.0

// PlayerScored awards a point when the ball's leading edge passes the edge it
// is travelling towards, then resets the ball. Direction, angle and speed
// coefficient are carried into the next serve unchanged.
func (s *Simulation) PlayerScored(window Window) (bool, error) {
	if !s.State.BallMoving() {
		return false, nil
	}
	if window == nil {
		return false, fmt.Errorf("player scored: %w", ErrMissingWindow)
	}
	ball := s.World.Ball
	if ball == nil {
		return false, fmt.Errorf("player scored: %w", ErrMissingBall)
	}

	width := window.Width() / 2

	switch s.State.BallDirection() {
	case Left:
		if ball.X-scoreEdgeOffset > -width {
			return false, nil
		}
		s.State.IncP2Score()
	case Right:
		if ball.X+scoreEdgeOffset < width {
			return false, nil
		}
		s.State.IncP1Score()
	}

	logger.Log.Info(fmt.Sprintf(logger.ScoreMsg, s.State.P1Score(), s.State.P2Score()))
	return true, s.ResetGame()
}

// ResetGame flips BallMoving and centres the ball. It toggles rather than
// clears, so calling it on a ball at rest puts the ball in motion; callers
// must only invoke it after a point.
func (s *Simulation) ResetGame() error {
	ball := s.World.Ball
	if ball == nil {
		return fmt.Errorf("reset game: %w", ErrMissingBall)
	}

	s.State.ToggleBallMoving()
	ball.X = 0
	ball.Y = 0
	return nil
}

// Winner reports the player that reached finalScore. A finalScore of zero
// or less means the match never ends.
func (s *GameState) Winner(finalScore int) (Player, bool) {
	if finalScore <= 0 {
		return P1, false
	}
	if s.p1Score >= finalScore {
		return P1, true
	}
	if s.p2Score >= finalScore {
		return P2, true
	}
	return P1, false
}
