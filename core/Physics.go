package core

import (
	"fmt"

	"TermPong/logger"
)

const PaddleSpeed = 300.0 // units per second
const BallSpeed = 150.0   // units per second before the speed coefficient
const BounceAngle = 45.0

// paddleFaceOffset moves the paddle's x towards the incoming ball so the
// collision is checked against its face instead of its centre.
const paddleFaceOffset = 5.0

// StartBall serves the ball in a random direction when the serve control
// goes down and the ball is at rest.
func (s *Simulation) StartBall(input Keyboard) error {
	if !input.JustPressed(Serve) || s.State.BallMoving() {
		return nil
	}

	direction, err := randomDirection(s.rng)
	if err != nil {
		return fmt.Errorf("start ball: %w", err)
	}
	s.State.SetBallDirection(direction)
	s.State.ToggleBallMoving()

	logger.Log.Debug(fmt.Sprintf(logger.ServeMsg, direction))
	return nil
}

// HandleControls moves each paddle up or down at PaddleSpeed, keeping it inside
// the window. Up wins when both controls are held.
func (s *Simulation) HandleControls(dt float64, input Keyboard, window Window) error {
	if window == nil {
		return fmt.Errorf("handle controls: %w", ErrMissingWindow)
	}

	height := window.Height() / 2
	movement := PaddleSpeed * dt

	for _, paddle := range s.World.Paddles {
		up, down := controlsFor(paddle.Player)

		canMoveUp := paddle.Y+movement <= height-paddle.Height/2
		canMoveDown := paddle.Y-movement >= -height+paddle.Height/2

		if input.Pressed(up) && canMoveUp {
			paddle.Y += movement
		} else if input.Pressed(down) && canMoveDown {
			paddle.Y -= movement
		}
	}
	return nil
}

// MoveBall advances the ball by one first-order step. The angle is used as a
// raw vertical speed.
func (s *Simulation) MoveBall(dt float64) error {
	if !s.State.BallMoving() {
		return nil
	}

	ball := s.World.Ball
	if ball == nil {
		return fmt.Errorf("move ball: %w", ErrMissingBall)
	}

	coefficient := s.State.BallSpeedCoefficient()
	xMovement := BallSpeed * dt * coefficient
	yMovement := s.State.BallAngle() * dt * coefficient

	ball.X += xMovement * s.State.BallDirection().xSign()
	ball.Y += yMovement
	return nil
}

// DetectCollisions bounces the ball off the top and bottom walls and off
// the paddles. Every paddle is checked in spawn order, so two hits in the
// same tick are both applied.
func (s *Simulation) DetectCollisions(window Window) error {
	if !s.State.BallMoving() {
		return nil
	}
	if window == nil {
		return fmt.Errorf("detect collisions: %w", ErrMissingWindow)
	}
	ball := s.World.Ball
	if ball == nil {
		return fmt.Errorf("detect collisions: %w", ErrMissingBall)
	}

	xOffset := s.State.BallDirection().xSign()
	halfHeight := window.Height() / 2

	ballY := ball.Y
	ballX := ball.X + ball.Radius*xOffset

	// the sign check stops a ball leaving the wall from being turned back
	topCollision := ballY+ball.Radius >= halfHeight && s.State.BallAngle() > 0
	bottomCollision := ballY-ball.Radius <= -halfHeight && s.State.BallAngle() < 0
	if topCollision || bottomCollision {
		s.State.SetBallAngle(-s.State.BallAngle())
	}

	for _, paddle := range s.World.Paddles {
		paddleTop := paddle.Top()
		paddleBottom := paddle.Bottom()
		paddleX := paddle.X + paddleFaceOffset*-xOffset

		yCollision := ballY <= paddleTop && ballY >= paddleBottom

		var xCollision bool
		switch s.State.BallDirection() {
		case Left:
			xCollision = ballX <= paddleX && paddle.Player == P1
		case Right:
			xCollision = ballX >= paddleX && paddle.Player == P2
		}

		if !yCollision || !xCollision {
			continue
		}

		s.State.ToggleBallDirection()
		if ballY > (paddleTop+paddleBottom)/2 {
			s.State.SetBallAngle(BounceAngle)
		} else {
			s.State.SetBallAngle(-BounceAngle)
		}
		s.State.BumpSpeedCoefficient()

		logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, paddle.Player, s.State.BallSpeedCoefficient()))
	}
	return nil
}

func randomDirection(rng RandomSource) (BallDirection, error) {
	switch n := rng.Intn(2); n {
	case 0:
		return Left, nil
	case 1:
		return Right, nil
	default:
		return Left, fmt.Errorf("%w: got %d", ErrInvalidRandom, n)
	}
}
