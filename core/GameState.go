package core

// BallDirection is the horizontal travel sign of the ball.
type BallDirection int

const (
	Left BallDirection = iota
	Right
)

func (d BallDirection) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Unknown"
}

// xSign returns -1 for Left and +1 for Right.
func (d BallDirection) xSign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

const SpeedCoefficientBump = 0.2

// GameState is the single source of truth for serve, direction and scoring.
// It is owned by the Simulation and mutated only from inside a tick.
type GameState struct {
	p1Score              int
	p2Score              int
	ballMoving           bool
	ballDirection        BallDirection
	ballAngle            float64
	ballSpeedCoefficient float64
}

func NewGameState() *GameState {
	return &GameState{
		// overwritten on the first serve
		ballDirection:        Left,
		ballSpeedCoefficient: 1.0,
	}
}

func (s *GameState) P1Score() int {
	return s.p1Score
}

func (s *GameState) P2Score() int {
	return s.p2Score
}

func (s *GameState) BallMoving() bool {
	return s.ballMoving
}

func (s *GameState) BallDirection() BallDirection {
	return s.ballDirection
}

// BallAngle is the signed vertical speed of the ball in units per second
// before the speed coefficient is applied. It is not a geometric angle.
func (s *GameState) BallAngle() float64 {
	return s.ballAngle
}

func (s *GameState) BallSpeedCoefficient() float64 {
	return s.ballSpeedCoefficient
}

func (s *GameState) IncP1Score() {
	s.p1Score += 1
}

func (s *GameState) IncP2Score() {
	s.p2Score += 1
}

func (s *GameState) ToggleBallMoving() {
	s.ballMoving = !s.ballMoving
}

func (s *GameState) ToggleBallDirection() {
	switch s.ballDirection {
	case Right:
		s.ballDirection = Left
	case Left:
		s.ballDirection = Right
	}
}

func (s *GameState) SetBallDirection(direction BallDirection) {
	s.ballDirection = direction
}

func (s *GameState) SetBallAngle(angle float64) {
	s.ballAngle = angle
}

// BumpSpeedCoefficient raises the coefficient by SpeedCoefficientBump.
// Nothing lowers it again for the life of the process.
func (s *GameState) BumpSpeedCoefficient() {
	s.ballSpeedCoefficient += SpeedCoefficientBump
}
