package core

import "fmt"

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號

const BallRadius = 7.5
const PaddleWidth = 10.0
const PaddleHeight = 100.0
const PaddleMargin = 10.0

// Player identifies the paddle owner. P1 defends the left edge, P2 the right.
type Player int

const (
	P1 Player = iota
	P2
)

func (p Player) String() string {
	switch p {
	case P1:
		return "P1"
	case P2:
		return "P2"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// GameObject is a 2D transform in world units. The origin is the centre of
// the window and y grows upwards.
type GameObject struct {
	X, Y          float64
	Width, Height float64
	Symbol        rune
}

type Ball struct {
	GameObject
	Radius float64
}

type Paddle struct {
	GameObject
	Player   Player
	NickName string
}

func (p *Paddle) Top() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) Bottom() float64 {
	return p.Y - p.Height/2
}

// World holds the fixed set of entities. Paddles are kept in spawn order, P1 first.
type World struct {
	Ball    *Ball
	Paddles []*Paddle
}

func NewBall() *Ball {
	return &Ball{
		GameObject: GameObject{X: 0, Y: 0, Width: BallRadius * 2, Height: BallRadius * 2, Symbol: BallSymbol},
		Radius:     BallRadius,
	}
}

func NewPaddle(player Player, x float64) *Paddle {
	nickName := "Player one"
	if player == P2 {
		nickName = "Player two"
	}
	return &Paddle{
		GameObject: GameObject{X: x, Y: 0, Width: PaddleWidth, Height: PaddleHeight, Symbol: PaddleSymbol},
		Player:     player,
		NickName:   nickName,
	}
}

// Spawn places the ball at the origin and both paddles at the window's
// left and right edges, inset by PaddleMargin.
func Spawn(window Window) (*World, error) {
	if window == nil {
		return nil, fmt.Errorf("spawn: %w", ErrMissingWindow)
	}

	halfWidth := window.Width() / 2
	leftX := -halfWidth + PaddleMargin + PaddleWidth/2
	rightX := halfWidth - PaddleMargin - PaddleWidth/2

	return &World{
		Ball: NewBall(),
		Paddles: []*Paddle{
			NewPaddle(P1, leftX),
			NewPaddle(P2, rightX),
		},
	}, nil
}

// Paddle returns the paddle owned by player, or nil.
func (w *World) Paddle(player Player) *Paddle {
	for _, p := range w.Paddles {
		if p.Player == player {
			return p
		}
	}
	return nil
}
