package core

// Control is a logical game input. Physical keys are bound to controls by the front end.
type Control int

const (
	Serve Control = iota
	P1Up
	P1Down
	P2Up
	P2Down
)

var controlNames = map[Control]string{
	Serve:  "Serve",
	P1Up:   "P1Up",
	P1Down: "P1Down",
	P2Up:   "P2Up",
	P2Down: "P2Down",
}

func (c Control) String() string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Controls lists every control in declaration order.
func Controls() []Control {
	return []Control{Serve, P1Up, P1Down, P2Up, P2Down}
}

// Keyboard reports key state for the current tick.
type Keyboard interface {
	Pressed(c Control) bool
	// JustPressed is true only on the tick the control went down.
	JustPressed(c Control) bool
}

// Window reports the current viewport size in world units. It is queried
// every tick because the window may be resized.
type Window interface {
	Width() float64
	Height() float64
}

// RandomSource is satisfied by *math/rand.Rand.
type RandomSource interface {
	Intn(n int) int
}

func controlsFor(player Player) (up, down Control) {
	switch player {
	case P1:
		return P1Up, P1Down
	default:
		return P2Up, P2Down
	}
}
