package client

import (
	"math"

	"github.com/gdamore/tcell"
)

const MiddleLineSymbol = 0x2590

// OpenScreen initialises the terminal with the game's black and white style.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	return screen, nil
}

// Window exposes the terminal as a core.Window. Every cell counts as
// CellWidth x CellHeight world units, and the size is read from the screen
// on each call so resizes are seen on the next tick.
type Window struct {
	screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
}

func NewWindow(screen tcell.Screen, cellWidth, cellHeight float64) *Window {
	return &Window{screen: screen, CellWidth: cellWidth, CellHeight: cellHeight}
}

func (w *Window) Width() float64 {
	cols, _ := w.screen.Size()
	return float64(cols) * w.CellWidth
}

func (w *Window) Height() float64 {
	_, rows := w.screen.Size()
	return float64(rows) * w.CellHeight
}

// ToCell maps a world position to the terminal cell containing it.
func (w *Window) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor((x + w.Width()/2) / w.CellWidth))
	row = int(math.Floor((w.Height()/2 - y) / w.CellHeight))
	return col, row
}
