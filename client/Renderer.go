package client

import (
	"math"
	"strconv"

	"TermPong/core"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

type Renderer struct {
	screen tcell.Screen
	window *Window
	style  tcell.Style
}

func NewRenderer(screen tcell.Screen, window *Window) *Renderer {
	return &Renderer{
		screen: screen,
		window: window,
		style:  tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
}

// Draw paints one frame: middle line, scores, paddles, ball and an optional
// banner on the bottom quarter of the screen.
func (r *Renderer) Draw(sim *core.Simulation, banner string) {
	r.screen.Clear()
	width, height := r.screen.Size()

	//中線
	Print(r.screen, 0, width/2, 1, height, MiddleLineSymbol, r.style)

	//分數更新
	r.drawLetters(width/4, 1, strconv.Itoa(sim.State.P1Score()))
	r.drawLetters((width/4)*3, 1, strconv.Itoa(sim.State.P2Score()))

	//兩個球拍
	for _, paddle := range sim.World.Paddles {
		r.drawObject(paddle.GameObject)
	}

	//球
	if ball := sim.World.Ball; ball != nil {
		col, row := r.window.ToCell(ball.X, ball.Y)
		r.screen.SetContent(col, row, ball.Symbol, nil, r.style)
	}

	if banner != "" {
		r.drawText(height*3/4, banner)
	}

	r.screen.Show()
}

// drawObject fills every cell covered by obj, at least one.
func (r *Renderer) drawObject(obj core.GameObject) {
	left, top := r.window.ToCell(obj.X-obj.Width/2, obj.Y+obj.Height/2)
	cols := int(math.Max(1, math.Round(obj.Width/r.window.CellWidth)))
	rows := int(math.Max(1, math.Round(obj.Height/r.window.CellHeight)))
	Print(r.screen, top, left, cols, rows, obj.Symbol, r.style)
}

func (r *Renderer) drawLetters(x int, y int, word string) {
	letterNum := len(word)
	if letterNum == 0 {
		return
	}
	totalLen := letterNum*letterWidth + (letterNum - 1)
	startX := x - totalLen/2

	for i, letter := range word {
		offsetX := startX + i*(letterWidth+1)
		for _, cell := range GetCellsFromChar(string(letter)) {
			r.screen.SetContent(offsetX+cell[0], y+cell[1], core.BallSymbol, nil, r.style)
		}
	}
}

// drawText centres text on row, measuring by display width.
func (r *Renderer) drawText(row int, text string) {
	width, _ := r.screen.Size()
	col := (width - runewidth.StringWidth(text)) / 2
	if col < 0 {
		col = 0
	}
	for _, ch := range text {
		r.screen.SetContent(col, row, ch, nil, r.style)
		col += runewidth.RuneWidth(ch)
	}
}

func Print(screen tcell.Screen, row, col, width, height int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}
