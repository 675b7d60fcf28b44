package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"TermPong/config"
	"TermPong/core"
	"TermPong/logger"

	"github.com/gdamore/tcell"
)

// Client runs the simulation against a terminal screen: it polls keys,
// ticks the simulation at a fixed rate and redraws after every tick.
type Client struct {
	screen   tcell.Screen
	window   *Window
	keys     *KeyTracker
	quit     keySpec
	renderer *Renderer
	sim      *core.Simulation

	tickInterval time.Duration
	finalScore   int
	serveKey     string

	events chan tcell.Event
}

func New(screen tcell.Screen, cfg *config.Config, rng core.RandomSource) (*Client, error) {
	keys, err := NewKeyTracker(cfg.Keys, cfg.KeyHold)
	if err != nil {
		return nil, err
	}
	quit, err := parseKey(cfg.QuitKey)
	if err != nil {
		return nil, fmt.Errorf("bind quit: %w", err)
	}

	window := NewWindow(screen, cfg.CellWidth, cfg.CellHeight)
	sim, err := core.NewSimulation(window, rng)
	if err != nil {
		return nil, err
	}

	return &Client{
		screen:       screen,
		window:       window,
		keys:         keys,
		quit:         quit,
		renderer:     NewRenderer(screen, window),
		sim:          sim,
		tickInterval: cfg.TickInterval(),
		finalScore:   cfg.FinalScore,
		serveKey:     cfg.Keys[core.Serve],
		events:       make(chan tcell.Event, 64),
	}, nil
}

func (c *Client) Simulation() *core.Simulation {
	return c.sim
}

// Run blocks until the player quits, a winner is decided, ctx is cancelled
// or a tick fails. A tick error is returned as is and must be treated as fatal.
func (c *Client) Run(ctx context.Context) error {
	logger.Log.Info(fmt.Sprintf(logger.MatchStartMsg, c.window.Width(), c.window.Height()))

	done := make(chan struct{})
	defer close(done)
	go c.pollEvents(done)

	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	last := time.Now()
	c.renderer.Draw(c.sim, c.banner())

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			over, err := c.step(now, dt)
			if err != nil || over {
				return err
			}
		}
	}
}

//建立一個goroutine去監聽鍵盤的事件
func (c *Client) pollEvents(done <-chan struct{}) {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			// screen finalised
			return
		}
		select {
		case c.events <- ev:
		case <-done:
			return
		}
	}
}

// step runs one frame. done is true when the match is over.
func (c *Client) step(now time.Time, dt float64) (done bool, err error) {
	if c.drainEvents(now) {
		logger.Log.Info(fmt.Sprintf(logger.MatchQuitMsg, c.sim.State.P1Score(), c.sim.State.P2Score()))
		return true, nil
	}
	c.keys.Update(now)

	if err := c.sim.Tick(dt, c.keys, c.window); err != nil {
		return true, err
	}

	if winner, ok := c.sim.State.Winner(c.finalScore); ok {
		logger.Log.Info(fmt.Sprintf(logger.MatchWinnerMsg, winner, c.sim.State.P1Score(), c.sim.State.P2Score()))
		c.renderer.Draw(c.sim, fmt.Sprintf("%s wins", winner))
		return true, nil
	}

	c.renderer.Draw(c.sim, c.banner())
	return false, nil
}

// drainEvents feeds every queued event without blocking and reports whether
// the quit key was seen.
func (c *Client) drainEvents(now time.Time) bool {
	for {
		select {
		case ev := <-c.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				c.screen.Sync()
				cols, rows := ev.Size()
				logger.Log.Debug(fmt.Sprintf(logger.ScreenResizeMsg, cols, rows))
			case *tcell.EventKey:
				if c.quit.matches(ev) || ev.Key() == tcell.KeyCtrlC {
					return true
				}
				c.keys.Feed(ev, now)
			}
		default:
			return false
		}
	}
}

func (c *Client) banner() string {
	if c.sim.State.BallMoving() {
		return ""
	}
	return fmt.Sprintf("Press %s to serve", strings.ToUpper(c.serveKey))
}
