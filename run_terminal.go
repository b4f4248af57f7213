package twig

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig configures the terminal driver.
type TerminalConfig struct {
	FPS int
	// PPM is the number of cells per world meter.
	PPM        float64
	Background Color
	Script     *Script
}

// Terminal returns the window settings of c for the terminal driver.
// The pixel density is divided by 8 so that a window-sized scene fits a
// terminal-sized grid.
func (c Config) Terminal() TerminalConfig {
	return TerminalConfig{
		FPS:        c.Window.FPS,
		PPM:        c.Window.PPM / 8,
		Background: c.BackgroundColor(),
	}
}

// RunTerminal runs game in the terminal until it quits or Escape or Ctrl-C
// is pressed.
func RunTerminal(game Game, cfg TerminalConfig) error {
	if game == nil {
		return ErrNoGame
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("twig: terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("twig: terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	return runTerminal(screen, game, cfg)
}

// runTerminal drives game on an initialised screen. The caller owns the
// screen.
func runTerminal(screen tcell.Screen, game Game, cfg TerminalConfig) error {
	if cfg.PPM <= 0 {
		cfg.PPM = 1
	}
	h := newTerminalHost(screen, cfg.PPM)
	defer h.close()

	loop := NewLoop(game, h, cfg.FPS)
	loop.Background = cfg.Background
	if cfg.Script != nil {
		loop.SetScript(cfg.Script)
	}
	return loop.Run()
}

// terminalHost pumps tcell events into a channel so the loop can poll
// without blocking.
type terminalHost struct {
	screen   tcell.Screen
	renderer *TerminalRenderer
	events   chan tcell.Event
	done     chan struct{}
}

func newTerminalHost(screen tcell.Screen, ppm float64) *terminalHost {
	h := &terminalHost{
		screen:   screen,
		renderer: NewTerminalRenderer(screen, ppm),
		events:   make(chan tcell.Event, 100),
		done:     make(chan struct{}),
	}
	go h.pump()
	return h
}

func (h *terminalHost) pump() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

func (h *terminalHost) close() {
	close(h.done)
}

func (h *terminalHost) Renderer() Renderer {
	return h.renderer
}

func (h *terminalHost) PollEvent() (Event, bool) {
	for {
		select {
		case ev := <-h.events:
			if e, ok := convertTerminalEvent(ev); ok {
				return e, true
			}
		default:
			return Event{}, false
		}
	}
}

// convertTerminalEvent maps a tcell event to an Event. Escape and Ctrl-C
// become EventQuit. Terminals report no key releases, so only EventKeyDown
// is produced for keys.
func convertTerminalEvent(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return terminalKeyEvent(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}
