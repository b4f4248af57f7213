package twig

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the ebiten driver.
type RunConfig struct {
	Title         string
	Width, Height int
	// FPS is the frame rate; ebiten ticks at this rate.
	FPS int
	// PPM is the number of pixels per world meter.
	PPM        float64
	Background Color
	// ShowFPS draws the measured FPS and TPS in the top-left corner.
	ShowFPS bool
	// Script, if set, drives the game with scripted input.
	Script *Script
}

// DefaultRunConfig returns the window settings of DefaultConfig.
func DefaultRunConfig() RunConfig {
	return DefaultConfig().Run()
}

func (c *RunConfig) applyDefaults() {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.PPM <= 0 {
		c.PPM = DefaultPPM
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
}

// Run opens a window and runs game until it quits or the window is closed.
// It blocks, and must be called from the main goroutine.
func Run(game Game, cfg RunConfig) error {
	if game == nil {
		return ErrNoGame
	}
	cfg.applyDefaults()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowClosingHandled(true)

	h := newEbitenHost(game, cfg)
	err := ebiten.RunGame(h)
	h.loop.Finish()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return h.loop.Err()
}

// ebitenHost adapts a Loop to ebiten.Game. Frames are drawn during Update
// onto an offscreen canvas that Draw copies to the screen.
type ebitenHost struct {
	loop     *Loop
	canvas   *ebiten.Image
	renderer *EbitenRenderer
	width    int
	height   int
	events   []Event
	keys     []ebiten.Key
	fps      *fpsOverlay
}

func newEbitenHost(game Game, cfg RunConfig) *ebitenHost {
	h := &ebitenHost{
		canvas: ebiten.NewImage(cfg.Width, cfg.Height),
		width:  cfg.Width,
		height: cfg.Height,
	}
	h.renderer = NewEbitenRenderer(h.canvas, cfg.PPM)
	h.loop = NewLoop(game, h, cfg.FPS)
	h.loop.Background = cfg.Background
	if cfg.Script != nil {
		h.loop.SetScript(cfg.Script)
	}
	if cfg.ShowFPS {
		h.fps = newFPSOverlay()
	}
	return h
}

func (h *ebitenHost) Renderer() Renderer {
	return h.renderer
}

func (h *ebitenHost) PollEvent() (Event, bool) {
	if len(h.events) == 0 {
		return Event{}, false
	}
	e := h.events[0]
	h.events = h.events[1:]
	return e, true
}

// collectInput queues this tick's window and keyboard events.
func (h *ebitenHost) collectInput() {
	h.events = h.events[:0]
	if ebiten.IsWindowBeingClosed() {
		h.events = append(h.events, Event{Type: EventQuit})
	}
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		if e, ok := ebitenKeyEvent(EventKeyDown, k); ok {
			h.events = append(h.events, e)
		}
	}
	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		if e, ok := ebitenKeyEvent(EventKeyUp, k); ok {
			h.events = append(h.events, e)
		}
	}
}

func (h *ebitenHost) Update() error {
	now := time.Now()
	h.loop.Start(now)
	h.collectInput()
	h.loop.Frame(now)
	if h.fps != nil {
		h.fps.update(h.loop.Time().Delta)
	}
	if h.loop.Done() {
		return ebiten.Termination
	}
	return nil
}

func (h *ebitenHost) Draw(screen *ebiten.Image) {
	screen.DrawImage(h.canvas, nil)
	if h.fps != nil {
		h.fps.draw(screen)
	}
}

func (h *ebitenHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}
