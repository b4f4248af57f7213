package twig

import (
	"errors"
	"time"
)

// DefaultFPS is the frame rate used when a configuration leaves it unset.
const DefaultFPS = 60

var (
	// ErrNoGame is returned by the drivers when the game is nil.
	ErrNoGame = errors.New("twig: no game")
	// ErrQuit may be returned from Game.Step to end the loop cleanly.
	ErrQuit = errors.New("twig: quit")
)

// GameTime carries frame timing in seconds.
type GameTime struct {
	// Delta is the time since the previous frame.
	Delta float64
	// Total is the time since the loop started.
	Total float64
}

// Game is driven by a Loop. Init is called once before the first frame,
// Step once per frame after pending events have been delivered, and
// Finalize once after the last frame.
type Game interface {
	Init(t GameTime)
	// Step advances and draws one frame through r. Returning ErrQuit ends
	// the loop without error; any other error ends it and is returned by
	// the driver.
	Step(r Renderer, t GameTime) error
	Finalize(t GameTime)
	HandleEvent(e Event)
}

// EventType identifies the kind of an Event.
type EventType uint8

const (
	// EventQuit asks the loop to stop after the current frame. It is
	// consumed by the loop and never delivered to the game.
	EventQuit EventType = iota + 1
	EventKeyDown
	EventKeyUp
	// EventResize reports new screen dimensions in Width and Height.
	EventResize
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "key_down"
	case EventKeyUp:
		return "key_up"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is an input or window event.
type Event struct {
	Type EventType
	Key  Key
	// Rune is the character for KeyRune events.
	Rune          rune
	Width, Height int
}

// Host supplies a Loop with its renderer and input.
type Host interface {
	Renderer() Renderer
	// PollEvent returns the next pending event without blocking.
	PollEvent() (Event, bool)
}

// Loop is the frame loop shared by the ebiten and terminal drivers. Each
// frame clears the renderer to Background, delivers one injected or
// scripted event and every pending host event, steps the game and
// presents. A quit event stops delivery but the frame is still stepped and
// presented; the loop exits after it.
type Loop struct {
	// Background is the clear color for every frame.
	Background Color
	// ScreenshotDir is the directory screenshots are written to. Empty
	// selects DefaultScreenshotDir.
	ScreenshotDir string

	game     Game
	host     Host
	interval time.Duration

	now   func() time.Time
	sleep func(time.Duration)

	start    time.Time
	prev     time.Time
	time     GameTime
	started  bool
	finished bool
	quit     bool
	err      error

	injectQueue     []Event
	screenshotQueue []string
	script          *Script
}

// NewLoop creates a loop running game on host at fps frames per second.
// A non-positive fps selects DefaultFPS.
func NewLoop(game Game, host Host, fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{
		Background: ColorBlack,
		game:       game,
		host:       host,
		interval:   time.Second / time.Duration(fps),
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// Quit stops the loop after the current frame.
func (l *Loop) Quit() {
	l.quit = true
}

// Done reports whether the loop has stopped.
func (l *Loop) Done() bool {
	return l.quit
}

// Err returns the error that stopped the loop, if any.
func (l *Loop) Err() error {
	return l.err
}

// Time returns the timing of the most recent frame.
func (l *Loop) Time() GameTime {
	return l.time
}

// SetScript attaches a scripted input sequence, advanced once per frame.
func (l *Loop) SetScript(s *Script) {
	l.script = s
}

// Start records the start time and initialises the game. Later calls are
// no-ops.
func (l *Loop) Start(now time.Time) {
	if l.started {
		return
	}
	l.started = true
	l.start, l.prev = now, now
	l.game.Init(l.time)
}

// Finish finalises the game. Later calls are no-ops.
func (l *Loop) Finish() {
	if !l.started || l.finished {
		return
	}
	l.finished = true
	l.game.Finalize(l.time)
}

// Due reports whether at least one frame interval has passed since the
// previous frame.
func (l *Loop) Due(now time.Time) bool {
	return now.Sub(l.prev) >= l.interval
}

// Frame runs one frame at time now, regardless of the frame interval.
func (l *Loop) Frame(now time.Time) {
	if !l.started || l.quit {
		return
	}
	l.time = GameTime{
		Delta: now.Sub(l.prev).Seconds(),
		Total: now.Sub(l.start).Seconds(),
	}
	l.prev = now

	r := l.host.Renderer()
	r.Clear(l.Background)

	if l.script != nil {
		l.script.step(l)
	}
	l.processInjected()
	for !l.quit {
		e, ok := l.host.PollEvent()
		if !ok {
			break
		}
		l.deliver(e)
	}

	// A quit during delivery still finishes this frame.
	if err := l.game.Step(r, l.time); err != nil {
		l.quit = true
		if !errors.Is(err, ErrQuit) {
			l.err = err
		}
		return
	}
	r.Present()
	l.flushScreenshots()
}

func (l *Loop) deliver(e Event) {
	if e.Type == EventQuit {
		l.quit = true
		return
	}
	l.game.HandleEvent(e)
}

// Run drives the loop in real time until it quits: Start, one Frame every
// frame interval, then Finish. It returns the error that stopped the loop.
func (l *Loop) Run() error {
	if l.game == nil {
		return ErrNoGame
	}
	l.Start(l.now())
	for !l.quit {
		now := l.now()
		if !l.Due(now) {
			l.sleep(l.interval - now.Sub(l.prev))
			continue
		}
		l.Frame(now)
	}
	l.Finish()
	return l.err
}
