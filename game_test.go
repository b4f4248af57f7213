package twig

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// testGame records lifecycle calls.
type testGame struct {
	calls  []string
	times  []GameTime
	events []Event
	stepFn func(n int) error
	steps  int
}

func (g *testGame) Init(t GameTime) { g.calls = append(g.calls, "init") }

func (g *testGame) Step(r Renderer, t GameTime) error {
	g.steps++
	g.calls = append(g.calls, "step")
	g.times = append(g.times, t)
	r.FillRect(NewCamera(), Rect{W: 1, H: 1})
	if g.stepFn != nil {
		return g.stepFn(g.steps)
	}
	return nil
}

func (g *testGame) Finalize(t GameTime) { g.calls = append(g.calls, "finalize") }

func (g *testGame) HandleEvent(e Event) {
	g.calls = append(g.calls, "event "+e.Type.String())
	g.events = append(g.events, e)
}

// testHost serves queued events and records renderer calls.
type testHost struct {
	renderer recordingRenderer
	pending  []Event
}

func (h *testHost) Renderer() Renderer { return &h.renderer }

func (h *testHost) PollEvent() (Event, bool) {
	if len(h.pending) == 0 {
		return Event{}, false
	}
	e := h.pending[0]
	h.pending = h.pending[1:]
	return e, true
}

// fakeClock advances only when sleep is called or the test moves it.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Sleep(d time.Duration)   { c.now = c.now.Add(d) }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLoop(g Game, h Host, fps int) (*Loop, *fakeClock) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	l := NewLoop(g, h, fps)
	l.now = clk.Now
	l.sleep = clk.Sleep
	return l, clk
}

func TestLoopFrameOrder(t *testing.T) {
	g := &testGame{}
	h := &testHost{pending: []Event{{Type: EventKeyDown, Key: KeyLeft}, {Type: EventKeyUp, Key: KeyLeft}}}
	l, clk := newTestLoop(g, h, 10)
	l.Background = ColorWhite

	l.Start(clk.Now())
	clk.Advance(100 * time.Millisecond)
	l.Frame(clk.Now())

	wantCalls := []string{"init", "event key_down", "event key_up", "step"}
	if !equalStrings(g.calls, wantCalls) {
		t.Errorf("game calls = %v, want %v", g.calls, wantCalls)
	}
	wantRender := []string{
		fmt.Sprintf("clear %v", ColorWhite),
		fmt.Sprintf("fill %v", Rect{W: 1, H: 1}),
		"present",
	}
	if !equalStrings(h.renderer.calls, wantRender) {
		t.Errorf("renderer calls = %v, want %v", h.renderer.calls, wantRender)
	}
}

func TestLoopGameTime(t *testing.T) {
	g := &testGame{}
	l, clk := newTestLoop(g, &testHost{}, 10)
	l.Start(clk.Now())
	for _, d := range []time.Duration{100, 250, 100} {
		clk.Advance(d * time.Millisecond)
		l.Frame(clk.Now())
	}
	want := []GameTime{{0.1, 0.1}, {0.25, 0.35}, {0.1, 0.45}}
	for i, w := range want {
		got := g.times[i]
		if !approxEqual(got.Delta, w.Delta, 1e-9) || !approxEqual(got.Total, w.Total, 1e-9) {
			t.Errorf("frame %d: %+v, want %+v", i, got, w)
		}
	}
}

func TestLoopDue(t *testing.T) {
	l, clk := newTestLoop(&testGame{}, &testHost{}, 50)
	l.Start(clk.Now())
	if l.Due(clk.Now().Add(19 * time.Millisecond)) {
		t.Error("due before one frame interval")
	}
	if !l.Due(clk.Now().Add(20 * time.Millisecond)) {
		t.Error("not due after one frame interval")
	}
}

func TestLoopQuitEvent(t *testing.T) {
	g := &testGame{}
	h := &testHost{pending: []Event{{Type: EventQuit}, {Type: EventKeyDown, Key: KeySpace}}}
	l, _ := newTestLoop(g, h, 60)

	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	want := []string{"init", "step", "finalize"}
	if !equalStrings(g.calls, want) {
		t.Errorf("calls = %v, want %v", g.calls, want)
	}
	if len(h.pending) != 1 {
		t.Errorf("events after quit were drained: %v", h.pending)
	}
}

func TestLoopQuitFinishesFrame(t *testing.T) {
	g := &testGame{}
	h := &testHost{pending: []Event{{Type: EventKeyDown, Key: KeySpace}, {Type: EventQuit}}}
	l, clk := newTestLoop(g, h, 60)
	l.Start(clk.Now())
	l.Frame(clk.Now())

	wantCalls := []string{"init", "event key_down", "step"}
	if !equalStrings(g.calls, wantCalls) {
		t.Errorf("calls = %v, want %v", g.calls, wantCalls)
	}
	if n := len(h.renderer.calls); n == 0 || h.renderer.calls[n-1] != "present" {
		t.Errorf("renderer calls = %v, want a trailing present", h.renderer.calls)
	}
	if !l.Done() {
		t.Error("loop still running after quit event")
	}

	// No further frames run.
	l.Frame(clk.Now())
	if g.steps != 1 {
		t.Errorf("steps = %d, want 1", g.steps)
	}
}

func TestLoopRunStepQuit(t *testing.T) {
	g := &testGame{stepFn: func(n int) error {
		if n == 3 {
			return ErrQuit
		}
		return nil
	}}
	l, clk := newTestLoop(g, &testHost{}, 60)
	start := clk.Now()

	if err := l.Run(); err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if g.steps != 3 {
		t.Errorf("steps = %d, want 3", g.steps)
	}
	if g.calls[len(g.calls)-1] != "finalize" {
		t.Errorf("last call = %q, want finalize", g.calls[len(g.calls)-1])
	}
	// Every frame waited for a full interval.
	if elapsed := clk.Now().Sub(start); elapsed < 3*(time.Second/60) {
		t.Errorf("elapsed = %v, want at least three frame intervals", elapsed)
	}
}

func TestLoopRunStepError(t *testing.T) {
	boom := errors.New("boom")
	g := &testGame{stepFn: func(int) error { return boom }}
	l, _ := newTestLoop(g, &testHost{}, 60)
	if err := l.Run(); !errors.Is(err, boom) {
		t.Errorf("Run = %v, want boom", err)
	}
	if !equalStrings(g.calls, []string{"init", "step", "finalize"}) {
		t.Errorf("calls = %v", g.calls)
	}
}

func TestLoopQuitMethod(t *testing.T) {
	g := &testGame{}
	g.stepFn = func(n int) error { return nil }
	h := &testHost{}
	l, clk := newTestLoop(g, h, 60)
	l.Start(clk.Now())
	l.Frame(clk.Now().Add(time.Second))
	l.Quit()
	l.Frame(clk.Now().Add(2 * time.Second))
	if g.steps != 1 || !l.Done() {
		t.Errorf("steps = %d, done = %v", g.steps, l.Done())
	}
	l.Finish()
	l.Finish()
	if n := len(g.calls); g.calls[n-1] != "finalize" || g.calls[n-2] == "finalize" {
		t.Errorf("calls = %v, want a single trailing finalize", g.calls)
	}
}

func TestLoopInjectOnePerFrame(t *testing.T) {
	g := &testGame{}
	l, clk := newTestLoop(g, &testHost{}, 60)
	l.Start(clk.Now())
	l.Inject(Event{Type: EventKeyDown, Key: KeyUp})
	l.Inject(Event{Type: EventKeyUp, Key: KeyUp})

	l.Frame(clk.Now())
	if len(g.events) != 1 || g.events[0].Type != EventKeyDown {
		t.Fatalf("frame 1 events = %+v", g.events)
	}
	l.Frame(clk.Now())
	if len(g.events) != 2 || g.events[1].Type != EventKeyUp {
		t.Fatalf("frame 2 events = %+v", g.events)
	}
}

func TestLoopNilGame(t *testing.T) {
	l := NewLoop(nil, &testHost{}, 60)
	if err := l.Run(); !errors.Is(err, ErrNoGame) {
		t.Errorf("Run = %v, want ErrNoGame", err)
	}
}

func TestFrameBeforeStartIgnored(t *testing.T) {
	g := &testGame{}
	l, clk := newTestLoop(g, &testHost{}, 60)
	l.Frame(clk.Now())
	if len(g.calls) != 0 {
		t.Errorf("calls = %v, want none", g.calls)
	}
}
