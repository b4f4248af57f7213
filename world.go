package twig

import (
	"errors"
	"fmt"
	"time"
)

// Physics defaults.
const (
	DefaultCapacity = 512 // body slots per World
	DefaultDamping  = 0.9 // velocity multiplier applied every step
	DefaultDeadZone = 0.2 // |velocity| below which an axis snaps to zero
)

// ErrPoolExhausted is returned by NewBody when every body slot is in use.
var ErrPoolExhausted = errors.New("twig: body pool exhausted")

// ErrInvalidBodyType is returned by NewBody for an unknown BodyType.
var ErrInvalidBodyType = errors.New("twig: invalid body type")

// WorldConfig configures a World. Start from DefaultWorldConfig and override
// what you need; zero values are used as given.
type WorldConfig struct {
	// Capacity is the fixed number of body slots.
	Capacity int
	// Damping multiplies every body's velocity once per step.
	Damping float64
	// DeadZone snaps a velocity axis to zero when its magnitude falls below it.
	DeadZone float64
	// IntegrateStatic makes the integrator move Static bodies by their
	// velocity like any other body. Off by default: Static bodies stay put.
	IntegrateStatic bool
}

// DefaultWorldConfig returns the default physics settings.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Capacity: DefaultCapacity,
		Damping:  DefaultDamping,
		DeadZone: DefaultDeadZone,
	}
}

// World owns every body, the pool that backs them, and the contact handlers.
// It is single-threaded: all methods must be called from the same goroutine.
type World struct {
	pool  *Pool[bodyNode]
	first int32
	last  int32
	count int
	gen   uint32

	damping         float64
	deadZone        float64
	integrateStatic bool

	handler ContactHandler
	sink    ContactSink

	// stepping is true while Step, Resolve or Each runs; deletions are
	// deferred to pending and flushed when the outermost call ends.
	stepping bool
	pending  []int32

	debug bool
	stats stepStats
}

// NewWorld creates a World with cfg.Capacity body slots.
func NewWorld(cfg WorldConfig) (*World, error) {
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	pool, err := NewPool(make([]bodyNode, cfg.Capacity))
	if err != nil {
		return nil, fmt.Errorf("twig: new world: %w", err)
	}
	return &World{
		pool:            pool,
		first:           noSlot,
		last:            noSlot,
		damping:         cfg.Damping,
		deadZone:        cfg.DeadZone,
		integrateStatic: cfg.IntegrateStatic,
		handler:         ContactFuncs{},
	}, nil
}

// SetDamping sets the velocity damping factor applied every step.
func (w *World) SetDamping(damping float64) {
	w.damping = damping
}

// SetDeadZone sets the velocity dead zone.
func (w *World) SetDeadZone(v float64) {
	w.deadZone = v
}

// SetIntegrateStatic controls whether Static bodies are moved by velocity.
func (w *World) SetIntegrateStatic(enabled bool) {
	w.integrateStatic = enabled
}

// SetContactHandler installs the handler notified of touches, collisions and
// resolutions. A nil handler restores the default, which does nothing.
func (w *World) SetContactHandler(h ContactHandler) {
	if h == nil {
		h = ContactFuncs{}
	}
	w.handler = h
}

// SetContactSink installs an optional sink that receives a ContactEvent for
// every handler notification. Pass nil to remove it.
func (w *World) SetContactSink(s ContactSink) {
	w.sink = s
}

// SetDebugMode enables or disables debug mode. When enabled, use of deleted
// bodies panics and per-step timing stats are logged.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
	globalDebug = enabled
}

// Step advances the simulation by dt seconds: every body is integrated, then
// all pairs are tested and resolved once.
func (w *World) Step(dt float64) {
	var t0 time.Time
	if w.debug {
		w.stats = stepStats{bodyCount: w.count}
		t0 = time.Now()
	}

	w.integrate(dt)

	if w.debug {
		w.stats.integrateTime = time.Since(t0)
		t0 = time.Now()
	}

	w.resolve()

	if w.debug {
		w.stats.resolveTime = time.Since(t0)
		w.debugLog(w.stats)
	}
}

// Resolve runs collision detection and resolution without integrating.
func (w *World) Resolve() {
	w.resolve()
}
