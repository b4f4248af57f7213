package twig

// Contact describes an interaction between two bodies. It is only valid for
// the duration of the handler call; the bodies may be deleted afterwards.
type Contact struct {
	A, B *Body
	// Activity is the set of A's sides touched by B.
	Activity SensorActivity
}

// ContactHandler receives contact notifications during World.Step.
//
// OnTouch fires when a sensor rectangle overlaps a hitbox, or for every
// filter-compatible pair that involves a Sensor body. OnCollide fires when two
// hitboxes overlap, before they are pushed apart; OnResolve fires after.
//
// Handlers may delete bodies. Deleted bodies stop taking part in the step and
// are freed when it ends.
type ContactHandler interface {
	OnTouch(c Contact)
	OnCollide(c Contact)
	OnResolve(c Contact)
}

// ContactFuncs adapts plain functions to ContactHandler. Nil fields are
// skipped.
type ContactFuncs struct {
	Touch   func(c Contact)
	Collide func(c Contact)
	Resolve func(c Contact)
}

// OnTouch calls f.Touch if set.
func (f ContactFuncs) OnTouch(c Contact) {
	if f.Touch != nil {
		f.Touch(c)
	}
}

// OnCollide calls f.Collide if set.
func (f ContactFuncs) OnCollide(c Contact) {
	if f.Collide != nil {
		f.Collide(c)
	}
}

// OnResolve calls f.Resolve if set.
func (f ContactFuncs) OnResolve(c Contact) {
	if f.Resolve != nil {
		f.Resolve(c)
	}
}

// ContactKind identifies which notification a ContactEvent records.
type ContactKind uint8

const (
	ContactTouch   ContactKind = iota // sensor overlap
	ContactCollide                    // hitbox overlap, before correction
	ContactResolve                    // hitbox overlap, after correction
)

// String returns the lowercase name of the kind.
func (k ContactKind) String() string {
	switch k {
	case ContactTouch:
		return "touch"
	case ContactCollide:
		return "collide"
	case ContactResolve:
		return "resolve"
	default:
		return "unknown"
	}
}

// ContactEvent is a Contact flattened for queuing. It holds BodyIDs instead
// of pointers so it can be consumed after the step; resolve them with
// World.Lookup.
type ContactEvent struct {
	Kind         ContactKind
	A, B         BodyID
	DataA, DataB uint16
	Activity     SensorActivity
}

// ContactSink receives a ContactEvent for every contact notification, in the
// order the handler sees them.
type ContactSink interface {
	EmitContact(event ContactEvent)
}

// ContactQueue is a ContactSink that buffers events until drained.
type ContactQueue struct {
	events []ContactEvent
}

// EmitContact appends event to the queue.
func (q *ContactQueue) EmitContact(event ContactEvent) {
	q.events = append(q.events, event)
}

// Drain calls fn for every queued event in order and empties the queue.
func (q *ContactQueue) Drain(fn func(ContactEvent)) {
	for _, e := range q.events {
		fn(e)
	}
	q.events = q.events[:0]
}

// Len returns the number of queued events.
func (q *ContactQueue) Len() int {
	return len(q.events)
}

// notify dispatches a contact to the handler and the sink.
func (w *World) notify(kind ContactKind, c Contact) {
	switch kind {
	case ContactTouch:
		w.stats.touchCount++
		w.handler.OnTouch(c)
	case ContactCollide:
		w.stats.collideCount++
		w.handler.OnCollide(c)
	case ContactResolve:
		w.handler.OnResolve(c)
	}
	if w.sink != nil {
		w.sink.EmitContact(ContactEvent{
			Kind:     kind,
			A:        BodyID{slot: c.A.slot, gen: c.A.gen},
			B:        BodyID{slot: c.B.slot, gen: c.B.gen},
			DataA:    c.A.Data,
			DataB:    c.B.Data,
			Activity: c.Activity,
		})
	}
}
