package twig

// Body is one physically simulated entity. Bodies live inside a World's pool;
// the *Body returned by NewBody is borrowed and stays valid until DeleteBody.
// Slots are reused, so a deleted *Body must not be kept: hold a BodyID for
// references that may outlive the body.
type Body struct {
	// Hitbox is the solid collision rectangle.
	Hitbox Rect
	// Sensor is the hitbox grown by the sensor padding on every side. It only
	// produces touch events and moves together with the hitbox.
	Sensor Rect
	// Velocity in world units per second.
	Velocity Vec2
	Filter   CollisionFilter
	Type     BodyType
	// Data is an opaque payload for the application, e.g. an entity id.
	Data uint16

	world *World
	slot  int32
	gen   uint32
	dying bool
}

// BodyDef describes a body to create.
type BodyDef struct {
	// Position is the bottom-left corner of the hitbox.
	Position Vec2
	Size     Vec2
	// SensorPadding grows the sensor rectangle on each side.
	SensorPadding Vec2
	Filter        CollisionFilter
	Type          BodyType
	Data          uint16
}

// BodyID is a generation-checked reference to a body. The zero BodyID never
// refers to a body.
type BodyID struct {
	slot int32
	gen  uint32
}

// IsZero reports whether id is the zero BodyID.
func (id BodyID) IsZero() bool {
	return id.gen == 0
}

// bodyNode is a pool slot: a body plus its list links.
type bodyNode struct {
	body Body
	prev int32
	next int32
}

// ID returns the generation-checked reference for b.
func (b *Body) ID() BodyID {
	if b == nil || b.world == nil {
		return BodyID{}
	}
	return BodyID{slot: b.slot, gen: b.gen}
}

// Live reports whether b is still in its World. Bodies deleted during a step
// report false immediately.
func (b *Body) Live() bool {
	return b != nil && b.world != nil && !b.dying
}

// Position returns the bottom-left corner of the hitbox.
func (b *Body) Position() Vec2 {
	return Vec2{b.Hitbox.X, b.Hitbox.Y}
}

// SetPosition moves the hitbox to p and the sensor along with it.
func (b *Body) SetPosition(p Vec2) {
	b.Translate(Vec2{p.X - b.Hitbox.X, p.Y - b.Hitbox.Y})
}

// Translate moves the hitbox and sensor by d.
func (b *Body) Translate(d Vec2) {
	b.Hitbox = b.Hitbox.Translate(d)
	b.Sensor = b.Sensor.Translate(d)
}

// NewBody allocates a body from the pool and appends it to the end of the
// body list. It returns ErrPoolExhausted when every slot is in use and
// ErrInvalidBodyType when def.Type is not one of the four body types.
func (w *World) NewBody(def BodyDef) (*Body, error) {
	if !def.Type.valid() {
		return nil, ErrInvalidBodyType
	}
	i, ok := w.pool.Alloc()
	if !ok {
		logf("new body: pool exhausted (%d slots)", w.pool.Cap())
		return nil, ErrPoolExhausted
	}

	w.gen++
	if w.gen == 0 {
		w.gen = 1
	}

	n := w.pool.Slot(i)
	pad := def.SensorPadding
	*n = bodyNode{
		body: Body{
			Hitbox: Rect{X: def.Position.X, Y: def.Position.Y, W: def.Size.X, H: def.Size.Y},
			Sensor: Rect{
				X: def.Position.X - pad.X,
				Y: def.Position.Y - pad.Y,
				W: def.Size.X + 2*pad.X,
				H: def.Size.Y + 2*pad.Y,
			},
			Filter: def.Filter,
			Type:   def.Type,
			Data:   def.Data,
			world:  w,
			slot:   int32(i),
			gen:    w.gen,
		},
		prev: w.last,
		next: noSlot,
	}

	if w.first == noSlot {
		w.first = int32(i)
	} else {
		w.node(w.last).next = int32(i)
	}
	w.last = int32(i)
	w.count++

	if w.debug {
		w.debugCheckBodyCount()
	}
	return &n.body, nil
}

// DeleteBody removes b from the World and returns its slot to the pool.
// Deleting nil, an already deleted body, or a body of another World is a
// no-op. During Step the removal is deferred until the step ends; b stops
// taking part in the step immediately.
func (w *World) DeleteBody(b *Body) {
	if b == nil || b.world != w || b.dying {
		return
	}
	if w.stepping {
		b.dying = true
		w.pending = append(w.pending, b.slot)
		return
	}
	w.unlink(b.slot)
}

// unlink removes the node in slot i from the list and frees the slot.
func (w *World) unlink(i int32) {
	n := w.node(i)

	if n.prev == noSlot {
		w.first = n.next
	} else {
		w.node(n.prev).next = n.next
	}
	if n.next == noSlot {
		w.last = n.prev
	} else {
		w.node(n.next).prev = n.prev
	}

	n.prev, n.next = noSlot, noSlot
	n.body.world = nil
	n.body.dying = false
	w.pool.Free(int(i))
	w.count--
}

// deferDeletes makes DeleteBody mark bodies instead of freeing them until
// the returned func is called. Nested calls leave the flush to the
// outermost one.
func (w *World) deferDeletes() (end func()) {
	if w.stepping {
		return func() {}
	}
	w.stepping = true
	return func() {
		w.stepping = false
		w.flushPending()
	}
}

// flushPending frees bodies deleted during a step.
func (w *World) flushPending() {
	for _, i := range w.pending {
		w.unlink(i)
	}
	w.pending = w.pending[:0]
}

// node returns the list node in slot i.
func (w *World) node(i int32) *bodyNode {
	return w.pool.Slot(int(i))
}

// Lookup resolves id to its body. It returns false when the body has been
// deleted, even if its slot has since been reused.
func (w *World) Lookup(id BodyID) (*Body, bool) {
	if id.IsZero() || id.slot < 0 || int(id.slot) >= w.pool.Cap() {
		return nil, false
	}
	b := &w.node(id.slot).body
	if b.world != w || b.gen != id.gen || b.dying {
		return nil, false
	}
	return b, true
}

// Each calls fn for every live body in list order until fn returns false.
// fn may delete any body; deleted bodies are skipped and freed when Each
// returns.
func (w *World) Each(fn func(b *Body) bool) {
	defer w.deferDeletes()()
	for i := w.first; i != noSlot; {
		n := w.node(i)
		i = n.next
		if n.body.dying {
			continue
		}
		if !fn(&n.body) {
			return
		}
	}
}

// Len returns the number of bodies in the World, including bodies deleted
// during the current step.
func (w *World) Len() int {
	return w.count
}

// Cap returns the number of body slots.
func (w *World) Cap() int {
	return w.pool.Cap()
}

// Clear deletes every body.
func (w *World) Clear() {
	if w.stepping {
		w.Each(func(b *Body) bool {
			w.DeleteBody(b)
			return true
		})
		return
	}
	for w.first != noSlot {
		w.unlink(w.first)
	}
	w.pending = w.pending[:0]
}
