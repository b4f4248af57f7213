package twig

// Accelerate adds acceleration*dt to the body's velocity. Only Dynamic and
// Kinetic bodies accelerate; Sensor and Static bodies ignore the call.
func (b *Body) Accelerate(acceleration Vec2, dt float64) {
	if b == nil {
		return
	}
	if b.world == nil {
		if globalDebug {
			debugCheckDeleted(b, "Accelerate")
		}
		return
	}
	if b.Type != BodyDynamic && b.Type != BodyKinetic {
		return
	}
	b.Velocity = b.Velocity.Add(acceleration.Scale(dt))
}

// integrate moves every body by its velocity, then damps the velocity and
// snaps axes inside the dead zone to zero.
func (w *World) integrate(dt float64) {
	for i := w.first; i != noSlot; {
		n := w.node(i)
		i = n.next

		b := &n.body
		if b.Type == BodyStatic && !w.integrateStatic {
			continue
		}
		b.Translate(b.Velocity.Scale(dt))
		b.Velocity = dampen(b.Velocity, w.damping, w.deadZone)
	}
}

// dampen scales v by damping and zeroes each axis whose magnitude is below
// deadZone.
func dampen(v Vec2, damping, deadZone float64) Vec2 {
	v = v.Scale(damping)
	if v.X < deadZone && v.X > -deadZone {
		v.X = 0
	}
	if v.Y < deadZone && v.Y > -deadZone {
		v.Y = 0
	}
	return v
}
