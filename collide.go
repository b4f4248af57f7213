package twig

import "math"

// resolve tests every pair of bodies once, in list order, and pushes
// overlapping hitboxes apart according to their body types.
func (w *World) resolve() {
	defer w.deferDeletes()()

	for i := w.first; i != noSlot; i = w.node(i).next {
		a := &w.node(i).body
		if a.dying {
			continue
		}
		for j := w.node(i).next; j != noSlot; j = w.node(j).next {
			b := &w.node(j).body
			if b.dying {
				continue
			}
			w.collidePair(a, b)
			if a.dying {
				break
			}
		}
	}
}

// collidePair runs the touch, collide and resolve sequence for one pair.
func (w *World) collidePair(a, b *Body) {
	if !CanInteract(a.Filter, b.Filter) {
		return
	}
	w.stats.pairCount++

	if a.Type == BodySensor || b.Type == BodySensor {
		w.notify(ContactTouch, Contact{A: a, B: b, Activity: sensorActivity(a.Sensor, b.Sensor)})
		return
	}

	if a.Hitbox.Overlaps(b.Sensor) {
		w.notify(ContactTouch, Contact{A: a, B: b, Activity: sensorActivity(a.Hitbox, b.Sensor)})
	} else if a.Sensor.Overlaps(b.Hitbox) {
		w.notify(ContactTouch, Contact{A: a, B: b, Activity: sensorActivity(a.Sensor, b.Hitbox)})
	}
	if a.dying || b.dying {
		return
	}

	if !a.Hitbox.Overlaps(b.Hitbox) {
		return
	}

	shift := resolveAxis(a.Hitbox, b.Hitbox)
	c := Contact{A: a, B: b, Activity: sensorActivity(a.Hitbox, b.Hitbox)}

	w.notify(ContactCollide, c)
	if a.dying || b.dying {
		return
	}

	separate(a, b, shift)
	w.notify(ContactResolve, c)
}

// separate applies the positional correction for a hard overlap. shift is
// the translation that moves a out of b.
//
//	dynamic vs dynamic  both move half the shift
//	dynamic vs other    a moves the full shift
//	kinetic vs dynamic  b moves the full shift
//	kinetic vs other    a moves the full shift
//	static  vs static   nothing moves
//	static  vs other    b moves the full shift
func separate(a, b *Body, shift Vec2) {
	switch a.Type {
	case BodyDynamic:
		if b.Type == BodyDynamic {
			half := shift.Scale(0.5)
			a.Translate(half)
			b.Translate(half.Scale(-1))
		} else {
			a.Translate(shift)
		}
	case BodyKinetic:
		if b.Type == BodyDynamic {
			b.Translate(shift.Scale(-1))
		} else {
			a.Translate(shift)
		}
	case BodyStatic:
		if b.Type != BodyStatic {
			b.Translate(shift.Scale(-1))
		}
	}
}

// resolveAxis returns the single-axis translation that separates a from b.
// Each axis gets the signed depth needed to push a away from the side b
// comes from; the axis with the larger depth is zeroed. When both depths are
// equal x is zeroed and the correction happens on y. An axis on which both
// rectangles start at the same coordinate has no approach side, so the other
// axis is used.
func resolveAxis(a, b Rect) Vec2 {
	dx, alignedX := axisDepth(a.X, a.W, b.X, b.W)
	dy, alignedY := axisDepth(a.Y, a.H, b.Y, b.H)

	switch {
	case alignedX && !alignedY:
		return Vec2{0, dy}
	case alignedY && !alignedX:
		return Vec2{dx, 0}
	case math.Abs(dx) >= math.Abs(dy):
		return Vec2{0, dy}
	default:
		return Vec2{dx, 0}
	}
}

// axisDepth returns the signed penetration of segment a by segment b along
// one axis. aligned is true when both segments start at the same coordinate,
// in which case a is pushed toward negative.
func axisDepth(aPos, aLen, bPos, bLen float64) (depth float64, aligned bool) {
	switch {
	case bPos > aPos:
		return -(aPos + aLen - bPos), false
	case bPos < aPos:
		return bPos + bLen - aPos, false
	default:
		return -(aPos + aLen - bPos), true
	}
}

// sensorActivity reports which sides of a are crossed by b.
func sensorActivity(a, b Rect) SensorActivity {
	if !a.Overlaps(b) {
		return SensorNone
	}
	var act SensorActivity
	aTop, bTop := a.Y+a.H, b.Y+b.H
	aRight, bRight := a.X+a.W, b.X+b.W
	if bTop > aTop && b.Y < aTop {
		act |= SensorAbove
	}
	if b.Y < a.Y && bTop > a.Y {
		act |= SensorBelow
	}
	if b.X < a.X && bRight > a.X {
		act |= SensorLeft
	}
	if bRight > aRight && b.X < aRight {
		act |= SensorRight
	}
	return act
}
