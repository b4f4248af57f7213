package twig

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
	ColorRed   = Color{1, 0, 0, 1}
)

// RGBA converts c to a premultiplied color.RGBA, clamping each component
// to [0, 1].
func (c Color) RGBA() color.RGBA {
	a := clampUnit(c.A)
	return color.RGBA{
		R: unit8(clampUnit(c.R) * a),
		G: unit8(clampUnit(c.G) * a),
		B: unit8(clampUnit(c.B) * a),
		A: unit8(a),
	}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(math.Round(v * 0xFF))
}

// Vec2 is a 2D vector used for positions, sizes, velocities and accelerations.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle in world units (meters). The world is
// y-up: (X, Y) is the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Valid reports whether r has a strictly positive width and height. Invalid
// rectangles never overlap anything and are skipped by every draw call.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Overlaps reports whether r and o intersect. Rectangles that only share an
// edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if !r.Valid() || !o.Valid() {
		return false
	}
	return r.X < o.X+o.W &&
		o.X < r.X+r.W &&
		r.Y < o.Y+o.H &&
		o.Y < r.Y+r.H
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Flip selects texture mirroring when drawing sprites and animations.
// Values can be combined with bitwise OR.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << (iota - 1) // mirror around the vertical axis
	FlipVertical                          // mirror around the horizontal axis
)

// BodyType selects how a body takes part in collision resolution. A body has
// exactly one type; the values are never combined.
type BodyType uint8

const (
	BodySensor  BodyType = 1 << iota // touch events only, never moved by resolution
	BodyDynamic                      // moved by velocity and pushed by other bodies
	BodyKinetic                      // moved by velocity, pushes dynamic bodies
	BodyStatic                       // never moves during resolution
)

// String returns the lowercase name of the body type.
func (t BodyType) String() string {
	switch t {
	case BodySensor:
		return "sensor"
	case BodyDynamic:
		return "dynamic"
	case BodyKinetic:
		return "kinetic"
	case BodyStatic:
		return "static"
	default:
		return "unknown"
	}
}

// valid reports whether t is one of the four defined body types.
func (t BodyType) valid() bool {
	switch t {
	case BodySensor, BodyDynamic, BodyKinetic, BodyStatic:
		return true
	}
	return false
}

// SensorActivity is a bitmask of the sides of body A touched by body B in a
// Contact. Values can be combined with bitwise OR.
type SensorActivity uint8

const (
	SensorNone  SensorActivity = 0
	SensorAbove SensorActivity = 1 << (iota - 1) // B touches A's top side
	SensorBelow                                  // B touches A's bottom side
	SensorLeft                                   // B touches A's left side
	SensorRight                                  // B touches A's right side
)

// CollisionFilter decides which bodies may interact. Category is the set of
// groups a body belongs to; Mask is the set of groups it interacts with.
type CollisionFilter struct {
	Mask     uint16
	Category uint16
}

// FilterAll interacts with every body that also accepts category 1.
var FilterAll = CollisionFilter{Mask: 0xFFFF, Category: 1}

// CanInteract reports whether bodies with filters a and b may interact. Both
// directions must match: a's mask must accept b's category and b's mask must
// accept a's category.
func CanInteract(a, b CollisionFilter) bool {
	return a.Mask&b.Category != 0 && b.Mask&a.Category != 0
}
