package twig

import (
	"image/color"
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 2, H: 2}
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"inside", Rect{X: 0.5, Y: 0.5, W: 1, H: 1}, true},
		{"partial", Rect{X: 1, Y: 1, W: 2, H: 2}, true},
		{"shared edge", Rect{X: 2, Y: 0, W: 1, H: 2}, false},
		{"shared corner", Rect{X: 2, Y: 2, W: 1, H: 1}, false},
		{"disjoint", Rect{X: 5, Y: 5, W: 1, H: 1}, false},
		{"zero width", Rect{X: 1, Y: 1, W: 0, H: 1}, false},
		{"negative height", Rect{X: 1, Y: 1, W: 1, H: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.o); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.o.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectTranslateCenter(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 4, H: 6}.Translate(Vec2{X: -1, Y: 0.5})
	if r != (Rect{X: 0, Y: 2.5, W: 4, H: 6}) {
		t.Errorf("Translate = %+v", r)
	}
	c := r.Center()
	if !approxEqual(c.X, 2, epsilon) || !approxEqual(c.Y, 5.5, epsilon) {
		t.Errorf("Center = %+v, want (2, 5.5)", c)
	}
}

func TestCanInteract(t *testing.T) {
	tests := []struct {
		name string
		a, b CollisionFilter
		want bool
	}{
		{"all", FilterAll, FilterAll, true},
		{"one way", CollisionFilter{Mask: 0x2, Category: 0x1}, CollisionFilter{Mask: 0x4, Category: 0x2}, false},
		{"both ways", CollisionFilter{Mask: 0x2, Category: 0x1}, CollisionFilter{Mask: 0x1, Category: 0x2}, true},
		{"zero mask", CollisionFilter{Mask: 0, Category: 0x1}, FilterAll, false},
		{"zero category", CollisionFilter{Mask: 0xFFFF, Category: 0}, FilterAll, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanInteract(tt.a, tt.b); got != tt.want {
				t.Errorf("CanInteract(a, b) = %v, want %v", got, tt.want)
			}
			if got := CanInteract(tt.b, tt.a); got != tt.want {
				t.Errorf("CanInteract(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want color.RGBA
	}{
		{ColorBlack, color.RGBA{0, 0, 0, 255}},
		{ColorWhite, color.RGBA{255, 255, 255, 255}},
		{Color{2, -1, 0.5, 1}, color.RGBA{255, 0, 128, 255}},
		{Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
	}
	for _, tt := range tests {
		if got := tt.c.RGBA(); got != tt.want {
			t.Errorf("%+v.RGBA() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestBodyTypeString(t *testing.T) {
	names := map[BodyType]string{
		BodySensor:  "sensor",
		BodyDynamic: "dynamic",
		BodyKinetic: "kinetic",
		BodyStatic:  "static",
		BodyType(3): "unknown",
	}
	for typ, want := range names {
		if got := typ.String(); got != want {
			t.Errorf("BodyType(%d).String() = %q, want %q", typ, got, want)
		}
	}
}

func TestFlagValues(t *testing.T) {
	if FlipHorizontal != 1 || FlipVertical != 2 {
		t.Errorf("Flip values = %d, %d", FlipHorizontal, FlipVertical)
	}
	if SensorAbove != 1 || SensorBelow != 2 || SensorLeft != 4 || SensorRight != 8 {
		t.Errorf("SensorActivity values = %d, %d, %d, %d", SensorAbove, SensorBelow, SensorLeft, SensorRight)
	}
	if BodySensor != 1 || BodyDynamic != 2 || BodyKinetic != 4 || BodyStatic != 8 {
		t.Errorf("BodyType values = %d, %d, %d, %d", BodySensor, BodyDynamic, BodyKinetic, BodyStatic)
	}
}
