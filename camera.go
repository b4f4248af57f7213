package twig

import (
	"image"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps world space (meters, y-up) to screen space (pixels, y-down).
// X and Y offset the world before scaling: a camera at (-3, 0) shows the
// world point (3, 0) at the left edge of the screen.
type Camera struct {
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64

	scrollTween *scrollAnim
}

// NewCamera returns a camera at the origin with zoom 1.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Unproject converts a world rectangle to a screen rectangle for a screen
// of the given pixel height, with ppm pixels per meter. An invalid
// rectangle maps to the zero rectangle.
func (c *Camera) Unproject(r Rect, ppm float64, screenH int) image.Rectangle {
	if c == nil || !r.Valid() {
		return image.Rectangle{}
	}
	z := c.Zoom
	x := int(math.Round(z * ppm * (r.X + c.X)))
	w := int(math.Round(z * r.W * ppm))
	h := int(math.Round(z * r.H * ppm))
	y := screenH - int(math.Round(z*ppm*(r.Y+c.Y))) - h
	return image.Rect(x, y, x+w, y+h)
}

// Project converts a screen point back to world coordinates. It is the
// inverse of the corner mapping used by Unproject, without rounding.
func (c *Camera) Project(sx, sy float64, ppm float64, screenH int) Vec2 {
	s := c.Zoom * ppm
	return Vec2{
		X: sx/s - c.X,
		Y: (float64(screenH)-sy)/s - c.Y,
	}
}

// Follow moves the camera so that p sits at the centre of a view viewW by
// viewH world units wide at zoom 1.
func (c *Camera) Follow(p Vec2, viewW, viewH float64) {
	c.X = viewW/(2*c.Zoom) - p.X
	c.Y = viewH/(2*c.Zoom) - p.Y
}

// Jail moves the camera by the smallest amount that keeps p inside cage.
// cage is expressed in view units (world units scaled by Zoom, measured from
// the view's bottom-left): a cage of (2, 2, 6, 4) keeps p at least 2 units
// from the left and bottom edges of the view.
func (c *Camera) Jail(cage Rect, p Vec2) {
	if !cage.Valid() {
		return
	}
	// View-space position of p.
	z := c.Zoom
	vx := z * (p.X + c.X)
	vy := z * (p.Y + c.Y)
	switch {
	case vx < cage.X:
		c.X += (cage.X - vx) / z
	case vx > cage.X+cage.W:
		c.X -= (vx - (cage.X + cage.W)) / z
	}
	switch {
	case vy < cage.Y:
		c.Y += (cage.Y - vy) / z
	case vy > cage.Y+cage.H:
		c.Y -= (vy - (cage.Y + cage.H)) / z
	}
}

// ScrollTo animates the camera offset to (x, y) over duration seconds.
// Advance the animation with Update.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances an active scroll animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}
