package twig

import (
	"errors"
	"image"
)

// ErrTooFewFrames is returned by NewAnimation when fewer than two frames are
// given.
var ErrTooFewFrames = errors.New("twig: animation needs at least two frames")

// Visual is something DrawVisual can render: a *Sprite or an *Animation.
// The set is closed; other types cannot implement it.
type Visual interface {
	visual()
}

// Sprite is a single texture region drawn into a world rectangle.
type Sprite struct {
	Texture Texture
	// Src is the source region in texture pixels.
	Src image.Rectangle
	// Dest is the world rectangle the region is drawn into.
	Dest Rect
	// Angle is the clockwise rotation in degrees around Dest's centre.
	Angle float64
	Flip  Flip
}

func (*Sprite) visual() {}

// Animation cycles through texture regions at a fixed frame duration.
type Animation struct {
	Texture Texture
	// Dest is the world rectangle frames are drawn into.
	Dest Rect
	// FrameDuration is the time each frame is shown, in seconds.
	FrameDuration float64
	// Angle is the clockwise rotation in degrees; AngleInc is added to it on
	// every Animate call that advances the animation.
	Angle    float64
	AngleInc float64
	Flip     Flip

	frames    []image.Rectangle
	index     int
	totalTime float64
}

func (*Animation) visual() {}

// NewAnimation creates an animation over a copy of frames, drawn into a 1×1
// rectangle at (1, 1) until Dest is set.
func NewAnimation(tex Texture, frames []image.Rectangle, frameDuration float64) (*Animation, error) {
	if len(frames) < 2 {
		return nil, ErrTooFewFrames
	}
	fs := make([]image.Rectangle, len(frames))
	copy(fs, frames)
	return &Animation{
		Texture:       tex,
		Dest:          Rect{X: 1, Y: 1, W: 1, H: 1},
		FrameDuration: frameDuration,
		frames:        fs,
	}, nil
}

// Animate selects the frame for the given total game time in seconds. If
// more than one full cycle has passed since the previous call the animation
// restarts at the first frame.
func (a *Animation) Animate(totalTime float64) {
	if a == nil || len(a.frames) == 0 {
		return
	}
	if a.FrameDuration <= 0 {
		a.index = 0
		a.totalTime = totalTime
		return
	}

	cycle := float64(len(a.frames)) * a.FrameDuration
	if totalTime-a.totalTime <= cycle {
		a.index = int(totalTime/a.FrameDuration) % len(a.frames)
		a.Angle += a.AngleInc
	} else {
		a.index = 0
	}
	a.totalTime = totalTime
}

// Index returns the current frame index.
func (a *Animation) Index() int {
	return a.index
}

// Frame returns the source region of the current frame, or the zero
// rectangle for an animation without frames.
func (a *Animation) Frame() image.Rectangle {
	if a == nil || a.index >= len(a.frames) {
		return image.Rectangle{}
	}
	return a.frames[a.index]
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}
