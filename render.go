package twig

import "image"

// Texture is an image a Renderer can draw from. *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Renderer draws world-space shapes and textures through a Camera. Every
// rectangle call is a no-op for an invalid (non-positive size) rectangle.
type Renderer interface {
	// Clear fills the whole target with c.
	Clear(c Color)
	// SetColor sets the color used by FillRect and StrokeRect.
	SetColor(c Color)
	FillRect(cam *Camera, r Rect)
	StrokeRect(cam *Camera, r Rect)
	// DrawTexture draws the src region of tex into dest, rotated clockwise
	// by angle degrees around dest's centre and mirrored by flip.
	DrawTexture(cam *Camera, tex Texture, src image.Rectangle, dest Rect, angle float64, flip Flip)
	// Present makes the frame visible.
	Present()
}

// Debug colors used by DrawBodies.
var (
	SensorColor = ColorRed
	HitboxColor = ColorBlack
)

// DrawVisual draws a *Sprite or the current frame of an *Animation.
func DrawVisual(r Renderer, cam *Camera, v Visual) {
	if r == nil || cam == nil {
		return
	}
	switch v := v.(type) {
	case *Sprite:
		if v == nil || v.Texture == nil {
			return
		}
		r.DrawTexture(cam, v.Texture, v.Src, v.Dest, v.Angle, v.Flip)
	case *Animation:
		if v == nil || v.Texture == nil || len(v.frames) == 0 {
			return
		}
		r.DrawTexture(cam, v.Texture, v.Frame(), v.Dest, v.Angle, v.Flip)
	}
}

// DrawBodies outlines every body of w: sensors in SensorColor, hitboxes in
// HitboxColor.
func DrawBodies(r Renderer, cam *Camera, w *World) {
	if r == nil || cam == nil || w == nil {
		return
	}
	w.Each(func(b *Body) bool {
		r.SetColor(SensorColor)
		r.StrokeRect(cam, b.Sensor)
		r.SetColor(HitboxColor)
		r.StrokeRect(cam, b.Hitbox)
		return true
	})
}
