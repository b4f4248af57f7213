package twig

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenRenderer draws onto an *ebiten.Image. Textures must be
// *ebiten.Image; other textures are skipped.
type EbitenRenderer struct {
	// Target is the image drawn to. The screen height used for projection is
	// read from it on every call.
	Target *ebiten.Image
	// PPM is the number of pixels per world meter.
	PPM float64

	color Color
}

// NewEbitenRenderer creates a renderer drawing to target at ppm pixels per
// meter.
func NewEbitenRenderer(target *ebiten.Image, ppm float64) *EbitenRenderer {
	return &EbitenRenderer{Target: target, PPM: ppm, color: ColorWhite}
}

// Clear fills the target with c.
func (r *EbitenRenderer) Clear(c Color) {
	if r.Target == nil {
		return
	}
	r.Target.Fill(c.RGBA())
}

// SetColor sets the color for FillRect and StrokeRect.
func (r *EbitenRenderer) SetColor(c Color) {
	r.color = c
}

// project maps a world rectangle to target pixels. ok is false when nothing
// should be drawn.
func (r *EbitenRenderer) project(cam *Camera, rect Rect) (image.Rectangle, bool) {
	if r.Target == nil || cam == nil || !rect.Valid() {
		return image.Rectangle{}, false
	}
	px := cam.Unproject(rect, r.PPM, r.Target.Bounds().Dy())
	return px, !px.Empty()
}

// FillRect draws a filled rectangle in the current color.
func (r *EbitenRenderer) FillRect(cam *Camera, rect Rect) {
	px, ok := r.project(cam, rect)
	if !ok {
		return
	}
	vector.DrawFilledRect(r.Target,
		float32(px.Min.X), float32(px.Min.Y), float32(px.Dx()), float32(px.Dy()),
		r.color.RGBA(), false)
}

// StrokeRect draws a one pixel rectangle outline in the current color.
func (r *EbitenRenderer) StrokeRect(cam *Camera, rect Rect) {
	px, ok := r.project(cam, rect)
	if !ok {
		return
	}
	vector.StrokeRect(r.Target,
		float32(px.Min.X), float32(px.Min.Y), float32(px.Dx()), float32(px.Dy()),
		1, r.color.RGBA(), false)
}

// DrawTexture draws the src region of tex into dest. An empty src draws the
// whole texture.
func (r *EbitenRenderer) DrawTexture(cam *Camera, tex Texture, src image.Rectangle, dest Rect, angle float64, flip Flip) {
	img, isImg := tex.(*ebiten.Image)
	if !isImg || img == nil {
		return
	}
	px, ok := r.project(cam, dest)
	if !ok {
		return
	}
	if src.Empty() {
		src = img.Bounds()
	}
	sub := img.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = textureGeoM(src.Dx(), src.Dy(), px, angle, flip)
	r.Target.DrawImage(sub, op)
}

// Present is a no-op: ebiten presents the frame after Draw returns.
func (r *EbitenRenderer) Present() {}

// textureGeoM builds the transform that maps a sw×sh source region onto the
// pixel rectangle dst, mirrored by flip and rotated clockwise by angle
// degrees around dst's centre.
func textureGeoM(sw, sh int, dst image.Rectangle, angle float64, flip Flip) ebiten.GeoM {
	var m ebiten.GeoM
	if sw <= 0 || sh <= 0 {
		return m
	}
	m.Translate(-float64(sw)/2, -float64(sh)/2)
	if flip&FlipHorizontal != 0 {
		m.Scale(-1, 1)
	}
	if flip&FlipVertical != 0 {
		m.Scale(1, -1)
	}
	m.Scale(float64(dst.Dx())/float64(sw), float64(dst.Dy())/float64(sh))
	if angle != 0 {
		m.Rotate(angle * math.Pi / 180)
	}
	m.Translate(float64(dst.Min.X)+float64(dst.Dx())/2, float64(dst.Min.Y)+float64(dst.Dy())/2)
	return m
}
