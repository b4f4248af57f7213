package twig

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// Terminal glyphs. One cell is one pixel.
const (
	glyphFill    = '█'
	glyphTexture = '▓'
	glyphCorner  = '+'
	glyphHLine   = '-'
	glyphVLine   = '|'
)

// TerminalRenderer draws into a tcell screen, treating every cell as a
// pixel. Textures are drawn as shaded blocks covering their destination.
type TerminalRenderer struct {
	Screen tcell.Screen
	// PPM is the number of cells per world meter.
	PPM float64

	style tcell.Style
}

// NewTerminalRenderer creates a renderer drawing to screen at ppm cells per
// meter.
func NewTerminalRenderer(screen tcell.Screen, ppm float64) *TerminalRenderer {
	return &TerminalRenderer{
		Screen: screen,
		PPM:    ppm,
		style:  tcell.StyleDefault.Foreground(tcellColor(ColorWhite)),
	}
}

// tcellColor converts c to a true-color tcell color.
func tcellColor(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(unit8(c.R)), int32(unit8(c.G)), int32(unit8(c.B)))
}

// Clear blanks every cell with background c.
func (r *TerminalRenderer) Clear(c Color) {
	r.Screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(c)))
}

// SetColor sets the foreground color for subsequent draws.
func (r *TerminalRenderer) SetColor(c Color) {
	r.style = tcell.StyleDefault.Foreground(tcellColor(c))
}

// project maps a world rectangle to cells and clips it to the screen.
// full is the unclipped rectangle.
func (r *TerminalRenderer) project(cam *Camera, rect Rect) (clipped, full image.Rectangle, ok bool) {
	if cam == nil || !rect.Valid() {
		return image.Rectangle{}, image.Rectangle{}, false
	}
	w, h := r.Screen.Size()
	full = cam.Unproject(rect, r.PPM, h)
	clipped = full.Intersect(image.Rect(0, 0, w, h))
	return clipped, full, !clipped.Empty()
}

func (r *TerminalRenderer) fill(area image.Rectangle, glyph rune) {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			r.Screen.SetContent(x, y, glyph, nil, r.style)
		}
	}
}

// FillRect fills the cells covered by rect.
func (r *TerminalRenderer) FillRect(cam *Camera, rect Rect) {
	area, _, ok := r.project(cam, rect)
	if !ok {
		return
	}
	r.fill(area, glyphFill)
}

// StrokeRect draws the border cells of rect with ASCII box characters.
func (r *TerminalRenderer) StrokeRect(cam *Camera, rect Rect) {
	area, full, ok := r.project(cam, rect)
	if !ok {
		return
	}
	left, top := full.Min.X, full.Min.Y
	right, bottom := full.Max.X-1, full.Max.Y-1
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			onV := x == left || x == right
			onH := y == top || y == bottom
			switch {
			case onV && onH:
				r.Screen.SetContent(x, y, glyphCorner, nil, r.style)
			case onH:
				r.Screen.SetContent(x, y, glyphHLine, nil, r.style)
			case onV:
				r.Screen.SetContent(x, y, glyphVLine, nil, r.style)
			}
		}
	}
}

// DrawTexture shades the cells covered by dest. Source region, rotation and
// flip cannot be represented in cells and are ignored.
func (r *TerminalRenderer) DrawTexture(cam *Camera, tex Texture, src image.Rectangle, dest Rect, angle float64, flip Flip) {
	if tex == nil {
		return
	}
	area, _, ok := r.project(cam, dest)
	if !ok {
		return
	}
	r.fill(area, glyphTexture)
}

// Present shows the drawn frame.
func (r *TerminalRenderer) Present() {
	r.Screen.Show()
}
