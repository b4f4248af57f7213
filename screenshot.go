package twig

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// DefaultScreenshotDir is where Loop writes screenshots unless
// Loop.ScreenshotDir is set.
const DefaultScreenshotDir = "screenshots"

// capturer is implemented by hosts that can read back the presented frame.
type capturer interface {
	capture() (image.Image, error)
}

// Screenshot queues a labeled screenshot to be captured after the current
// frame is presented. The resulting PNG is written to ScreenshotDir with a
// timestamped filename. Hosts that cannot read back frames ignore it.
func (l *Loop) Screenshot(label string) {
	l.screenshotQueue = append(l.screenshotQueue, label)
}

// flushScreenshots captures the presented frame for every queued label and
// writes each as a PNG file. Called at the end of Loop.Frame.
func (l *Loop) flushScreenshots() {
	if len(l.screenshotQueue) == 0 {
		return
	}
	defer func() { l.screenshotQueue = l.screenshotQueue[:0] }()

	c, ok := l.host.(capturer)
	if !ok {
		logf("screenshot: host cannot capture frames")
		return
	}
	dir := l.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logf("screenshot: mkdir %s: %v", dir, err)
		return
	}
	img, err := c.capture()
	if err != nil {
		logf("screenshot: %v", err)
		return
	}

	stamp := l.now().Format("20060102_150405")
	for _, label := range l.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			logf("screenshot: %v", err)
		}
	}
}

// premultipliedToNRGBA converts premultiplied RGBA pixels to a straight-alpha
// image.
func premultipliedToNRGBA(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// capture reads back the canvas.
func (h *ebitenHost) capture() (image.Image, error) {
	b := h.canvas.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	h.canvas.ReadPixels(pixels)
	return premultipliedToNRGBA(pixels, b.Dx(), b.Dy()), nil
}

// capture renders the screen one pixel per cell: the foreground color for
// drawn cells and the background color for blank ones.
func (h *terminalHost) capture() (image.Image, error) {
	w, ht := h.screen.Size()
	if w <= 0 || ht <= 0 {
		return nil, fmt.Errorf("terminal has no cells")
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, ht))
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			r, _, style, _ := h.screen.GetContent(x, y)
			fg, bg, _ := style.Decompose()
			c := bg
			if r != ' ' && r != 0 {
				c = fg
			}
			cr, cg, cb := c.RGB()
			if cr < 0 {
				// Default terminal color.
				cr, cg, cb = 0, 0, 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(cr), G: uint8(cg), B: uint8(cb), A: 0xFF})
		}
	}
	return img, nil
}
