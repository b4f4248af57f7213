package twig

import (
	"fmt"
	"io/fs"
	"strings"

	// Decoders for the formats textures are commonly shipped in.
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Loader loads textures from a file system, prefixing every name with a
// search path.
type Loader struct {
	fsys       fs.FS
	searchPath string
}

// NewLoader creates a loader reading from fsys with an empty search path.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// SetSearchPath sets the prefix applied to every loaded name. A missing
// trailing '/' is added; an empty path clears the prefix.
func (l *Loader) SetSearchPath(p string) {
	if p != "" && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	l.searchPath = p
}

// SearchPath returns the current prefix.
func (l *Loader) SearchPath() string {
	return l.searchPath
}

// Path returns the full name that Load would open for name.
func (l *Loader) Path(name string) string {
	return l.searchPath + name
}

// Load decodes the named image into a texture. Failures are logged and
// returned.
func (l *Loader) Load(name string) (*ebiten.Image, error) {
	p := l.Path(name)
	img, _, err := ebitenutil.NewImageFromFileSystem(l.fsys, p)
	if err != nil {
		logf("unable to load texture %q: %v", p, err)
		return nil, fmt.Errorf("twig: load texture %q: %w", p, err)
	}
	return img, nil
}
