package twig

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
)

// ErrRegionNotFound is returned when an atlas has no region of the given name.
var ErrRegionNotFound = errors.New("twig: atlas region not found")

// Region is a named source rectangle on one atlas page.
type Region struct {
	Page int
	Rect image.Rectangle
}

// Atlas holds one or more page textures and a map of named regions.
type Atlas struct {
	// Pages contains the page textures indexed by page number.
	Pages   []Texture
	regions map[string]Region
}

// Region returns the region for the given name. Missing names are logged in
// debug mode.
func (a *Atlas) Region(name string) (Region, bool) {
	r, ok := a.regions[name]
	if !ok && globalDebug {
		logf("atlas region %q not found", name)
	}
	return r, ok
}

// Len returns the number of named regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// Sprite returns a sprite drawing the named region into dest.
func (a *Atlas) Sprite(name string, dest Rect) (*Sprite, error) {
	r, tex, err := a.lookup(name)
	if err != nil {
		return nil, err
	}
	return &Sprite{Texture: tex, Src: r.Rect, Dest: dest}, nil
}

// Animation returns an animation over the named regions in order. All
// regions must live on the same page.
func (a *Atlas) Animation(frameDuration float64, names ...string) (*Animation, error) {
	if len(names) < 2 {
		return nil, ErrTooFewFrames
	}
	frames := make([]image.Rectangle, 0, len(names))
	page := -1
	var tex Texture
	for _, name := range names {
		r, t, err := a.lookup(name)
		if err != nil {
			return nil, err
		}
		if page >= 0 && r.Page != page {
			return nil, fmt.Errorf("twig: atlas animation: region %q is on page %d, want %d", name, r.Page, page)
		}
		page, tex = r.Page, t
		frames = append(frames, r.Rect)
	}
	return NewAnimation(tex, frames, frameDuration)
}

func (a *Atlas) lookup(name string) (Region, Texture, error) {
	r, ok := a.Region(name)
	if !ok {
		return Region{}, nil, fmt.Errorf("%w: %q", ErrRegionNotFound, name)
	}
	if r.Page < 0 || r.Page >= len(a.Pages) {
		return Region{}, nil, fmt.Errorf("twig: atlas region %q references missing page %d", name, r.Page)
	}
	return r, a.Pages[r.Page], nil
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// textures. Both the hash format (single "frames" object) and the array
// format ("textures" array with per-page frame lists) are accepted.
func LoadAtlas(jsonData []byte, pages []Texture) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("twig: parse atlas: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]Region),
	}

	switch {
	case probe.Textures != nil:
		var textures []struct {
			Frames map[string]jsonFrame `json:"frames"`
		}
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("twig: parse atlas textures: %w", err)
		}
		for i, t := range textures {
			atlas.addFrames(t.Frames, i)
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("twig: parse atlas frames: %w", err)
		}
		atlas.addFrames(frames, 0)
	default:
		return nil, errors.New("twig: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonFrame struct {
	Frame struct {
		X int `json:"x"`
		Y int `json:"y"`
		W int `json:"w"`
		H int `json:"h"`
	} `json:"frame"`
}

func (a *Atlas) addFrames(frames map[string]jsonFrame, page int) {
	for name, f := range frames {
		a.regions[name] = Region{
			Page: page,
			Rect: image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H),
		}
	}
}
