package twig

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML file layout accepted by LoadConfig. Zero values fall
// back to the defaults of DefaultConfig.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Loader     LoaderConfig     `yaml:"loader"`
	Background BackgroundConfig `yaml:"background"`
}

// WindowConfig is the window section: title, size, frame rate and pixels
// per meter.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FPS    int     `yaml:"fps"`
	PPM    float64 `yaml:"ppm"`
}

// PhysicsConfig is the physics section, converted by Config.World.
type PhysicsConfig struct {
	Capacity        int     `yaml:"capacity"`
	Damping         float64 `yaml:"damping"`
	DeadZone        float64 `yaml:"dead_zone"`
	IntegrateStatic bool    `yaml:"integrate_static"`
}

// LoaderConfig holds the texture search path used by Config.NewLoader.
type LoaderConfig struct {
	SearchPath string `yaml:"search_path"`
}

// BackgroundConfig is an RGBA clear color. A nil channel keeps the default,
// so an explicit 0 is preserved.
type BackgroundConfig struct {
	R *int `yaml:"r"`
	G *int `yaml:"g"`
	B *int `yaml:"b"`
	A *int `yaml:"a"`
}

// Defaults for the window section.
const (
	DefaultTitle  = "twig"
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultPPM    = 32
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	var c Config
	c.applyDefaults()
	return c
}

func intPtr(v int) *int { return &v }

func (c *Config) applyDefaults() {
	w := &c.Window
	if w.Title == "" {
		w.Title = DefaultTitle
	}
	if w.Width <= 0 {
		w.Width = DefaultWidth
	}
	if w.Height <= 0 {
		w.Height = DefaultHeight
	}
	if w.FPS <= 0 {
		w.FPS = DefaultFPS
	}
	if w.PPM <= 0 {
		w.PPM = DefaultPPM
	}
	p := &c.Physics
	if p.Capacity <= 0 {
		p.Capacity = DefaultCapacity
	}
	if p.Damping <= 0 {
		p.Damping = DefaultDamping
	}
	if p.DeadZone <= 0 {
		p.DeadZone = DefaultDeadZone
	}
	bg := &c.Background
	for _, ch := range []**int{&bg.R, &bg.G, &bg.B} {
		if *ch == nil {
			*ch = intPtr(0)
		}
	}
	if bg.A == nil {
		bg.A = intPtr(255)
	}
}

// LoadConfig parses YAML configuration data and fills unset fields with
// defaults.
func LoadConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("twig: parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	c.applyDefaults()
	return c, nil
}

// LoadConfigFile reads and parses the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("twig: read config: %w", err)
	}
	return LoadConfig(data)
}

func (c *Config) validate() error {
	if d := c.Physics.Damping; d < 0 || d > 1 {
		return fmt.Errorf("twig: config: physics.damping %v out of range [0, 1]", d)
	}
	bg := c.Background
	for name, ch := range map[string]*int{"r": bg.R, "g": bg.G, "b": bg.B, "a": bg.A} {
		if ch != nil && (*ch < 0 || *ch > 255) {
			return fmt.Errorf("twig: config: background.%s %d out of range [0, 255]", name, *ch)
		}
	}
	return nil
}

// BackgroundColor returns the configured clear color.
func (c Config) BackgroundColor() Color {
	get := func(p *int, def int) float64 {
		if p == nil {
			return float64(def) / 0xFF
		}
		return float64(*p) / 0xFF
	}
	bg := c.Background
	return Color{R: get(bg.R, 0), G: get(bg.G, 0), B: get(bg.B, 0), A: get(bg.A, 255)}
}

// World returns the physics section as a WorldConfig.
func (c Config) World() WorldConfig {
	return WorldConfig{
		Capacity:        c.Physics.Capacity,
		Damping:         c.Physics.Damping,
		DeadZone:        c.Physics.DeadZone,
		IntegrateStatic: c.Physics.IntegrateStatic,
	}
}

// Run returns the window and background sections as a RunConfig.
func (c Config) Run() RunConfig {
	return RunConfig{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		FPS:        c.Window.FPS,
		PPM:        c.Window.PPM,
		Background: c.BackgroundColor(),
	}
}

// NewLoader returns a loader over fsys using the configured search path.
func (c Config) NewLoader(fsys fs.FS) *Loader {
	l := NewLoader(fsys)
	l.SetSearchPath(c.Loader.SearchPath)
	return l
}
