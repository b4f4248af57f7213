// physics drops boxes into a walled pit and plays a short blip whenever two
// hitboxes collide hard enough. Space drops another box, r clears the pit.
// All shapes are procedural (no textures).
package main

import (
	"log"
	"math/rand/v2"

	"github.com/phanxgames/twig"
)

const (
	screenW = 960
	screenH = 540
	ppm     = 30.0

	// World size in meters.
	worldW = screenW / ppm
	worldH = screenH / ppm

	gravity    = -18.0
	startBoxes = 24
	wallThick  = 1.0

	// Minimum closing speed, in m/s, that makes a sound.
	blipSpeed = 4.0
)

var (
	bgColor    = twig.Color{R: 0.09, G: 0.1, B: 0.13, A: 1}
	wallColor  = twig.Color{R: 0.35, G: 0.37, B: 0.42, A: 1}
	boxColor   = twig.Color{R: 0.31, G: 0.7, B: 1, A: 1}
	flashColor = twig.Color{R: 1, G: 0.85, B: 0.3, A: 1}
)

type game struct {
	world  *twig.World
	cam    *twig.Camera
	rng    *rand.Rand
	sound  *blipper
	flash  map[twig.BodyID]int
	walls  []twig.Rect
	blipOK bool
}

func newGame(sound *blipper) (*game, error) {
	cfg := twig.DefaultWorldConfig()
	cfg.Damping = 0.995
	w, err := twig.NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	g := &game{
		world: w,
		cam:   twig.NewCamera(),
		rng:   rand.New(rand.NewPCG(1, 2)),
		sound: sound,
		flash: make(map[twig.BodyID]int),
	}
	w.SetContactHandler(twig.ContactFuncs{Collide: g.onCollide})
	return g, nil
}

func (g *game) Init(t twig.GameTime) {
	g.walls = []twig.Rect{
		{X: 0, Y: 0, W: worldW, H: wallThick},
		{X: 0, Y: 0, W: wallThick, H: worldH},
		{X: worldW - wallThick, Y: 0, W: wallThick, H: worldH},
	}
	for _, r := range g.walls {
		if _, err := g.world.NewBody(twig.BodyDef{
			Position: twig.Vec2{X: r.X, Y: r.Y},
			Size:     twig.Vec2{X: r.W, Y: r.H},
			Filter:   twig.FilterAll,
			Type:     twig.BodyStatic,
		}); err != nil {
			log.Printf("wall: %v", err)
		}
	}
	for range startBoxes {
		g.dropBox()
	}
}

func (g *game) dropBox() {
	size := 0.6 + g.rng.Float64()*1.2
	x := wallThick + g.rng.Float64()*(worldW-2*wallThick-size)
	y := worldH*0.5 + g.rng.Float64()*worldH*0.4
	b, err := g.world.NewBody(twig.BodyDef{
		Position: twig.Vec2{X: x, Y: y},
		Size:     twig.Vec2{X: size, Y: size},
		Filter:   twig.FilterAll,
		Type:     twig.BodyDynamic,
	})
	if err != nil {
		log.Printf("box: %v", err)
		return
	}
	b.Velocity = twig.Vec2{X: (g.rng.Float64() - 0.5) * 6}
}

func (g *game) clearBoxes() {
	g.world.Each(func(b *twig.Body) bool {
		if b.Type == twig.BodyDynamic {
			g.world.DeleteBody(b)
		}
		return true
	})
	clear(g.flash)
}

func (g *game) onCollide(c twig.Contact) {
	dv := c.A.Velocity.Add(c.B.Velocity.Scale(-1))
	if dv.X*dv.X+dv.Y*dv.Y < blipSpeed*blipSpeed {
		return
	}
	g.flash[c.A.ID()] = 8
	g.flash[c.B.ID()] = 8
	if g.blipOK {
		g.sound.play(220 + g.rng.Float64()*440)
		g.blipOK = false
	}
}

func (g *game) HandleEvent(e twig.Event) {
	if e.Type != twig.EventKeyDown {
		return
	}
	switch {
	case e.Key == twig.KeySpace:
		g.dropBox()
	case e.Key == twig.KeyRune && e.Rune == 'r':
		g.clearBoxes()
	}
}

func (g *game) Step(r twig.Renderer, t twig.GameTime) error {
	g.blipOK = true
	g.world.Each(func(b *twig.Body) bool {
		b.Accelerate(twig.Vec2{Y: gravity}, t.Delta)
		return true
	})
	g.world.Step(t.Delta)

	r.SetColor(wallColor)
	for _, w := range g.walls {
		r.FillRect(g.cam, w)
	}
	g.world.Each(func(b *twig.Body) bool {
		if b.Type != twig.BodyDynamic {
			return true
		}
		id := b.ID()
		if n := g.flash[id]; n > 0 {
			r.SetColor(flashColor)
			if n == 1 {
				delete(g.flash, id)
			} else {
				g.flash[id] = n - 1
			}
		} else {
			r.SetColor(boxColor)
		}
		r.FillRect(g.cam, b.Hitbox)
		return true
	})
	return nil
}

func (g *game) Finalize(t twig.GameTime) {
	g.sound.close()
}

func main() {
	g, err := newGame(newBlipper())
	if err != nil {
		log.Fatal(err)
	}
	if err := twig.Run(g, twig.RunConfig{
		Title:      "twig: physics",
		Width:      screenW,
		Height:     screenH,
		PPM:        ppm,
		Background: bgColor,
		ShowFPS:    true,
	}); err != nil {
		log.Fatal(err)
	}
}
