// Package twig is a minimal real-time 2D game runtime for [Ebitengine] and
// the terminal.
//
// Twig provides a fixed-rate game loop, a camera that maps world meters to
// screen pixels, sprite and animation drawing, and an axis-aligned box
// physics layer with sensor zones and push-apart collision resolution.
//
// # Quick start
//
// Implement [Game] and hand it to [Run], which creates a window and drives
// the loop for you:
//
//	type game struct{ world *twig.World }
//
//	func (g *game) Init(t twig.GameTime)      {}
//	func (g *game) HandleEvent(e twig.Event)  {}
//	func (g *game) Finalize(t twig.GameTime)  {}
//	func (g *game) Step(r twig.Renderer, t twig.GameTime) error {
//		g.world.Step(t.Delta)
//		twig.DrawBodies(r, twig.NewCamera(), g.world)
//		return nil
//	}
//
//	twig.Run(g, twig.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// [RunTerminal] runs the same game in a terminal through tcell, one cell per
// pixel.
//
// # World and bodies
//
// A [World] owns a fixed number of body slots, allocated from a [Pool] when
// the world is created. [World.NewBody] fails with [ErrPoolExhausted] once
// every slot is used. Bodies are kept in creation order, which is also the
// order pairs are tested in.
//
//	w, _ := twig.NewWorld(twig.DefaultWorldConfig())
//	player, _ := w.NewBody(twig.BodyDef{
//		Position: twig.Vec2{X: 2, Y: 2},
//		Size:     twig.Vec2{X: 1, Y: 1},
//		Filter:   twig.FilterAll,
//		Type:     twig.BodyDynamic,
//	})
//
// The world uses a y-up coordinate system in meters; a body's position is
// the bottom-left corner of its hitbox.
//
// # Collision
//
// Every [World.Step] integrates velocities and then tests every pair whose
// [CollisionFilter] values accept each other. Sensor overlaps produce touch
// notifications; hitbox overlaps are pushed apart along one axis according
// to the two bodies' [BodyType]. Register a [ContactHandler] (or
// [ContactFuncs]) to react, or a [ContactSink] such as [ContactQueue] to
// consume events after the step. Handlers may delete bodies; deletion is
// deferred until the step ends.
//
// # Camera
//
// [Camera.Unproject] maps a world rectangle to a screen rectangle at a given
// pixels-per-meter density. [Camera.Follow], [Camera.Jail] and
// [Camera.ScrollTo] move the camera.
//
// # Assets
//
// [Loader] loads textures from an [io/fs.FS] below a search path. [Atlas]
// reads TexturePacker JSON and builds [Sprite] and [Animation] values.
//
// # Configuration
//
// [LoadConfig] reads a YAML file describing the window, physics and loader
// settings. [Config.World] and [Config.Run] convert it to the settings
// structs used above.
//
// # Debugging
//
// [World.SetDebugMode] logs per-step timing and panics on use of deleted
// bodies. [Loop.Screenshot] and [LoadScript] support headless, scripted
// runs.
//
// [Ebitengine]: https://ebitengine.org
package twig
