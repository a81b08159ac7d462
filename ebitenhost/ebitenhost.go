// Package ebitenhost drives an ember.Scene from an [Ebitengine] game loop
// and draws particles as tinted quads.
//
// Ebitengine calls Update at a fixed tick rate and Draw once per displayed
// frame. Game maps these onto Scene.Tick and Scene.Frame, deriving the
// partial tick from the wall time elapsed since the last Update.
//
//	scene, _ := ember.NewScene(ember.DefaultConfig())
//	ps := scene.NewParticleSystem()
//	pos := ps.MustBind(2)
//	r := ebitenhost.NewRenderer(pos)
//	ps.AddRenderModule(r)
//	ebitenhost.Run(scene, ebitenhost.RunConfig{Title: "Sparks", Width: 640, Height: 480}, r)
//
// [Ebitengine]: https://ebitengine.org
package ebitenhost

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ember"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Background fills the screen before each frame. Nil leaves the
	// previous frame in place.
	Background color.Color
}

// Game adapts a Scene to ebiten.Game.
type Game struct {
	Scene  *ember.Scene
	Width  int
	Height int
	// Background fills the screen before each frame when non-nil.
	Background color.Color
	// OnUpdate runs before each Scene.Tick. A non-nil error stops the game.
	OnUpdate func() error
	// OnDraw runs after Scene.Frame with the screen image.
	OnDraw func(screen *ebiten.Image)

	renderers []*Renderer
	lastTick  time.Time
	now       func() time.Time
}

// NewGame creates a Game for scene. renderers receive the screen image as
// their draw target before every frame.
func NewGame(scene *ember.Scene, width, height int, renderers ...*Renderer) *Game {
	return &Game{
		Scene:     scene,
		Width:     width,
		Height:    height,
		renderers: renderers,
		now:       time.Now,
	}
}

// Update advances the scene by one logical tick.
func (g *Game) Update() error {
	if g.OnUpdate != nil {
		if err := g.OnUpdate(); err != nil {
			return err
		}
	}
	g.Scene.Tick()
	g.lastTick = g.now()
	return nil
}

// Draw advances the scene by one frame, rendering onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Background != nil {
		screen.Fill(g.Background)
	}
	for _, r := range g.renderers {
		r.SetTarget(screen)
	}

	partial := 0.0
	if !g.lastTick.IsZero() {
		partial = partialTick(g.now().Sub(g.lastTick), ebiten.TPS())
	}
	g.Scene.Frame(partial)

	for _, r := range g.renderers {
		r.SetTarget(nil)
	}
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Width <= 0 || g.Height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.Width, g.Height
}

// partialTick converts the time since the last tick into a fraction of a
// tick in [0, 1).
func partialTick(elapsed time.Duration, tps int) float64 {
	if tps <= 0 || elapsed <= 0 {
		return 0
	}
	f := elapsed.Seconds() * float64(tps)
	if f >= 1 {
		return maxPartial
	}
	return f
}

// maxPartial keeps the partial strictly below the next whole tick.
const maxPartial = 1 - 1e-9

// Run opens a window and drives scene until the window closes or an
// OnUpdate hook fails.
func Run(scene *ember.Scene, cfg RunConfig, renderers ...*Renderer) error {
	g := NewGame(scene, cfg.Width, cfg.Height, renderers...)
	g.Background = cfg.Background
	return RunGame(g, cfg)
}

// RunGame opens a window for a prepared Game.
func RunGame(g *Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	return ebiten.RunGame(g)
}
