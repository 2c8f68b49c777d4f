// Package gfx draws and runs a marquee scene with Ebitengine.
package gfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/marquee"
)

// RunConfig configures the window and loop created by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Background marquee.Color
	Font       *Font
	// ShowFPS overlays the actual FPS and TPS in the top-left corner.
	ShowFPS bool
	// ScreenshotDir receives PNGs requested through Game.Screenshot.
	// Defaults to "screenshots".
	ScreenshotDir string
	Debug         bool
}

// Game adapts a marquee.Scene to ebiten.Game. Use Run unless you need to
// embed the scene in your own game.
type Game struct {
	scene    *marquee.Scene
	renderer *Renderer
	cfg      RunConfig
	shots    screenshotQueue

	width, height int
}

// NewGame wraps scene for Ebitengine.
func NewGame(scene *marquee.Scene, cfg RunConfig) *Game {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	scene.SetDebugMode(cfg.Debug)
	return &Game{
		scene:    scene,
		renderer: NewRenderer(cfg.Font),
		cfg:      cfg,
		shots:    screenshotQueue{dir: cfg.ScreenshotDir},
	}
}

// Renderer returns the renderer used by Draw.
func (g *Game) Renderer() *Renderer {
	return g.renderer
}

// Screenshot queues a labeled screenshot of the next drawn frame.
func (g *Game) Screenshot(label string) {
	g.shots.add(label)
}

// AttachScript attaches script to the scene and routes its screenshot steps
// to this game.
func (g *Game) AttachScript(script *marquee.Script) {
	script.OnScreenshot = g.Screenshot
	g.scene.SetScript(script)
}

// Update advances the scene by one tick.
func (g *Game) Update() error {
	return g.scene.Update(1.0 / float64(ebiten.TPS()))
}

// Draw renders the scene, the optional FPS overlay and pending screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.cfg.Background))
	g.renderer.Draw(screen, g.scene.Root())
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	g.shots.flush(screen)
}

// Layout sizes the scene root to the window so viewports sized from it follow
// window resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Root().SetSize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and runs scene until the window closes or an
// update returns an error. Engines in the scene are destroyed on return.
func Run(scene *marquee.Scene, cfg RunConfig) error {
	return RunGame(NewGame(scene, cfg))
}

// RunGame runs an already configured Game.
func RunGame(g *Game) error {
	defer g.scene.Destroy()
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	}
	if g.cfg.Title != "" {
		ebiten.SetWindowTitle(g.cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
