//go:build ebiten

package app

import (
	"particles/internal/render"
	"particles/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

var keyBindings = map[ebiten.Key]string{
	ebiten.KeyArrowUp:   "up",
	ebiten.KeyArrowDown: "down",
	ebiten.KeyS:         "s",
	ebiten.KeyW:         "w",
	ebiten.KeyC:         "c",
	ebiten.KeyE:         "e",
	ebiten.KeySpace:     " ",
	ebiten.KeyN:         "n",
	ebiten.KeyR:         "r",
	ebiten.KeyQ:         "q",
	ebiten.KeyEscape:    "esc",
}

// Game adapts the sand world to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	sprites *render.Sprites
	painter *render.SpritePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// New constructs a Game for the controller's world. The sprite table is
// attached to the world as its visual allocator.
func New(ctl *Controller, sprites *render.Sprites, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	w := ctl.World()
	w.AttachVisuals(sprites)
	return &Game{
		ctl:     ctl,
		sprites: sprites,
		painter: render.NewSpritePainter(w.State().Grid.Boundary()),
		hud:     ui.NewHUD(w, hudWidth),
		overlay: ui.NewOverlay(w, scale),
		scale:   scale,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	for key, name := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.ctl.Apply(ActionForKey(name))
		}
	}
	if g.ctl.Quit() {
		return ebiten.Termination
	}

	g.hud.Update(g.viewWidth())
	g.overlay.Update()
	g.handleMouse()

	g.ctl.Advance()
	g.hud.SetStatus(g.ctl.Status())
	return nil
}

func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.viewWidth() {
		return
	}
	size := g.ctl.World().Size()
	col, row := mx/g.scale, my/g.scale
	if col >= size.W || row >= size.H {
		return
	}
	g.ctl.PaintDisplay(col, row, right)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sprites, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.World().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

func (g *Game) viewWidth() int {
	return g.ctl.World().Size().W * g.scale
}
