//go:build ebiten

package app

import (
	"time"

	"lifeplane/internal/render"
	"lifeplane/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	seed int64
}

// New constructs a Game for the provided controller.
func New(ctrl *Controller, seed int64) *Game {
	return &Game{
		ctrl:    ctrl,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(ctrl),
		overlay: ui.NewOverlay(ctrl),
		seed:    seed,
	}
}

// Update handles per-frame input and advances the simulation on its cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctrl.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.ctrl.LoadGun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctrl.Randomize(g.seed)
		g.seed = time.Now().UnixNano()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.CenterOnPopulation()
	}

	g.updatePointer()
	g.overlay.Update()
	g.ctrl.Tick()
	return nil
}

func (g *Game) updatePointer() {
	if g.hud.Update() {
		return
	}
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	g.ctrl.HandlePointer(g.hud, PointerInput{
		X:        mx,
		Y:        my,
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Wheel:    wy,
	})
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.ctrl.View(), g.ctrl.Plane())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size so the plane fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctrl.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
