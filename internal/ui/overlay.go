//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifeplane/internal/core"
	"lifeplane/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Hoverer resolves a screen point to a cell and its neighbor count.
type Hoverer interface {
	Hover(sx, sy float64) (core.Coord, int)
	View() *view.Viewport
}

// Overlay outlines the cell under the cursor and labels it with its world
// coordinate and live neighbor count. H toggles it.
type Overlay struct {
	src  Hoverer
	show bool

	cell      core.Coord
	neighbors int
	mx, my    int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src Hoverer) *Overlay {
	return &Overlay{src: src, show: true}
}

// Update refreshes the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
	o.mx, o.my = ebiten.CursorPosition()
	o.cell, o.neighbors = o.src.Hover(float64(o.mx), float64(o.my))
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	v := o.src.View()
	sx, sy := v.WorldToScreen(o.cell)
	size := float32(v.Scale)
	vector.StrokeRect(screen, float32(sx), float32(sy), size, size, 1.5, color.RGBA{R: 64, G: 164, B: 223, A: 255}, false)

	label := fmt.Sprintf("(%d, %d) n=%d", o.cell.X, o.cell.Y, o.neighbors)
	text.Draw(screen, label, basicfont.Face7x13, o.mx+12, o.my+20, color.RGBA{R: 40, G: 40, B: 60, A: 255})
}
