//go:build ebiten

package render

import (
	"image/color"

	"lifeplane/internal/core"
	"lifeplane/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws the lattice and its live cells through a viewport.
type Painter struct {
	Background color.Color
	Line       color.Color
	Cell       color.Color

	cells []core.Coord
}

// NewPainter returns a painter with a white background, light grid lines and
// black cells.
func NewPainter() *Painter {
	return &Painter{
		Background: color.White,
		Line:       color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		Cell:       color.Black,
	}
}

// Draw renders the visible part of the plane onto dst.
func (p *Painter) Draw(dst *ebiten.Image, v *view.Viewport, cells core.CellReader) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	dst.Fill(p.Background)

	xs, ys := v.GridLines(w, h)
	for _, x := range xs {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(h), 1, p.Line, false)
	}
	for _, y := range ys {
		vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1, p.Line, false)
	}

	p.cells = VisibleCells(cells, v.Visible(w, h), p.cells)
	size := float32(v.Scale)
	for _, c := range p.cells {
		sx, sy := v.WorldToScreen(c)
		vector.DrawFilledRect(dst, float32(sx), float32(sy), size, size, p.Cell, false)
	}
}
