// Package view maps between screen pixels and lattice coordinates.
package view

import (
	"math"

	"lifeplane/internal/core"
)

const (
	// ZoomFactor is the scale multiplier applied per wheel notch.
	ZoomFactor = 1.1
	// MinScale and MaxScale bound the pixels-per-cell zoom level.
	MinScale = 0.5
	MaxScale = 200
	// MinGridLineScale is the smallest scale at which grid lines are drawn.
	MinGridLineScale = 4
)

// Viewport holds the pan offset (in pixels) and zoom scale (pixels per cell).
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// New returns a viewport at the origin with the given scale.
func New(scale float64) *Viewport {
	v := &Viewport{Scale: 10}
	if scale > 0 {
		v.Scale = clampScale(scale)
	}
	return v
}

// ScreenToWorld returns the cell under screen position (sx, sy).
func (v *Viewport) ScreenToWorld(sx, sy float64) core.Coord {
	return core.Coord{
		X: int64(math.Floor((sx - v.OffsetX) / v.Scale)),
		Y: int64(math.Floor((sy - v.OffsetY) / v.Scale)),
	}
}

// WorldToScreen returns the top-left screen position of cell c.
func (v *Viewport) WorldToScreen(c core.Coord) (float64, float64) {
	return v.OffsetX + float64(c.X)*v.Scale, v.OffsetY + float64(c.Y)*v.Scale
}

// Pan shifts the view by a screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAt zooms in or out by ZoomFactor keeping the world point under (mx, my)
// fixed on screen.
func (v *Viewport) ZoomAt(mx, my float64, in bool) {
	wx := (mx - v.OffsetX) / v.Scale
	wy := (my - v.OffsetY) / v.Scale
	if in {
		v.Scale = clampScale(v.Scale * ZoomFactor)
	} else {
		v.Scale = clampScale(v.Scale / ZoomFactor)
	}
	v.OffsetX = mx - wx*v.Scale
	v.OffsetY = my - wy*v.Scale
}

// Visible returns the cells at least partially covered by a w*h screen.
func (v *Viewport) Visible(w, h int) core.Rect {
	return core.Rect{
		MinX: int64(math.Floor(-v.OffsetX / v.Scale)),
		MinY: int64(math.Floor(-v.OffsetY / v.Scale)),
		MaxX: int64(math.Ceil((float64(w) - v.OffsetX) / v.Scale)),
		MaxY: int64(math.Ceil((float64(h) - v.OffsetY) / v.Scale)),
	}
}

// GridLines returns the screen x positions of vertical lines and y positions
// of horizontal lines for a w*h screen. Both are nil when zoomed out past
// MinGridLineScale.
func (v *Viewport) GridLines(w, h int) (xs, ys []float64) {
	if v.Scale < MinGridLineScale {
		return nil, nil
	}
	r := v.Visible(w, h)
	for x := r.MinX; x <= r.MaxX; x++ {
		xs = append(xs, v.OffsetX+float64(x)*v.Scale)
	}
	for y := r.MinY; y <= r.MaxY; y++ {
		ys = append(ys, v.OffsetY+float64(y)*v.Scale)
	}
	return xs, ys
}

// CenterOn pans so that cell c sits in the middle of a w*h screen.
func (v *Viewport) CenterOn(c core.Coord, w, h int) {
	v.OffsetX = float64(w)/2 - (float64(c.X)+0.5)*v.Scale
	v.OffsetY = float64(h)/2 - (float64(c.Y)+0.5)*v.Scale
}

func clampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, s))
}
