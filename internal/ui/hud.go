//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"lifeplane/internal/core"
	"lifeplane/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controls is the part of the application controller the HUD drives.
type Controls interface {
	core.ParameterControlsProvider
	core.IntParameterGetter
	core.IntParameterSetter

	Plane() core.CellReader
	Stats() *stats.Stats
	Generation() int
	Period() int
	Running() bool
	StartLabel() string
	Start()
	Pause()
	Reset()
	LoadGun()
}

// HUD renders the button bar, status and parameter controls in the top-left
// corner of the screen.
type HUD struct {
	ctrl     Controls
	buttons  []hudButton
	controls []hudControlState
	bounds   image.Rectangle

	pixel *ebiten.Image
}

type hudButton struct {
	rect   image.Rectangle
	label  func() string
	active func() bool
	action func()
}

// NewHUD constructs a HUD for the provided controller.
func NewHUD(ctrl Controls) *HUD {
	h := &HUD{ctrl: ctrl}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.buttons = []hudButton{
		{label: ctrl.StartLabel, active: ctrl.Running, action: ctrl.Start},
		{label: fixed("Pause"), active: func() bool { return !ctrl.Running() }, action: ctrl.Pause},
		{label: fixed("Reset"), action: ctrl.Reset},
		{label: fixed("Gun"), action: ctrl.LoadGun},
	}
	controls := ctrl.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, c := range controls {
		h.controls[i] = hudControlState{control: c}
	}
	h.layout()
	return h
}

func fixed(s string) func() string { return func() string { return s } }

// Contains reports whether screen point (x, y) is over the HUD panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil {
		return false
	}
	return image.Pt(x, y).In(h.bounds)
}

// Update handles clicks on HUD buttons. It reports whether the click was
// consumed so the caller does not also treat it as an edit.
func (h *HUD) Update() bool {
	if h == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return false
	}
	p := image.Pt(mx, my)
	for _, b := range h.buttons {
		if p.In(b.rect) {
			b.action()
			return true
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		if p.In(state.minusRect) {
			h.adjust(state, -1)
			return true
		}
		if p.In(state.plusRect) {
			h.adjust(state, 1)
			return true
		}
	}
	return true
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	value, ok := h.ctrl.IntParameter(state.control.Key)
	if !ok {
		return
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(value + direction*step)
	if target != value {
		h.ctrl.SetIntParameter(state.control.Key, target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	value, ok := h.ctrl.IntParameter(state.control.Key)
	if !ok {
		return false
	}
	return state.control.Clamp(value+direction*max(state.control.Step, 1)) != value
}

// Draw paints the HUD panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	h.fillRect(screen, h.bounds, color.RGBA{R: 16, G: 16, B: 20, A: 220})
	face := basicfont.Face7x13

	for _, b := range h.buttons {
		active := b.active != nil && b.active()
		h.drawButton(screen, b.rect, b.label(), true, active)
	}

	statusY := h.buttons[0].rect.Max.Y + statusSpacing
	status := fmt.Sprintf("Gen %d  Pop %d", h.ctrl.Generation(), h.ctrl.Plane().Population())
	text.Draw(screen, status, face, h.bounds.Min.X+panelPadding, statusY, labelColor)
	state := "Paused"
	if h.ctrl.Running() {
		state = "Running"
	}
	if p := h.ctrl.Period(); p == 1 {
		state += "  (still)"
	} else if p > 1 {
		state += fmt.Sprintf("  (period %d)", p)
	}
	text.Draw(screen, state, face, h.bounds.Min.X+panelPadding, statusY+statusLine, dimColor)
	st := h.ctrl.Stats()
	perf := fmt.Sprintf("Peak %d  Avg %.0f  %.0f gen/s", st.PeakPopulation, st.AveragePopulation, st.GenerationsPerSecond)
	text.Draw(screen, perf, face, h.bounds.Min.X+panelPadding, statusY+2*statusLine, dimColor)

	for i := range h.controls {
		c := &h.controls[i]
		labelY := c.top + labelBaseline
		text.Draw(screen, c.control.Label, face, h.bounds.Min.X+panelPadding, labelY, labelColor)
		value := "--"
		if v, ok := h.ctrl.IntParameter(c.control.Key); ok {
			value = strconv.Itoa(v)
		}
		bounds := text.BoundString(face, value)
		text.Draw(screen, value, face, c.minusRect.Min.X-buttonGap-bounds.Dx(), labelY, labelColor)
		h.drawButton(screen, c.minusRect, "-", h.canAdjust(c, -1), false)
		h.drawButton(screen, c.plusRect, "+", h.canAdjust(c, 1), false)
	}
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled, active bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if active {
		bg = color.RGBA{R: 40, G: 110, B: 70, A: 255}
	}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(screen, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}

func (h *HUD) fillRect(screen *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(h.pixel, op)
}

func (h *HUD) layout() {
	x := panelMargin + panelPadding
	y := panelMargin + panelPadding
	for i := range h.buttons {
		h.buttons[i].rect = image.Rect(x, y, x+buttonWidth, y+buttonHeight)
		x += buttonWidth + buttonGap
	}
	top := y + buttonHeight + statusSpacing + 2*statusLine + controlsGap
	right := panelMargin + panelWidth - panelPadding
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(right-buttonSize, buttonY, right, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
	bottom := top + len(h.controls)*lineHeight + panelPadding
	h.bounds = image.Rect(panelMargin, panelMargin, panelMargin+panelWidth, bottom)
}

type hudControlState struct {
	control core.ParameterControl

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelMargin   = 8
	panelPadding  = 10
	panelWidth    = 2*panelPadding + 4*buttonWidth + 3*buttonGap
	buttonWidth   = 56
	buttonHeight  = 24
	buttonSize    = 22
	buttonGap     = 6
	lineHeight    = 30
	labelBaseline = 19
	statusSpacing = 20
	statusLine    = 16
	controlsGap   = 6
)
