package app

import (
	"math"
	"time"

	"lifeplane/internal/core"
	"lifeplane/internal/pattern"
	"lifeplane/internal/stats"
	"lifeplane/internal/view"
)

const (
	minInterval = 1
	maxInterval = 60

	minDensity  = 0
	maxDensity  = 100
	densityStep = 5

	// dragThreshold is how far, in pixels, the pointer may travel between
	// press and release and still count as a click.
	dragThreshold = 4

	// maxSoupSide caps the random soup so zoomed-out views stay cheap.
	maxSoupSide = 160

	historySize = 32
)

// Parameter keys exposed on the HUD.
const (
	ParamInterval = "interval"
	ParamDensity  = "density"
)

// Hashable is implemented by planes that can digest their live set.
type Hashable interface {
	Hash() uint64
}

// Controller owns the interaction policy around a plane: the running flag,
// edit gating, generation cadence and viewport. It has no ebiten dependency.
type Controller struct {
	plane   core.Plane
	view    *view.Viewport
	cadence *core.Cadence

	running bool
	width   int
	height  int
	density int

	pointerDown bool
	dragged     bool
	pressX      float64
	pressY      float64
	lastX       float64
	lastY       float64

	history *stats.History
	stats   *stats.Stats
	period  int
}

// NewController wires a controller around plane and v.
func NewController(plane core.Plane, v *view.Viewport, interval int) *Controller {
	return &Controller{
		plane:   plane,
		view:    v,
		cadence: core.NewCadence(clampInt(interval, minInterval, maxInterval)),
		density: 30,
		history: stats.NewHistory(historySize),
		stats:   stats.New(),
	}
}

// Plane exposes the read side of the simulated plane.
func (c *Controller) Plane() core.CellReader { return c.plane }

// View returns the viewport.
func (c *Controller) View() *view.Viewport { return c.view }

// Stats returns the running population statistics.
func (c *Controller) Stats() *stats.Stats { return c.stats }

// Generation returns the plane's generation counter.
func (c *Controller) Generation() int { return c.plane.Generation() }

// Period returns the oscillation period the pattern settled into, 1 for a
// still life, or 0 while it is still changing.
func (c *Controller) Period() int { return c.period }

// Resize records the current screen size in pixels.
func (c *Controller) Resize(w, h int) {
	c.width, c.height = w, h
}

// Running reports whether generations advance on the cadence.
func (c *Controller) Running() bool { return c.running }

// Start resumes the simulation.
func (c *Controller) Start() { c.running = true }

// Pause stops the simulation; edits are accepted again.
func (c *Controller) Pause() { c.running = false }

// Toggle flips between running and paused.
func (c *Controller) Toggle() { c.running = !c.running }

// StartLabel is the caption for the start button.
func (c *Controller) StartLabel() string {
	if c.running {
		return "Running"
	}
	return "Start"
}

// Reset pauses and clears the plane.
func (c *Controller) Reset() {
	c.running = false
	c.plane.Clear()
	c.stats = stats.New()
	c.resetTracking()
}

// LoadGun pauses, clears and stamps the glider gun near the top-left quarter
// of the screen.
func (c *Controller) LoadGun() {
	c.Reset()
	c.plane.Seed(pattern.GunOrigin(c.view, c.width, c.height), pattern.GosperGun)
	c.resetTracking()
}

// Randomize pauses, clears and fills a random soup around the screen centre.
func (c *Controller) Randomize(seed int64) {
	c.Reset()
	area := c.view.Visible(c.width, c.height)
	cx := area.MinX + area.Dx()/2
	cy := area.MinY + area.Dy()/2
	hw := min(area.Dx()/4, maxSoupSide/2)
	hh := min(area.Dy()/4, maxSoupSide/2)
	soup := core.NewRNG(seed).Soup(core.Rect{MinX: cx - hw, MinY: cy - hh, MaxX: cx + hw, MaxY: cy + hh}, float64(c.density)/100)
	c.plane.Seed(core.Coord{}, soup)
	c.resetTracking()
}

// Click toggles the cell under screen position (sx, sy). Clicks are ignored
// while running.
func (c *Controller) Click(sx, sy float64) bool {
	if c.running {
		return false
	}
	c.plane.Toggle(c.view.ScreenToWorld(sx, sy))
	c.resetTracking()
	return true
}

// Hover returns the cell under (sx, sy) and its live neighbor count.
func (c *Controller) Hover(sx, sy float64) (core.Coord, int) {
	cell := c.view.ScreenToWorld(sx, sy)
	return cell, c.plane.Neighbors(cell)
}

// PointerDown starts a press at (x, y).
func (c *Controller) PointerDown(x, y float64) {
	c.pointerDown = true
	c.dragged = false
	c.pressX, c.pressY = x, y
	c.lastX, c.lastY = x, y
}

// PointerMove pans the view while the pointer is held.
func (c *Controller) PointerMove(x, y float64) {
	if !c.pointerDown {
		return
	}
	c.view.Pan(x-c.lastX, y-c.lastY)
	c.lastX, c.lastY = x, y
	if math.Hypot(x-c.pressX, y-c.pressY) > dragThreshold {
		c.dragged = true
	}
}

// PointerUp ends a press. A release close to the press point is a click.
func (c *Controller) PointerUp(x, y float64) {
	if !c.pointerDown {
		return
	}
	c.PointerMove(x, y)
	c.pointerDown = false
	if !c.dragged {
		c.Click(c.pressX, c.pressY)
	}
}

// Zoom zooms at (x, y); positive wheel deltas zoom in.
func (c *Controller) Zoom(x, y, wheel float64) {
	if wheel == 0 {
		return
	}
	c.view.ZoomAt(x, y, wheel > 0)
}

// Step advances exactly one generation while paused.
func (c *Controller) Step() {
	if c.running {
		return
	}
	c.advance()
}

// Tick is called once per frame and advances a generation when running and
// the cadence fires. It reports whether a generation was computed.
func (c *Controller) Tick() bool {
	if !c.cadence.Tick() || !c.running {
		return false
	}
	c.advance()
	return true
}

// CenterOnPopulation pans to the middle of the live cells' bounding box.
func (c *Controller) CenterOnPopulation() bool {
	b, ok := c.plane.(interface{ Bounds() (core.Rect, bool) })
	if !ok {
		return false
	}
	r, ok := b.Bounds()
	if !ok {
		return false
	}
	c.view.CenterOn(core.Coord{X: r.MinX + r.Dx()/2, Y: r.MinY + r.Dy()/2}, c.width, c.height)
	return true
}

func (c *Controller) advance() {
	start := time.Now()
	c.plane.Advance()
	c.stats.Update(c.plane.Generation(), c.plane.Population(), time.Since(start))
	if h, ok := c.plane.(Hashable); ok {
		c.period = c.history.Push(h.Hash())
	}
}

func (c *Controller) resetTracking() {
	c.history.Reset()
	c.period = 0
	if h, ok := c.plane.(Hashable); ok {
		c.history.Push(h.Hash())
	}
}

// ParameterControls implements core.ParameterControlsProvider.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamInterval, Label: "Ticks / gen", Step: 1, Min: minInterval, Max: maxInterval},
		{Key: ParamDensity, Label: "Soup density %", Step: densityStep, Min: minDensity, Max: maxDensity},
	}
}

// IntParameter implements core.IntParameterGetter.
func (c *Controller) IntParameter(key string) (int, bool) {
	switch key {
	case ParamInterval:
		return c.cadence.Every(), true
	case ParamDensity:
		return c.density, true
	}
	return 0, false
}

// SetIntParameter implements core.IntParameterSetter.
func (c *Controller) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamInterval:
		c.cadence.SetEvery(clampInt(value, minInterval, maxInterval))
		return true
	case ParamDensity:
		c.density = clampInt(value, minDensity, maxDensity)
		return true
	}
	return false
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
