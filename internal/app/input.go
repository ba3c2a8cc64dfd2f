package app

// PointerInput is the mouse state sampled for one frame.
type PointerInput struct {
	X, Y     int
	Pressed  bool // left button went down this frame
	Released bool // left button went up this frame
	Wheel    float64
}

// Panel is a screen region that swallows pointer input, such as the HUD.
type Panel interface {
	Contains(x, y int) bool
}

// HandlePointer applies one frame of mouse input. Presses and wheel turns over
// panel do not reach the plane; a drag already in progress keeps panning.
func (c *Controller) HandlePointer(panel Panel, in PointerInput) {
	x, y := float64(in.X), float64(in.Y)
	over := panel != nil && panel.Contains(in.X, in.Y)
	if in.Pressed && !over {
		c.PointerDown(x, y)
	}
	if c.pointerDown {
		if in.Released {
			c.PointerUp(x, y)
		} else {
			c.PointerMove(x, y)
		}
	}
	if in.Wheel != 0 && !over {
		c.Zoom(x, y, in.Wheel)
	}
}
