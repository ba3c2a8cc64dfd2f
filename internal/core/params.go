package core

// ParameterControl describes an integer tunable that should be exposed on the
// HUD with -/+ buttons. Min and Max bound the value inclusively.
type ParameterControl struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// Clamp bounds v to the control's range.
func (p ParameterControl) Clamp(v int) int {
	if v < p.Min {
		return p.Min
	}
	if p.Max >= p.Min && v > p.Max {
		return p.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterGetter reads the current value of an integer parameter.
type IntParameterGetter interface {
	IntParameter(key string) (int, bool)
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
