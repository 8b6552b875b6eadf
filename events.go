package fractal

import "fmt"

// Event is a discrete UI interaction consumed by the Controller.
type Event interface {
	event()
}

// PrimaryClick recenters the view on the clicked point.
type PrimaryClick struct {
	At ScreenPoint
}

// PrimaryDoubleClick zooms in by ZoomStep.
type PrimaryDoubleClick struct{}

// SecondaryDoubleClick zooms out by ZoomStep.
type SecondaryDoubleClick struct{}

// Drag pans the view. Delta is the pointer movement in points since the
// previous Drag, as accumulated by the windowing layer.
type Drag struct {
	Delta ScreenPoint
}

// ParameterDrag2D is a drag over a square control bound to two scalar
// fields. ControlSize is the control's width in points.
type ParameterDrag2D struct {
	Delta       ScreenPoint
	ControlSize float64
	XRange      Range
	YRange      Range
	X, Y        Field
}

// SliderSet sets a single field from a slider.
type SliderSet struct {
	Field Field
	Value float64
}

// SetQuality selects the iteration budget tier.
type SetQuality struct {
	High bool
}

// SetFractalType switches between Julia and Mandelbrot iteration.
type SetFractalType struct {
	Type FractalType
}

// Reset restores DefaultViewState.
type Reset struct{}

// GoTo fits a named region into the viewport.
type GoTo struct {
	Region string
}

func (PrimaryClick) event()         {}
func (PrimaryDoubleClick) event()   {}
func (SecondaryDoubleClick) event() {}
func (Drag) event()                 {}
func (ParameterDrag2D) event()      {}
func (SliderSet) event()            {}
func (SetQuality) event()           {}
func (SetFractalType) event()       {}
func (Reset) event()                {}
func (GoTo) event()                 {}

// Range is a declared closed value range of a control.
type Range struct {
	Min float64
	Max float64
}

// Width returns Max - Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// Clamp limits x to the range.
func (r Range) Clamp(x float64) float64 {
	return min(max(x, r.Min), r.Max)
}

// Field names a scalar of ViewState that controls can be bound to.
type Field int

const (
	FieldZoom Field = iota
	FieldJuliaRe
	FieldJuliaIm
	FieldContrast
	FieldBrightness
	FieldGamma
	FieldRed
	FieldGreen
	FieldBlue
)

var fieldNames = [...]string{
	FieldZoom:       "zoom",
	FieldJuliaRe:    "julia_re",
	FieldJuliaIm:    "julia_im",
	FieldContrast:   "contrast",
	FieldBrightness: "brightness",
	FieldGamma:      "gamma",
	FieldRed:        "red",
	FieldGreen:      "green",
	FieldBlue:       "blue",
}

func (f Field) String() string {
	if f >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField is the inverse of Field.String.
func ParseField(s string) (Field, error) {
	for f, name := range fieldNames {
		if name == s {
			return Field(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Get returns the value of f in v.
func (v ViewState) Get(f Field) (float64, error) {
	switch f {
	case FieldZoom:
		return v.Zoom, nil
	case FieldJuliaRe:
		return v.JuliaConstant.Re, nil
	case FieldJuliaIm:
		return v.JuliaConstant.Im, nil
	case FieldContrast:
		return v.Contrast, nil
	case FieldBrightness:
		return v.Brightness, nil
	case FieldGamma:
		return v.Gamma, nil
	case FieldRed:
		return v.Color.R, nil
	case FieldGreen:
		return v.Color.G, nil
	case FieldBlue:
		return v.Color.B, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownField, f)
}

// set stores x into f. Zoom keeps its invariant.
func (v *ViewState) set(f Field, x float64) error {
	switch f {
	case FieldZoom:
		if !validZoom(x) {
			return fmt.Errorf("%w: %g", ErrInvalidZoom, x)
		}
		v.Zoom = x
	case FieldJuliaRe:
		v.JuliaConstant.Re = x
	case FieldJuliaIm:
		v.JuliaConstant.Im = x
	case FieldContrast:
		v.Contrast = x
	case FieldBrightness:
		v.Brightness = x
	case FieldGamma:
		v.Gamma = x
	case FieldRed:
		v.Color.R = x
	case FieldGreen:
		v.Color.G = x
	case FieldBlue:
		v.Color.B = x
	default:
		return fmt.Errorf("%w: %v", ErrUnknownField, f)
	}
	return nil
}
