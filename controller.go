package fractal

import (
	"fmt"
	"log/slog"
)

// ZoomStep is the factor applied by one double click.
const ZoomStep = 1.2

// Slider describes a numeric input bound to one field. Sliders whose
// ClampToDeclaredRange is false accept values outside Range, so a field can
// be pushed further than the slider track shows.
type Slider struct {
	Field                Field
	Label                string
	Range                Range
	ClampToDeclaredRange bool
	Logarithmic          bool
}

// DefaultSliders returns the settings panel sliders.
func DefaultSliders() []Slider {
	return []Slider{
		{Field: FieldZoom, Label: "Zoom", Range: Range{1, 5000}, ClampToDeclaredRange: true, Logarithmic: true},
		{Field: FieldJuliaRe, Label: "Julia 1", Range: Range{-1, 1}},
		{Field: FieldJuliaIm, Label: "Julia 2", Range: Range{-1, 1}},
		{Field: FieldContrast, Label: "Contrast", Range: Range{-1, 1}},
		{Field: FieldBrightness, Label: "Brightness", Range: Range{-2, 2}},
		{Field: FieldGamma, Label: "Gamma", Range: Range{0.1, 3}},
		{Field: FieldRed, Label: "Red", Range: Range{0, 1}},
		{Field: FieldGreen, Label: "Green", Range: Range{0, 1}},
		{Field: FieldBlue, Label: "Blue", Range: Range{0, 1}},
	}
}

// Panel is a square drag control bound to two fields.
type Panel struct {
	Label  string
	XRange Range
	YRange Range
	X, Y   Field
}

// JuliaPanel fine tunes the Julia constant.
func JuliaPanel() Panel {
	return Panel{
		Label:  "Julia parameters",
		XRange: Range{-0.2, 0.2},
		YRange: Range{-0.2, 0.2},
		X:      FieldJuliaRe,
		Y:      FieldJuliaIm,
	}
}

// ColorPanel fine tunes contrast and brightness.
func ColorPanel() Panel {
	return Panel{
		Label:  "Color parameters",
		XRange: Range{-0.5, 0.5},
		YRange: Range{-0.5, 0.5},
		X:      FieldContrast,
		Y:      FieldBrightness,
	}
}

// Drag builds the event for a drag of delta points over a control of the
// given size.
func (p Panel) Drag(delta ScreenPoint, size float64) ParameterDrag2D {
	return ParameterDrag2D{
		Delta:       delta,
		ControlSize: size,
		XRange:      p.XRange,
		YRange:      p.YRange,
		X:           p.X,
		Y:           p.Y,
	}
}

// Controller is the only writer of a ViewState. It is not safe for
// concurrent use; readers take snapshots with View.
type Controller struct {
	view    ViewState
	sliders map[Field]Slider
}

// NewController returns a controller starting at view with DefaultSliders.
func NewController(view ViewState) *Controller {
	c := &Controller{
		view:    view,
		sliders: make(map[Field]Slider),
	}
	for _, s := range DefaultSliders() {
		c.sliders[s.Field] = s
	}
	return c
}

// View returns a snapshot of the current view.
func (c *Controller) View() ViewState {
	return c.view
}

// SetSlider replaces the slider configuration for s.Field.
func (c *Controller) SetSlider(s Slider) {
	c.sliders[s.Field] = s
}

// Slider returns the slider bound to f.
func (c *Controller) Slider(f Field) (Slider, bool) {
	s, ok := c.sliders[f]
	return s, ok
}

// Apply mutates the view in response to ev. vp is the viewport the event
// happened in. On error the view is left unchanged.
func (c *Controller) Apply(ev Event, vp Viewport) error {
	next, err := c.next(ev, vp)
	if err != nil {
		Logger().Warn("event rejected", slog.String("event", fmt.Sprintf("%T", ev)), slog.Any("err", err))
		return err
	}
	c.view = next
	return nil
}

func (c *Controller) next(ev Event, vp Viewport) (ViewState, error) {
	v := c.view
	log := Logger()

	switch ev := ev.(type) {
	case PrimaryDoubleClick:
		if err := v.set(FieldZoom, v.Zoom*ZoomStep); err != nil {
			return v, err
		}
		log.Debug("zoom level change", slog.Float64("from", c.view.Zoom), slog.Float64("to", v.Zoom))

	case SecondaryDoubleClick:
		if err := v.set(FieldZoom, v.Zoom/ZoomStep); err != nil {
			return v, err
		}
		log.Debug("zoom level change", slog.Float64("from", c.view.Zoom), slog.Float64("to", v.Zoom))

	case PrimaryClick:
		if err := vp.Validate(); err != nil {
			return v, err
		}
		if !ev.At.finite() {
			return v, ErrNoPointer
		}
		d := vp.Center().Sub(ev.At).Mul(vp.Density / v.Zoom)
		v.Center.Re += d.X
		v.Center.Im -= d.Y
		log.Debug("recenter", slog.Any("clicked", ev.At), slog.Any("delta", d), slog.Any("center", v.Center))

	case Drag:
		if ev.Delta == (ScreenPoint{}) {
			return v, nil
		}
		if err := vp.Validate(); err != nil {
			return v, err
		}
		if !ev.Delta.finite() {
			return v, ErrNoPointer
		}
		d := ev.Delta.Mul(vp.Density)
		v.Center.Re += d.X / v.Zoom
		v.Center.Im -= d.Y / v.Zoom
		log.Debug("dragged", slog.Any("pixels", d), slog.Any("center", v.Center))

	case ParameterDrag2D:
		if !(ev.ControlSize > 0) {
			return v, fmt.Errorf("%w: %g", ErrInvalidControl, ev.ControlSize)
		}
		if !ev.Delta.finite() {
			return v, ErrNoPointer
		}
		dx := ev.Delta.X / ev.ControlSize * ev.XRange.Width()
		dy := ev.Delta.Y / ev.ControlSize * ev.YRange.Width()
		x, err := v.Get(ev.X)
		if err != nil {
			return v, err
		}
		y, err := v.Get(ev.Y)
		if err != nil {
			return v, err
		}
		if err := v.set(ev.X, x+dx); err != nil {
			return v, err
		}
		if err := v.set(ev.Y, y+dy); err != nil {
			return v, err
		}
		log.Debug("parameter panel dragged",
			slog.Any("points", ev.Delta),
			slog.String("x", ev.X.String()), slog.Float64("dx", dx),
			slog.String("y", ev.Y.String()), slog.Float64("dy", dy))

	case SliderSet:
		x := ev.Value
		if s, ok := c.sliders[ev.Field]; ok && s.ClampToDeclaredRange {
			x = s.Range.Clamp(x)
		}
		if err := v.set(ev.Field, x); err != nil {
			return v, err
		}
		log.Debug("slider set", slog.String("field", ev.Field.String()), slog.Float64("value", x))

	case SetQuality:
		v.HighQuality = ev.High

	case SetFractalType:
		if ev.Type != Julia && ev.Type != Mandelbrot {
			return v, fmt.Errorf("fractal: invalid fractal type %v", ev.Type)
		}
		v.Type = ev.Type

	case Reset:
		v = DefaultViewState()

	case GoTo:
		r, ok := LookupRegion(ev.Region)
		if !ok {
			return v, fmt.Errorf("%w: %q", ErrUnknownRegion, ev.Region)
		}
		fitted, err := r.Fit(v, vp)
		if err != nil {
			return v, err
		}
		v = fitted
		log.Debug("go to region", slog.String("region", r.Name), slog.Any("center", v.Center), slog.Float64("zoom", v.Zoom))

	default:
		return v, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}

	return v, nil
}
