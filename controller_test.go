package fractal

import (
	"errors"
	"math"
	"testing"
)

var testViewport = Viewport{Width: 800, Height: 600, Density: 2}

type unknownEvent struct{}

func (unknownEvent) event() {}

func mustApply(t *testing.T, c *Controller, ev Event, vp Viewport) {
	t.Helper()
	if err := c.Apply(ev, vp); err != nil {
		t.Fatalf("Apply(%#v) = %v", ev, err)
	}
}

func TestZoomSteps(t *testing.T) {
	c := NewController(DefaultViewState())

	mustApply(t, c, PrimaryDoubleClick{}, testViewport)
	if got := c.View().Zoom; got != 3600 {
		t.Errorf("zoom after double click = %g, want 3600", got)
	}

	mustApply(t, c, SecondaryDoubleClick{}, testViewport)
	if got := c.View().Zoom; !near(got, 3000) {
		t.Errorf("zoom after in and out = %g, want 3000", got)
	}

	mustApply(t, c, SecondaryDoubleClick{}, testViewport)
	if got := c.View().Zoom; !near(got, 2500) {
		t.Errorf("zoom after out = %g, want 2500", got)
	}
}

func TestZoomKeepsCenter(t *testing.T) {
	view := DefaultViewState()
	view.Center = Complex{Re: 0.1, Im: 0.2}
	c := NewController(view)

	mustApply(t, c, PrimaryDoubleClick{}, testViewport)
	if got := c.View().Center; got != view.Center {
		t.Errorf("center = %v, want %v", got, view.Center)
	}
}

func TestPrimaryClickRecenters(t *testing.T) {
	c := NewController(DefaultViewState())
	at := ScreenPoint{X: 500, Y: 200}
	clicked := testViewport.ToFractal(c.View(), at)

	mustApply(t, c, PrimaryClick{At: at}, testViewport)

	want := Complex{Re: -200.0 / 3000, Im: -200.0 / 3000}
	if got := c.View().Center; !nearComplex(got, want) {
		t.Errorf("center = %v, want %v", got, want)
	}
	if got := testViewport.ToFractal(c.View(), testViewport.Center()); !nearComplex(got, clicked) {
		t.Errorf("viewport center shows %v, want clicked point %v", got, clicked)
	}
}

func TestPrimaryClickAtCenterIsNoop(t *testing.T) {
	view := DefaultViewState()
	view.Center = Complex{Re: -0.5, Im: 0.25}
	c := NewController(view)

	mustApply(t, c, PrimaryClick{At: testViewport.Center()}, testViewport)
	if got := c.View(); got != view {
		t.Errorf("view = %+v, want %+v", got, view)
	}
}

func TestPrimaryClickErrors(t *testing.T) {
	c := NewController(DefaultViewState())
	before := c.View()

	if err := c.Apply(PrimaryClick{At: ScreenPoint{X: math.NaN()}}, testViewport); !errors.Is(err, ErrNoPointer) {
		t.Errorf("Apply(NaN click) = %v, want %v", err, ErrNoPointer)
	}
	if err := c.Apply(PrimaryClick{}, Viewport{}); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("Apply(click, empty viewport) = %v, want %v", err, ErrInvalidViewport)
	}
	if c.View() != before {
		t.Errorf("view changed after rejected events")
	}
}

func TestDrag(t *testing.T) {
	c := NewController(DefaultViewState())

	mustApply(t, c, Drag{Delta: ScreenPoint{X: 10, Y: -5}}, testViewport)
	want := Complex{Re: 20.0 / 3000, Im: 10.0 / 3000}
	if got := c.View().Center; !nearComplex(got, want) {
		t.Errorf("center = %v, want %v", got, want)
	}
}

func TestDragIsAdditive(t *testing.T) {
	split := NewController(DefaultViewState())
	mustApply(t, split, Drag{Delta: ScreenPoint{X: 3, Y: 4}}, testViewport)
	mustApply(t, split, Drag{Delta: ScreenPoint{X: 7, Y: -9}}, testViewport)

	whole := NewController(DefaultViewState())
	mustApply(t, whole, Drag{Delta: ScreenPoint{X: 10, Y: -5}}, testViewport)

	if a, b := split.View().Center, whole.View().Center; !nearComplex(a, b) {
		t.Errorf("two drags = %v, one drag = %v", a, b)
	}
}

func TestZeroDragIsNoop(t *testing.T) {
	c := NewController(DefaultViewState())
	// No viewport needed when nothing moves.
	mustApply(t, c, Drag{}, Viewport{})
	if c.View() != DefaultViewState() {
		t.Errorf("view = %+v, want defaults", c.View())
	}
}

func TestParameterDrag(t *testing.T) {
	c := NewController(DefaultViewState())

	mustApply(t, c, JuliaPanel().Drag(ScreenPoint{X: 10, Y: -20}, 200), testViewport)
	want := Complex{Re: -0.76 + 0.02, Im: -0.08 - 0.04}
	if got := c.View().JuliaConstant; !nearComplex(got, want) {
		t.Errorf("julia constant = %v, want %v", got, want)
	}

	mustApply(t, c, ColorPanel().Drag(ScreenPoint{X: 100, Y: 100}, 100), testViewport)
	if got := c.View(); !near(got.Contrast, 1.35) || !near(got.Brightness, 1) {
		t.Errorf("contrast, brightness = %g, %g, want 1.35, 1", got.Contrast, got.Brightness)
	}
}

func TestParameterDragIsUnclamped(t *testing.T) {
	c := NewController(DefaultViewState())
	for range 10 {
		mustApply(t, c, JuliaPanel().Drag(ScreenPoint{X: 200}, 100), testViewport)
	}
	if got := c.View().JuliaConstant.Re; !near(got, -0.76+8) {
		t.Errorf("julia re = %g, want %g", got, -0.76+8)
	}
}

func TestParameterDragRejectsBadControl(t *testing.T) {
	c := NewController(DefaultViewState())
	for _, size := range []float64{0, -1, math.NaN()} {
		err := c.Apply(JuliaPanel().Drag(ScreenPoint{X: 1}, size), testViewport)
		if !errors.Is(err, ErrInvalidControl) {
			t.Errorf("Apply(size %g) = %v, want %v", size, err, ErrInvalidControl)
		}
	}
	if c.View() != DefaultViewState() {
		t.Errorf("view changed after rejected drags")
	}
}

func TestSliderSet(t *testing.T) {
	tests := []struct {
		name  string
		ev    SliderSet
		field Field
		want  float64
	}{
		{"zoom clamps high", SliderSet{Field: FieldZoom, Value: 1e6}, FieldZoom, 5000},
		{"zoom clamps low", SliderSet{Field: FieldZoom, Value: 0}, FieldZoom, 1},
		{"zoom in range", SliderSet{Field: FieldZoom, Value: 42}, FieldZoom, 42},
		{"julia unclamped", SliderSet{Field: FieldJuliaRe, Value: 5}, FieldJuliaRe, 5},
		{"gamma unclamped", SliderSet{Field: FieldGamma, Value: -2}, FieldGamma, -2},
		{"blue", SliderSet{Field: FieldBlue, Value: 0.5}, FieldBlue, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(DefaultViewState())
			mustApply(t, c, tt.ev, testViewport)
			if got, _ := c.View().Get(tt.field); got != tt.want {
				t.Errorf("%s = %g, want %g", tt.field, got, tt.want)
			}
		})
	}
}

func TestSliderSetUnclampedZoomKeepsInvariant(t *testing.T) {
	c := NewController(DefaultViewState())
	s, _ := c.Slider(FieldZoom)
	s.ClampToDeclaredRange = false
	c.SetSlider(s)

	mustApply(t, c, SliderSet{Field: FieldZoom, Value: 1e6}, testViewport)
	if got := c.View().Zoom; got != 1e6 {
		t.Errorf("zoom = %g, want 1e6", got)
	}

	for _, bad := range []float64{0, -3, math.Inf(1), math.NaN()} {
		if err := c.Apply(SliderSet{Field: FieldZoom, Value: bad}, testViewport); !errors.Is(err, ErrInvalidZoom) {
			t.Errorf("Apply(zoom %g) = %v, want %v", bad, err, ErrInvalidZoom)
		}
	}
	if got := c.View().Zoom; got != 1e6 {
		t.Errorf("zoom after rejected sets = %g, want 1e6", got)
	}
}

func TestQualityTypeAndReset(t *testing.T) {
	c := NewController(DefaultViewState())

	mustApply(t, c, SetQuality{High: false}, testViewport)
	mustApply(t, c, SetFractalType{Type: Mandelbrot}, testViewport)
	mustApply(t, c, PrimaryDoubleClick{}, testViewport)

	got := c.View()
	if got.HighQuality || got.Type != Mandelbrot {
		t.Errorf("quality, type = %v, %v, want false, mandelbrot", got.HighQuality, got.Type)
	}

	if err := c.Apply(SetFractalType{Type: FractalType(9)}, testViewport); err == nil {
		t.Error("Apply(invalid type) = nil error")
	}

	mustApply(t, c, Reset{}, testViewport)
	if c.View() != DefaultViewState() {
		t.Errorf("view after reset = %+v, want defaults", c.View())
	}
}

func TestGoTo(t *testing.T) {
	c := NewController(DefaultViewState())
	vp := Viewport{Width: 700, Height: 500, Density: 1}

	mustApply(t, c, GoTo{Region: FullSet.Name}, vp)
	got := c.View()
	if !near(got.Zoom, 200) {
		t.Errorf("zoom = %g, want 200", got.Zoom)
	}
	if want := (Complex{Re: 0.75, Im: 0}); !nearComplex(got.Center, want) {
		t.Errorf("center = %v, want %v", got.Center, want)
	}
	if got.Type != Mandelbrot {
		t.Errorf("type = %v, want mandelbrot", got.Type)
	}

	if err := c.Apply(GoTo{Region: "atlantis"}, vp); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("Apply(unknown region) = %v, want %v", err, ErrUnknownRegion)
	}
}

func TestUnknownEvent(t *testing.T) {
	c := NewController(DefaultViewState())
	if err := c.Apply(unknownEvent{}, testViewport); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("Apply(unknown) = %v, want %v", err, ErrUnknownEvent)
	}
}

func TestViewIsSnapshot(t *testing.T) {
	c := NewController(DefaultViewState())
	snap := c.View()
	mustApply(t, c, PrimaryDoubleClick{}, testViewport)
	if snap.Zoom != 3000 {
		t.Errorf("snapshot zoom = %g, want 3000", snap.Zoom)
	}
}
