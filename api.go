package fractal

import (
	"context"
)

//go:generate go run github.com/marben/irpc/cmd/irpc

// Viewer is one client's interactive session. The event methods apply a
// UI interaction to the session's view; a rejected one leaves the view as
// it was and is reported as an error.
type Viewer interface {
	Resize(vp Viewport) error
	Click(at ScreenPoint) error
	DoubleClick() error
	SecondaryDoubleClick() error
	Drag(delta ScreenPoint) error
	PanelDrag(drag ParameterDrag2D) error
	SetSlider(field Field, value float64) error
	SetQuality(high bool) error
	SetType(typ FractalType) error
	Reset() error
	GoTo(region string) error
	// View returns the current view.
	View() (ViewState, error)
	// Frame renders the current view at the current viewport size.
	Frame(ctx context.Context) (Frame, error)
}
