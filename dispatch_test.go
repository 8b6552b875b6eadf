package fractal

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// recorder rebuilds the event behind every Viewer call.
type recorder struct {
	got []Event
}

func (r *recorder) add(ev Event) error {
	r.got = append(r.got, ev)
	return nil
}

func (r *recorder) Resize(Viewport) error {
	return nil
}

func (r *recorder) Click(at ScreenPoint) error {
	return r.add(PrimaryClick{At: at})
}

func (r *recorder) DoubleClick() error {
	return r.add(PrimaryDoubleClick{})
}

func (r *recorder) SecondaryDoubleClick() error {
	return r.add(SecondaryDoubleClick{})
}

func (r *recorder) Drag(delta ScreenPoint) error {
	return r.add(Drag{Delta: delta})
}

func (r *recorder) PanelDrag(d ParameterDrag2D) error {
	return r.add(d)
}

func (r *recorder) SetSlider(f Field, x float64) error {
	return r.add(SliderSet{Field: f, Value: x})
}

func (r *recorder) SetQuality(high bool) error {
	return r.add(SetQuality{High: high})
}

func (r *recorder) SetType(typ FractalType) error {
	return r.add(SetFractalType{Type: typ})
}

func (r *recorder) Reset() error {
	return r.add(Reset{})
}

func (r *recorder) GoTo(region string) error {
	return r.add(GoTo{Region: region})
}

func (r *recorder) View() (ViewState, error) {
	return DefaultViewState(), nil
}

func (r *recorder) Frame(context.Context) (Frame, error) {
	return Frame{}, nil
}

func TestDispatch(t *testing.T) {
	events := []Event{
		PrimaryClick{At: ScreenPoint{X: 1.5, Y: -2}},
		PrimaryDoubleClick{},
		SecondaryDoubleClick{},
		Drag{Delta: ScreenPoint{X: 3, Y: 4}},
		JuliaPanel().Drag(ScreenPoint{X: 5, Y: -6}, 150),
		SliderSet{Field: FieldGamma, Value: 2.2},
		SetQuality{High: true},
		SetFractalType{Type: Mandelbrot},
		Reset{},
		GoTo{Region: "seahorse-valley"},
	}
	r := &recorder{}
	for _, ev := range events {
		if err := Dispatch(r, ev); err != nil {
			t.Fatalf("Dispatch(%#v) = %v", ev, err)
		}
	}
	if !reflect.DeepEqual(r.got, events) {
		t.Errorf("dispatched %#v, want %#v", r.got, events)
	}
}

func TestDispatchUnknownEvent(t *testing.T) {
	r := &recorder{}
	if err := Dispatch(r, unknownEvent{}); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("Dispatch(unknown) = %v, want %v", err, ErrUnknownEvent)
	}
	if len(r.got) != 0 {
		t.Errorf("recorded %v", r.got)
	}
}

func TestParseField(t *testing.T) {
	for f := FieldZoom; f <= FieldBlue; f++ {
		got, err := ParseField(f.String())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseField("alpha"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("ParseField(alpha) = %v, want %v", err, ErrUnknownField)
	}
}
