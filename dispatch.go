package fractal

import "fmt"

// Dispatch delivers ev to v through the matching Viewer method.
func Dispatch(v Viewer, ev Event) error {
	switch ev := ev.(type) {
	case PrimaryClick:
		return v.Click(ev.At)
	case PrimaryDoubleClick:
		return v.DoubleClick()
	case SecondaryDoubleClick:
		return v.SecondaryDoubleClick()
	case Drag:
		return v.Drag(ev.Delta)
	case ParameterDrag2D:
		return v.PanelDrag(ev)
	case SliderSet:
		return v.SetSlider(ev.Field, ev.Value)
	case SetQuality:
		return v.SetQuality(ev.High)
	case SetFractalType:
		return v.SetType(ev.Type)
	case Reset:
		return v.Reset()
	case GoTo:
		return v.GoTo(ev.Region)
	}
	return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
}
