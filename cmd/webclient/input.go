//go:build js && wasm

package main

import (
	"fmt"
	"math"
	"strconv"
	"syscall/js"
	"time"

	fractal "github.com/marben/fractal_view"
)

// secondaryDoubleClick is the longest gap between two right clicks that
// still counts as a double click. Browsers have no native right dblclick.
const secondaryDoubleClick = 400 * time.Millisecond

// call is one queued Viewer method call.
type call struct {
	name string
	fn   func(fractal.Viewer) error
}

// input turns DOM events into Viewer calls. All handlers run on the JS
// event loop, so the fields need no locking. Handlers only queue calls;
// sendLoop performs them outside the callbacks.
type input struct {
	out   chan<- call
	funcs []js.Func

	down  bool
	moved bool

	lastContextMenu time.Time

	sliders map[fractal.Field]sliderElems
}

type sliderElems struct {
	slider fractal.Slider
	track  js.Value
	entry  js.Value
}

func newInput(out chan<- call) *input {
	return &input{out: out, sliders: make(map[fractal.Field]sliderElems)}
}

func document() js.Value { return js.Global().Get("document") }

func element(id string) js.Value { return document().Call("getElementById", id) }

func (in *input) on(target js.Value, event string, fn func(e js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	in.funcs = append(in.funcs, f)
	target.Call("addEventListener", event, f)
}

func (in *input) enqueue(c call) {
	select {
	case in.out <- c:
	default:
		logScreenf("input queue full, dropping %s", c.name)
	}
}

func (in *input) send(ev fractal.Event) {
	in.enqueue(call{
		name: fmt.Sprintf("%T", ev),
		fn:   func(v fractal.Viewer) error { return fractal.Dispatch(v, ev) },
	})
}

func (in *input) viewport() fractal.Viewport {
	c := canvas()
	return fractal.Viewport{
		Width:   c.Get("clientWidth").Float(),
		Height:  c.Get("clientHeight").Float(),
		Density: js.Global().Get("devicePixelRatio").Float(),
	}
}

func (in *input) sendResize() {
	vp := in.viewport()
	in.enqueue(call{
		name: "resize",
		fn:   func(v fractal.Viewer) error { return v.Resize(vp) },
	})
}

func pointer(e js.Value) fractal.ScreenPoint {
	return fractal.ScreenPoint{X: e.Get("offsetX").Float(), Y: e.Get("offsetY").Float()}
}

func movement(e js.Value) fractal.ScreenPoint {
	return fractal.ScreenPoint{X: e.Get("movementX").Float(), Y: e.Get("movementY").Float()}
}

func (in *input) bind() {
	c := canvas()
	window := js.Global().Get("window")

	in.on(c, "mousedown", func(e js.Value) {
		if e.Get("button").Int() == 0 {
			in.down = true
			in.moved = false
		}
	})
	in.on(window, "mouseup", func(js.Value) { in.down = false })
	in.on(c, "mousemove", func(e js.Value) {
		if !in.down {
			return
		}
		d := movement(e)
		if d == (fractal.ScreenPoint{}) {
			return
		}
		in.moved = true
		in.send(fractal.Drag{Delta: d})
	})
	in.on(c, "click", func(e js.Value) {
		// The click that ends a drag is not a recenter.
		if in.moved {
			return
		}
		in.send(fractal.PrimaryClick{At: pointer(e)})
	})
	in.on(c, "dblclick", func(js.Value) { in.send(fractal.PrimaryDoubleClick{}) })
	in.on(c, "contextmenu", func(e js.Value) {
		e.Call("preventDefault")
		now := time.Now()
		if now.Sub(in.lastContextMenu) < secondaryDoubleClick {
			in.lastContextMenu = time.Time{}
			in.send(fractal.SecondaryDoubleClick{})
			return
		}
		in.lastContextMenu = now
	})
	in.on(window, "resize", func(js.Value) { in.sendResize() })

	in.bindPanel("julia-panel", fractal.JuliaPanel())
	in.bindPanel("color-panel", fractal.ColorPanel())
	in.bindSliders()
	in.bindControls()
}

// bindPanel turns drags over a square element into ParameterDrag2D events.
func (in *input) bindPanel(id string, p fractal.Panel) {
	el := element(id)
	pressed := false
	in.on(el, "mousedown", func(js.Value) { pressed = true })
	in.on(js.Global().Get("window"), "mouseup", func(js.Value) { pressed = false })
	in.on(el, "mousemove", func(e js.Value) {
		if !pressed {
			return
		}
		d := movement(e)
		if d == (fractal.ScreenPoint{}) {
			return
		}
		in.send(p.Drag(d, el.Get("clientWidth").Float()))
	})
}

// bindSliders builds a range track and a number entry per slider. The entry
// accepts values outside the track unless the slider clamps.
func (in *input) bindSliders() {
	container := element("sliders")
	for _, s := range fractal.DefaultSliders() {
		row := document().Call("createElement", "div")
		label := document().Call("createElement", "label")
		label.Set("textContent", s.Label)

		track := document().Call("createElement", "input")
		track.Set("type", "range")
		track.Set("min", 0)
		track.Set("max", 1)
		track.Set("step", 0.001)

		entry := document().Call("createElement", "input")
		entry.Set("type", "number")
		entry.Set("step", "any")

		row.Call("appendChild", label)
		row.Call("appendChild", track)
		row.Call("appendChild", entry)
		container.Call("appendChild", row)

		in.sliders[s.Field] = sliderElems{slider: s, track: track, entry: entry}

		in.on(track, "input", func(e js.Value) {
			t, err := strconv.ParseFloat(e.Get("target").Get("value").String(), 64)
			if err != nil {
				return
			}
			in.send(fractal.SliderSet{Field: s.Field, Value: fromTrack(s, t)})
		})
		in.on(entry, "change", func(e js.Value) {
			x, err := strconv.ParseFloat(e.Get("target").Get("value").String(), 64)
			if err != nil {
				logScreenf("%s: %v", s.Label, err)
				return
			}
			in.send(fractal.SliderSet{Field: s.Field, Value: x})
		})
	}
}

func (in *input) bindControls() {
	in.on(element("quality"), "change", func(e js.Value) {
		in.send(fractal.SetQuality{High: e.Get("target").Get("checked").Bool()})
	})
	in.on(element("type"), "change", func(e js.Value) {
		t, err := fractal.ParseFractalType(e.Get("target").Get("value").String())
		if err != nil {
			logScreenf("%v", err)
			return
		}
		in.send(fractal.SetFractalType{Type: t})
	})
	in.on(element("reset"), "click", func(js.Value) { in.send(fractal.Reset{}) })

	regions := element("region")
	for _, name := range fractal.RegionNames() {
		opt := document().Call("createElement", "option")
		opt.Set("value", name)
		opt.Set("textContent", name)
		regions.Call("appendChild", opt)
	}
	in.on(regions, "change", func(e js.Value) {
		if name := e.Get("target").Get("value").String(); name != "" {
			in.send(fractal.GoTo{Region: name})
		}
	})
}

// showView mirrors the server's view into the panel inputs.
func (in *input) showView(v fractal.ViewState) {
	for f, el := range in.sliders {
		x, err := v.Get(f)
		if err != nil {
			continue
		}
		el.track.Set("value", toTrack(el.slider, x))
		el.entry.Set("value", strconv.FormatFloat(x, 'g', 6, 64))
	}
	element("quality").Set("checked", v.HighQuality)
	element("type").Set("value", v.Type.String())
}

// fromTrack maps a track position in [0,1] to a slider value.
func fromTrack(s fractal.Slider, t float64) float64 {
	if s.Logarithmic && s.Range.Min > 0 {
		return s.Range.Min * math.Pow(s.Range.Max/s.Range.Min, t)
	}
	return s.Range.Min + t*s.Range.Width()
}

// toTrack is the inverse of fromTrack, clamped to the track.
func toTrack(s fractal.Slider, x float64) float64 {
	var t float64
	if s.Logarithmic && s.Range.Min > 0 && x > 0 {
		t = math.Log(x/s.Range.Min) / math.Log(s.Range.Max/s.Range.Min)
	} else {
		t = (x - s.Range.Min) / s.Range.Width()
	}
	return min(max(t, 0), 1)
}
