package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	fractal "github.com/marben/fractal_view"
	"github.com/marben/fractal_view/internal/gesture"
	"github.com/marben/fractal_view/render"
)

// frameRequest is the snapshot handed to the render goroutine.
type frameRequest struct {
	view          fractal.ViewState
	width, height int
}

type renderedFrame struct {
	req frameRequest
	pm  *gg.Pixmap
}

// Game owns the controller. Update runs on the ebiten goroutine and is the
// only writer; the render goroutine only sees frameRequest copies.
type Game struct {
	ctl      *fractal.Controller
	renderer fractal.FrameRenderer
	hud      *render.HUD
	log      *slog.Logger

	gestures gesture.Recognizer
	vp       fractal.Viewport
	dirty    bool
	region   int

	requests chan frameRequest
	frames   chan renderedFrame

	img      *ebiten.Image
	last     *gg.Pixmap
	snapshot string
	shots    int
}

func newGame(ctx context.Context, renderer fractal.FrameRenderer, hud *render.HUD, snapshot string, log *slog.Logger) *Game {
	g := &Game{
		ctl:      fractal.NewController(fractal.DefaultViewState()),
		renderer: renderer,
		hud:      hud,
		log:      log,
		dirty:    true,
		region:   -1,
		requests: make(chan frameRequest, 1),
		frames:   make(chan renderedFrame, 1),
		snapshot: snapshot,
	}
	go g.renderLoop(ctx)
	return g
}

func (g *Game) Update() error {
	for _, ev := range g.pollEvents() {
		if err := g.ctl.Apply(ev, g.vp); err != nil {
			// Rejected events leave the view as it was.
			continue
		}
		g.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.last != nil {
		if err := g.saveSnapshot(); err != nil {
			g.log.Warn("snapshot", slog.Any("err", err))
		}
	}

	select {
	case f := <-g.frames:
		g.present(f)
	default:
	}

	if g.dirty && g.vp.Validate() == nil {
		w, h := g.vp.PixelSize()
		g.schedule(frameRequest{view: g.ctl.View(), width: w, height: h})
		g.dirty = false
	}
	return nil
}

// pollEvents collects this tick's pointer gestures and key commands.
func (g *Game) pollEvents() []fractal.Event {
	var events []fractal.Event
	if g.vp.Density > 0 {
		x, y := ebiten.CursorPosition()
		events = g.gestures.Update(gesture.Pointer{
			// Layout runs in physical pixels; events are in points.
			Pos:   fractal.ScreenPoint{X: float64(x), Y: float64(y)}.Mul(1 / g.vp.Density),
			Left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		}, time.Now())
	}

	view := g.ctl.View()
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		events = append(events, fractal.SetQuality{High: !view.HighQuality})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		t := fractal.Mandelbrot
		if view.Type == fractal.Mandelbrot {
			t = fractal.Julia
		}
		events = append(events, fractal.SetFractalType{Type: t})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		names := fractal.RegionNames()
		g.region = (g.region + 1) % len(names)
		events = append(events, fractal.GoTo{Region: names[g.region]})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		events = append(events, fractal.Reset{})
	}

	const nudge = 1.0
	panel := fractal.JuliaPanel()
	for key, d := range map[ebiten.Key]fractal.ScreenPoint{
		ebiten.KeyArrowLeft:  {X: -nudge},
		ebiten.KeyArrowRight: {X: nudge},
		ebiten.KeyArrowUp:    {Y: -nudge},
		ebiten.KeyArrowDown:  {Y: nudge},
	} {
		if ebiten.IsKeyPressed(key) {
			events = append(events, panel.Drag(d, 100))
		}
	}
	return events
}

// schedule replaces a pending request that the render goroutine did not
// pick up yet.
func (g *Game) schedule(req frameRequest) {
	for {
		select {
		case g.requests <- req:
			return
		default:
			select {
			case <-g.requests:
			default:
			}
		}
	}
}

func (g *Game) renderLoop(ctx context.Context) {
	for {
		var req frameRequest
		select {
		case <-ctx.Done():
			return
		case req = <-g.requests:
		}

		pm, err := g.renderer.RenderFrame(ctx, req.view, req.width, req.height)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				g.log.Warn("render", slog.Any("err", err))
			}
			continue
		}
		if g.hud != nil {
			if err := g.hud.Draw(pm, req.view); err != nil {
				g.log.Warn("hud", slog.Any("err", err))
			}
		}

		f := renderedFrame{req: req, pm: pm}
		// Latest wins on this side too.
		select {
		case <-g.frames:
		default:
		}
		g.frames <- f
	}
}

func (g *Game) present(f renderedFrame) {
	w, h := f.pm.Width(), f.pm.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
	}
	// Alpha is always opaque, so straight and premultiplied RGBA agree.
	g.img.WritePixels(f.pm.Data())
	g.last = f.pm
}

func (g *Game) saveSnapshot() error {
	g.shots++
	name := fmt.Sprintf(g.snapshot, g.shots)
	if err := g.last.SavePNG(name); err != nil {
		return err
	}
	g.log.Info("snapshot saved", slog.String("file", name))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.img != nil {
		screen.DrawImage(g.img, nil)
	}
}

// Layout renders at the monitor's native resolution. The viewport is kept
// in points with the scale factor as its density.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	vp := fractal.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight), Density: scale}
	if vp != g.vp {
		g.vp = vp
		g.dirty = true
	}
	w, h := vp.PixelSize()
	return w, h
}
