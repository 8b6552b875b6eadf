package render

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"testing"

	"github.com/gogpu/gg"
	fractal "github.com/marben/fractal_view"
)

func TestRenderFrame(t *testing.T) {
	r := NewRenderer(4)
	defer r.Close()

	var tiles atomic.Int64
	r.OnTileRender = func(image.Rectangle) { tiles.Add(1) }

	view := fractal.DefaultViewState()
	view.HighQuality = false
	pm, err := r.RenderFrame(context.Background(), view, 150, 70)
	if err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}
	if pm.Width() != 150 || pm.Height() != 70 {
		t.Errorf("size = %dx%d, want 150x70", pm.Width(), pm.Height())
	}
	if got := tiles.Load(); got != 6 {
		t.Errorf("rendered %d tiles, want 6", got)
	}
	for y := range pm.Height() {
		for x := range pm.Width() {
			if a := pm.GetPixel(x, y).A; a != 1 {
				t.Fatalf("pixel (%d,%d) alpha = %g, want 1", x, y, a)
			}
		}
	}
}

func TestRenderFrameMatchesEvaluate(t *testing.T) {
	r := NewRenderer(2)
	defer r.Close()

	view := fractal.DefaultViewState()
	view.Zoom = 40
	pm, err := r.RenderFrame(context.Background(), view, 64, 48)
	if err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}

	ref := gg.NewPixmap(64, 48)
	vp := fractal.Viewport{Width: 64, Height: 48, Density: 1}
	for _, p := range []image.Point{{0, 0}, {31, 23}, {63, 47}, {10, 40}} {
		z := vp.ToFractal(view, fractal.ScreenPoint{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5})
		ref.SetPixel(p.X, p.Y, Display(fractal.Evaluate(z, view), view.Gamma))
		if got, want := pm.GetPixel(p.X, p.Y), ref.GetPixel(p.X, p.Y); got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestRenderFrameUsesSnapshot(t *testing.T) {
	r := NewRenderer(2)
	defer r.Close()

	view := fractal.DefaultViewState()
	view.Zoom = 40
	a, err := r.RenderFrame(context.Background(), view, 32, 32)
	if err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}
	b, err := r.RenderFrame(context.Background(), view, 32, 32)
	if err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}
	if string(a.Data()) != string(b.Data()) {
		t.Error("same view rendered different frames")
	}
}

func TestRenderFrameErrors(t *testing.T) {
	r := NewRenderer(1)
	defer r.Close()

	bad := fractal.DefaultViewState()
	bad.Zoom = 0
	if _, err := r.RenderFrame(context.Background(), bad, 8, 8); !errors.Is(err, fractal.ErrInvalidZoom) {
		t.Errorf("RenderFrame(zoom 0) = %v, want %v", err, fractal.ErrInvalidZoom)
	}
	if _, err := r.RenderFrame(context.Background(), fractal.DefaultViewState(), 0, 8); !errors.Is(err, fractal.ErrInvalidViewport) {
		t.Errorf("RenderFrame(0x8) = %v, want %v", err, fractal.ErrInvalidViewport)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.RenderFrame(ctx, fractal.DefaultViewState(), 256, 256); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFrame(cancelled) = %v, want %v", err, context.Canceled)
	}
}
