// Package render evaluates frames on the CPU. It is the fallback for the
// shader in package shader and produces the same pixels.
package render

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gogpu/gg"
	fractal "github.com/marben/fractal_view"
	"github.com/marben/fractal_view/internal/parallel"
)

// Renderer splits a frame into tiles and evaluates them in parallel.
type Renderer struct {
	pool *parallel.Pool

	// OnTileRender, if set, is called before each tile is evaluated.
	OnTileRender func(tile image.Rectangle)
}

var _ fractal.FrameRenderer = (*Renderer)(nil)

// NewRenderer starts a renderer with the given number of workers; 0 means
// GOMAXPROCS.
func NewRenderer(workers int) *Renderer {
	return &Renderer{pool: parallel.NewPool(workers)}
}

// Close stops the workers.
func (r *Renderer) Close() {
	r.pool.Close()
}

// RenderFrame evaluates a width × height frame for view. view is a copy, so
// every pixel sees the same snapshot even if the caller keeps mutating its
// own state.
func (r *Renderer) RenderFrame(ctx context.Context, view fractal.ViewState, width, height int) (*gg.Pixmap, error) {
	if err := view.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", fractal.ErrInvalidViewport, width, height)
	}

	start := time.Now()
	pm := gg.NewPixmap(width, height)
	frame := image.Rect(0, 0, width, height)
	tiles := SplitRect(frame, TileSize, TileSize)

	work := make([]func(), len(tiles))
	for i, tile := range tiles {
		work[i] = func() {
			if r.OnTileRender != nil {
				r.OnTileRender(tile)
			}
			RenderTile(view, frame, tile, pm)
		}
	}

	if err := r.pool.ExecuteAll(ctx, work); err != nil {
		return nil, fmt.Errorf("render frame: %w", err)
	}

	fractal.Logger().Debug("frame rendered",
		slog.Int("width", width), slog.Int("height", height),
		slog.Int("tiles", len(tiles)), slog.Duration("took", time.Since(start)))
	return pm, nil
}

// RenderTile evaluates the pixels of tile, a sub-rectangle of frame, into
// pm. The fractal frame is anchored at the frame center; pixels are sampled
// at their centers. Tiles touch disjoint pixels and may run concurrently.
func RenderTile(view fractal.ViewState, frame, tile image.Rectangle, pm *gg.Pixmap) {
	origin := fractal.ScreenPoint{
		X: float64(frame.Min.X) + float64(frame.Dx())/2,
		Y: float64(frame.Min.Y) + float64(frame.Dy())/2,
	}

	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		for px := tile.Min.X; px < tile.Max.X; px++ {
			p := fractal.ScreenPoint{X: float64(px) + 0.5, Y: float64(py) + 0.5}
			z := view.ScreenToFractal(p, origin, 1)
			pm.SetPixel(px-frame.Min.X, py-frame.Min.Y, Display(fractal.Evaluate(z, view), view.Gamma))
		}
	}
}
