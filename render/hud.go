package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	fractal "github.com/marben/fractal_view"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD draws the current view parameters over a rendered frame. Draw may be
// called from several sessions at once.
type HUD struct {
	mu     sync.Mutex
	source *text.FontSource
	face   text.Face
	size   float64
}

// NewHUD loads the embedded Go Regular font at size points.
func NewHUD(size float64) (*HUD, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &HUD{source: source, face: source.Face(size), size: size}, nil
}

// Close releases the font.
func (h *HUD) Close() error {
	return h.source.Close()
}

// Summary returns the HUD lines for view.
func Summary(view fractal.ViewState) []string {
	q := "low"
	if view.HighQuality {
		q = "high"
	}
	lines := []string{
		fmt.Sprintf("%s  zoom %.4g  quality %s", view.Type, view.Zoom, q),
		fmt.Sprintf("center %.6g %+.6gi", -view.Center.Re, -view.Center.Im),
	}
	if view.Type == fractal.Julia {
		lines = append(lines, fmt.Sprintf("c %.4g %+.4gi", view.JuliaConstant.Re, view.JuliaConstant.Im))
	}
	lines = append(lines, fmt.Sprintf("contrast %.3g  brightness %.3g  gamma %.3g",
		view.Contrast, view.Brightness, view.Gamma))
	return lines
}

// Draw paints the HUD into the top-left corner of pm.
func (h *HUD) Draw(pm *gg.Pixmap, view fractal.ViewState) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	dc := gg.NewContext(pm.Width(), pm.Height(), gg.WithPixmap(pm))
	defer func() { _ = dc.Close() }()

	dc.SetFont(h.face)
	lines := Summary(view)

	lineHeight := h.size * 1.4
	var width float64
	for _, l := range lines {
		w, _ := dc.MeasureString(l)
		width = max(width, w)
	}

	const pad = 6
	dc.SetRGBA(0, 0, 0, 0.55)
	dc.DrawRectangle(pad, pad, width+2*pad, lineHeight*float64(len(lines))+pad)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("hud: backdrop: %w", err)
	}

	dc.SetRGB(1, 1, 1)
	for i, l := range lines {
		dc.DrawString(l, 2*pad, pad+lineHeight*float64(i+1))
	}
	return nil
}
