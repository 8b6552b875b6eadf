package fractal

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// FrameRenderer evaluates every pixel of a width × height framebuffer for a
// view snapshot.
type FrameRenderer interface {
	RenderFrame(ctx context.Context, view ViewState, width, height int) (*gg.Pixmap, error)
}

var ErrShortFrame = errors.New("fractal: short frame")

// Frame is a rendered framebuffer together with the view it shows. Pix is
// RGBA, row major, without padding.
type Frame struct {
	View   ViewState
	Width  int
	Height int
	Pix    []byte
}

// NewFrame wraps the pixels of pm.
func NewFrame(view ViewState, pm *gg.Pixmap) Frame {
	return Frame{View: view, Width: pm.Width(), Height: pm.Height(), Pix: pm.Data()}
}

// Image returns the frame as an image, checking that Pix matches the size.
func (f Frame) Image() (*image.RGBA, error) {
	if f.Width <= 0 || f.Height <= 0 || len(f.Pix) != f.Width*f.Height*4 {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrShortFrame, f.Width, f.Height, len(f.Pix))
	}
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}, nil
}
