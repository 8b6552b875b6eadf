package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	fractal "github.com/marben/fractal_view"
	"github.com/marben/fractal_view/render"
	"github.com/marben/irpc"
)

// maxFramePixels bounds the framebuffer a client may ask for.
const maxFramePixels = 4096 * 4096

// viewer holds what all sessions share: the renderer, the optional HUD and
// the session count.
type viewer struct {
	renderer fractal.FrameRenderer
	hud      *render.HUD
	log      *slog.Logger

	sessions atomic.Int64
}

// serve runs a session for every connection l accepts until ctx is done or
// l is closed. Each connection gets its own Viewer service, so the service
// is registered before the endpoint reads its first request.
func (v *viewer) serve(ctx context.Context, l net.Listener) error {
	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("listener.Accept(): %w", err)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.serveConn(ctx, conn)
		}()
	}
}

func (v *viewer) serveConn(ctx context.Context, conn net.Conn) {
	n := v.sessions.Add(1)
	v.log.Info("sessions", slog.Int64("active", n))
	defer func() {
		v.log.Info("sessions", slog.Int64("active", v.sessions.Add(-1)))
	}()

	s := newSession(v)
	ep := irpc.NewEndpoint(conn,
		irpc.WithEndpointServices(fractal.NewViewerIrpcService(s)),
		irpc.WithLocalAddress(conn.LocalAddr()),
		irpc.WithRemoteAddress(conn.RemoteAddr()),
	)

	select {
	case <-ep.Context().Done():
	case <-ctx.Done():
		ep.Close()
	}

	remote := conn.RemoteAddr().String()
	switch cause := context.Cause(ep.Context()); {
	case errors.Is(cause, irpc.ErrEndpointClosedByCounterpart):
		v.log.Info("session closed", slog.String("remote", remote))
	case ctx.Err() != nil:
		v.log.Info("session cancelled", slog.String("remote", remote))
	default:
		v.log.Warn("session failed", slog.String("remote", remote), slog.Any("err", cause))
	}
}

// session is one connected client. irpc runs calls concurrently, so the
// controller and viewport are guarded by mu; Frame renders a snapshot
// taken under the lock.
type session struct {
	*viewer

	mu  sync.Mutex
	ctl *fractal.Controller
	vp  fractal.Viewport
}

var _ fractal.Viewer = (*session)(nil)

func newSession(v *viewer) *session {
	return &session{viewer: v, ctl: fractal.NewController(fractal.DefaultViewState())}
}

func (s *session) Resize(vp fractal.Viewport) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	// Bound the sides as floats before converting, then divide instead of
	// multiplying so the pixel count cannot overflow.
	if vp.Width*vp.Density > maxFramePixels || vp.Height*vp.Density > maxFramePixels {
		return fmt.Errorf("%w: %gx%g at density %g", fractal.ErrInvalidViewport, vp.Width, vp.Height, vp.Density)
	}
	w, h := vp.PixelSize()
	if w <= 0 || h <= 0 || w > maxFramePixels/h {
		return fmt.Errorf("%w: %dx%d pixels", fractal.ErrInvalidViewport, w, h)
	}
	s.mu.Lock()
	s.vp = vp
	s.mu.Unlock()
	return nil
}

func (s *session) apply(ev fractal.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctl.Apply(ev, s.vp)
}

// Click ignores points outside the announced viewport.
func (s *session) Click(at fractal.ScreenPoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vp.Validate() == nil && !s.vp.Contains(at) {
		return fmt.Errorf("%w: %v outside the viewport", fractal.ErrNoPointer, at)
	}
	return s.ctl.Apply(fractal.PrimaryClick{At: at}, s.vp)
}

func (s *session) DoubleClick() error {
	return s.apply(fractal.PrimaryDoubleClick{})
}

func (s *session) SecondaryDoubleClick() error {
	return s.apply(fractal.SecondaryDoubleClick{})
}

func (s *session) Drag(delta fractal.ScreenPoint) error {
	return s.apply(fractal.Drag{Delta: delta})
}

func (s *session) PanelDrag(drag fractal.ParameterDrag2D) error {
	return s.apply(drag)
}

func (s *session) SetSlider(field fractal.Field, value float64) error {
	return s.apply(fractal.SliderSet{Field: field, Value: value})
}

func (s *session) SetQuality(high bool) error {
	return s.apply(fractal.SetQuality{High: high})
}

func (s *session) SetType(typ fractal.FractalType) error {
	return s.apply(fractal.SetFractalType{Type: typ})
}

func (s *session) Reset() error {
	return s.apply(fractal.Reset{})
}

func (s *session) GoTo(region string) error {
	return s.apply(fractal.GoTo{Region: region})
}

func (s *session) View() (fractal.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctl.View(), nil
}

// Frame renders the view as it is when the call arrives. Events applied
// while it renders show up in the next frame.
func (s *session) Frame(ctx context.Context) (fractal.Frame, error) {
	s.mu.Lock()
	view, vp := s.ctl.View(), s.vp
	s.mu.Unlock()

	if err := vp.Validate(); err != nil {
		return fractal.Frame{}, fmt.Errorf("frame before resize: %w", err)
	}
	w, h := vp.PixelSize()
	pm, err := s.renderer.RenderFrame(ctx, view, w, h)
	if err != nil {
		return fractal.Frame{}, err
	}
	if s.hud != nil {
		if err := s.hud.Draw(pm, view); err != nil {
			return fractal.Frame{}, err
		}
	}
	return fractal.NewFrame(view, pm), nil
}

// tileLogger reports every tile the renderer starts at debug level.
func tileLogger(log *slog.Logger) func(image.Rectangle) {
	return func(tile image.Rectangle) {
		log.Debug("rendering tile", slog.String("tile", tile.String()))
	}
}
