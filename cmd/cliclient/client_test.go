package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/gogpu/gg"
	fractal "github.com/marben/fractal_view"
	"github.com/marben/irpc"
)

// fakeViewer applies events to a controller and answers every frame
// request with a 4x3 frame of the current view.
type fakeViewer struct {
	mu  sync.Mutex
	ctl *fractal.Controller
	vp  fractal.Viewport
}

func newFakeViewer() *fakeViewer {
	return &fakeViewer{ctl: fractal.NewController(fractal.DefaultViewState())}
}

func (f *fakeViewer) apply(ev fractal.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ctl.Apply(ev, f.vp)
}

func (f *fakeViewer) Resize(vp fractal.Viewport) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vp = vp
	return nil
}

func (f *fakeViewer) Click(at fractal.ScreenPoint) error {
	return f.apply(fractal.PrimaryClick{At: at})
}

func (f *fakeViewer) DoubleClick() error {
	return f.apply(fractal.PrimaryDoubleClick{})
}

func (f *fakeViewer) SecondaryDoubleClick() error {
	return f.apply(fractal.SecondaryDoubleClick{})
}

func (f *fakeViewer) Drag(delta fractal.ScreenPoint) error {
	return f.apply(fractal.Drag{Delta: delta})
}

func (f *fakeViewer) PanelDrag(d fractal.ParameterDrag2D) error {
	return f.apply(d)
}

func (f *fakeViewer) SetSlider(field fractal.Field, x float64) error {
	return f.apply(fractal.SliderSet{Field: field, Value: x})
}

func (f *fakeViewer) SetQuality(high bool) error {
	return f.apply(fractal.SetQuality{High: high})
}

func (f *fakeViewer) SetType(typ fractal.FractalType) error {
	return f.apply(fractal.SetFractalType{Type: typ})
}

func (f *fakeViewer) Reset() error {
	return f.apply(fractal.Reset{})
}

func (f *fakeViewer) GoTo(region string) error {
	return f.apply(fractal.GoTo{Region: region})
}

func (f *fakeViewer) View() (fractal.ViewState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ctl.View(), nil
}

func (f *fakeViewer) Frame(context.Context) (fractal.Frame, error) {
	view, _ := f.View()
	return fractal.NewFrame(view, gg.NewPixmap(4, 3)), nil
}

var _ fractal.Viewer = (*fakeViewer)(nil)

// serveFake runs a fresh fakeViewer for conn until the peer hangs up.
func serveFake(conn net.Conn) {
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(fractal.NewViewerIrpcService(newFakeViewer())))
	<-ep.Context().Done()
}

// fakeTCPServer returns the address of a tcp server running fake viewers.
func fakeTCPServer(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() = %v", err)
	}
	t.Cleanup(func() { l.Close() })
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			go serveFake(conn)
		}
	}()
	return l.Addr().String()
}

// fakeWSServer returns the ws:// url of a websocket server running fake
// viewers.
func fakeWSServer(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		serveFake(websocket.NetConn(r.Context(), c, websocket.MessageBinary))
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestClientReplaysEvents(t *testing.T) {
	for name, server := range map[string]func(*testing.T) string{
		"tcp":       fakeTCPServer,
		"websocket": fakeWSServer,
	} {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			c, err := dial(ctx, server(t))
			if err != nil {
				t.Fatalf("dial() = %v", err)
			}
			defer c.close()

			fr, err := c.resize(ctx, fractal.Viewport{Width: 4, Height: 3, Density: 1})
			if err != nil {
				t.Fatalf("resize() = %v", err)
			}
			if fr.img.Rect.Dx() != 4 || fr.img.Rect.Dy() != 3 {
				t.Errorf("frame = %v, want 4x3", fr.img.Rect)
			}

			fr, err = c.apply(ctx, fractal.PrimaryDoubleClick{})
			if err != nil {
				t.Fatalf("apply() = %v", err)
			}
			if want := 3000 * fractal.ZoomStep; fr.view.Zoom != want {
				t.Errorf("zoom = %g, want %g", fr.view.Zoom, want)
			}

			_, err = c.apply(ctx, fractal.GoTo{Region: "nowhere"})
			if !errors.Is(err, errRejected) {
				t.Errorf("apply(unknown region) = %v, want %v", err, errRejected)
			}
		})
	}
}

func TestScript(t *testing.T) {
	clicks := []fractal.ScreenPoint{{X: 1, Y: 2}}
	events, err := script("mandelbrot", "seahorse-valley", true, clicks, 2, 1)
	if err != nil {
		t.Fatalf("script() = %v", err)
	}
	want := []fractal.Event{
		fractal.SetFractalType{Type: fractal.Mandelbrot},
		fractal.GoTo{Region: "seahorse-valley"},
		fractal.SetQuality{High: false},
		fractal.PrimaryClick{At: fractal.ScreenPoint{X: 1, Y: 2}},
		fractal.PrimaryDoubleClick{},
		fractal.PrimaryDoubleClick{},
		fractal.SecondaryDoubleClick{},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, events[i], want[i])
		}
	}

	if _, err := script("", "atlantis", false, nil, 0, 0); !errors.Is(err, fractal.ErrUnknownRegion) {
		t.Errorf("script(unknown region) = %v, want %v", err, fractal.ErrUnknownRegion)
	}
	if _, err := script("newton", "", false, nil, 0, 0); err == nil {
		t.Error("script(unknown type) = nil error")
	}
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("12.5, -3")
	if err != nil {
		t.Fatalf("parsePoint() = %v", err)
	}
	if p != (fractal.ScreenPoint{X: 12.5, Y: -3}) {
		t.Errorf("parsePoint() = %v", p)
	}
	for _, s := range []string{"", "1", "a,2", "1,b"} {
		if _, err := parsePoint(s); err == nil {
			t.Errorf("parsePoint(%q) = nil error", s)
		}
	}
}
