package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net"
	"strings"

	"github.com/coder/websocket"
	fractal "github.com/marben/fractal_view"
	"github.com/marben/irpc"
)

// errRejected wraps the server's reason for refusing a call.
var errRejected = errors.New("server rejected call")

// client is a synchronous viewer session: every interaction is followed by
// a fetch of the frame it produced.
type client struct {
	ep     *irpc.Endpoint
	viewer *fractal.ViewerIrpcClient
}

// frame is the view the server rendered together with the pixels.
type frame struct {
	view fractal.ViewState
	img  *image.RGBA
}

// dial connects over a websocket for ws:// and wss:// addresses and over
// plain tcp otherwise.
func dial(ctx context.Context, addr string) (*client, error) {
	var conn net.Conn
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		c, _, err := websocket.Dial(ctx, addr, nil)
		if err != nil {
			return nil, err
		}
		// The conn outlives the dial, so it is bound to the background context.
		conn = websocket.NetConn(context.Background(), c, websocket.MessageBinary)
	} else {
		var d net.Dialer
		c, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, err
		}
		conn = c
	}

	ep := irpc.NewEndpoint(conn,
		irpc.WithLocalAddress(conn.LocalAddr()),
		irpc.WithRemoteAddress(conn.RemoteAddr()),
	)
	viewer, err := fractal.NewViewerIrpcClient(ep)
	if err != nil {
		ep.Close()
		return nil, err
	}
	return &client{ep: ep, viewer: viewer}, nil
}

func (c *client) close() error {
	return c.ep.Close()
}

func (c *client) resize(ctx context.Context, vp fractal.Viewport) (frame, error) {
	if err := c.viewer.Resize(vp); err != nil {
		return frame{}, c.callErr(err)
	}
	return c.frame(ctx)
}

func (c *client) apply(ctx context.Context, ev fractal.Event) (frame, error) {
	if err := fractal.Dispatch(c.viewer, ev); err != nil {
		return frame{}, c.callErr(err)
	}
	return c.frame(ctx)
}

func (c *client) frame(ctx context.Context) (frame, error) {
	f, err := c.viewer.Frame(ctx)
	if err != nil {
		return frame{}, fmt.Errorf("frame: %w", err)
	}
	img, err := f.Image()
	if err != nil {
		return frame{}, err
	}
	return frame{view: f.View, img: img}, nil
}

// callErr tells a refused call from a broken connection.
func (c *client) callErr(err error) error {
	if c.ep.Context().Err() != nil {
		return fmt.Errorf("connection: %w", err)
	}
	return fmt.Errorf("%w: %v", errRejected, err)
}
