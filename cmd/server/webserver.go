package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/fractal_view/shader"
)

// webServer serves files from staticDir, the WGSL evaluator at
// /fractal.wgsl for GPU capable clients and the websocket endpoint at /ws.
// Websocket connections are handed to the returned listener.
func webServer(ctx context.Context, addr, staticDir string, originPatterns []string, log *slog.Logger) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx, addr+"/ws")
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l, originPatterns, log))
	mux.HandleFunc("/fractal.wgsl", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/wgsl; charset=utf-8")
		_, _ = w.Write([]byte(shader.Source()))
	})
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return l, srv
}

// websocketHandler upgrades the request and passes the connection to the
// listener, which owns it from then on.
func websocketHandler(l *WebsocketListener, originPatterns []string, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			log.Warn("websocket accept", slog.Any("err", err))
			return
		}
		log.Info("got connection", slog.String("remote", r.RemoteAddr))

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// WebsocketListener implements net.Listener on top of accepted websocket
// connections. Accepted connections carry binary messages.
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

// NewWSListener returns a listener that lives until ctx is done or Close is
// called. Either also closes every connection it accepted.
func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
