package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fractal "github.com/marben/fractal_view"
)

func TestWebServerRoutes(t *testing.T) {
	static := t.TempDir()
	if err := os.WriteFile(filepath.Join(static, "index.html"), []byte("<canvas id=view>"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, ws := webServer(context.Background(), "", static, []string{"*"}, fractal.Logger())
	t.Cleanup(func() { l.Close() })
	srv := httptest.NewServer(ws.Handler)
	t.Cleanup(srv.Close)

	tests := []struct {
		path, want string
	}{
		{"/", "<canvas id=view>"},
		{"/fractal.wgsl", "fn fs_main"},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s = %v", tt.path, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("read %s = %v", tt.path, err)
		}
		if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), tt.want) {
			t.Errorf("GET %s = %d %q, want %q", tt.path, resp.StatusCode, body, tt.want)
		}
	}
}

func TestWebsocketListenerClose(t *testing.T) {
	l := NewWSListener(context.Background(), "localhost/ws")
	if got := l.Addr().Network(); got != "ws" {
		t.Errorf("Addr().Network() = %q, want ws", got)
	}

	errc := make(chan error, 1)
	go func() {
		_, err := l.Accept()
		errc <- err
	}()
	if err := l.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := <-errc; !errors.Is(err, net.ErrClosed) {
		t.Errorf("Accept() after Close = %v, want %v", err, net.ErrClosed)
	}
}
