package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	fractal "github.com/marben/fractal_view"
	"github.com/marben/fractal_view/render"
	"github.com/marben/fractal_view/shader"
)

// main is the entry point for the fractal viewer server.
// Every connected client gets its own Viewer session over irpc; rendering
// happens here and clients pull frames when their view changed.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	tcpAddr := flag.String("tcp", ":8081", "irpc tcp listen address, empty disables tcp")
	staticDir := flag.String("static", "./static", "directory with index.html and main.wasm")
	workers := flag.Int("workers", 0, "render workers, 0 means GOMAXPROCS")
	hudSize := flag.Float64("hud", 14, "HUD font size in points, 0 disables the HUD")
	origins := flag.String("origins", "*", "comma separated websocket origin patterns")
	shaderCheck := flag.Bool("shader-check", false, "compile the WGSL evaluator to SPIR-V at startup")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fractal.SetLogger(logger)

	if *shaderCheck {
		words, err := shader.Compile()
		if err != nil {
			return err
		}
		logger.Info("shader compiled", slog.Int("spirv_words", len(words)))
	}

	renderer := render.NewRenderer(*workers)
	defer renderer.Close()
	renderer.OnTileRender = tileLogger(logger)

	v := &viewer{
		renderer: renderer,
		log:      logger,
	}
	if *hudSize > 0 {
		hud, err := render.NewHUD(*hudSize)
		if err != nil {
			return err
		}
		defer hud.Close()
		v.hud = hud
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// WEBSOCKET
	wsListener, srv := webServer(ctx, *addr, *staticDir, strings.Split(*origins, ","), logger)
	defer wsListener.Close()
	// Hijacked websocket connections are not closed by Shutdown; tie their
	// request contexts to the signal instead.
	srv.BaseContext = func(net.Listener) context.Context { return ctx }

	errc := make(chan error, 3)
	go func() {
		logger.Info("http listening", slog.String("addr", *addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("httpServer: %w", err)
		}
	}()
	go func() {
		if err := v.serve(ctx, wsListener); err != nil {
			errc <- fmt.Errorf("serve ws: %w", err)
		}
	}()

	// TCP
	if *tcpAddr != "" {
		tcpListener, err := net.Listen("tcp", *tcpAddr)
		if err != nil {
			return fmt.Errorf("net.Listen: %w", err)
		}
		defer tcpListener.Close()
		logger.Info("tcp listening", slog.String("addr", *tcpAddr))
		go func() {
			if err := v.serve(ctx, tcpListener); err != nil {
				errc <- fmt.Errorf("serve tcp: %w", err)
			}
		}()
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
