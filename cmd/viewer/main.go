// viewer is the native front end: an ebiten window driving a local
// controller and the CPU renderer.
//
// Mouse: click recenters, left double click zooms in, right double click
// zooms out, drag pans. Arrow keys nudge the Julia constant.
// Keys: H quality, M julia/mandelbrot, G next region, R reset, S snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	fractal "github.com/marben/fractal_view"
	"github.com/marben/fractal_view/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	width := flag.Int("width", 960, "initial window width in points")
	height := flag.Int("height", 640, "initial window height in points")
	workers := flag.Int("workers", 0, "render workers, 0 means GOMAXPROCS")
	hudSize := flag.Float64("hud", 14, "HUD font size in points, 0 disables the HUD")
	snapshot := flag.String("snapshot", "fractal-%03d.png", "snapshot file name pattern")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fractal.SetLogger(logger)

	renderer := render.NewRenderer(*workers)
	defer renderer.Close()

	var hud *render.HUD
	if *hudSize > 0 {
		var err error
		if hud, err = render.NewHUD(*hudSize); err != nil {
			return err
		}
		defer hud.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := newGame(ctx, renderer, hud, *snapshot, logger)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Fractal viewer | H quality | M type | G region | R reset | S snapshot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
