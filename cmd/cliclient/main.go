// cliclient drives a fractal viewer session from the command line. It
// connects to the server over tcp or a websocket, replays the requested
// interactions and saves the last frame as a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	fractal "github.com/marben/fractal_view"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run parses flags, replays the interactions and writes the final frame.
func run() error {
	addr := flag.String("addr", "localhost:8081", "server tcp address or ws:// url")
	width := flag.Float64("width", 800, "viewport width in points")
	height := flag.Float64("height", 600, "viewport height in points")
	density := flag.Float64("density", 1, "physical pixels per point")
	region := flag.String("region", "", "fit a named region: "+strings.Join(fractal.RegionNames(), ", "))
	typ := flag.String("type", "", "fractal type: julia or mandelbrot")
	low := flag.Bool("low", false, "use the low quality iteration budget")
	zoomIn := flag.Int("zoom-in", 0, "number of zoom in steps")
	zoomOut := flag.Int("zoom-out", 0, "number of zoom out steps")
	out := flag.String("out", "fractal.png", "output PNG file")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	var clicks []fractal.ScreenPoint
	flag.Func("click", "recenter on x,y in points, may be repeated", func(s string) error {
		p, err := parsePoint(s)
		if err != nil {
			return err
		}
		clicks = append(clicks, p)
		return nil
	})
	flag.Parse()

	events, err := script(*typ, *region, *low, clicks, *zoomIn, *zoomOut)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Step 1: Connect to the fractal server
	log.Printf("Connecting to %s...", *addr)
	c, err := dial(ctx, *addr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer c.close()

	// Step 2: Announce the viewport, which renders the first frame
	vp := fractal.Viewport{Width: *width, Height: *height, Density: *density}
	log.Printf("Sending viewport %gx%g@%g...", vp.Width, vp.Height, vp.Density)
	fr, err := c.resize(ctx, vp)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	// Step 3: Replay the interactions, one frame per event
	for _, ev := range events {
		log.Printf("Sending %T%+v...", ev, ev)
		if fr, err = c.apply(ctx, ev); err != nil {
			return fmt.Errorf("apply %T: %w", ev, err)
		}
	}
	log.Printf("Final view: center=%v zoom=%g type=%s", fr.view.Center, fr.view.Zoom, fr.view.Type)

	// Step 4: Save the last frame to a PNG file
	log.Printf("Saving frame to %q...", *out)
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, fr.img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("Frame %dx%d saved to %q", fr.img.Rect.Dx(), fr.img.Rect.Dy(), *out)
	return nil
}

// script turns the command line into the event sequence. Type and region
// come first so clicks and zoom steps act on the chosen place.
func script(typ, region string, low bool, clicks []fractal.ScreenPoint, zoomIn, zoomOut int) ([]fractal.Event, error) {
	var events []fractal.Event
	if typ != "" {
		t, err := fractal.ParseFractalType(typ)
		if err != nil {
			return nil, err
		}
		events = append(events, fractal.SetFractalType{Type: t})
	}
	if region != "" {
		if _, ok := fractal.LookupRegion(region); !ok {
			return nil, fmt.Errorf("%w: %q", fractal.ErrUnknownRegion, region)
		}
		events = append(events, fractal.GoTo{Region: region})
	}
	if low {
		events = append(events, fractal.SetQuality{High: false})
	}
	for _, p := range clicks {
		events = append(events, fractal.PrimaryClick{At: p})
	}
	for range zoomIn {
		events = append(events, fractal.PrimaryDoubleClick{})
	}
	for range zoomOut {
		events = append(events, fractal.SecondaryDoubleClick{})
	}
	return events, nil
}

func parsePoint(s string) (fractal.ScreenPoint, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fractal.ScreenPoint{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fractal.ScreenPoint{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fractal.ScreenPoint{}, fmt.Errorf("point %q: %w", s, err)
	}
	return fractal.ScreenPoint{X: x, Y: y}, nil
}
