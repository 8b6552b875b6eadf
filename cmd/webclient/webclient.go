//go:build js && wasm

// webclient is the browser front end of the fractal viewer. It forwards
// pointer and panel input to the server's Viewer and paints the frames it
// fetches back.
package main

import (
	"context"
	"fmt"
	"log"
	"syscall/js"

	fractal "github.com/marben/fractal_view"
	"github.com/marben/irpc"
)

func main() {
	logScreenf("Starting WASM web client...")

	// Figure out the server address to open WebSocket
	loc := js.Global().Get("window").Get("location")
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketURL := proto + "://" + loc.Get("host").String() + "/ws"

	logScreenf("Connecting to %s...", websocketURL)
	conn, err := dialWS(websocketURL)
	if err != nil {
		logFatalf("dial: %v", err)
	}
	logScreenf("WebSocket connected.")

	ep := irpc.NewEndpoint(conn)
	viewer, err := fractal.NewViewerIrpcClient(ep)
	if err != nil {
		logFatalf("NewViewerIrpcClient: %v", err)
	}

	calls := make(chan call, 64)
	dirty := make(chan struct{}, 1)
	in := newInput(calls)
	in.bind()
	in.sendResize()

	go sendLoop(viewer, calls, dirty)
	go frameLoop(ep.Context(), viewer, in, dirty)

	<-ep.Context().Done()
	logFatalf("connection lost: %v", context.Cause(ep.Context()))
}

// sendLoop performs the queued calls in order and marks the frame dirty
// after each one.
func sendLoop(v fractal.Viewer, calls <-chan call, dirty chan<- struct{}) {
	for c := range calls {
		if err := c.fn(v); err != nil {
			logScreenf("server rejected %s: %v", c.name, err)
		}
		select {
		case dirty <- struct{}{}:
		default:
		}
	}
}

// frameLoop fetches a frame whenever the view may have changed. Changes
// that arrive while a frame is in flight collapse into one more fetch.
func frameLoop(ctx context.Context, v fractal.Viewer, in *input, dirty <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-dirty:
		}

		frame, err := v.Frame(ctx)
		if err != nil {
			logScreenf("frame: %v", err)
			continue
		}
		img, err := frame.Image()
		if err != nil {
			logScreenf("frame: %v", err)
			continue
		}
		resizeCanvas(img.Rect.Dx(), img.Rect.Dy())
		took := displayFrame(img)
		hudSetText("drawTime", took.String())
		in.showView(frame.View)
	}
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// hudSetText sets the text of the HUD element with the given id.
func hudSetText(id string, text string) {
	js.Global().Get("document").Call("getElementById", id).Set("textContent", text)
}
