//go:build js && wasm

package main

import (
	"image"
	"syscall/js"
	"time"
)

// canvas returns the fractal canvas element.
func canvas() js.Value {
	return js.Global().Get("document").Call("getElementById", "view")
}

// resizeCanvas sets the canvas backing store to physical pixels while the
// CSS size stays in points.
func resizeCanvas(width, height int) {
	c := canvas()
	c.Set("width", width)
	c.Set("height", height)
}

// displayFrame draws a decoded frame on the canvas.
func displayFrame(img *image.RGBA) time.Duration {
	start := time.Now()

	ctx := canvas().Call("getContext", "2d")

	// Copy the Go pixel slice into a JS Uint8ClampedArray for ImageData
	jsData := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(jsData, img.Pix)

	imageData := js.Global().Get("ImageData").New(jsData, img.Rect.Dx(), img.Rect.Dy())
	ctx.Call("putImageData", imageData, 0, 0)

	return time.Since(start)
}
