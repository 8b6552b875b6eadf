//go:build js && wasm

package main

import (
	"fmt"
	"io"
	"sync"
	"syscall/js"
)

// wsConn is an io.ReadWriteCloser over a browser WebSocket carrying binary
// messages. The browser socket is used directly because blocking network
// calls cannot run inside JS callbacks.
type wsConn struct {
	ws js.Value

	mu     sync.Mutex // onclose may run between the checks in Write
	closed bool
	err    error

	msgs   chan []byte
	opened chan struct{}
	funcs  []js.Func

	// unread tail of the current message
	pending []byte
}

// dialWS opens a WebSocket to url and waits until it is connected.
func dialWS(url string) (*wsConn, error) {
	c := &wsConn{
		ws:     js.Global().Get("WebSocket").New(url),
		msgs:   make(chan []byte, 16),
		opened: make(chan struct{}),
	}
	c.ws.Set("binaryType", "arraybuffer")

	c.handle("onopen", func(js.Value) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.closeOpened()
	})
	c.handle("onerror", func(js.Value) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.err = fmt.Errorf("websocket %s: %w", url, io.ErrUnexpectedEOF)
		c.closeOpened()
	})
	c.handle("onmessage", func(e js.Value) {
		b, err := bytesFromJS(e.Get("data"))
		if err != nil {
			logScreenf("websocket: %v", err)
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.closed {
			c.msgs <- b
		}
	})
	c.handle("onclose", func(js.Value) {
		logScreenf("websocket closed")
		c.mu.Lock()
		defer c.mu.Unlock()
		c.shutdown()
	})

	if err := c.waitOpen(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *wsConn) handle(event string, fn func(e js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	c.funcs = append(c.funcs, f)
	c.ws.Set(event, f)
}

func (c *wsConn) Read(p []byte) (int, error) {
	if len(c.pending) == 0 {
		msg, ok := <-c.msgs
		if !ok {
			return 0, io.EOF
		}
		c.pending = msg
	}
	n := copy(p, c.pending)
	c.pending = c.pending[n:]
	return n, nil
}

func (c *wsConn) Write(p []byte) (int, error) {
	if err := c.waitOpen(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, io.ErrClosedPipe
	}

	u8 := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(u8, p)
	c.ws.Call("send", u8)
	return len(p), nil
}

func (c *wsConn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.shutdown()
	c.mu.Unlock()

	c.ws.Call("close")
	return nil
}

// shutdown marks the connection closed and wakes readers and writers.
// c.mu must be held.
func (c *wsConn) shutdown() {
	if c.closed {
		return
	}
	c.closed = true
	c.closeOpened()
	close(c.msgs)
}

func (c *wsConn) closeOpened() {
	select {
	case <-c.opened:
	default:
		close(c.opened)
	}
}

func (c *wsConn) waitOpen() error {
	<-c.opened

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	if c.closed {
		return io.ErrClosedPipe
	}
	return nil
}

// bytesFromJS copies a typed array or ArrayBuffer message into Go memory.
// binaryType is arraybuffer, so Blobs do not arrive.
func bytesFromJS(data js.Value) ([]byte, error) {
	global := js.Global()
	switch {
	case data.InstanceOf(global.Get("ArrayBuffer")):
		data = global.Get("Uint8Array").New(data)
	case data.InstanceOf(global.Get("Uint8Array")), data.InstanceOf(global.Get("Uint8ClampedArray")):
	default:
		return nil, fmt.Errorf("unsupported message type %s", data.Type())
	}
	b := make([]byte, data.Get("byteLength").Int())
	js.CopyBytesToGo(b, data)
	return b, nil
}
