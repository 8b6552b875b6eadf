package fractal

import "errors"

// Precondition violations reported to the caller. The core never recovers
// from these itself; the view is left untouched when one is returned.
var (
	ErrInvalidZoom     = errors.New("fractal: zoom must be positive and finite")
	ErrNoPointer       = errors.New("fractal: pointer event without a resolvable position")
	ErrInvalidViewport = errors.New("fractal: viewport must have positive size and pixel density")
	ErrInvalidControl  = errors.New("fractal: control size must be positive")
	ErrUnknownEvent    = errors.New("fractal: unknown event")
	ErrUnknownField    = errors.New("fractal: unknown field")
	ErrUnknownRegion   = errors.New("fractal: unknown region")
)
