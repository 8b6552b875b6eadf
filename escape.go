package fractal

import (
	"math"
	"math/cmplx"
)

// Quality is an iteration budget tier.
type Quality struct {
	MaxIter int
	// Radius is the escape threshold N; a point escapes once |z| > N.
	Radius float64
	// Smooth applies the continuous escape correction.
	Smooth bool
}

var (
	LowQuality  = Quality{MaxIter: 1024, Radius: 2, Smooth: false}
	HighQuality = Quality{MaxIter: 4096, Radius: 4, Smooth: true}
)

// QualityFor returns the tier selected by ViewState.HighQuality.
func QualityFor(high bool) Quality {
	if high {
		return HighQuality
	}
	return LowQuality
}

// Result of one escape-time evaluation.
type Result struct {
	// Iterations is the index k of the first escaping step, or MaxIter.
	Iterations int
	Escaped    bool
	// Value is the smoothed escape magnitude, finite and >= 0.
	Value float64
}

// Escape iterates z <- z² + c from z0. Indices start at 1 so the logarithm
// of the count is never ln(0).
func Escape(z0, c Complex, q Quality) Result {
	z := z0.complex128()
	cc := c.complex128()
	r2 := q.Radius * q.Radius

	for k := 1; k <= q.MaxIter; k++ {
		z = z*z + cc
		if real(z)*real(z)+imag(z)*imag(z) > r2 {
			return Result{Iterations: k, Escaped: true, Value: q.smooth(k, z)}
		}
	}
	return Result{Iterations: q.MaxIter, Value: math.Log(float64(q.MaxIter + 1))}
}

func (q Quality) smooth(k int, z complex128) float64 {
	mu := float64(k + 1)
	if q.Smooth {
		mu -= math.Log2(math.Log(cmplx.Abs(z) / math.Log(q.Radius)))
		// Very large first steps can push the correction past k+1.
		if !(mu >= 1) {
			mu = 1
		}
	}
	return math.Log(mu)
}

// IteratedParameter returns c for the pixel at z0.
func IteratedParameter(z0 Complex, view ViewState) Complex {
	if view.Type == Mandelbrot {
		return z0
	}
	return view.JuliaConstant
}

// Shade maps an escape value to a color: brightness + contrast*value*color
// per channel. The result is not clamped; display clamping and gamma belong
// to the output stage.
func Shade(value float64, view ViewState) RGB {
	s := view.Contrast * value
	return RGB{
		R: view.Brightness + s*view.Color.R,
		G: view.Brightness + s*view.Color.G,
		B: view.Brightness + s*view.Color.B,
	}
}

// Evaluate computes the color of the fractal point z0 under view. It has no
// shared state and may be called for any pixel, in any order, concurrently.
func Evaluate(z0 Complex, view ViewState) RGB {
	c := IteratedParameter(z0, view)
	r := Escape(z0, c, QualityFor(view.HighQuality))
	return Shade(r.Value, view)
}
