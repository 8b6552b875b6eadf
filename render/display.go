package render

import (
	"math"

	"github.com/gogpu/gg"
	fractal "github.com/marben/fractal_view"
)

// Display is the output stage: it clamps an evaluator color to the
// displayable range and applies the gamma curve. A gamma that is not
// strictly positive leaves the clamped value linear.
func Display(c fractal.RGB, gamma float64) gg.RGBA {
	return gg.RGBA{
		R: displayChannel(c.R, gamma),
		G: displayChannel(c.G, gamma),
		B: displayChannel(c.B, gamma),
		A: 1,
	}
}

func displayChannel(x, gamma float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	x = min(max(x, 0), 1)
	if gamma > 0 && gamma != 1 {
		x = math.Pow(x, 1/gamma)
	}
	return x
}
