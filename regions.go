package fractal

import "sort"

// Region is a rectangle of fractal space worth looking at.
type Region struct {
	Name       string
	Xmin, Xmax float64
	Ymin, Ymax float64
	Type       FractalType
}

// Classic landmarks in the Mandelbrot set.
var (
	// Whole Mandelbrot set
	FullSet = Region{
		Name: "full-set",
		Xmin: -2.5, Xmax: 1,
		Ymin: -1.25, Ymax: 1.25,
		Type: Mandelbrot,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Name: "seahorse-valley",
		Xmin: -0.8, Xmax: -0.7,
		Ymin: 0.05, Ymax: 0.15,
		Type: Mandelbrot,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Name: "elephant-valley",
		Xmin: -1.85, Xmax: -1.75,
		Ymin: -0.10, Ymax: -0.02,
		Type: Mandelbrot,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Name: "spiral-minibrot",
		Xmin: -0.7435, Xmax: -0.7420,
		Ymin: 0.1310, Ymax: 0.1325,
		Type: Mandelbrot,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Name: "triple-spiral",
		Xmin: -0.7480, Xmax: -0.7450,
		Ymin: 0.0950, Ymax: 0.0980,
		Type: Mandelbrot,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Name: "valley-of-the-dragon",
		Xmin: -0.7400, Xmax: -0.7350,
		Ymin: 0.1800, Ymax: 0.1850,
		Type: Mandelbrot,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Name: "minibrot-in-mini-spiral",
		Xmin: -1.7390, Xmax: -1.7375,
		Ymin: -0.0235, Ymax: -0.0220,
		Type: Mandelbrot,
	}
)

var regions = map[string]Region{}

func init() {
	for _, r := range []Region{
		FullSet, SeahorseValley, ElephantValley, SpiralMinibrot,
		TripleSpiral, ValleyOfTheDragon, MinibrotInMiniSpiral,
	} {
		regions[r.Name] = r
	}
}

// LookupRegion finds a region by name.
func LookupRegion(name string) (Region, bool) {
	r, ok := regions[name]
	return r, ok
}

// RegionNames returns the known region names, sorted.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fit returns base with center, zoom and type changed so that r fills vp.
// The whole region stays visible; the longer viewport side gets extra margin.
func (r Region) Fit(base ViewState, vp Viewport) (ViewState, error) {
	if err := vp.Validate(); err != nil {
		return base, err
	}
	w, h := vp.Width*vp.Density, vp.Height*vp.Density
	zoom := min(w/(r.Xmax-r.Xmin), h/(r.Ymax-r.Ymin))
	if !validZoom(zoom) {
		return base, ErrInvalidZoom
	}
	base.Zoom = zoom
	// The viewport center shows -Center.
	base.Center = Complex{Re: -(r.Xmin + r.Xmax) / 2, Im: -(r.Ymin + r.Ymax) / 2}
	base.Type = r.Type
	return base, nil
}
