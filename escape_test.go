package fractal

import (
	"math"
	"testing"
)

func TestEscape(t *testing.T) {
	julia := Complex{Re: -0.76, Im: -0.08}
	tests := []struct {
		name      string
		z0, c     Complex
		q         Quality
		wantIter  int
		wantEsc   bool
		wantValue float64
	}{
		{"default julia low", Complex{}, julia, LowQuality, 92, true, 4.532599493153256},
		{"default julia high", Complex{}, julia, HighQuality, 92, true, 4.530124619156427},
		{"far parameter low", Complex{}, Complex{Re: 3}, LowQuality, 1, true, math.Ln2},
		{"far parameter high", Complex{}, Complex{Re: 3}, HighQuality, 2, true, 0.6366419301189947},
		{"origin never escapes low", Complex{}, Complex{}, LowQuality, 1024, false, math.Log(1025)},
		{"origin never escapes high", Complex{}, Complex{}, HighQuality, 4096, false, math.Log(4097)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.z0, tt.c, tt.q)
			if got.Iterations != tt.wantIter || got.Escaped != tt.wantEsc {
				t.Errorf("Escape() = %+v, want %d iterations, escaped %v", got, tt.wantIter, tt.wantEsc)
			}
			if !near(got.Value, tt.wantValue) {
				t.Errorf("Escape().Value = %.15g, want %.15g", got.Value, tt.wantValue)
			}
		})
	}
}

func TestEscapeValueIsFiniteAndNonNegative(t *testing.T) {
	for _, q := range []Quality{LowQuality, HighQuality} {
		for re := -3.0; re <= 3; re += 0.37 {
			for im := -3.0; im <= 3; im += 0.41 {
				z := Complex{Re: re, Im: im}
				v := Escape(z, z, q).Value
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
					t.Fatalf("Escape(%v) value = %g with %+v", z, v, q)
				}
			}
		}
	}
}

func TestEscapeIsDeterministic(t *testing.T) {
	z0 := Complex{Re: 0.123, Im: -0.456}
	c := DefaultViewState().JuliaConstant
	first := Escape(z0, c, HighQuality)
	for range 5 {
		if got := Escape(z0, c, HighQuality); got != first {
			t.Fatalf("Escape() = %+v, then %+v", first, got)
		}
	}
}

func TestQualityFor(t *testing.T) {
	if QualityFor(true) != HighQuality || QualityFor(false) != LowQuality {
		t.Errorf("QualityFor mixes up tiers")
	}
}

func TestIteratedParameter(t *testing.T) {
	view := DefaultViewState()
	z := Complex{Re: 0.1, Im: 0.2}

	if got := IteratedParameter(z, view); got != view.JuliaConstant {
		t.Errorf("julia parameter = %v, want %v", got, view.JuliaConstant)
	}
	view.Type = Mandelbrot
	if got := IteratedParameter(z, view); got != z {
		t.Errorf("mandelbrot parameter = %v, want %v", got, z)
	}
}

func TestShade(t *testing.T) {
	view := DefaultViewState()
	view.Brightness = 0.1

	got := Shade(2, view)
	want := RGB{R: 0.1 + 0.7*0.16, G: 0.1 + 0.7*0.40, B: 0.1 + 0.7*1.0}
	if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) {
		t.Errorf("Shade(2) = %+v, want %+v", got, want)
	}

	// No clamping at this stage.
	view.Contrast = 10
	if got := Shade(2, view); got.B <= 1 {
		t.Errorf("Shade() clamped blue to %g", got.B)
	}
}

func TestEvaluate(t *testing.T) {
	view := DefaultViewState()
	got := Evaluate(Complex{}, view)
	want := Shade(4.530124619156427, view)
	if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) {
		t.Errorf("Evaluate(0) = %+v, want %+v", got, want)
	}

	view.Type = Mandelbrot
	view.HighQuality = false
	got = Evaluate(Complex{}, view)
	want = Shade(math.Log(1025), view)
	if got != want {
		t.Errorf("Evaluate(0) mandelbrot = %+v, want %+v", got, want)
	}
}
