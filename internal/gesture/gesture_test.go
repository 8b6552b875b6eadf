package gesture

import (
	"reflect"
	"testing"
	"time"

	fractal "github.com/marben/fractal_view"
)

type poll struct {
	p  Pointer
	at time.Duration
}

func run(polls []poll) []fractal.Event {
	var r Recognizer
	start := time.Unix(1000, 0)
	var events []fractal.Event
	for _, pl := range polls {
		events = append(events, r.Update(pl.p, start.Add(pl.at))...)
	}
	return events
}

func at(x, y float64) fractal.ScreenPoint { return fractal.ScreenPoint{X: x, Y: y} }

func TestRecognizer(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name  string
		polls []poll
		want  []fractal.Event
	}{
		{
			name: "click",
			polls: []poll{
				{Pointer{Pos: at(10, 10), Left: true}, 0},
				{Pointer{Pos: at(11, 10), Left: true}, 16 * ms},
				{Pointer{Pos: at(11, 10)}, 32 * ms},
			},
			want: []fractal.Event{fractal.PrimaryClick{At: at(11, 10)}},
		},
		{
			name: "drag",
			polls: []poll{
				{Pointer{Pos: at(10, 10), Left: true}, 0},
				{Pointer{Pos: at(20, 10), Left: true}, 16 * ms},
				{Pointer{Pos: at(25, 5), Left: true}, 32 * ms},
				{Pointer{Pos: at(25, 5), Left: true}, 48 * ms},
				{Pointer{Pos: at(25, 5)}, 64 * ms},
			},
			want: []fractal.Event{
				fractal.Drag{Delta: at(10, 0)},
				fractal.Drag{Delta: at(5, -5)},
			},
		},
		{
			name: "double click",
			polls: []poll{
				{Pointer{Pos: at(10, 10), Left: true}, 0},
				{Pointer{Pos: at(10, 10)}, 50 * ms},
				{Pointer{Pos: at(10, 10), Left: true}, 150 * ms},
				{Pointer{Pos: at(10, 10)}, 200 * ms},
			},
			want: []fractal.Event{
				fractal.PrimaryClick{At: at(10, 10)},
				fractal.PrimaryDoubleClick{},
			},
		},
		{
			name: "slow clicks",
			polls: []poll{
				{Pointer{Pos: at(10, 10), Left: true}, 0},
				{Pointer{Pos: at(10, 10)}, 50 * ms},
				{Pointer{Pos: at(10, 10), Left: true}, 500 * ms},
				{Pointer{Pos: at(10, 10)}, 550 * ms},
			},
			want: []fractal.Event{
				fractal.PrimaryClick{At: at(10, 10)},
				fractal.PrimaryClick{At: at(10, 10)},
			},
		},
		{
			name: "click soon after drag",
			polls: []poll{
				{Pointer{Pos: at(10, 10), Left: true}, 0},
				{Pointer{Pos: at(30, 10), Left: true}, 40 * ms},
				{Pointer{Pos: at(30, 10)}, 80 * ms},
				{Pointer{Pos: at(30, 10), Left: true}, 150 * ms},
				{Pointer{Pos: at(30, 10)}, 200 * ms},
			},
			want: []fractal.Event{
				fractal.Drag{Delta: at(20, 0)},
				fractal.PrimaryClick{At: at(30, 10)},
			},
		},
		{
			name: "secondary double click",
			polls: []poll{
				{Pointer{Pos: at(0, 0), Right: true}, 0},
				{Pointer{Pos: at(0, 0)}, 50 * ms},
				{Pointer{Pos: at(0, 0), Right: true}, 100 * ms},
				{Pointer{Pos: at(0, 0)}, 150 * ms},
			},
			want: []fractal.Event{fractal.SecondaryDoubleClick{}},
		},
		{
			name: "hover",
			polls: []poll{
				{Pointer{Pos: at(0, 0)}, 0},
				{Pointer{Pos: at(50, 50)}, 16 * ms},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(tt.polls)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("events = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDragDeltasSumToMovement(t *testing.T) {
	var r Recognizer
	now := time.Unix(0, 0)
	path := []fractal.ScreenPoint{at(0, 0), at(1, 1), at(4, 2), at(9, -3), at(12, 7)}

	var sum fractal.ScreenPoint
	for i, p := range path {
		for _, ev := range r.Update(Pointer{Pos: p, Left: true}, now.Add(time.Duration(i)*time.Millisecond)) {
			sum = sum.Add(ev.(fractal.Drag).Delta)
		}
	}
	if want := path[len(path)-1].Sub(path[0]); sum != want {
		t.Errorf("sum of drag deltas = %v, want %v", sum, want)
	}
}
