package game

import (
	"math/rand"
	"testing"
)

func TestWrapStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := Point{X: rng.Intn(4*GridColCount) - 2*GridColCount, Y: rng.Intn(4*GridRowCount) - 2*GridRowCount}
		wrapped := Wrap(p)
		if wrapped.X < 0 || wrapped.X >= GridColCount || wrapped.Y < 0 || wrapped.Y >= GridRowCount {
			t.Fatalf("Wrap(%v) = %v, out of bounds", p, wrapped)
		}
	}
}

func TestWrapEdges(t *testing.T) {
	cases := []struct {
		in   Point
		want Point
	}{
		{Point{X: -1, Y: 0}, Point{X: GridColCount - 1, Y: 0}},
		{Point{X: GridColCount, Y: 0}, Point{X: 0, Y: 0}},
		{Point{X: 0, Y: -1}, Point{X: 0, Y: GridRowCount - 1}},
		{Point{X: 0, Y: GridRowCount}, Point{X: 0, Y: 0}},
		{Point{X: 5, Y: 5}, Point{X: 5, Y: 5}},
	}
	for _, c := range cases {
		if got := Wrap(c.in); got != c.want {
			t.Errorf("Wrap(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTranslateSingleStepInBounds(t *testing.T) {
	directions := []Direction{Up, Down, Left, Right}
	for y := 0; y < GridRowCount; y++ {
		for x := 0; x < GridColCount; x++ {
			for _, d := range directions {
				next := (Point{X: x, Y: y}).Translate(d)
				if next.X < 0 || next.X >= GridColCount || next.Y < 0 || next.Y >= GridRowCount {
					t.Fatalf("Translate(%v, %v) = %v, out of bounds", Point{X: x, Y: y}, d, next)
				}
			}
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) = %v", d, d.Opposite().Opposite())
		}
		delta := d.Delta()
		opposite := d.Opposite().Delta()
		if delta.X+opposite.X != 0 || delta.Y+opposite.Y != 0 {
			t.Errorf("%v and %v deltas do not cancel", d, d.Opposite())
		}
	}
}
