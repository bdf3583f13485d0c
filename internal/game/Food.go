package game

import "math/rand"

// A placementStrategy proposes a free cell given the set of occupied
// cells; ok is false when the strategy could not find one.
type placementStrategy interface {
	place(occupied map[Point]bool) (p Point, ok bool)
}

// randomPlacement draws uniformly over the whole grid a bounded number of
// times, rejecting occupied cells.
type randomPlacement struct {
	rng      *rand.Rand
	attempts int
}

func (s randomPlacement) place(occupied map[Point]bool) (Point, bool) {
	for attempt := 0; attempt < s.attempts; attempt++ {
		candidate := Point{X: s.rng.Intn(GridColCount), Y: s.rng.Intn(GridRowCount)}
		if !occupied[candidate] {
			return candidate, true
		}
	}
	return Point{}, false
}

// scanPlacement walks the grid row-major and returns the first free cell.
type scanPlacement struct{}

func (scanPlacement) place(occupied map[Point]bool) (Point, bool) {
	for y := 0; y < GridRowCount; y++ {
		for x := 0; x < GridColCount; x++ {
			candidate := Point{X: x, Y: y}
			if !occupied[candidate] {
				return candidate, true
			}
		}
	}
	return Point{}, false
}

// PlaceFood picks a cell disjoint from occupied: random sampling first,
// then the exhaustive scan once the grid is crowded enough for sampling to
// keep missing. On a fully occupied grid there is no valid cell, so the
// origin stands in to keep the state well formed.
func PlaceFood(occupied map[Point]bool, rng *rand.Rand) Point {
	strategies := []placementStrategy{
		randomPlacement{rng: rng, attempts: foodPlacementAttempts},
		scanPlacement{},
	}
	for _, strategy := range strategies {
		if p, ok := strategy.place(occupied); ok {
			return p
		}
	}
	return Point{}
}
