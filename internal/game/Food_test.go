package game

import (
	"math/rand"
	"testing"
)

func TestPlaceFoodAvoidsOccupiedCells(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	occupied := map[Point]bool{
		{X: 5, Y: 5}: true,
		{X: 6, Y: 5}: true,
		{X: 7, Y: 5}: true,
	}

	for i := 0; i < 200; i++ {
		p := PlaceFood(occupied, rng)
		if occupied[p] {
			t.Fatalf("PlaceFood returned occupied cell %v", p)
		}
		if p.X < 0 || p.X >= GridColCount || p.Y < 0 || p.Y >= GridRowCount {
			t.Fatalf("PlaceFood returned out-of-bounds cell %v", p)
		}
	}
}

func TestPlaceFoodScanFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// Occupy every cell except one; random draws may keep missing it, the
	// row-major scan must not.
	free := Point{X: GridColCount - 1, Y: GridRowCount - 1}
	occupied := make(map[Point]bool, GridColCount*GridRowCount)
	for y := 0; y < GridRowCount; y++ {
		for x := 0; x < GridColCount; x++ {
			occupied[Point{X: x, Y: y}] = true
		}
	}
	delete(occupied, free)

	if p := PlaceFood(occupied, rng); p != free {
		t.Errorf("PlaceFood = %v, want the only free cell %v", p, free)
	}
}

func TestPlaceFoodFullGridReturnsOrigin(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	occupied := make(map[Point]bool, GridColCount*GridRowCount)
	for y := 0; y < GridRowCount; y++ {
		for x := 0; x < GridColCount; x++ {
			occupied[Point{X: x, Y: y}] = true
		}
	}

	if p := PlaceFood(occupied, rng); p != (Point{}) {
		t.Errorf("PlaceFood on a full grid = %v, want origin", p)
	}
}

func TestScanPlacementIsRowMajor(t *testing.T) {
	occupied := map[Point]bool{
		{X: 0, Y: 0}: true,
		{X: 1, Y: 0}: true,
	}

	p, ok := scanPlacement{}.place(occupied)
	if !ok {
		t.Fatal("scan found no cell on a nearly empty grid")
	}
	if p != (Point{X: 2, Y: 0}) {
		t.Errorf("scan returned %v, want first free cell in row-major order (2,0)", p)
	}
}
