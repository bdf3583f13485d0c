package game

// Point is a single grid cell coordinate. It is a value type and is never
// mutated in place.
type Point struct {
	X int
	Y int
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Wrap reduces p onto the torus: a coordinate exiting one edge re-enters
// from the opposite one.
func Wrap(p Point) Point {
	x := p.X % GridColCount
	if x < 0 {
		x += GridColCount
	}
	y := p.Y % GridRowCount
	if y < 0 {
		y += GridRowCount
	}
	return Point{X: x, Y: y}
}

// Translate returns the neighbouring cell of p in direction d, wrapped.
func (p Point) Translate(d Direction) Point {
	delta := d.Delta()
	return Wrap(Point{X: p.X + delta.X, Y: p.Y + delta.Y})
}
