package geom

// Direction is one of the four axis-aligned compass directions.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Compass lists the four directions in a fixed order.
var Compass = [...]Direction{North, South, East, West}

// Delta returns the unit step for d.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{Y: -1}
	case South:
		return Point{Y: 1}
	case East:
		return Point{X: 1}
	case West:
		return Point{X: -1}
	}
	panic("geom: unknown direction")
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}
