package strand

import "fmt"

// Direction is one of the four compass headings.
// The zero value is North, which is also the heading an ant starts with.
type Direction uint8

const (
	// North moves by (0, +1).
	North Direction = iota
	// East moves by (+1, 0).
	East
	// South moves by (0, -1).
	South
	// West moves by (-1, 0).
	West
)

// NumDirections is the number of compass headings.
const NumDirections = 4

// directionLetters and directionDeltas are indexed by Direction.
var (
	directionLetters = [NumDirections]byte{'N', 'E', 'S', 'W'}
	directionDeltas  = [NumDirections][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// Directions returns all headings in canonical order: N, E, S, W.
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{North, East, South, West}
}

// ParseDirection converts a letter (any case) into a Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'N', 'n':
		return North, nil
	case 'E', 'e':
		return East, nil
	case 'S', 's':
		return South, nil
	case 'W', 'w':
		return West, nil
	}

	return North, fmt.Errorf("%w: %q", ErrBadDirection, r)
}

// Delta returns the unit coordinate change for one step in direction d.
// Complexity: O(1).
func (d Direction) Delta() (dx, dy int) {
	v := directionDeltas[d%NumDirections]

	return v[0], v[1]
}

// Valid reports whether d is one of the four named headings.
func (d Direction) Valid() bool { return d < NumDirections }

// String returns the uppercase letter for d.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return string(directionLetters[d])
}
