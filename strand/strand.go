package strand

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// State is the symbol held by a cell and the key of a strand.
type State rune

// String returns the state as a one-character string.
func (s State) String() string { return string(rune(s)) }

// validState reports whether s is a printable, non-whitespace symbol.
func validState(s State) bool {
	r := rune(s)

	return r != utf8.RuneError && unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// Strand is the rule for one initial state. For every arrival direction it
// names the direction to leave in and the state to leave behind.
// Both arrays are indexed by arrival Direction in canonical order.
type Strand struct {
	Initial State
	out     [NumDirections]Direction
	next    [NumDirections]State
}

// New builds a Strand. dirs and states are given in canonical N, E, S, W
// arrival order. Returns ErrMalformedStrand if any state is blank or
// unprintable, ErrBadDirection if a direction is out of range.
func New(initial State, dirs [NumDirections]Direction, states [NumDirections]State) (Strand, error) {
	s := Strand{Initial: initial, out: dirs, next: states}
	if err := s.Validate(); err != nil {
		return Strand{}, err
	}

	return s, nil
}

// Validate reports whether s could have come from New. A Strand written as a
// struct literal has zero-valued outgoing states and fails with
// ErrMalformedStrand.
func (s Strand) Validate() error {
	if !validState(s.Initial) {
		return fmt.Errorf("%w: bad initial state %q", ErrMalformedStrand, rune(s.Initial))
	}
	for i := 0; i < NumDirections; i++ {
		if !s.out[i].Valid() {
			return fmt.Errorf("%w: %v", ErrBadDirection, s.out[i])
		}
		if !validState(s.next[i]) {
			return fmt.Errorf("%w: bad state %q", ErrMalformedStrand, rune(s.next[i]))
		}
	}

	return nil
}

// Parse reads a strand line such as "w SESW aabb". Fields are separated by
// whitespace; direction letters are case-insensitive.
// Complexity: O(len(line)).
func Parse(line string) (Strand, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Strand{}, fmt.Errorf("%w: %q: want 3 fields, got %d", ErrMalformedStrand, line, len(fields))
	}

	initial := []rune(fields[0])
	letters := []rune(fields[1])
	symbols := []rune(fields[2])
	if len(initial) != 1 || len(letters) != NumDirections || len(symbols) != NumDirections {
		return Strand{}, fmt.Errorf("%w: %q", ErrMalformedStrand, line)
	}

	var (
		dirs   [NumDirections]Direction
		states [NumDirections]State
		err    error
	)
	for i := 0; i < NumDirections; i++ {
		if dirs[i], err = ParseDirection(letters[i]); err != nil {
			return Strand{}, fmt.Errorf("%w: %q: %w", ErrMalformedStrand, line, err)
		}
		states[i] = State(symbols[i])
	}

	return New(State(initial[0]), dirs, states)
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(line string) Strand {
	s, err := Parse(line)
	if err != nil {
		panic(err)
	}

	return s
}

// OutDirection returns the heading to leave in after arriving from in.
func (s Strand) OutDirection(in Direction) Direction { return s.out[in%NumDirections] }

// OutState returns the state to write after arriving from in.
func (s Strand) OutState(in Direction) State { return s.next[in%NumDirections] }

// String renders the strand canonically: "<initial> <NESW dirs> <NESW states>".
func (s Strand) String() string {
	var b strings.Builder
	b.WriteRune(rune(s.Initial))
	b.WriteByte(' ')
	for _, d := range Directions() {
		b.WriteString(s.OutDirection(d).String())
	}
	b.WriteByte(' ')
	for _, d := range Directions() {
		b.WriteRune(rune(s.OutState(d)))
	}

	return b.String()
}
