package strand

import "fmt"

// Table maps a cell state to the strand governing it. It is immutable once built.
type Table struct {
	order   []Strand
	byState map[State]Strand
}

// NewTable indexes strands by their Initial state. When two strands share an
// Initial state the later one is used for lookups; both are kept in Strands.
// Every strand must pass Validate; the first that does not is reported with
// its index.
// Complexity: O(n) time and memory.
func NewTable(strands ...Strand) (*Table, error) {
	t := &Table{
		order:   make([]Strand, len(strands)),
		byState: make(map[State]Strand, len(strands)),
	}
	copy(t.order, strands)
	for i, s := range strands {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("strand %d: %w", i, err)
		}
		t.byState[s.Initial] = s
	}

	return t, nil
}

// Lookup returns the strand for state, or ErrUnknownState.
// Complexity: O(1) average.
func (t *Table) Lookup(state State) (Strand, error) {
	s, ok := t.byState[state]
	if !ok {
		return Strand{}, fmt.Errorf("%w %q", ErrUnknownState, rune(state))
	}

	return s, nil
}

// Strands returns a copy of the strands in the order they were given.
func (t *Table) Strands() []Strand {
	out := make([]Strand, len(t.order))
	copy(out, t.order)

	return out
}

// Len returns the number of strands the table was built from.
func (t *Table) Len() int { return len(t.order) }
