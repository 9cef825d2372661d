package strand

import "errors"

var (
	// ErrMalformedStrand indicates a line that is not "<state> <dirs> <states>".
	ErrMalformedStrand = errors.New("strand: malformed strand")
	// ErrBadDirection indicates a direction letter outside N, E, S, W.
	ErrBadDirection = errors.New("strand: invalid direction")
	// ErrUnknownState indicates a cell state with no strand in the table.
	ErrUnknownState = errors.New("strand: no strand for state")
)
