// Package strand defines the rule table ("DNA") that drives an ant on the plane.
//
// What:
//
//   - Direction: one of North, East, South, West with a fixed unit delta.
//   - State: a single printable, non-whitespace symbol held by a cell.
//   - Strand: for one initial State, the outgoing Direction and outgoing State
//     for each of the four arrival directions.
//   - Table: lookup from a cell State to the Strand that governs it.
//
// Why:
//
//   - Langton's Ant generalised to many states and arbitrary turn rules.
//   - The (state, arrival direction) key is the whole semantic core of the
//     simulation, so it lives in one small, pure package.
//
// Text form:
//
//	<initial> <NESW out-directions> <NESW out-states>
//	w SESW aabb
//
// Direction letters are matched case-insensitively and rendered uppercase.
//
// Complexity:
//
//   - Parse:  O(len(line)).
//   - Lookup: O(1) average (map).
//
// Errors:
//
//   - ErrMalformedStrand: a line is not of the form above.
//   - ErrBadDirection: a direction letter is not one of N, E, S, W.
//   - ErrUnknownState: Lookup found no strand for the requested state.
package strand
