// Package scenario ties a strand table, a plane and an ant together and runs
// them for a fixed number of steps.
//
// What:
//
//   - Scenario: built from an ordered strand list and a step count, simulated
//     eagerly by New, then read-only.
//   - Decoder: reads scenarios from a line stream (strand lines closed by a
//     step-count line) and simulates each as soon as it is complete.
//   - Render: writes scenarios in canonical text form separated by blank lines.
//
// Input format:
//
//	# comment lines and blank lines are ignored
//	w SESW aabb
//	b NNNN wwww
//	1000
//
// Output block per scenario:
//
//	w SESW aabb
//	b NNNN wwww
//	1000
//	# <x> <y>
//
// The default plane state is the Initial state of the first strand.
// The ant starts at (0,0) having "arrived" heading North.
//
// Options:
//
//   - WithOnStep: hook invoked after every completed step (tracing, limits).
//
// Errors:
//
//   - ErrNoStrands: a scenario has no strands, so it has no default state.
//   - ErrNegativeSteps: step count below zero.
//   - ErrParse: a stream line could not be read; wraps the cause and carries
//     the 1-based line number.
//   - strand.ErrUnknownState: the ant reached a state with no strand.
package scenario
