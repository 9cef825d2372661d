// Package antplane simulates generalised Langton's ants on an infinite plane.
//
// An ant walks a sparse grid of symbolic cell states. Its behaviour comes from
// a table of DNA strands: for the state of the cell it stands on and the
// direction it arrived from, a strand names the state to leave behind and the
// direction to move next.
//
// Subpackages, leaf first:
//
//	strand/   — Direction, State, Strand and the lookup Table
//	plane/    — sparse, unbounded grid of states with a default
//	ant/      — the ant and its single Step transition
//	scenario/ — strands + step count run to completion; stream Decoder and Render
//	cmd/antplane — reads scenarios from stdin, prints results to stdout
//
// Quick example (input):
//
//	w ESWN bbbb
//	b WNES wwww
//	5
//
// output:
//
//	w ESWN bbbb
//	b WNES wwww
//	5
//	# -1 0
//
//	go install github.com/katalvlaran/antplane/cmd/antplane@latest
package antplane
