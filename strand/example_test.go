package strand_test

import (
	"fmt"

	"github.com/katalvlaran/antplane/strand"
)

// ExampleParse shows how a strand line maps an arrival direction to the
// direction the ant leaves in and the state it leaves behind.
func ExampleParse() {
	s, err := strand.Parse("w sesw aabb")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	for _, in := range strand.Directions() {
		fmt.Printf("arrive %v -> leave %v, write %v\n", in, s.OutDirection(in), s.OutState(in))
	}

	// Output:
	// w SESW aabb
	// arrive N -> leave S, write a
	// arrive E -> leave E, write a
	// arrive S -> leave S, write b
	// arrive W -> leave W, write b
}
