package scenario_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/antplane/scenario"
	"github.com/katalvlaran/antplane/strand"
)

// BenchmarkNew_Langton measures 11000 steps of the two-state ant, past the
// point where it starts building its highway.
func BenchmarkNew_Langton(b *testing.B) {
	strands := []strand.Strand{strand.MustParse("w ESWN bbbb"), strand.MustParse("b WNES wwww")}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scenario.New(strands, 11000); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecodeAll measures parsing plus simulation of 100 small scenarios.
func BenchmarkDecodeAll(b *testing.B) {
	input := strings.Repeat("w ESWN bbbb\nb WNES wwww\n100\n\n", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scenario.DecodeAll(strings.NewReader(input)); err != nil {
			b.Fatal(err)
		}
	}
}
