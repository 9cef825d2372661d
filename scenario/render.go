package scenario

import (
	"io"
	"strings"
)

// Render writes each scenario's block to w, separated by exactly one blank
// line, followed by a final newline.
func Render(w io.Writer, scenarios []*Scenario) error {
	blocks := make([]string, len(scenarios))
	for i, sc := range scenarios {
		blocks[i] = sc.String()
	}
	_, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n")

	return err
}
