package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/antplane/strand"
)

// Decoder reads scenarios from a line stream.
//
// Strand lines accumulate until a line of decimal digits closes the scenario;
// that scenario is then built and simulated before the next line is read.
// Blank lines and lines starting with '#' are skipped.
type Decoder struct {
	sc      *bufio.Scanner
	opts    []Option
	line    int
	pending []strand.Strand
	err     error
}

// NewDecoder returns a Decoder reading from r. opts are applied to every
// scenario it builds. Line length is unbounded.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	return &Decoder{sc: sc, opts: opts}
}

// Next returns the next completed scenario, or io.EOF when the stream ends.
// Any other error is sticky: later calls return it again.
func (d *Decoder) Next() (*Scenario, error) {
	if d.err != nil {
		return nil, d.err
	}
	sc, err := d.next()
	if err != nil {
		d.err = err
	}

	return sc, err
}

func (d *Decoder) next() (*Scenario, error) {
	for d.sc.Scan() {
		d.line++
		text := strings.TrimSpace(d.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if isDigits(text) {
			steps, err := strconv.Atoi(text)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: step count %q: %w", ErrParse, d.line, text, err)
			}
			strands := d.pending
			d.pending = nil
			sc, err := New(strands, steps, d.opts...)
			if err != nil {
				return nil, fmt.Errorf("scenario ending at line %d: %w", d.line, err)
			}

			return sc, nil
		}

		s, err := strand.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrParse, d.line, err)
		}
		d.pending = append(d.pending, s)
	}
	if err := d.sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrParse, d.line+1, err)
	}

	return nil, io.EOF
}

// Line returns the number of lines consumed so far.
func (d *Decoder) Line() int { return d.line }

// Dangling returns how many strand lines are waiting for a step count.
// After Next returns io.EOF these strands belong to no scenario and are dropped.
func (d *Decoder) Dangling() int { return len(d.pending) }

// DecodeAll reads every scenario from r, in order.
// It stops at the first error and returns no scenarios in that case.
func DecodeAll(r io.Reader, opts ...Option) ([]*Scenario, error) {
	d := NewDecoder(r, opts...)
	var out []*Scenario
	for {
		sc, err := d.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
