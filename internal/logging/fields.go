package logging

import (
	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/antplane/plane"
	"github.com/katalvlaran/antplane/strand"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Scenario adds the 1-based scenario index.
func Scenario(index int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("scenario", index)
	}
}

// Steps adds a step count field.
func Steps(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("steps", n)
	}
}

// Step adds the number of the step just taken.
func Step(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("step", n)
	}
}

// Position adds x and y fields.
func Position(x, y int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("x", x).Int("y", y)
	}
}

// Heading adds the ant's heading.
func Heading(d strand.Direction) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("heading", d.String())
	}
}

// Cells adds the number of stored plane cells.
func Cells(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("cells", n)
	}
}

// Extent adds the corners of the written region as min_x, min_y, max_x, max_y.
func Extent(lo, hi plane.Point) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("min_x", lo.X).Int("min_y", lo.Y).Int("max_x", hi.X).Int("max_y", hi.Y)
	}
}

// Strands adds the number of strands in a scenario.
func Strands(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("strands", n)
	}
}

// Line adds an input line number.
func Line(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("line", n)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}

// Int adds an integer field with custom key.
func Int(key string, value int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, value)
	}
}
