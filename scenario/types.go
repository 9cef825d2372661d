package scenario

import (
	"errors"

	"github.com/katalvlaran/antplane/strand"
)

var (
	// ErrNoStrands is returned when a scenario is built from an empty strand list.
	ErrNoStrands = errors.New("scenario: no strands")
	// ErrNegativeSteps is returned for a step count below zero.
	ErrNegativeSteps = errors.New("scenario: negative step count")
	// ErrParse wraps any failure to read a scenario from a stream.
	ErrParse = errors.New("scenario: parse error")
)

// StepInfo describes the ant right after a completed step.
type StepInfo struct {
	// Step is the 1-based number of the step just taken.
	Step int
	// X, Y is the ant's new position.
	X, Y int
	// Heading is the direction the ant just moved in.
	Heading strand.Direction
}

// Option configures optional behavior of New and the Decoder.
type Option func(*Options)

// Options holds the configurable hooks of a scenario run.
type Options struct {
	// OnStep, if non-nil, is invoked after each step.
	// Returning an error aborts the run with that error.
	OnStep func(StepInfo) error
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{OnStep: nil}
}

// WithOnStep installs a hook that is called after every step.
func WithOnStep(fn func(StepInfo) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}
