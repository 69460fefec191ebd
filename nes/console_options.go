package nes

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Option configures a Console in NewConsole.
type Option func(*Console) error

func (console *Console) setOptions(options ...Option) error {
	for i, option := range options {
		if err := option(console); err != nil {
			return fmt.Errorf("failed to set option index %d: %w", i, err)
		}
	}
	return nil
}

// WithTrace writes one nestest style line per executed instruction.
func WithTrace(w io.Writer) Option {
	return func(console *Console) error {
		if w == nil {
			return errors.New(f("trace writer is nil"))
		}
		console.trace = w
		return nil
	}
}

// WithStartPC overrides the reset vector, e.g. 0xC000 for nestest's
// automation mode.
func WithStartPC(pc uint16) Option {
	return func(console *Console) error {
		console.startPC = pc
		console.hasStartPC = true
		return nil
	}
}

// WithFramePeriod sets the pacing of Run. Zero runs as fast as possible.
func WithFramePeriod(period time.Duration) Option {
	return func(console *Console) error {
		if period < 0 {
			return errors.New(f("negative frame period %v", period))
		}
		console.framePeriod = period
		return nil
	}
}
