package nes

import (
	"context"
	"image"
	"time"
)

// InputEvent is a key press or release from the presentation layer.
type InputEvent struct {
	Button  Button
	Pressed bool
}

// Run drives the console until ctx is cancelled or the CPU fails. Events are
// applied between frames. Each completed frame is copied and offered on
// frames; when the consumer is behind the frame is dropped rather than
// stalling emulation.
func (console *Console) Run(ctx context.Context, frames chan<- *image.RGBA, events <-chan InputEvent) error {
	Logger("session start")
	defer Logger("session stop")

	var dropped int
	next := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		events = console.drainEvents(events)

		if _, err := console.StepFrame(); err != nil {
			Logger("session failed: %v", err)
			return err
		}

		select {
		case frames <- copyFrame(console.Buffer()):
		default:
			dropped++
			if dropped%600 == 1 {
				Logger("frame consumer behind, %d frames dropped", dropped)
			}
		}

		if console.framePeriod <= 0 {
			continue
		}
		next = next.Add(console.framePeriod)
		wait := time.Until(next)
		if wait <= 0 {
			next = time.Now()
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// drainEvents applies every queued event without blocking. A closed channel
// is returned as nil so later selects skip it.
func (console *Console) drainEvents(events <-chan InputEvent) <-chan InputEvent {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Pressed {
				console.KeyDown(ev.Button)
			} else {
				console.KeyUp(ev.Button)
			}
		default:
			return events
		}
	}
}

func copyFrame(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
