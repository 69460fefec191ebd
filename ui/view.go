package ui

import (
	"context"
	"errors"
	"image"

	"github.com/55utah/yane/logger"
	"github.com/55utah/yane/nes"
)

// RunView drives the console until ctx is cancelled. Cancellation is a normal
// stop and returns nil.
func RunView(ctx context.Context, console *nes.Console, frames chan<- *image.RGBA, events <-chan nes.InputEvent) error {
	err := console.Run(ctx, frames, events)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		logger.Logf("ui", "emulation stopped: %v", err)
	}
	return err
}
