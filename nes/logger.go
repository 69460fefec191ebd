package nes

import "github.com/55utah/yane/logger"

// Logger adds a formatted entry tagged "nes" to the central log.
func Logger(format string, args ...any) {
	logger.Logf("nes", format, args...)
}
