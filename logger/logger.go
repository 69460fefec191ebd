// Package logger is the central log of the emulator. Entries are kept in a
// bounded list so that a front end can show the most recent messages, and can
// optionally be echoed to an io.Writer as they arrive.
package logger

import (
	"fmt"
	"io"
)

// only one central log for the whole application.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...any) {
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho prints new log entries to io.Writer. A nil writer stops the echo.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
