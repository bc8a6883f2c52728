//go:build debug

package linesim

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[linesim DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages if the logger is enabled.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

// invariantFailed panics immediately on an internal invariant violation. Debug builds are
// expected to run under a test harness or a developer's terminal, where a hard stop at the
// point of failure is more useful than a degraded frame.
func invariantFailed(err error) {
	panic(err)
}
