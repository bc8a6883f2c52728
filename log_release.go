//go:build !debug

package linesim

// logDebugf is a no-op outside of debug builds, keeping the hot per-frame path free of
// logging overhead.
func logDebugf(format string, v ...interface{}) {}

// invariantFailed is a no-op outside of debug builds: the caller has already built an
// ErrInvariantViolation-wrapped error and is expected to return it so the frame can
// degrade (e.g. to brute-force detection) instead of crashing the process.
func invariantFailed(err error) {}
