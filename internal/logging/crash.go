package logging

import (
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// LogPanic records a recovered panic with its stack and re-panics.
// Use it deferred at the top of goroutines whose output is a log file:
//
//	defer logging.LogPanic(logger)
func LogPanic(logger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}

	logger.Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("PANIC")

	// Re-panic to maintain normal panic behavior
	panic(r)
}
