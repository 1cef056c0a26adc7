package strut

import "github.com/rs/zerolog"

// logger receives layout and focus trace events. Discarded by default so the
// hot paths cost a level check and nothing else.
var logger = zerolog.Nop()

// SetLogger installs a logger for layout/focus tracing. Pass zerolog.Nop()
// to silence it again.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// debugChecks enables loud failure on programmer errors (re-entrant layout,
// duplicate focus registration). In release use these degrade to idempotent
// no-ops.
var debugChecks = false

// SetDebugChecks toggles assertions for programmer errors. Intended for
// tests and debug builds.
func SetDebugChecks(enabled bool) {
	debugChecks = enabled
}

// check panics with msg when debug checks are enabled, otherwise records the
// violation at warn level and lets the caller degrade gracefully.
func check(cond bool, msg string) bool {
	if cond {
		return true
	}
	if debugChecks {
		panic("strut: " + msg)
	}
	logger.Warn().Msg(msg)
	return false
}
