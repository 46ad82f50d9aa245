// Package debug provides global verbose-logging switches.
package debug

import "github.com/teslashibe/camfeed/internal/log"

// Enabled controls whether debug lifecycle logging is active.
var Enabled bool

// Frames controls per-frame trace logs (size, sequence number).
// Use --verbose-frames to enable these very noisy logs.
var Frames bool

// Log logs msg only if debug mode is enabled.
func Log(msg string, args ...any) {
	if Enabled {
		log.Info(msg, args...)
	}
}

// FrameLog logs msg only if per-frame tracing is enabled.
func FrameLog(msg string, args ...any) {
	if Frames {
		log.Info(msg, args...)
	}
}
