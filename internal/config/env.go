// Package config provides environment-backed defaults for camfeed commands.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by cmd/camfeed.
const (
	EnvWidth     = "CAMFEED_WIDTH"
	EnvHeight    = "CAMFEED_HEIGHT"
	EnvFPS       = "CAMFEED_FPS"
	EnvDebug     = "CAMFEED_DEBUG"
	EnvLogLevel  = "CAMFEED_LOG_LEVEL"
	EnvPreset    = "CAMFEED_PRESET"
	DefaultLevel = "info"
)

// String returns the value of key, or def if it is unset or blank.
func String(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Int returns key parsed as an integer. Unset or unparsable values yield def.
func Int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Bool returns key parsed with strconv.ParseBool, or def.
func Bool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// LogLevel returns CAMFEED_LOG_LEVEL or "info".
func LogLevel() string {
	return String(EnvLogLevel, DefaultLevel)
}
