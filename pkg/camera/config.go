// Package camera captures frames from the default camera and hands them to a
// caller-supplied sink, with an optional on-screen debug preview.
package camera

import "fmt"

// Config holds the capture settings. It is fixed once a Capture is built.
type Config struct {
	Width     int  `json:"width"`     // Frame width in pixels
	Height    int  `json:"height"`    // Frame height in pixels
	Framerate int  `json:"framerate"` // Target FPS
	Debug     bool `json:"debug"`     // Show preview window, stop on 'q'
}

// Limits used by Validate.
const (
	MaxWidth     = 7680
	MaxHeight    = 4320
	MaxFramerate = 240
)

// DefaultConfig returns 860x480 at 15 FPS with the preview disabled.
func DefaultConfig() Config {
	return Config{
		Width:     860,
		Height:    480,
		Framerate: 15,
		Debug:     false,
	}
}

// Validate checks the values are usable.
// Returns a list of validation errors, or nil if valid.
// The capture loop itself never validates; devices clamp what they can't do.
func (c *Config) Validate() []string {
	var errors []string

	if c.Width < 1 || c.Width > MaxWidth {
		errors = append(errors, fmt.Sprintf("width must be between 1 and %d", MaxWidth))
	}
	if c.Height < 1 || c.Height > MaxHeight {
		errors = append(errors, fmt.Sprintf("height must be between 1 and %d", MaxHeight))
	}
	if c.Framerate < 1 || c.Framerate > MaxFramerate {
		errors = append(errors, fmt.Sprintf("framerate must be between 1 and %d", MaxFramerate))
	}

	return errors
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d@%d debug=%v", c.Width, c.Height, c.Framerate, c.Debug)
}
