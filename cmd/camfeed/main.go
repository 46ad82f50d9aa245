// camfeed - capture frames from the default camera
//
// Opens camera 0 through OpenCV and reports frame throughput. With -debug a
// preview window is shown; press q in it to stop.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/teslashibe/camfeed/internal/config"
	"github.com/teslashibe/camfeed/internal/log"
	"github.com/teslashibe/camfeed/pkg/camera"
	"github.com/teslashibe/camfeed/pkg/camera/opencv"
	"github.com/teslashibe/camfeed/pkg/debug"
)

func main() {
	defaults := camera.DefaultConfig()
	if name := config.String(config.EnvPreset, ""); name != "" {
		if p := camera.GetPreset(name); p != nil {
			defaults = *p
		}
	}

	preset := flag.String("preset", "", "Preset ("+strings.Join(camera.PresetNames(), ", ")+"), overrides size/fps flags")
	width := flag.Int("width", config.Int(config.EnvWidth, defaults.Width), "Frame width")
	height := flag.Int("height", config.Int(config.EnvHeight, defaults.Height), "Frame height")
	fps := flag.Int("fps", config.Int(config.EnvFPS, defaults.Framerate), "Target frame rate")
	preview := flag.Bool("debug", config.Bool(config.EnvDebug, false), "Show preview window (press q to stop)")
	logLevel := flag.String("log-level", config.LogLevel(), "Log level: debug, info, warn, error")
	verbose := flag.Bool("verbose", false, "Log camera lifecycle details")
	verboseFrames := flag.Bool("verbose-frames", false, "Log every frame (very noisy)")
	flag.Parse()

	log.Init(*logLevel)
	debug.Enabled = *verbose
	debug.Frames = *verboseFrames

	cfg := camera.Config{Width: *width, Height: *height, Framerate: *fps, Debug: *preview}
	if *preset != "" {
		p := camera.GetPreset(*preset)
		if p == nil {
			fmt.Fprintf(os.Stderr, "unknown preset %q (have: %s)\n", *preset, strings.Join(camera.PresetNames(), ", "))
			os.Exit(2)
		}
		cfg = *p
		cfg.Debug = *preview
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "invalid camera config: %s\n", strings.Join(errs, "; "))
		os.Exit(2)
	}

	logger := log.With("session", uuid.New().String())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stats := newThroughput(time.Second, func(frames int, bytes int64, elapsed time.Duration) {
		logger.Info("throughput",
			"fps", fmt.Sprintf("%.1f", float64(frames)/elapsed.Seconds()),
			"kb_per_frame", bytes/int64(max(frames, 1))/1024)
	})

	capture := opencv.New(stats.Add, camera.WithConfig(cfg), camera.WithLogger(logger))

	logger.Info("starting capture", "config", cfg.String())
	err := capture.Read(ctx)
	logger.Info("capture ended", "frames", capture.Frames(), "state", capture.State().String())

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return
	default:
		logger.Error("capture failed", "error", err)
		cancel()
		os.Exit(1)
	}
}
