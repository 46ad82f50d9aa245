package camera

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/teslashibe/camfeed/internal/log"
	"github.com/teslashibe/camfeed/pkg/debug"
)

// Errors returned by Read.
var (
	ErrDeviceUnavailable = errors.New("could not open camera")
	ErrFrameRead         = errors.New("failed to read from camera")
)

// Preview window settings.
const (
	WindowTitle  = "Camera Feed"
	StopKey      = 'q'
	PollInterval = time.Millisecond
)

// FrameSink receives each captured frame. It is called synchronously from
// Read, in capture order, and owns the buffer it is given.
type FrameSink func(frame []byte)

// State is the lifecycle position of a Capture.
type State int32

const (
	StateUnopened State = iota
	StateConfiguring
	StateCapturing
	StateStoppedError
	StateStoppedUser
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateConfiguring:
		return "configuring"
	case StateCapturing:
		return "capturing"
	case StateStoppedError:
		return "stopped(error)"
	case StateStoppedUser:
		return "stopped(user)"
	default:
		return "unknown"
	}
}

// Applied records what the device reported back after configuration.
type Applied struct {
	Width     float64
	Height    float64
	Framerate float64
	Rejected  []Property // Properties whose read-back differs from the request
}

// Capture owns the camera for the duration of Read and pushes frames to a sink.
type Capture struct {
	sink    FrameSink
	config  Config
	open    Opener
	display DisplayFactory
	logger  *slog.Logger

	state  atomic.Int32
	frames atomic.Uint64

	mu      sync.Mutex
	applied Applied
}

// Option configures a Capture.
type Option func(*Capture)

// WithResolution sets the requested frame size.
func WithResolution(width, height int) Option {
	return func(c *Capture) {
		c.config.Width = width
		c.config.Height = height
	}
}

// WithFramerate sets the requested frame rate.
func WithFramerate(fps int) Option {
	return func(c *Capture) { c.config.Framerate = fps }
}

// WithDebug enables the preview window and the 'q' stop key.
func WithDebug(enabled bool) Option {
	return func(c *Capture) { c.config.Debug = enabled }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Capture) { c.config = cfg }
}

// WithOpener sets how the device is opened.
func WithOpener(open Opener) Option {
	return func(c *Capture) { c.open = open }
}

// WithDisplay sets how the debug preview is created.
func WithDisplay(factory DisplayFactory) Option {
	return func(c *Capture) { c.display = factory }
}

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Capture) { c.logger = l }
}

// New creates a Capture. It performs no I/O.
func New(sink FrameSink, opts ...Option) *Capture {
	c := &Capture{
		sink:   sink,
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.L()
	}
	return c
}

// Config returns the capture settings.
func (c *Capture) Config() Config {
	return c.config
}

// Sink returns the frame sink.
func (c *Capture) Sink() FrameSink {
	return c.sink
}

// State returns the current lifecycle state.
func (c *Capture) State() State {
	return State(c.state.Load())
}

// Frames returns how many frames have been delivered to the sink.
func (c *Capture) Frames() uint64 {
	return c.frames.Load()
}

// Applied returns the settings the device reported after configuration.
func (c *Capture) Applied() Applied {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applied
}

func (c *Capture) setState(s State) {
	c.state.Store(int32(s))
}

// Read opens the camera, applies the configuration and delivers frames to the
// sink until a capture fails, the preview receives 'q', or ctx is cancelled.
// A 'q' stop returns nil. The device is closed on every return path.
func (c *Capture) Read(ctx context.Context) error {
	c.frames.Store(0)
	c.setState(StateUnopened)

	dev, err := c.openDevice()
	if err != nil {
		c.setState(StateStoppedError)
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			c.logger.Warn("camera close failed", "error", err)
		}
	}()

	c.setState(StateConfiguring)
	c.configure(dev)

	var preview Display
	if c.config.Debug && c.display == nil {
		c.logger.Warn("debug preview requested but no display configured")
	}
	if c.config.Debug && c.display != nil {
		preview = c.display(WindowTitle)
		defer func() {
			if err := preview.Close(); err != nil {
				c.logger.Warn("preview close failed", "error", err)
			}
		}()
	}

	c.setState(StateCapturing)
	c.logger.Info("camera capturing", "config", c.config.String())

	for {
		if err := ctx.Err(); err != nil {
			c.setState(StateStoppedError)
			return err
		}

		var frame Frame
		if !dev.Read(&frame) {
			c.setState(StateStoppedError)
			c.logger.Debug("camera read failed", "frames", c.frames.Load())
			return ErrFrameRead
		}

		c.sink(frame.Data)
		n := c.frames.Add(1)
		debug.FrameLog("frame", "seq", n, "bytes", len(frame.Data), "rows", frame.Rows, "cols", frame.Cols)

		if preview == nil {
			continue
		}
		preview.Show(frame)
		if key, ok := preview.PollKey(PollInterval); ok && key == StopKey {
			c.setState(StateStoppedUser)
			c.logger.Info("camera stopped by user", "frames", n)
			return nil
		}
	}
}

func (c *Capture) openDevice() (Device, error) {
	if c.open == nil {
		return nil, fmt.Errorf("%w: no device opener configured", ErrDeviceUnavailable)
	}

	dev, err := c.open(DeviceIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	if dev == nil {
		return nil, ErrDeviceUnavailable
	}
	if !dev.IsOpened() {
		// Free the wrapper; the camera itself was never acquired.
		_ = dev.Close()
		return nil, ErrDeviceUnavailable
	}

	debug.Log("camera opened", "index", DeviceIndex)
	return dev, nil
}

// configure applies width, height and frame rate in that order. The device may
// ignore any of them; mismatches are logged and recorded, never fatal.
func (c *Capture) configure(dev Device) {
	want := []struct {
		prop  Property
		value float64
	}{
		{PropFrameWidth, float64(c.config.Width)},
		{PropFrameHeight, float64(c.config.Height)},
		{PropFPS, float64(c.config.Framerate)},
	}

	for _, w := range want {
		dev.Set(w.prop, w.value)
	}

	applied := Applied{
		Width:     dev.Get(PropFrameWidth),
		Height:    dev.Get(PropFrameHeight),
		Framerate: dev.Get(PropFPS),
	}
	got := []float64{applied.Width, applied.Height, applied.Framerate}

	for i, w := range want {
		if math.Abs(got[i]-w.value) > 0.5 {
			applied.Rejected = append(applied.Rejected, w.prop)
			c.logger.Warn("camera setting rejected",
				"property", w.prop.String(), "requested", w.value, "actual", got[i])
		}
	}

	c.mu.Lock()
	c.applied = applied
	c.mu.Unlock()
}
