package camera

import "time"

// DeviceIndex is the only camera the capture loop ever opens.
const DeviceIndex = 0

// Property identifies a capture setting applied to an open device.
type Property int

// Capture properties, applied in this order.
const (
	PropFrameWidth Property = iota
	PropFrameHeight
	PropFPS
)

func (p Property) String() string {
	switch p {
	case PropFrameWidth:
		return "frame_width"
	case PropFrameHeight:
		return "frame_height"
	case PropFPS:
		return "fps"
	default:
		return "unknown"
	}
}

// Frame is one captured image as row-major pixel bytes in the device's
// native channel order. len(Data) == Rows*Cols*Channels.
type Frame struct {
	Data     []byte
	Rows     int
	Cols     int
	Channels int
}

// Size returns the expected byte length for the frame geometry.
func (f Frame) Size() int {
	return f.Rows * f.Cols * f.Channels
}

// Device is an open camera handle.
type Device interface {
	// IsOpened reports whether the device is ready to deliver frames.
	IsOpened() bool

	// Set applies a property. Devices may silently ignore it.
	Set(prop Property, value float64)

	// Get returns the value the device currently reports for prop.
	Get(prop Property) float64

	// Read blocks until a frame is available and fills f. It returns false
	// when no valid frame could be captured. f.Data must be a fresh buffer
	// the device does not reuse.
	Read(f *Frame) bool

	// Close releases the handle.
	Close() error
}

// Opener opens the camera at index.
type Opener func(index int) (Device, error)

// Display is the on-screen debug preview.
type Display interface {
	// Show renders one frame.
	Show(f Frame)

	// PollKey waits up to wait for a key press.
	PollKey(wait time.Duration) (key byte, ok bool)

	// Close destroys the window.
	Close() error
}

// DisplayFactory creates a preview window with the given title.
type DisplayFactory func(title string) Display
