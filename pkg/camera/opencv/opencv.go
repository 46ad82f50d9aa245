// Package opencv backs the camera package with GoCV (OpenCV).
package opencv

import (
	"fmt"
	"time"

	"github.com/teslashibe/camfeed/pkg/camera"
	"gocv.io/x/gocv"
)

// New creates a Capture that opens the camera through OpenCV and, in debug
// mode, previews frames in a HighGUI window. Extra options are applied after
// the OpenCV defaults.
func New(sink camera.FrameSink, opts ...camera.Option) *camera.Capture {
	base := []camera.Option{
		camera.WithOpener(Open),
		camera.WithDisplay(NewWindow),
	}
	return camera.New(sink, append(base, opts...)...)
}

var properties = map[camera.Property]gocv.VideoCaptureProperties{
	camera.PropFrameWidth:  gocv.VideoCaptureFrameWidth,
	camera.PropFrameHeight: gocv.VideoCaptureFrameHeight,
	camera.PropFPS:         gocv.VideoCaptureFPS,
}

// Device wraps a gocv.VideoCapture.
type Device struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
}

// Open opens the camera at index.
func Open(index int) (camera.Device, error) {
	capture, err := gocv.OpenVideoCapture(index)
	if err != nil {
		if capture != nil {
			capture.Close()
		}
		return nil, fmt.Errorf("open video capture %d: %w", index, err)
	}
	return &Device{
		capture: capture,
		mat:     gocv.NewMat(),
	}, nil
}

// IsOpened reports whether OpenCV considers the device ready.
func (d *Device) IsOpened() bool {
	return d.capture != nil && d.capture.IsOpened()
}

// Set applies a capture property. OpenCV gives no reliable success signal.
func (d *Device) Set(prop camera.Property, value float64) {
	if p, ok := properties[prop]; ok {
		d.capture.Set(p, value)
	}
}

// Get returns the property value as reported by the backend.
func (d *Device) Get(prop camera.Property) float64 {
	if p, ok := properties[prop]; ok {
		return d.capture.Get(p)
	}
	return 0
}

// Read grabs one frame and copies its pixel bytes out of the Mat.
func (d *Device) Read(f *camera.Frame) bool {
	if ok := d.capture.Read(&d.mat); !ok {
		return false
	}
	if d.mat.Empty() {
		return false
	}

	f.Data = d.mat.ToBytes()
	f.Rows = d.mat.Rows()
	f.Cols = d.mat.Cols()
	f.Channels = d.mat.Channels()
	return true
}

// Close releases the Mat and the capture handle.
func (d *Device) Close() error {
	if err := d.mat.Close(); err != nil {
		return err
	}
	if d.capture == nil {
		return nil
	}
	return d.capture.Close()
}

// Window is a HighGUI preview window.
type Window struct {
	window *gocv.Window
}

// NewWindow opens a preview window titled title.
func NewWindow(title string) camera.Display {
	return &Window{window: gocv.NewWindow(title)}
}

// Show rebuilds a Mat around the frame bytes and displays it.
func (w *Window) Show(f camera.Frame) {
	mat, err := gocv.NewMatFromBytes(f.Rows, f.Cols, matType(f.Channels), f.Data)
	if err != nil {
		return
	}
	defer mat.Close()
	w.window.IMShow(mat)
}

// PollKey waits for a key press. OpenCV reports -1 when none arrived.
func (w *Window) PollKey(wait time.Duration) (byte, bool) {
	ms := int(wait / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	key := w.window.WaitKey(ms)
	if key < 0 {
		return 0, false
	}
	return byte(key & 0xFF), true
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.window.Close()
}

func matType(channels int) gocv.MatType {
	switch channels {
	case 1:
		return gocv.MatTypeCV8UC1
	case 4:
		return gocv.MatTypeCV8UC4
	default:
		return gocv.MatTypeCV8UC3
	}
}
