package main

import (
	"testing"
	"time"
)

func TestThroughput_ReportsPerWindow(t *testing.T) {
	clock := time.Unix(0, 0)
	var reports []int
	var lastBytes int64

	tp := newThroughput(time.Second, func(frames int, bytes int64, elapsed time.Duration) {
		reports = append(reports, frames)
		lastBytes = bytes
	})
	tp.now = func() time.Time { return clock }

	for i := 0; i < 15; i++ {
		tp.Add(make([]byte, 100))
		clock = clock.Add(100 * time.Millisecond)
	}

	// Frames at t=0..1.0s fall in the first window (11 frames), the report
	// fires on the frame at exactly 1s.
	if len(reports) != 1 {
		t.Fatalf("Expected 1 report, got %d", len(reports))
	}
	if reports[0] != 11 {
		t.Errorf("Expected 11 frames in first window, got %d", reports[0])
	}
	if lastBytes != 1100 {
		t.Errorf("Expected 1100 bytes, got %d", lastBytes)
	}
}
