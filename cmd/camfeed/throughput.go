package main

import "time"

// throughput counts frames and bytes and reports once per window.
// It runs on the capture goroutine, so it needs no locking.
type throughput struct {
	window time.Duration
	report func(frames int, bytes int64, elapsed time.Duration)
	now    func() time.Time

	start  time.Time
	frames int
	bytes  int64
}

func newThroughput(window time.Duration, report func(int, int64, time.Duration)) *throughput {
	return &throughput{window: window, report: report, now: time.Now}
}

// Add is the frame sink.
func (t *throughput) Add(frame []byte) {
	now := t.now()
	if t.start.IsZero() {
		t.start = now
	}
	t.frames++
	t.bytes += int64(len(frame))

	if elapsed := now.Sub(t.start); elapsed >= t.window {
		t.report(t.frames, t.bytes, elapsed)
		t.start = now
		t.frames = 0
		t.bytes = 0
	}
}
