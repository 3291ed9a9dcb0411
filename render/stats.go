package render

import "time"

// Stats is the per-frame telemetry the renderer emits alongside each image
// (spec.md §4.7 "Per-frame statistics"): enough for a UI status bar or a
// worker-level log line, nothing else.
type Stats struct {
	Options     Options
	Threads     int
	Duration    time.Duration
	TotalPixels int
	AccumFrames int
}

// errorStats is the degenerate-camera fallback (§4.7 "Failure handling"):
// zero threads and zero duration signal the frame is a synthetic error
// image, not a real sample.
func errorStats(opts Options, pixels int) Stats {
	return Stats{Options: opts, Threads: 0, Duration: 0, TotalPixels: pixels, AccumFrames: 0}
}
