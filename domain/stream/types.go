package stream

import (
	"image"
	"time"
)

// FrameSnapshot carries the latest decoded frame of one camera and metadata.
type FrameSnapshot struct {
	Image      image.Image
	CapturedAt time.Time
	Sequence   uint64
}

// Stats summarises stream behaviour for instrumentation.
type Stats struct {
	Frames         uint64
	DecodeErrors   uint64
	LastFrame      time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

// FrameSource provides read-only access to decoded frames.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}
