package stream

import (
	"bytes"
	"context"
	"image/jpeg"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const statsLogInterval = 5 * time.Second

// Service keeps the latest decoded frame of one camera stream.
type Service struct {
	name   string
	client *MJPEGClient
	logger *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running atomic.Bool

	latest       atomic.Pointer[FrameSnapshot]
	frames       atomic.Uint64
	decodeErrors atomic.Uint64
	sequence     atomic.Uint64
}

// NewService returns a stopped service for the camera stream at url.
func NewService(name, url string, logger *slog.Logger) *Service {
	return &Service{name: name, client: NewMJPEGClient(url), logger: logger}
}

// Start launches the stream goroutine. Idempotent.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running.Store(true)
	go s.loop(ctx, s.done)
}

// Stop cancels the stream and waits for the goroutine to exit. Idempotent.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return
	}
	s.cancel()
	<-s.done
	s.running.Store(false)
}

// Running reports whether the stream goroutine is active.
func (s *Service) Running() bool { return s.running.Load() }

// LatestFrame returns the most recent decoded frame (zero value before the first).
func (s *Service) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

// Stats returns counters for instrumentation.
func (s *Service) Stats() Stats {
	snap := s.LatestFrame()
	var age time.Duration
	if !snap.CapturedAt.IsZero() {
		age = time.Since(snap.CapturedAt)
	}
	return Stats{
		Frames:         s.frames.Load(),
		DecodeErrors:   s.decodeErrors.Load(),
		LastFrame:      snap.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snap.Sequence,
	}
}

func (s *Service) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer func() {
		if r := recover(); r != nil && s.logger != nil {
			s.logger.Error("stream panic", "camera", s.name, "error", r)
		}
	}()
	frames := make(chan []byte, 1)
	go func() {
		err := s.client.Stream(ctx, frames)
		if s.logger != nil && err != nil && ctx.Err() == nil {
			s.logger.Error("stream stopped", "camera", s.name, "error", err)
		}
	}()

	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	for {
		select {
		case buf, ok := <-frames:
			if !ok {
				return
			}
			s.store(buf)
		case <-logTicker.C:
			s.logStats()
		case <-ctx.Done():
			// drain until Stream closes the channel
			for range frames {
			}
			return
		}
	}
}

func (s *Service) store(buf []byte) {
	img, err := jpeg.Decode(bytes.NewReader(buf))
	if err != nil {
		s.decodeErrors.Add(1)
		if s.logger != nil {
			s.logger.Debug("jpeg decode", "camera", s.name, "error", err)
		}
		return
	}
	s.frames.Add(1)
	seq := s.sequence.Add(1)
	s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: seq})
}

func (s *Service) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("stream.stats",
		"camera", s.name,
		"frames", stats.Frames,
		"decode_errors", stats.DecodeErrors,
		"age", stats.LatestFrameAge,
	)
}
