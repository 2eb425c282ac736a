package debug

// Runtime logger enabled when config.Debug is true. Emits goroutine count,
// heap usage and a per-camera stream summary at a fixed interval, to spot
// leaked stream goroutines or decoded frames piling up.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/soocke/camwall/domain/stream"
)

// StreamStats returns per-camera stream counters.
type StreamStats func() []stream.Stats

// StartRuntimeLogger launches a ticker that logs runtime and stream stats until ctx ends.
func StartRuntimeLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, streams StreamStats) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				logRuntime(logger, streams)
			}
		}
	}()
}

func logRuntime(logger *slog.Logger, streams StreamStats) {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	var frames, decodeErrors uint64
	var stale int
	if streams != nil {
		for _, st := range streams() {
			frames += st.Frames
			decodeErrors += st.DecodeErrors
			if st.Frames == 0 || st.LatestFrameAge > 5*time.Second {
				stale++
			}
		}
	}
	logger.Info("runtime",
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("frames", frames),
		slog.Uint64("decode_errors", decodeErrors),
		slog.Int("stale_streams", stale),
	)
}
