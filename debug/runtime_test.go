package debug

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soocke/camwall/domain/stream"
)

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestLogRuntime_SummarisesStreams(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logRuntime(logger, func() []stream.Stats {
		return []stream.Stats{
			{Frames: 10, DecodeErrors: 1, LatestFrameAge: time.Second},
			{Frames: 0},
		}
	})
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "runtime", rec["msg"])
	require.EqualValues(t, 10, rec["frames"])
	require.EqualValues(t, 1, rec["decode_errors"])
	require.EqualValues(t, 1, rec["stale_streams"])
	require.Positive(t, rec["goroutines"])
}

func TestStartRuntimeLogger_StopsWithContext(t *testing.T) {
	buf := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	ctx, cancel := context.WithCancel(context.Background())
	StartRuntimeLogger(ctx, 5*time.Millisecond, logger, nil)
	require.Eventually(t, func() bool { return buf.String() != "" }, time.Second, 5*time.Millisecond)
	cancel()
}
