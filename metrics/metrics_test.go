package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(func() uint64 { return 42 })
	m.RecordTransition("fullscreen")
	m.RecordTransition("fullscreen")
	m.RecordTransition("tiled")
	m.RecordSubmission(true)
	m.RecordSubmission(false)
	m.RecordSubmission(false)
	m.RecordEditSession()

	require.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("fullscreen")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("tiled")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues(ResultSuccess)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues(ResultFailure)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.editSessions))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(func() uint64 { return 7 })
	m.RecordSubmission(true)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	text := string(body)
	require.True(t, strings.Contains(text, "camwall_roi_submissions_total"), text)
	require.True(t, strings.Contains(text, "camwall_stream_frames_total 7"), text)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordTransition("tiled")
	m.RecordSubmission(true)
	m.RecordEditSession()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 404, rec.Code)
}
