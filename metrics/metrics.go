package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission results recorded by RecordSubmission.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds the viewer's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	transitions  *prometheus.CounterVec
	submissions  *prometheus.CounterVec
	editSessions prometheus.Counter
}

// New creates the collectors. framesTotal, when non-nil, is sampled on
// every scrape to report decoded stream frames.
func New(framesTotal func() uint64) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "camwall_mode_transitions_total",
			Help: "Display mode transitions by target state",
		}, []string{"to"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "camwall_roi_submissions_total",
			Help: "ROI submissions by outcome",
		}, []string{"result"}),
		editSessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "camwall_edit_sessions_total",
			Help: "ROI edit sessions started",
		}),
	}
	m.registry.MustRegister(m.transitions, m.submissions, m.editSessions)
	if framesTotal != nil {
		m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "camwall_stream_frames_total",
			Help: "Frames decoded across all camera streams",
		}, func() float64 { return float64(framesTotal()) }))
	}
	return m
}

// RecordTransition counts a display mode change.
func (m *Metrics) RecordTransition(to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(to).Inc()
}

// RecordSubmission counts one ROI submission outcome.
func (m *Metrics) RecordSubmission(ok bool) {
	if m == nil {
		return
	}
	result := ResultFailure
	if ok {
		result = ResultSuccess
	}
	m.submissions.WithLabelValues(result).Inc()
}

// RecordEditSession counts a started edit session.
func (m *Metrics) RecordEditSession() {
	if m == nil {
		return
	}
	m.editSessions.Inc()
}

// Handler returns the HTTP handler that serves the metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
