package metrics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// StatusFunc returns a JSON-encodable snapshot served at /status.
type StatusFunc func() any

// NewRouter routes /metrics to the Prometheus handler and, when status is
// non-nil, /status to its JSON snapshot.
func NewRouter(m *Metrics, status StatusFunc) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	if status != nil {
		r.HandleFunc("/status", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(status())
		}).Methods(http.MethodGet)
	}
	return r
}

// NewServer returns an unstarted HTTP server for the router.
func NewServer(addr string, m *Metrics, status StatusFunc) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(m, status),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
