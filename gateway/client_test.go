package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/soocke/camwall/domain/roi"
)

// fakeServer mimics the camera server's /setroi/{camera} endpoint.
type fakeServer struct {
	mu       sync.Mutex
	cameras  map[string]bool
	received map[string]roi.Region
	rawPath  string
	status   int
	body     string
}

func newFakeServer(t *testing.T, cameras ...string) (*fakeServer, *httptest.Server) {
	t.Helper()
	f := &fakeServer{cameras: map[string]bool{}, received: map[string]roi.Region{}}
	for _, c := range cameras {
		f.cameras[c] = true
	}
	r := mux.NewRouter().UseEncodedPath()
	r.HandleFunc("/setroi/{camera}", f.handleSetROI).Methods(http.MethodPost)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeServer) handleSetROI(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rawPath = r.URL.EscapedPath()
	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
		return
	}
	name, err := url.PathUnescape(mux.Vars(r)["camera"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var region roi.Region
	if err := json.NewDecoder(r.Body).Decode(&region); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no data"})
		return
	}
	if !f.cameras[name] {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "camera not found"})
		return
	}
	f.received[name] = region
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"message": "ROI updated", "roi": region})
}

func TestSubmit_SendsRegion(t *testing.T) {
	f, srv := newFakeServer(t, "cam1")
	c := New(srv.URL, time.Second)

	ack, err := c.Submit(context.Background(), "cam1", roi.Region{X: 10, Y: 10, Width: 40, Height: 30})
	require.NoError(t, err)
	require.Equal(t, "ROI updated", ack.Message)
	require.NotNil(t, ack.ROI)
	require.Equal(t, roi.Region{X: 10, Y: 10, Width: 40, Height: 30}, *ack.ROI)
	require.NotEmpty(t, ack.Raw)

	f.mu.Lock()
	defer f.mu.Unlock()
	require.Equal(t, "/setroi/cam1", f.rawPath)
	require.Equal(t, roi.Region{X: 10, Y: 10, Width: 40, Height: 30}, f.received["cam1"])
}

func TestSubmit_ZeroAreaIsSent(t *testing.T) {
	f, srv := newFakeServer(t, "cam1")
	_, err := New(srv.URL, time.Second).Submit(context.Background(), "cam1", roi.Region{X: 20, Y: 20})
	require.NoError(t, err)
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Equal(t, roi.Region{X: 20, Y: 20}, f.received["cam1"])
}

func TestSubmit_EscapesCameraName(t *testing.T) {
	f, srv := newFakeServer(t, "cam 1/a")
	_, err := New(srv.URL+"/", time.Second).Submit(context.Background(), "cam 1/a", roi.Region{Width: 1, Height: 1})
	require.NoError(t, err)
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Equal(t, "/setroi/cam%201%2Fa", f.rawPath)
	require.Contains(t, f.received, "cam 1/a")
}

func TestSubmit_ServerErrorCarriesStatusAndText(t *testing.T) {
	f, srv := newFakeServer(t, "cam1")
	f.status, f.body = http.StatusInternalServerError, "db error\n"

	_, err := New(srv.URL, time.Second).Submit(context.Background(), "cam1", roi.Region{})
	require.Error(t, err)
	var se *SubmitError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 500, se.Status)
	require.Equal(t, "db error", se.Message)
	require.Contains(t, err.Error(), "500")
	require.Contains(t, err.Error(), "db error")
	require.True(t, IsStatus(err, 500))
}

func TestSubmit_JSONErrorBody(t *testing.T) {
	_, srv := newFakeServer(t, "cam1")
	_, err := New(srv.URL, time.Second).Submit(context.Background(), "ghost", roi.Region{})
	require.True(t, IsStatus(err, http.StatusNotFound))
	require.Contains(t, err.Error(), "camera not found")
}

func TestSubmit_MalformedAckIsFailure(t *testing.T) {
	f, srv := newFakeServer(t, "cam1")
	f.status, f.body = http.StatusOK, "<html>ok</html>"
	_, err := New(srv.URL, time.Second).Submit(context.Background(), "cam1", roi.Region{})
	var se *SubmitError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusOK, se.Status)
	require.Contains(t, se.Message, "malformed")
}

func TestSubmit_NetworkErrorHasNoStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := New(base, time.Second).Submit(context.Background(), "cam1", roi.Region{})
	var se *SubmitError
	require.ErrorAs(t, err, &se)
	require.Zero(t, se.Status)
	require.NotNil(t, errors.Unwrap(err))
}
