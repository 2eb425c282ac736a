package presenter

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/camwall/domain/roi"
	"github.com/soocke/camwall/gateway"
	"github.com/soocke/camwall/metrics"
	"github.com/soocke/camwall/ui/model"
	"github.com/soocke/camwall/ui/overlay"
)

var (
	ErrSessionActive = errors.New("edit: session already active")
	ErrNotFullscreen = errors.New("edit: no camera in fullscreen")
	ErrNoImage       = errors.New("edit: camera image not displayed")
)

// Affordance is the control that starts an edit session.
type Affordance interface{ SetEnabled(bool) }

// PointerSink receives primary-button pointer events in viewport coordinates.
type PointerSink interface {
	PointerDown(p image.Point)
	PointerMove(p image.Point)
	PointerUp(p image.Point)
}

// OverlayHost displays a drawing surface above a camera image and routes
// pointer events to a sink while one is attached.
type OverlayHost interface {
	// ImageRect is the displayed image rect of camera within the viewport.
	ImageRect(camera string) (image.Rectangle, bool)
	AttachOverlay(s *overlay.Surface, origin image.Point, sink PointerSink)
	DetachOverlay()
	OverlayChanged()
}

// Submitter stores a region on the camera server.
type Submitter interface {
	Submit(ctx context.Context, camera string, region roi.Region) (gateway.Ack, error)
}

// SubmitOutcome is the result of one asynchronous submission.
type SubmitOutcome struct {
	Session string
	Camera  string
	Region  roi.Region
	Ack     gateway.Ack
	Err     error
}

// EditSession runs at most one ROI drawing session at a time. All methods
// except the submission goroutine run on the UI thread.
type EditSession struct {
	model   *model.WallModel
	host    OverlayHost
	submit  Submitter
	metrics *metrics.Metrics
	logger  *slog.Logger
	timeout time.Duration
	onEnd   func()

	ctx      context.Context
	cancel   context.CancelFunc
	outcomes chan SubmitOutcome
	pending  sync.WaitGroup

	handle  string
	camera  string
	aff     Affordance
	mapper  roi.Mapper
	tracker roi.Tracker
	surface *overlay.Surface
}

// NewEditSession constructs an idle session manager.
func NewEditSession(m *model.WallModel, host OverlayHost, submit Submitter, timeout time.Duration, mx *metrics.Metrics, logger *slog.Logger) *EditSession {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &EditSession{
		model:    m,
		host:     host,
		submit:   submit,
		metrics:  mx,
		logger:   logger,
		timeout:  timeout,
		ctx:      ctx,
		cancel:   cancel,
		outcomes: make(chan SubmitOutcome, 8),
	}
}

// OnEnd registers fn to run after every teardown.
func (s *EditSession) OnEnd(fn func()) {
	if s != nil {
		s.onEnd = fn
	}
}

// Outcomes delivers submission results. Drain it on the UI thread.
func (s *EditSession) Outcomes() <-chan SubmitOutcome {
	if s == nil {
		return nil
	}
	return s.outcomes
}

// Active reports whether a session is in progress.
func (s *EditSession) Active() bool { return s != nil && s.handle != "" }

// Start opens a drawing session over camera's displayed image and disables aff.
func (s *EditSession) Start(camera string, aff Affordance) error {
	if s == nil || s.host == nil {
		return ErrNoImage
	}
	if s.handle != "" || s.model.Editing() {
		return ErrSessionActive
	}
	if _, ok := s.model.Fullscreen(); !ok {
		return ErrNotFullscreen
	}
	rect, ok := s.host.ImageRect(camera)
	if !ok || rect.Empty() {
		return ErrNoImage
	}
	handle := uuid.NewString()
	if !s.model.BeginEdit(handle) {
		return ErrSessionActive
	}
	s.handle = handle
	s.camera = camera
	s.aff = aff
	s.mapper = roi.Mapper{Origin: rect.Min}
	s.tracker.Reset()
	s.surface = overlay.NewSurface(rect.Size())
	if aff != nil {
		aff.SetEnabled(false)
	}
	s.host.AttachOverlay(s.surface, rect.Min, &sessionSink{s: s, handle: handle})
	s.metrics.RecordEditSession()
	if s.logger != nil {
		s.logger.Info("edit session started", "session", handle, "camera", camera, "width", rect.Dx(), "height", rect.Dy())
	}
	return nil
}

// Cancel ends the active session without submitting.
func (s *EditSession) Cancel() {
	if !s.Active() {
		return
	}
	if s.logger != nil {
		s.logger.Info("edit session cancelled", "session", s.handle, "camera", s.camera)
	}
	s.teardown()
}

// Close cancels in-flight submissions and waits for them to finish.
func (s *EditSession) Close() {
	if s == nil {
		return
	}
	s.Cancel()
	s.cancel()
	s.pending.Wait()
}

func (s *EditSession) teardown() {
	if s.handle == "" {
		return
	}
	handle := s.handle
	if s.surface != nil {
		s.surface.Clear()
	}
	s.host.DetachOverlay()
	if s.aff != nil {
		s.aff.SetEnabled(true)
	}
	s.model.EndEdit(handle)
	s.handle, s.camera, s.aff, s.surface = "", "", nil, nil
	s.tracker.Reset()
	if s.logger != nil {
		s.logger.Debug("edit session closed", "session", handle)
	}
	if s.onEnd != nil {
		s.onEnd()
	}
}

func (s *EditSession) down(p image.Point) {
	s.tracker.BeginDrag(s.mapper.Map(p))
}

func (s *EditSession) move(p image.Point) {
	r, ok := s.tracker.UpdateDrag(s.mapper.Map(p))
	if !ok {
		return
	}
	s.surface.Repaint(r)
	s.host.OverlayChanged()
}

func (s *EditSession) up(p image.Point) {
	r, ok := s.tracker.EndDrag(s.mapper.Map(p))
	if !ok {
		return
	}
	handle, camera := s.handle, s.camera
	region := r.Rounded()
	s.teardown()
	s.dispatch(handle, camera, region)
}

func (s *EditSession) dispatch(handle, camera string, region roi.Region) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer func() {
			if r := recover(); r != nil && s.logger != nil {
				s.logger.Error("submit panic", "session", handle, "error", r, "stack", string(debug.Stack()))
			}
		}()
		out := SubmitOutcome{Session: handle, Camera: camera, Region: region}
		if s.submit == nil {
			out.Err = errors.New("edit: no submitter configured")
		} else {
			ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
			out.Ack, out.Err = s.submit.Submit(ctx, camera, region)
			cancel()
		}
		s.metrics.RecordSubmission(out.Err == nil)
		if s.logger != nil {
			if out.Err != nil {
				s.logger.Error("roi submit", "session", handle, "camera", camera, "roi", region, "error", out.Err)
			} else {
				s.logger.Info("roi submit", "session", handle, "camera", camera, "roi", region)
			}
		}
		select {
		case s.outcomes <- out:
		case <-s.ctx.Done():
		}
	}()
}

// sessionSink binds pointer events to one session so events that arrive
// after teardown are dropped.
type sessionSink struct {
	s      *EditSession
	handle string
}

func (k *sessionSink) live() bool { return k.s.handle != "" && k.s.handle == k.handle }

func (k *sessionSink) PointerDown(p image.Point) {
	if k.live() {
		k.s.down(p)
	}
}

func (k *sessionSink) PointerMove(p image.Point) {
	if k.live() {
		k.s.move(p)
	}
}

func (k *sessionSink) PointerUp(p image.Point) {
	if k.live() {
		k.s.up(p)
	}
}
