package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/camwall/config"
	"github.com/soocke/camwall/domain/stream"
	"github.com/soocke/camwall/domain/wall"
	"github.com/soocke/camwall/gateway"
	"github.com/soocke/camwall/metrics"
	"github.com/soocke/camwall/ui/model"
	"github.com/soocke/camwall/ui/presenter"
	"github.com/soocke/camwall/ui/view"
)

// window chrome around the wall screen: heading bar and status line
const (
	chromeW = 16
	chromeH = 80
)

// Container assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *wall.Registry
	Streams  *stream.Pool
	Metrics  *metrics.Metrics
	Gateway  *gateway.Client
	Wall     *model.WallModel
	RootView *view.RootView
	UI       view.UI

	// Presenters
	WallPresenter  *presenter.WallPresenter
	Session        *presenter.EditSession
	Controller     *presenter.FullscreenController
	ModePresenter  *presenter.ModePresenter
	Notify         *presenter.NotifyPresenter
	StatsPresenter *presenter.StatsPresenter
	Loop           *presenter.Loop
}

// BuildContainer constructs all components without touching Tk. It fails
// when the camera list cannot form a wall.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	reg, err := wall.NewRegistry(cfg.Tiles())
	if err != nil {
		return nil, fmt.Errorf("camera registry: %w", err)
	}
	c := &AppContainer{Config: cfg, Logger: logger, Registry: reg}
	c.Streams = stream.NewPool(reg.Tiles(), logger)
	c.Metrics = metrics.New(c.Streams.FramesTotal)
	c.Gateway = gateway.New(cfg.ServerURL, cfg.SubmitTimeout())
	c.Wall = model.NewWallModel()

	// View
	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView

	rows, cols := cfg.Grid()
	layout := wall.Layout{Rows: rows, Cols: cols, Size: ScreenSize(cfg), Gap: cfg.TileGap}
	c.WallPresenter = presenter.NewWallPresenter(reg, c.Streams, c.Wall, c.UI, layout)
	c.Session = presenter.NewEditSession(c.Wall, c.WallPresenter, c.Gateway, cfg.SubmitTimeout(), c.Metrics, logger)
	c.Controller = presenter.NewFullscreenController(c.Wall, reg, affordanceView{ui: c.UI}, c.Session, c.Metrics, logger)
	c.WallPresenter.SetClickHandler(c.Controller)
	c.ModePresenter = presenter.NewModePresenter(c.Wall, reg, c.UI)
	c.Controller.AddListener(c.ModePresenter.OnTransition)
	c.Notify = presenter.NewNotifyPresenter(c.Session, notifyView{ui: c.UI})
	c.StatsPresenter = presenter.NewStatsPresenter(c.Streams, c.UI)
	c.Loop = presenter.NewLoop(c.WallPresenter, c.ModePresenter, c.Notify, c.StatsPresenter, nil)
	return c, nil
}

// ScreenSize is the wall screen area left inside the configured window.
func ScreenSize(cfg *config.Config) image.Point {
	return image.Pt(max(cfg.WindowWidth-chromeW, 64), max(cfg.WindowHeight-chromeH, 48))
}

// Status is the JSON snapshot served on the metrics listener.
type Status struct {
	Cameras int            `json:"cameras"`
	Streams []StreamStatus `json:"streams"`
}

// StreamStatus summarises one camera stream.
type StreamStatus struct {
	Camera       string  `json:"camera"`
	Frames       uint64  `json:"frames"`
	DecodeErrors uint64  `json:"decode_errors"`
	AgeSeconds   float64 `json:"age_seconds"`
}

// Status reads stream counters. It is safe off the UI thread.
func (c *AppContainer) Status() Status {
	tiles := c.Registry.Tiles()
	st := Status{Cameras: len(tiles)}
	for i, s := range c.Streams.Stats() {
		st.Streams = append(st.Streams, StreamStatus{
			Camera:       tiles[i].Name,
			Frames:       s.Frames,
			DecodeErrors: s.DecodeErrors,
			AgeSeconds:   s.LatestFrameAge.Seconds(),
		})
	}
	return st
}

// affordanceView adapts the root view's edit button to the controller.
type affordanceView struct{ ui view.UI }

func (a affordanceView) ShowAffordance(camera string, onEdit func()) presenter.Affordance {
	b := a.ui.ShowEditButton(camera, onEdit)
	if b == nil {
		return nil
	}
	return b
}

func (a affordanceView) HideAffordance() { a.ui.HideEditButton() }

// notifyView shows notifications in the status line.
type notifyView struct{ ui view.UI }

func (n notifyView) Notify(x presenter.Notification) { n.ui.SetStatus(x.Text, x.Error) }
