package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/camwall/debug"
	"github.com/soocke/camwall/metrics"
	"github.com/soocke/camwall/ui/theme"
)

const runtimeLogInterval = 5 * time.Second

type app struct {
	c       *AppContainer
	tick    time.Duration
	afterID string

	cancel     context.CancelFunc
	metricsSrv *http.Server
	closed     bool
}

// NewApp prepares the main window for the container's wall.
func NewApp(title string, c *AppContainer) *app {
	a := &app{c: c, tick: c.Config.RefreshInterval()}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", c.Config.WindowWidth, c.Config.WindowHeight))
	return a
}

// Start builds the UI, starts the streams and blocks in the Tk event loop.
func (a *app) Start() {
	c := a.c
	theme.InitStyles(c.Config.DarkMode)
	c.RootView.Build(c.WallPresenter.Layout().Size, c.WallPresenter, c.Controller.OnModeExit, a.exitHandler)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	c.Streams.Start()
	if c.Config.Debug {
		debug.StartRuntimeLogger(ctx, runtimeLogInterval, c.Logger, c.Streams.Stats)
	}
	a.startMetrics()

	c.Loop.Schedule = a.scheduleUpdate
	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
	a.shutdown()
}

func (a *app) startMetrics() {
	addr := a.c.Config.MetricsAddr
	if addr == "" {
		return
	}
	a.metricsSrv = metrics.NewServer(addr, a.c.Metrics, func() any { return a.c.Status() })
	go func() {
		err := a.metricsSrv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) && a.c.Logger != nil {
			a.c.Logger.Error("metrics server", "addr", addr, "error", err)
		}
	}()
	if a.c.Logger != nil {
		a.c.Logger.Info("metrics server listening", "addr", addr)
	}
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.shutdown()
	Destroy(App)
}

// shutdown stops background work once; it runs from exitHandler or after App.Wait.
func (a *app) shutdown() {
	if a.closed {
		return
	}
	a.closed = true
	if a.cancel != nil {
		a.cancel()
	}
	a.c.Session.Close()
	a.c.Streams.Stop()
	if a.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = a.metricsSrv.Shutdown(ctx)
	}
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.tick, func() { a.c.Loop.Tick() })
}
