package presenter

import (
	"log/slog"

	"github.com/soocke/camwall/domain/wall"
	"github.com/soocke/camwall/metrics"
	"github.com/soocke/camwall/ui/model"
)

// AffordanceView shows and removes the edit control for the fullscreen camera.
type AffordanceView interface {
	ShowAffordance(camera string, onEdit func()) Affordance
	HideAffordance()
}

// SessionControl is the edit session surface the controller drives.
type SessionControl interface {
	Start(camera string, aff Affordance) error
	Cancel()
	Active() bool
	OnEnd(fn func())
}

// TransitionListener is notified after every display mode change.
type TransitionListener func(prev, next model.WallState)

// FullscreenController owns the Tiled/Fullscreen/Editing mode machine.
// All triggers run on the UI thread.
type FullscreenController struct {
	model     *model.WallModel
	registry  *wall.Registry
	view      AffordanceView
	session   SessionControl
	metrics   *metrics.Metrics
	logger    *slog.Logger
	aff       Affordance
	listeners []TransitionListener
}

// NewFullscreenController wires the controller to the session's end hook.
func NewFullscreenController(m *model.WallModel, reg *wall.Registry, view AffordanceView, session SessionControl, mx *metrics.Metrics, logger *slog.Logger) *FullscreenController {
	c := &FullscreenController{model: m, registry: reg, view: view, session: session, metrics: mx, logger: logger}
	if session != nil {
		session.OnEnd(c.sessionEnded)
	}
	return c
}

// AddListener registers l for future transitions.
func (c *FullscreenController) AddListener(l TransitionListener) {
	if c != nil && l != nil {
		c.listeners = append(c.listeners, l)
	}
}

// State returns the current mode.
func (c *FullscreenController) State() model.WallState {
	if c == nil {
		return model.StateTiled
	}
	return c.model.State()
}

// OnTileClick toggles between the grid and a single fullscreen camera.
// Clicks are swallowed while editing.
func (c *FullscreenController) OnTileClick(index int) {
	if c == nil {
		return
	}
	prev := c.model.State()
	if prev == model.StateEditing {
		c.debug("tile click swallowed", "index", index)
		return
	}
	tile, ok := c.registry.ByIndex(index)
	if !ok {
		return
	}
	if cur, full := c.model.Fullscreen(); full && cur == index {
		c.exitToTiled()
		return
	}
	c.dropAffordance()
	c.model.EnterFullscreen(index)
	c.aff = c.view.ShowAffordance(tile.Name, c.OnEditRequested)
	c.transition(prev, c.model.State(), "camera", tile.Name)
}

// OnEditRequested starts an ROI session for the fullscreen camera.
func (c *FullscreenController) OnEditRequested() {
	if c == nil {
		return
	}
	prev := c.model.State()
	if prev != model.StateFullscreen || c.session == nil || c.session.Active() {
		c.debug("edit request rejected", "state", prev.String())
		return
	}
	idx, _ := c.model.Fullscreen()
	tile, ok := c.registry.ByIndex(idx)
	if !ok {
		return
	}
	if err := c.session.Start(tile.Name, c.aff); err != nil {
		if c.logger != nil {
			c.logger.Warn("edit session not started", "camera", tile.Name, "error", err)
		}
		return
	}
	c.transition(prev, c.model.State(), "camera", tile.Name)
}

// OnModeExit leaves fullscreen (for example on Escape), cancelling any edit.
func (c *FullscreenController) OnModeExit() {
	if c == nil || c.model.State() == model.StateTiled {
		return
	}
	c.exitToTiled()
}

func (c *FullscreenController) exitToTiled() {
	if c.session != nil {
		c.session.Cancel()
	}
	prev := c.model.State()
	c.dropAffordance()
	c.model.EnterTiled()
	c.transition(prev, model.StateTiled)
}

func (c *FullscreenController) dropAffordance() {
	if c.aff != nil {
		c.view.HideAffordance()
		c.aff = nil
	}
}

func (c *FullscreenController) sessionEnded() {
	if c.model.State() == model.StateFullscreen {
		c.transition(model.StateEditing, model.StateFullscreen)
	}
}

func (c *FullscreenController) transition(prev, next model.WallState, attrs ...any) {
	if prev == next {
		return
	}
	c.debug("wall transition", append([]any{"from", prev.String(), "to", next.String()}, attrs...)...)
	c.metrics.RecordTransition(next.String())
	for _, l := range c.listeners {
		l(prev, next)
	}
}

func (c *FullscreenController) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
