package presenter

import (
	"fmt"

	"github.com/soocke/camwall/domain/wall"
	"github.com/soocke/camwall/ui/model"
)

// HeadingView sets the heading label text.
type HeadingView interface{ SetHeading(string) }

// ModePresenter receives mode transitions and reflects the latest one in the
// heading on the next Tick.
type ModePresenter struct {
	model    *model.WallModel
	registry *wall.Registry
	view     HeadingView
	latest   string
	pending  []model.WallState
}

func NewModePresenter(m *model.WallModel, reg *wall.Registry, view HeadingView) *ModePresenter {
	return &ModePresenter{model: m, registry: reg, view: view}
}

// OnTransition queues the new state; it satisfies TransitionListener.
func (p *ModePresenter) OnTransition(_, next model.WallState) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick updates the heading once per batch of transitions. The first Tick
// always writes the heading.
func (p *ModePresenter) Tick() {
	if p == nil || p.view == nil {
		return
	}
	if len(p.pending) == 0 && p.latest != "" {
		return
	}
	p.pending = p.pending[:0]
	text := p.Heading()
	if text != p.latest {
		p.latest = text
		p.view.SetHeading(text)
	}
}

// Heading describes the current mode.
func (p *ModePresenter) Heading() string {
	name := ""
	if i, ok := p.model.Fullscreen(); ok {
		if t, ok := p.registry.ByIndex(i); ok {
			name = t.Name
		}
	}
	switch p.model.State() {
	case model.StateEditing:
		return fmt.Sprintf("Editing ROI for %s: drag a rectangle", name)
	case model.StateFullscreen:
		return fmt.Sprintf("Camera %s (click to return)", name)
	default:
		return fmt.Sprintf("Camera wall (%d cameras)", p.registry.Len())
	}
}
