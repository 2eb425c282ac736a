package view

import (
	"image"
	"log/slog"

	"github.com/soocke/camwall/config"
	"github.com/soocke/camwall/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level window layout and wires UI callbacks.
// It owns the subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Screen ScreenView
	Stats  StreamStats

	// Widgets
	heading *LabelWidget
	status  *LabelWidget
	slot    *FrameWidget // holds the edit affordance
	edit    *EditButton
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetHeading(text string)
	SetStatus(text string, isError bool)
	SetStreamStats(live, total int)
	UpdateScreen(img image.Image)
	ShowEditButton(camera string, onEdit func()) *EditButton
	HideEditButton()
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout: heading bar, wall screen and status line.
// Handlers are invoked on user actions.
func (rv *RootView) Build(screen image.Point, pointer PointerHandler, onModeExit func(), onExit func()) {
	if rv == nil {
		return
	}
	pal := theme.CurrentPalette()

	// Row 0: heading, stream stats, affordance slot, exit
	bar := Frame()
	Grid(bar, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.heading = Label(Txt("Camera wall"), Anchor("w"), Foreground(pal.Text))
	Grid(rv.heading, In(bar), Row(0), Column(0), Sticky("w"), Padx("0.4m"))
	rv.Stats = NewStreamStats(bar, 0, 1)
	rv.slot = Frame()
	Grid(rv.slot, In(bar), Row(0), Column(2), Sticky("e"), Padx("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(bar), Row(0), Column(3), Sticky("e"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: wall screen
	rv.Screen = NewScreenView(1, 1, screen, pointer)

	// Row 2: status line
	rv.status = Label(Txt(""), Anchor("w"), Foreground(pal.TextMuted))
	Grid(rv.status, Row(2), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	if onModeExit != nil {
		Bind(App, "<Escape>", Command(onModeExit))
	}
}

// SetHeading updates the heading label text.
func (rv *RootView) SetHeading(text string) {
	if rv != nil && rv.heading != nil {
		rv.heading.Configure(Txt(text))
	}
}

// SetStatus shows a notification in the status line.
func (rv *RootView) SetStatus(text string, isError bool) {
	if rv == nil || rv.status == nil {
		return
	}
	pal := theme.CurrentPalette()
	fg := pal.Accent
	if isError {
		fg = pal.Danger
	}
	rv.status.Configure(Txt(text), Foreground(fg))
	if rv.logger != nil {
		rv.logger.Debug("status", "text", text, "error", isError)
	}
}

// SetStreamStats proxies to the stats label.
func (rv *RootView) SetStreamStats(live, total int) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetStreamStats(live, total)
	}
}

// UpdateScreen proxies to the wall screen view.
func (rv *RootView) UpdateScreen(img image.Image) {
	if rv != nil && rv.Screen != nil {
		rv.Screen.UpdateScreen(img)
	}
}

// ShowEditButton places a fresh edit button for camera, replacing any previous one.
func (rv *RootView) ShowEditButton(camera string, onEdit func()) *EditButton {
	if rv == nil || rv.slot == nil {
		return nil
	}
	rv.HideEditButton()
	rv.edit = NewEditButton(rv.slot, 0, onEdit)
	if rv.logger != nil {
		rv.logger.Debug("edit button shown", "camera", camera)
	}
	return rv.edit
}

// HideEditButton removes the edit button if present.
func (rv *RootView) HideEditButton() {
	if rv == nil || rv.edit == nil {
		return
	}
	rv.edit.Destroy()
	rv.edit = nil
}
