package view

import (
	"github.com/soocke/camwall/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// EditButton is the "Edit region" affordance shown for the fullscreen camera.
// A destroyed button ignores further calls.
type EditButton struct {
	btn *TButtonWidget
}

// NewEditButton creates the button inside parent at column col.
func NewEditButton(parent *FrameWidget, col int, onEdit func()) *EditButton {
	b := &EditButton{btn: TButton(Style(theme.StyleEditButton), Txt("Edit region"), Command(onEdit))}
	Grid(b.btn, In(parent), Row(0), Column(col), Sticky("e"), Padx("0.2m"), Pady("0.2m"))
	return b
}

// SetEnabled toggles the button between normal and disabled.
func (b *EditButton) SetEnabled(enabled bool) {
	if b == nil || b.btn == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	b.btn.Configure(State(state))
}

// Destroy removes the button from the window. Only the first call destroys the widget.
func (b *EditButton) Destroy() {
	if b == nil || b.btn == nil {
		return
	}
	Destroy(b.btn)
	b.btn = nil
}
