package model

// WallState is the display mode of the wall.
type WallState int

const (
	StateTiled WallState = iota
	StateFullscreen
	StateEditing
)

func (s WallState) String() string {
	switch s {
	case StateTiled:
		return "Tiled"
	case StateFullscreen:
		return "Fullscreen"
	case StateEditing:
		return "Editing"
	default:
		return "Unknown"
	}
}

// WallModel holds the display mode, the fullscreen camera and the edit flag.
// It is only touched from the UI thread, so it carries no lock.
// The zero value is not tiled; use NewWallModel.
type WallModel struct {
	fullscreen int // -1 when tiled
	editing    bool
	session    string
}

// NewWallModel returns a model in the tiled state.
func NewWallModel() *WallModel { return &WallModel{fullscreen: -1} }

// State derives the current mode. Editing implies fullscreen.
func (m *WallModel) State() WallState {
	if m == nil || m.fullscreen < 0 {
		return StateTiled
	}
	if m.editing {
		return StateEditing
	}
	return StateFullscreen
}

// Fullscreen returns the expanded tile index, if any.
func (m *WallModel) Fullscreen() (int, bool) {
	if m == nil || m.fullscreen < 0 {
		return -1, false
	}
	return m.fullscreen, true
}

// Editing reports the edit mode flag.
func (m *WallModel) Editing() bool { return m != nil && m.editing }

// Session returns the handle of the active edit session, or "".
func (m *WallModel) Session() string {
	if m == nil {
		return ""
	}
	return m.session
}

// EnterFullscreen expands tile i. The edit flag is left untouched so a
// caller cannot switch tiles mid-edit without going through EnterTiled.
func (m *WallModel) EnterFullscreen(i int) {
	if m == nil || i < 0 || m.editing {
		return
	}
	m.fullscreen = i
}

// EnterTiled returns to the grid and clears any edit state.
func (m *WallModel) EnterTiled() {
	if m == nil {
		return
	}
	m.fullscreen = -1
	m.editing = false
	m.session = ""
}

// BeginEdit raises the edit flag for the given session handle. It reports
// false when not fullscreen or when another session is active.
func (m *WallModel) BeginEdit(handle string) bool {
	if m == nil || m.fullscreen < 0 || m.editing {
		return false
	}
	m.editing = true
	m.session = handle
	return true
}

// EndEdit clears the flag if handle owns it. An empty handle always clears.
func (m *WallModel) EndEdit(handle string) {
	if m == nil {
		return
	}
	if handle != "" && handle != m.session {
		return
	}
	m.editing = false
	m.session = ""
}
