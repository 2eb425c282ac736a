package theme

// Centralized theming for the wall viewer. Provides palette constants and
// InitStyles to activate a base theme and configure semantic widget styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // window background
	ColorPrimary   = "#2563eb" // edit affordance
	ColorDanger    = "#dc2626" // failed submissions
	ColorAccent    = "#059669" // saved submissions
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

// StyleEditButton is the ttk style of the "Edit region" button.
const StyleEditButton = "edit.TButton"

var darkMode bool

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{
			AppBg:     "#0f172a",
			Primary:   "#3b82f6",
			Danger:    "#ef4444",
			Accent:    "#10b981",
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Accent:    ColorAccent,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// InitStyles sets the mode and (re)applies styles.
func InitStyles(dark bool) {
	darkMode = dark
	pal := CurrentPalette()
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(pal.AppBg))
	StyleConfigure(StyleEditButton,
		Background(pal.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
}
