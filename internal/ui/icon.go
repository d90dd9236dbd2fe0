package ui

// IconTheme selects the glyph variant of an icon.
type IconTheme string

const (
	IconOutlined IconTheme = "outlined"
	IconFilled   IconTheme = "filled"
)

// Icon names understood by IconGlyph.
const (
	IconExclamationCircle = "exclamation-circle"
	IconQuestionCircle    = "question-circle"
	IconInfoCircle        = "info-circle"
	IconCloseCircle       = "close-circle"
	IconCheckCircle       = "check-circle"
	IconDelete            = "delete"
	IconLoading           = "loading"
)

var iconGlyphs = map[string]map[IconTheme]string{
	IconExclamationCircle: {IconFilled: "⚠", IconOutlined: "!"},
	IconQuestionCircle:    {IconFilled: "❓", IconOutlined: "?"},
	IconInfoCircle:        {IconFilled: "ℹ", IconOutlined: "i"},
	IconCloseCircle:       {IconFilled: "✖", IconOutlined: "✕"},
	IconCheckCircle:       {IconFilled: "✔", IconOutlined: "✓"},
	IconDelete:            {IconFilled: "🗑", IconOutlined: "🗑"},
	IconLoading:           {IconFilled: "◌", IconOutlined: "◌"},
}

// IconGlyph returns the glyph for an icon name and theme. Unknown names
// render as "?"; an unknown theme falls back to outlined.
func IconGlyph(name string, theme IconTheme) string {
	variants, ok := iconGlyphs[name]
	if !ok {
		return "?"
	}
	if g, ok := variants[theme]; ok {
		return g
	}
	return variants[IconOutlined]
}

// DefaultPopconfirmIcon is the glyph shown when no icon is supplied.
var DefaultPopconfirmIcon = IconGlyph(IconExclamationCircle, IconFilled)
