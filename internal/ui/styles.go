package ui

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme represents the current color scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// currentTheme holds the active theme (set at init)
var currentTheme Theme = ThemeDark

type palette struct {
	Bg, Surface, Border, Text, TextDim lipgloss.Color
	Accent, Cyan, Orange, Red, Comment lipgloss.Color
}

// Dark Theme - Oasis Lagoon
var darkColors = palette{
	Bg:      lipgloss.Color("#101825"),
	Surface: lipgloss.Color("#22385C"),
	Border:  lipgloss.Color("#264870"),
	Text:    lipgloss.Color("#D9E6FA"),
	TextDim: lipgloss.Color("#8FB0D0"),
	Accent:  lipgloss.Color("#58B8FD"),
	Cyan:    lipgloss.Color("#68C0B6"),
	Orange:  lipgloss.Color("#F8B471"),
	Red:     lipgloss.Color("#FF7979"),
	Comment: lipgloss.Color("#4D88A7"),
}

// Light Theme - Oasis Dawn
var lightColors = palette{
	Bg:      lipgloss.Color("#EEF4FF"),
	Surface: lipgloss.Color("#D0E8FE"),
	Border:  lipgloss.Color("#B2DCFE"),
	Text:    lipgloss.Color("#10426d"),
	TextDim: lipgloss.Color("#1f3f71"),
	Accent:  lipgloss.Color("#1670AD"),
	Cyan:    lipgloss.Color("#064658"),
	Orange:  lipgloss.Color("#533c00"),
	Red:     lipgloss.Color("#663021"),
	Comment: lipgloss.Color("#0D4266"),
}

// Active color variables (set by InitTheme)
var (
	ColorBg      lipgloss.Color
	ColorSurface lipgloss.Color
	ColorBorder  lipgloss.Color
	ColorText    lipgloss.Color
	ColorTextDim lipgloss.Color
	ColorAccent  lipgloss.Color
	ColorCyan    lipgloss.Color
	ColorOrange  lipgloss.Color
	ColorRed     lipgloss.Color
	ColorComment lipgloss.Color
)

// themeMu protects global color/style variables during live theme switches.
var themeMu sync.RWMutex

// InitTheme sets the active color palette based on theme name
// Must be called before any UI rendering
func InitTheme(theme string) {
	themeMu.Lock()
	defer themeMu.Unlock()

	p := darkColors
	currentTheme = ThemeDark
	if theme == string(ThemeLight) {
		p = lightColors
		currentTheme = ThemeLight
	}
	ColorBg = p.Bg
	ColorSurface = p.Surface
	ColorBorder = p.Border
	ColorText = p.Text
	ColorTextDim = p.TextDim
	ColorAccent = p.Accent
	ColorCyan = p.Cyan
	ColorOrange = p.Orange
	ColorRed = p.Red
	ColorComment = p.Comment

	initStyles()
}

// GetCurrentTheme returns the active theme
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

func init() {
	InitTheme("dark")
}

// Base Styles
var (
	TitleStyle  lipgloss.Style
	DimStyle    lipgloss.Style
	ErrorStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	AnchorStyle lipgloss.Style

	// AnchorFocusedStyle marks the row that receives trigger keys
	AnchorFocusedStyle lipgloss.Style
)

// Menu Bar Styles
var (
	MenuKeyStyle       lipgloss.Style
	MenuDescStyle      lipgloss.Style
	MenuSeparatorStyle lipgloss.Style
)

func initStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Background(ColorSurface).
		Padding(0, 1)

	DimStyle = lipgloss.NewStyle().Foreground(ColorComment)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	StatusStyle = lipgloss.NewStyle().Foreground(ColorTextDim).Italic(true)

	AnchorStyle = lipgloss.NewStyle().Foreground(ColorText)

	AnchorFocusedStyle = lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(ColorAccent).
		Bold(true)

	MenuKeyStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	MenuDescStyle = lipgloss.NewStyle().Foreground(ColorTextDim)
	MenuSeparatorStyle = lipgloss.NewStyle().Foreground(ColorBorder)
}

// HelpStyles returns bubbles/help styles in the menu colors.
func HelpStyles() help.Styles {
	themeMu.RLock()
	defer themeMu.RUnlock()

	st := help.New().Styles
	st.ShortKey = MenuKeyStyle
	st.ShortDesc = MenuDescStyle
	st.ShortSeparator = MenuSeparatorStyle
	st.FullKey = MenuKeyStyle
	st.FullDesc = MenuDescStyle
	st.FullSeparator = MenuSeparatorStyle
	st.Ellipsis = MenuSeparatorStyle
	return st
}

// ButtonPrefix is the class prefix for button styles.
const ButtonPrefix = "ant-btn"

// StyleSheet maps class names to styles. Unknown classes resolve to an empty
// style so a missing entry renders unstyled instead of failing.
type StyleSheet map[string]lipgloss.Style

// Get returns the style for class.
func (s StyleSheet) Get(class string) lipgloss.Style {
	if st, ok := s[class]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// With returns a copy of s with class set to style.
func (s StyleSheet) With(class string, style lipgloss.Style) StyleSheet {
	out := make(StyleSheet, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[class] = style
	return out
}

// DefaultStyleSheet builds the popover and button classes for prefix under
// the active theme.
func DefaultStyleSheet(prefix string) StyleSheet {
	themeMu.RLock()
	defer themeMu.RUnlock()

	btn := lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorSurface)

	return StyleSheet{
		prefix + "-inner-content": lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		prefix + "-message":         lipgloss.NewStyle().PaddingBottom(1),
		prefix + "-message-icon":    lipgloss.NewStyle().Foreground(ColorOrange),
		prefix + "-message-title":   lipgloss.NewStyle().Foreground(ColorText).Bold(true).PaddingLeft(1),
		prefix + "-message-content": lipgloss.NewStyle().Foreground(ColorTextDim).PaddingLeft(2),
		prefix + "-buttons":         lipgloss.NewStyle(),

		ButtonPrefix:               btn,
		ButtonPrefix + "-primary":  btn.Foreground(ColorBg).Background(ColorAccent).Bold(true),
		ButtonPrefix + "-dashed":   btn.Underline(true),
		ButtonPrefix + "-danger":   btn.Foreground(ColorBg).Background(ColorRed).Bold(true),
		ButtonPrefix + "-link":     lipgloss.NewStyle().Foreground(ColorAccent).Underline(true),
		ButtonPrefix + "-ghost":    lipgloss.NewStyle().Foreground(ColorAccent),
		ButtonPrefix + "-focused":  lipgloss.NewStyle().Reverse(true),
		ButtonPrefix + "-disabled": lipgloss.NewStyle().Foreground(ColorComment).Background(ColorBg).Faint(true),
	}
}
