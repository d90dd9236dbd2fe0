package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColorsDefined(t *testing.T) {
	colors := []string{
		string(ColorBg),
		string(ColorSurface),
		string(ColorBorder),
		string(ColorText),
		string(ColorAccent),
		string(ColorOrange),
	}
	for _, c := range colors {
		if c == "" {
			t.Error("Color should not be empty")
		}
	}
}

func TestInitThemeSwitchesPalette(t *testing.T) {
	defer InitTheme("dark")

	InitTheme("light")
	if GetCurrentTheme() != ThemeLight {
		t.Fatalf("theme = %s, want light", GetCurrentTheme())
	}
	light := ColorBg

	InitTheme("anything-else")
	if GetCurrentTheme() != ThemeDark {
		t.Errorf("unknown theme should fall back to dark, got %s", GetCurrentTheme())
	}
	if ColorBg == light {
		t.Error("palette should change with the theme")
	}
}

func TestStyleSheetGetUnknownClass(t *testing.T) {
	var sheet StyleSheet
	if got := sheet.Get("missing").Render("x"); got != "x" {
		t.Errorf("unknown class should render unstyled, got %q", got)
	}
}

func TestStyleSheetWithCopies(t *testing.T) {
	base := StyleSheet{"a": lipgloss.NewStyle()}
	next := base.With("b", lipgloss.NewStyle().Bold(true))
	if _, ok := base["b"]; ok {
		t.Error("With must not modify the receiver")
	}
	if _, ok := next["a"]; !ok {
		t.Error("With should keep existing classes")
	}
	if !next.Get("b").GetBold() {
		t.Error("With should add the class")
	}
}

func TestDefaultStyleSheetClasses(t *testing.T) {
	sheet := DefaultStyleSheet("ant-popover")
	for _, class := range []string{
		"ant-popover-inner-content",
		"ant-popover-message",
		"ant-popover-message-icon",
		"ant-popover-message-title",
		"ant-popover-buttons",
		ButtonPrefix,
		ButtonPrefix + "-primary",
		ButtonPrefix + "-danger",
		ButtonPrefix + "-focused",
		ButtonPrefix + "-disabled",
	} {
		if _, ok := sheet[class]; !ok {
			t.Errorf("class %q missing", class)
		}
	}
	if sheet.Get("ant-popover-inner-content").GetBorderLeftSize() != 1 {
		t.Error("inner content should have a border")
	}
}

func TestHelpStylesUseMenuColors(t *testing.T) {
	st := HelpStyles()
	if st.ShortKey.GetForeground() != MenuKeyStyle.GetForeground() {
		t.Error("help keys should use the menu key style")
	}
}
