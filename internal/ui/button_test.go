package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestButtonProps_Merge(t *testing.T) {
	base := ButtonProps{Type: ButtonPrimary, Size: ButtonSmall}

	if got := base.Merge(nil); got != base {
		t.Errorf("Merge(nil) = %+v", got)
	}
	got := base.Merge(&ButtonProps{Size: ButtonLarge, Loading: true, Icon: "+"})
	want := ButtonProps{Type: ButtonPrimary, Size: ButtonLarge, Loading: true, Icon: "+"}
	if got != want {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
	if base.Merge(&ButtonProps{}) != base {
		t.Error("zero override should change nothing")
	}
}

func TestButtonProps_Clickable(t *testing.T) {
	tests := []struct {
		props ButtonProps
		want  bool
	}{
		{ButtonProps{}, true},
		{ButtonProps{Ghost: true}, true},
		{ButtonProps{Disabled: true}, false},
		{ButtonProps{Loading: true}, false},
	}
	for _, tt := range tests {
		if got := tt.props.Clickable(); got != tt.want {
			t.Errorf("%+v.Clickable() = %v, want %v", tt.props, got, tt.want)
		}
	}
}

func TestButton_Classes(t *testing.T) {
	tests := []struct {
		name    string
		button  Button
		focused bool
		want    []string
	}{
		{"default", Button{}, false, []string{"ant-btn"}},
		{"primary focused", Button{Props: ButtonProps{Type: ButtonPrimary}}, true, []string{"ant-btn", "ant-btn-primary", "ant-btn-focused"}},
		{"ghost danger", Button{Props: ButtonProps{Type: ButtonDanger, Ghost: true}}, false, []string{"ant-btn", "ant-btn-danger", "ant-btn-ghost"}},
		{"disabled ignores focus", Button{Props: ButtonProps{Disabled: true}}, true, []string{"ant-btn", "ant-btn-disabled"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.button.Classes(tt.focused); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestButton_RenderPadding(t *testing.T) {
	sheet := StyleSheet{}
	tests := []struct {
		size ButtonSize
		want string
	}{
		{ButtonSmall, " OK "},
		{ButtonMedium, "  OK  "},
		{ButtonLarge, "   OK   "},
	}
	for _, tt := range tests {
		if got := (Button{Label: "OK", Props: ButtonProps{Size: tt.size}}).Render(sheet, false); got != tt.want {
			t.Errorf("size %s: Render = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestButton_RenderIconAndLoading(t *testing.T) {
	sheet := StyleSheet{}
	withIcon := Button{Label: "Go", Props: ButtonProps{Size: ButtonSmall, Icon: "+"}}.Render(sheet, false)
	if !strings.Contains(withIcon, "+ Go") {
		t.Errorf("icon render = %q", withIcon)
	}

	loading := Button{Label: "Go", Props: ButtonProps{Size: ButtonSmall, Icon: "+", Loading: true}}.Render(sheet, false)
	if !strings.Contains(loading, IconGlyph(IconLoading, IconOutlined)+" Go") || strings.Contains(loading, "+") {
		t.Errorf("loading render = %q", loading)
	}
}

func TestButton_RenderLaterClassWins(t *testing.T) {
	sheet := StyleSheet{
		"ant-btn":         lipgloss.NewStyle().PaddingLeft(5),
		"ant-btn-primary": lipgloss.NewStyle().PaddingLeft(1),
	}
	got := Button{Label: "x", Props: ButtonProps{Type: ButtonPrimary, Size: ButtonSmall}}.Render(sheet, false)
	if got != "  x " {
		t.Errorf("Render = %q, want primary padding to win", got)
	}
}
