package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name       string
		background string
		popup      string
		x, y       int
		want       string
	}{
		{"inside", "..........\n..........\n..........", "ab\ncd", 3, 1, "..........\n...ab.....\n...cd....."},
		{"ragged popup padded", "......\n......", "abc\nd", 1, 0, ".abc..\n.d  .."},
		{"past end of row", "..\n..", "xy", 4, 1, "..\n..  xy"},
		{"below background", "....", "xy", 1, 2, "....\n\n xy"},
		{"clipped left and top", "....\n....", "ab\ncd", -1, -1, "d...\n...."},
		{"fully left of screen", "....", "ab", -5, 0, "...."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.background, tt.popup, tt.x, tt.y); got != tt.want {
				t.Errorf("Compose() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestCompose_StyledBackground(t *testing.T) {
	bg := "\x1b[31m" + strings.Repeat("r", 10) + "\x1b[0m"
	got := Compose(bg, "XY", 4, 0)
	if w := ansi.StringWidth(got); w != 10 {
		t.Errorf("width = %d, want 10", w)
	}
	if plain := ansi.Strip(got); plain != "rrrrXYrrrr" {
		t.Errorf("plain = %q, want rrrrXYrrrr", plain)
	}
}

func TestCompose_KeepsPopupBox(t *testing.T) {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Render("hi")
	out := Compose(blankScreen(20, 5), box, 2, 1)
	lines := strings.Split(out, "\n")
	for i, line := range strings.Split(box, "\n") {
		if !strings.Contains(lines[1+i], line) {
			t.Errorf("row %d = %q, missing %q", 1+i, lines[1+i], line)
		}
	}
}
