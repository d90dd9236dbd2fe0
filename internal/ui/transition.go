package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Transition names.
const (
	TransitionZoomBig = "zoom-big"
	TransitionSlideUp = "slide-up"
)

const (
	transitionFrames        = 3
	transitionFrameInterval = 30 * time.Millisecond
)

// TransitionFrameMsg advances the open animation of the tooltip with the
// given ID. Seq identifies the open cycle so stale ticks from an earlier
// open are dropped.
type TransitionFrameMsg struct {
	ID  string
	Seq int
}

// transitionFrameCount returns the number of intermediate frames for name;
// zero means the popup appears at once.
func transitionFrameCount(name string) int {
	switch name {
	case TransitionZoomBig, TransitionSlideUp:
		return transitionFrames
	}
	return 0
}

func transitionTick(id string, seq int) tea.Cmd {
	return tea.Tick(transitionFrameInterval, func(time.Time) tea.Msg {
		return TransitionFrameMsg{ID: id, Seq: seq}
	})
}

// applyTransition returns the visible rows of popup at frame (0-based) out of
// total intermediate frames, plus the row offset of the first visible row.
// frame >= total yields the full popup.
func applyTransition(name, popup string, frame, total int) (string, int) {
	if total <= 0 || frame >= total {
		return popup, 0
	}
	lines := strings.Split(popup, "\n")
	h := len(lines)
	rows := (h*(frame+1) + total) / (total + 1)
	if rows < 1 {
		rows = 1
	}
	if rows > h {
		rows = h
	}

	switch name {
	case TransitionZoomBig:
		top := (h - rows) / 2
		return strings.Join(lines[top:top+rows], "\n"), top
	case TransitionSlideUp:
		return strings.Join(lines[:rows], "\n"), 0
	}
	return popup, 0
}
