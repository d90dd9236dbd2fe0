package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 10, true},  // Top-right edge (exclusive width)
		{10, 19, true},  // Bottom-left edge (exclusive height)
		{15, 15, true},  // Center
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("popup", 0, 0, 30, 5, nil)
	hm.AddRect("ok", 20, 3, 6, 1, "confirm")

	r := hm.Test(22, 3)
	if r == nil || r.ID != "ok" {
		t.Fatalf("expected hit on ok, got %v", r)
	}
	if r.Data != "confirm" {
		t.Errorf("expected data 'confirm', got %v", r.Data)
	}

	r = hm.Test(2, 1)
	if r == nil || r.ID != "popup" {
		t.Errorf("expected hit on popup, got %v", r)
	}

	if hm.Test(40, 40) != nil {
		t.Error("expected miss outside all regions")
	}
}

func TestHitMapOffset(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("cancel", 1, 2, 5, 1, nil)

	moved := hm.Offset(10, 20)
	if moved.Test(1, 2) != nil {
		t.Error("offset map should not hit original coordinates")
	}
	if r := moved.Test(11, 22); r == nil || r.ID != "cancel" {
		t.Errorf("expected cancel at offset coordinates, got %v", r)
	}
	if len(hm.Regions()) != 1 {
		t.Error("offset must not modify the source map")
	}
}

func TestHitMapClearAndNil(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("a", 0, 0, 1, 1, nil)
	hm.Clear()
	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}

	var nilMap *HitMap
	if nilMap.Test(0, 0) != nil {
		t.Error("nil map should never hit")
	}
	if len(nilMap.Offset(1, 1).Regions()) != 0 {
		t.Error("offset of nil map should be empty")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.MouseMsg
		want ActionType
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, ActionClick},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, ActionRightClick},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion}, ActionHover},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, ActionRelease},
	}
	for _, tc := range cases {
		if got := Classify(tc.msg); got != tc.want {
			t.Errorf("%s: Classify = %v, want %v", tc.name, got, tc.want)
		}
	}
}
