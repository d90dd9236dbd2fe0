// Package mouse provides rectangle hit testing and mouse event
// classification for Bubble Tea components.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle in cells. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Region is a named hit area with optional payload.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds hit regions. Regions added later win over earlier ones.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	if hm == nil {
		return nil
	}
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order.
func (hm *HitMap) Regions() []Region {
	if hm == nil {
		return nil
	}
	return hm.regions
}

// Clear removes all regions.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Offset returns a copy of hm with every region translated by (dx, dy).
func (hm *HitMap) Offset(dx, dy int) *HitMap {
	out := NewHitMap()
	if hm == nil {
		return out
	}
	for _, r := range hm.regions {
		out.regions = append(out.regions, Region{ID: r.ID, Rect: r.Rect.Offset(dx, dy), Data: r.Data})
	}
	return out
}

// ActionType classifies a mouse message.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionRightClick
	ActionHover
	ActionRelease
)

// Classify maps a raw Bubble Tea mouse message to an ActionType.
func Classify(msg tea.MouseMsg) ActionType {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return ActionClick
		case tea.MouseButtonRight:
			return ActionRightClick
		}
	case tea.MouseActionMotion:
		return ActionHover
	case tea.MouseActionRelease:
		return ActionRelease
	}
	return ActionNone
}
