package ui

import "github.com/sjoeboo/popconfirm/internal/mouse"

// Placement is where the popup sits relative to its anchor. The first word is
// the side, the optional second word aligns the popup to that edge of the
// anchor.
type Placement string

const (
	PlacementTop         Placement = "top"
	PlacementLeft        Placement = "left"
	PlacementRight       Placement = "right"
	PlacementBottom      Placement = "bottom"
	PlacementTopLeft     Placement = "topLeft"
	PlacementTopRight    Placement = "topRight"
	PlacementBottomLeft  Placement = "bottomLeft"
	PlacementBottomRight Placement = "bottomRight"
	PlacementLeftTop     Placement = "leftTop"
	PlacementLeftBottom  Placement = "leftBottom"
	PlacementRightTop    Placement = "rightTop"
	PlacementRightBottom Placement = "rightBottom"
)

type side int

const (
	sideTop side = iota
	sideBottom
	sideLeft
	sideRight
)

type align int

const (
	alignCenter align = iota
	alignStart
	alignEnd
)

var placements = map[Placement]struct {
	side    side
	align   align
	flipped Placement
}{
	PlacementTop:         {sideTop, alignCenter, PlacementBottom},
	PlacementTopLeft:     {sideTop, alignStart, PlacementBottomLeft},
	PlacementTopRight:    {sideTop, alignEnd, PlacementBottomRight},
	PlacementBottom:      {sideBottom, alignCenter, PlacementTop},
	PlacementBottomLeft:  {sideBottom, alignStart, PlacementTopLeft},
	PlacementBottomRight: {sideBottom, alignEnd, PlacementTopRight},
	PlacementLeft:        {sideLeft, alignCenter, PlacementRight},
	PlacementLeftTop:     {sideLeft, alignStart, PlacementRightTop},
	PlacementLeftBottom:  {sideLeft, alignEnd, PlacementRightBottom},
	PlacementRight:       {sideRight, alignCenter, PlacementLeft},
	PlacementRightTop:    {sideRight, alignStart, PlacementLeftTop},
	PlacementRightBottom: {sideRight, alignEnd, PlacementLeftBottom},
}

// Valid reports whether p is one of the twelve placements.
func (p Placement) Valid() bool {
	_, ok := placements[p]
	return ok
}

// Flip returns the placement on the opposite side with the same alignment.
func (p Placement) Flip() Placement {
	if info, ok := placements[p]; ok {
		return info.flipped
	}
	return p
}

func (p Placement) rect(anchor mouse.Rect, w, h int) mouse.Rect {
	info, ok := placements[p]
	if !ok {
		info = placements[PlacementTop]
	}
	r := mouse.Rect{W: w, H: h}

	switch info.side {
	case sideTop, sideBottom:
		if info.side == sideTop {
			r.Y = anchor.Y - h
		} else {
			r.Y = anchor.Y + anchor.H
		}
		switch info.align {
		case alignStart:
			r.X = anchor.X
		case alignEnd:
			r.X = anchor.X + anchor.W - w
		default:
			r.X = anchor.X + (anchor.W-w)/2
		}
	case sideLeft, sideRight:
		if info.side == sideLeft {
			r.X = anchor.X - w
		} else {
			r.X = anchor.X + anchor.W
		}
		switch info.align {
		case alignStart:
			r.Y = anchor.Y
		case alignEnd:
			r.Y = anchor.Y + anchor.H - h
		default:
			r.Y = anchor.Y + (anchor.H-h)/2
		}
	}
	return r
}

func overflowsMainAxis(p Placement, r mouse.Rect, screenW, screenH int) bool {
	switch placements[p].side {
	case sideTop:
		return r.Y < 0
	case sideBottom:
		return r.Y+r.H > screenH
	case sideLeft:
		return r.X < 0
	case sideRight:
		return r.X+r.W > screenW
	}
	return false
}

// PlacePopup computes the popup rectangle for a w×h popup next to anchor.
// With autoAdjust and a known screen size, a popup that overflows its side
// flips to the opposite side when that side fits, and is then shifted back
// onto the screen. Returns the rectangle and the placement actually used.
func PlacePopup(anchor mouse.Rect, w, h, screenW, screenH int, p Placement, autoAdjust bool) (mouse.Rect, Placement) {
	if !p.Valid() {
		p = PlacementTop
	}
	r := p.rect(anchor, w, h)
	if !autoAdjust || screenW <= 0 || screenH <= 0 {
		return r, p
	}

	if overflowsMainAxis(p, r, screenW, screenH) {
		flipped := p.Flip()
		fr := flipped.rect(anchor, w, h)
		if !overflowsMainAxis(flipped, fr, screenW, screenH) {
			p, r = flipped, fr
		}
	}

	r.X = clamp(r.X, 0, screenW-w)
	r.Y = clamp(r.Y, 0, screenH-h)
	return r, p
}

// clamp bounds v to [lo, hi]; when hi < lo, lo wins.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
