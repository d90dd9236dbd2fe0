package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sjoeboo/popconfirm/internal/locale"
	"github.com/sjoeboo/popconfirm/internal/mouse"
)

// ButtonRole identifies one of the two popconfirm buttons.
type ButtonRole int

const (
	RoleNone ButtonRole = iota
	RoleCancel
	RoleOK
)

// Hit region ids registered by OverlayTree.Render.
const (
	RegionCancel = "popconfirm-cancel"
	RegionOK     = "popconfirm-ok"
)

func (r ButtonRole) String() string {
	switch r {
	case RoleCancel:
		return "cancel"
	case RoleOK:
		return "ok"
	}
	return "none"
}

// OverlayParams is everything the overlay builder needs besides the locale.
type OverlayParams struct {
	PrefixCls         string
	Title             string
	Content           string
	Icon              string
	OKType            ButtonType
	OKText            string
	CancelText        string
	OKButtonProps     *ButtonProps
	CancelButtonProps *ButtonProps

	// MaxWidth limits the message block; 0 means unlimited.
	MaxWidth int
}

// MessageNode is the icon + title (+ content) block.
type MessageNode struct {
	Class        string
	IconClass    string
	Icon         string
	IconIsCustom bool
	TitleClass   string
	Title        string
	ContentClass string
	Content      string
}

// ButtonsNode is the button row. Cancel renders before OK.
type ButtonsNode struct {
	Class  string
	Cancel Button
	OK     Button
}

// OverlayTree is a structured description of the popconfirm body.
type OverlayTree struct {
	Class    string
	MaxWidth int
	Message  MessageNode
	Buttons  ButtonsNode
}

// BuildOverlay resolves defaults and label fallbacks into an OverlayTree. It
// performs no lookups and holds no state.
func BuildOverlay(p OverlayParams, loc locale.PopconfirmLocale) OverlayTree {
	prefix := p.PrefixCls
	if prefix == "" {
		prefix = DefaultPrefixCls
	}
	okType := p.OKType
	if okType == "" {
		okType = ButtonPrimary
	}

	icon := p.Icon
	custom := icon != ""
	if !custom {
		icon = DefaultPopconfirmIcon
	}

	cancelLabel := p.CancelText
	if cancelLabel == "" {
		cancelLabel = loc.CancelText
	}
	okLabel := p.OKText
	if okLabel == "" {
		okLabel = loc.OKText
	}

	return OverlayTree{
		Class:    prefix + "-inner-content",
		MaxWidth: p.MaxWidth,
		Message: MessageNode{
			Class:        prefix + "-message",
			IconClass:    prefix + "-message-icon",
			Icon:         icon,
			IconIsCustom: custom,
			TitleClass:   prefix + "-message-title",
			Title:        p.Title,
			ContentClass: prefix + "-message-content",
			Content:      p.Content,
		},
		Buttons: ButtonsNode{
			Class: prefix + "-buttons",
			Cancel: Button{
				Label: cancelLabel,
				Props: ButtonProps{Size: ButtonSmall}.Merge(p.CancelButtonProps),
			},
			OK: Button{
				Label: okLabel,
				Props: ButtonProps{Type: okType, Size: ButtonSmall}.Merge(p.OKButtonProps),
			},
		},
	}
}

// Render draws the tree and returns the hit regions of the clickable buttons,
// relative to the top-left cell of the returned string.
func (t OverlayTree) Render(sheet StyleSheet, focus ButtonRole) (string, *mouse.HitMap) {
	icon := t.Message.Icon
	if !t.Message.IconIsCustom {
		icon = sheet.Get(t.Message.IconClass).Render(icon)
	}

	title := t.Message.Title
	titleStyle := sheet.Get(t.Message.TitleClass)
	if t.MaxWidth > 0 {
		room := t.MaxWidth - lipgloss.Width(icon) - titleStyle.GetHorizontalFrameSize()
		if room < 1 {
			room = 1
		}
		title = ansi.Truncate(title, room, "…")
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, icon, titleStyle.Render(title))}

	if t.Message.Content != "" {
		contentStyle := sheet.Get(t.Message.ContentClass)
		if t.MaxWidth > 0 {
			contentStyle = contentStyle.Width(t.MaxWidth)
		}
		lines = append(lines, contentStyle.Render(t.Message.Content))
	}
	message := sheet.Get(t.Message.Class).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	cancel := t.Buttons.Cancel.Render(sheet, focus == RoleCancel)
	ok := t.Buttons.OK.Render(sheet, focus == RoleOK)
	rowStyle := sheet.Get(t.Buttons.Class)
	row := rowStyle.Render(cancel + " " + ok)

	innerW := max(lipgloss.Width(message), lipgloss.Width(row))
	body := lipgloss.JoinVertical(lipgloss.Left,
		message,
		lipgloss.PlaceHorizontal(innerW, lipgloss.Right, row),
	)

	boxStyle := sheet.Get(t.Class)
	box := boxStyle.Render(body)

	hits := mouse.NewHitMap()
	rowX := boxStyle.GetBorderLeftSize() + boxStyle.GetPaddingLeft() +
		(innerW - lipgloss.Width(row)) +
		rowStyle.GetBorderLeftSize() + rowStyle.GetPaddingLeft()
	rowY := boxStyle.GetBorderTopSize() + boxStyle.GetPaddingTop() +
		lipgloss.Height(message) +
		rowStyle.GetBorderTopSize() + rowStyle.GetPaddingTop()

	cancelW := lipgloss.Width(cancel)
	if t.Buttons.Cancel.Props.Clickable() {
		hits.AddRect(RegionCancel, rowX, rowY, cancelW, 1, RoleCancel)
	}
	if t.Buttons.OK.Props.Clickable() {
		hits.AddRect(RegionOK, rowX+cancelW+1, rowY, lipgloss.Width(ok), 1, RoleOK)
	}
	return box, hits
}
