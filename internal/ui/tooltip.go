package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/popconfirm/internal/mouse"
)

// Trigger is the interaction that opens a tooltip.
type Trigger string

const (
	TriggerClick       Trigger = "click"
	TriggerHover       Trigger = "hover"
	TriggerFocus       Trigger = "focus"
	TriggerContextMenu Trigger = "contextmenu"
)

// Defaults applied by TooltipProps.WithDefaults.
const (
	DefaultPrefixCls      = "ant-popover"
	DefaultTransitionName = TransitionZoomBig
	DefaultTrigger        = TriggerClick
	DefaultPlacement      = PlacementTop
)

// TransitionNone disables the open animation.
const TransitionNone = "none"

// TooltipProps are the options of the overlay primitive.
type TooltipProps struct {
	// PrefixCls namespaces the style classes of the popup
	PrefixCls string

	// TransitionName selects the open animation; TransitionNone disables it
	TransitionName string

	Trigger   Trigger
	Placement Placement

	// DisableAutoAdjust keeps the popup on its placement side even when it
	// overflows the screen
	DisableAutoAdjust bool

	// OverlayWidth caps the width of the popup message; 0 means unlimited
	OverlayWidth int

	// ZIndex orders popups drawn by the same host; higher draws later
	ZIndex int
}

// WithDefaults fills unset fields.
func (p TooltipProps) WithDefaults() TooltipProps {
	if p.PrefixCls == "" {
		p.PrefixCls = DefaultPrefixCls
	}
	if p.TransitionName == "" {
		p.TransitionName = DefaultTransitionName
	}
	if p.Trigger == "" {
		p.Trigger = DefaultTrigger
	}
	if p.Placement == "" {
		p.Placement = DefaultPlacement
	}
	return p
}

// Popup describes the last rendered popup of a tooltip.
type Popup struct {
	Rect      mouse.Rect
	Placement Placement
	Content   string
}

// Tooltip positions a popup next to an anchor rectangle and turns trigger
// interactions into visibility requests. It does not own its visibility: the
// owner supplies it with SetVisible and is told about desired changes through
// the OnVisibleChange callback.
type Tooltip struct {
	id      string
	props   TooltipProps
	visible bool
	focused bool

	anchor  mouse.Rect
	screenW int
	screenH int

	onVisibleChange func(bool)

	popup *Popup

	// open animation state
	seq   int
	frame int
}

// NewTooltip creates a tooltip. id tags its animation messages.
func NewTooltip(id string, props TooltipProps) *Tooltip {
	return &Tooltip{id: id, props: props.WithDefaults()}
}

// ID returns the tooltip id.
func (t *Tooltip) ID() string {
	return t.id
}

// Props returns the active options.
func (t *Tooltip) Props() TooltipProps {
	return t.props
}

// SetProps replaces the options.
func (t *Tooltip) SetProps(props TooltipProps) {
	t.props = props.WithDefaults()
}

// OnVisibleChange registers the callback receiving visibility requests.
func (t *Tooltip) OnVisibleChange(fn func(bool)) {
	t.onVisibleChange = fn
}

// Visible reports the visibility last supplied by the owner.
func (t *Tooltip) Visible() bool {
	return t.visible
}

// SetVisible applies the owner's visibility. Opening starts the transition;
// the returned command drives its frames.
func (t *Tooltip) SetVisible(v bool) tea.Cmd {
	if v == t.visible {
		return nil
	}
	t.visible = v
	if !v {
		return nil
	}
	t.seq++
	t.frame = 0
	if transitionFrameCount(t.props.TransitionName) == 0 {
		return nil
	}
	return transitionTick(t.id, t.seq)
}

// Animating reports whether the open transition is still running.
func (t *Tooltip) Animating() bool {
	return t.visible && t.frame < transitionFrameCount(t.props.TransitionName)
}

// HandleFrame advances the open transition.
func (t *Tooltip) HandleFrame(msg TransitionFrameMsg) tea.Cmd {
	if msg.ID != t.id || msg.Seq != t.seq || !t.Animating() {
		return nil
	}
	t.frame++
	if t.Animating() {
		return transitionTick(t.id, t.seq)
	}
	return nil
}

// SetAnchor sets the screen rectangle of the trigger element.
func (t *Tooltip) SetAnchor(r mouse.Rect) {
	t.anchor = r
}

// Anchor returns the trigger rectangle.
func (t *Tooltip) Anchor() mouse.Rect {
	return t.anchor
}

// SetSize informs the tooltip of the terminal dimensions.
func (t *Tooltip) SetSize(width, height int) {
	t.screenW = width
	t.screenH = height
}

// Focused reports whether the anchor has keyboard focus.
func (t *Tooltip) Focused() bool {
	return t.focused
}

// Focus gives the anchor keyboard focus. With the focus trigger this
// requests the popup.
func (t *Tooltip) Focus() {
	t.focused = true
	if t.props.Trigger == TriggerFocus {
		t.request(true)
	}
}

// Blur removes keyboard focus. With the focus trigger this requests hiding.
func (t *Tooltip) Blur() {
	t.focused = false
	if t.props.Trigger == TriggerFocus {
		t.request(false)
	}
}

// request reports a desired visibility if it differs from the current one.
func (t *Tooltip) request(v bool) {
	if v == t.visible || t.onVisibleChange == nil {
		return
	}
	t.onVisibleChange(v)
}

// HandleKey handles trigger activation from the keyboard. Only the click
// trigger reacts to keys, and only while the anchor is focused.
func (t *Tooltip) HandleKey(msg tea.KeyMsg) bool {
	if !t.focused || t.props.Trigger != TriggerClick {
		return false
	}
	switch msg.String() {
	case "enter", " ":
		t.request(!t.visible)
		return true
	}
	return false
}

// inPopup reports whether (x, y) hits the mounted, visible popup.
func (t *Tooltip) inPopup(x, y int) bool {
	return t.visible && t.popup != nil && t.popup.Rect.Contains(x, y)
}

// HandleMouse turns mouse events into visibility requests. Returns true when
// the event hit the anchor or the popup and should not reach the host.
func (t *Tooltip) HandleMouse(msg tea.MouseMsg) bool {
	action := mouse.Classify(msg)
	inAnchor := t.anchor.Contains(msg.X, msg.Y)
	inPopup := t.inPopup(msg.X, msg.Y)

	switch t.props.Trigger {
	case TriggerClick:
		if action != mouse.ActionClick {
			return inPopup
		}
		if inAnchor {
			t.request(!t.visible)
			return true
		}
		if !inPopup {
			t.request(false)
		}
		return inPopup

	case TriggerContextMenu:
		switch {
		case action == mouse.ActionRightClick && inAnchor:
			t.request(true)
			return true
		case action == mouse.ActionClick || action == mouse.ActionRightClick:
			if !inPopup {
				t.request(false)
			}
		}
		return inPopup

	case TriggerHover:
		if action == mouse.ActionHover {
			if inAnchor {
				t.request(true)
			} else if !inPopup {
				t.request(false)
			}
		}
		return inPopup

	case TriggerFocus:
		if action == mouse.ActionClick {
			if inAnchor {
				t.Focus()
				return true
			}
			if !inPopup {
				t.Blur()
			}
		}
		return inPopup
	}
	return false
}

// Render draws content as the popup over background when visible and records
// the popup for PopupHandle and hit testing.
func (t *Tooltip) Render(background, content string) string {
	if !t.visible {
		return background
	}
	w, h := lipgloss.Width(content), lipgloss.Height(content)
	rect, placement := PlacePopup(t.anchor, w, h, t.screenW, t.screenH, t.props.Placement, !t.props.DisableAutoAdjust)
	t.popup = &Popup{Rect: rect, Placement: placement, Content: content}

	shown, dy := applyTransition(t.props.TransitionName, content, t.frame, transitionFrameCount(t.props.TransitionName))
	return Compose(background, shown, rect.X, rect.Y+dy)
}

// PopupHandle returns a copy of the last rendered popup, or nil if the popup
// has never been mounted.
func (t *Tooltip) PopupHandle() *Popup {
	if t.popup == nil {
		return nil
	}
	p := *t.popup
	return &p
}
