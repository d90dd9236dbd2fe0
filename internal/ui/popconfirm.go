package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sjoeboo/popconfirm/internal/locale"
	"github.com/sjoeboo/popconfirm/internal/logging"
	"github.com/sjoeboo/popconfirm/internal/mouse"
)

// Ownership says who holds a popconfirm's visibility. It is fixed when the
// popconfirm is created.
type Ownership int

const (
	// OwnershipInternal: the popconfirm stores its own visibility, seeded from
	// Props.DefaultVisible.
	OwnershipInternal Ownership = iota
	// OwnershipExternal: the host owns visibility through Props.Visible and
	// SetVisibleProp; the popconfirm only reports desired changes.
	OwnershipExternal
)

func (o Ownership) String() string {
	if o == OwnershipExternal {
		return "external"
	}
	return "internal"
}

// Props configures a Popconfirm. Zero values select the defaults.
type Props struct {
	TooltipProps

	Title   string
	Content string

	OKType     ButtonType
	OKText     string
	CancelText string

	// Icon replaces the default warning glyph and is rendered unstyled
	Icon string

	OKButtonProps     *ButtonProps
	CancelButtonProps *ButtonProps

	// Visible, when non-nil, hands visibility ownership to the host.
	Visible *bool

	// DefaultVisible seeds internal visibility. Ignored when Visible is set.
	DefaultVisible bool
}

// EventSource is the input that produced an Event.
type EventSource int

const (
	EventKey EventSource = iota
	EventMouse
)

// Event describes the user interaction behind a confirm, cancel or
// visibility change.
type Event struct {
	Source EventSource
	Key    string
	X, Y   int
}

func keyEvent(msg tea.KeyMsg) *Event {
	return &Event{Source: EventKey, Key: msg.String()}
}

func mouseEvent(msg tea.MouseMsg) *Event {
	return &Event{Source: EventMouse, X: msg.X, Y: msg.Y}
}

// ConfirmMsg is emitted when the OK button is activated.
type ConfirmMsg struct {
	ID    string
	Event Event
}

// CancelMsg is emitted when the Cancel button is activated.
type CancelMsg struct {
	ID    string
	Event Event
}

// VisibleChangeMsg is emitted for every visibility change the popconfirm
// wants, whoever owns visibility. Event is nil when the change did not come
// from a button.
type VisibleChangeMsg struct {
	ID      string
	Visible bool
	Event   *Event
}

// Option configures a Popconfirm.
type Option func(*Popconfirm)

// WithOnConfirm registers a confirm listener.
func WithOnConfirm(fn func(Event)) Option {
	return func(p *Popconfirm) { p.onConfirm = fn }
}

// WithOnCancel registers a cancel listener.
func WithOnCancel(fn func(Event)) Option {
	return func(p *Popconfirm) { p.onCancel = fn }
}

// WithOnVisibleChange registers a visibility listener.
func WithOnVisibleChange(fn func(visible bool, ev *Event)) Option {
	return func(p *Popconfirm) { p.onVisibleChange = fn }
}

// WithLocale sets the bundle used for default button labels.
func WithLocale(b *locale.Bundle) Option {
	return func(p *Popconfirm) { p.bundle = b }
}

// WithStyleSheet overrides the theme-derived style sheet.
func WithStyleSheet(s StyleSheet) Option {
	return func(p *Popconfirm) { p.sheet = s }
}

// WithKeyMap overrides the popup key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(p *Popconfirm) { p.keys = k }
}

// Popconfirm is a confirmation popup attached to an anchor. It renders a
// message with Cancel and OK buttons over a Tooltip and reports outcomes as
// listener calls and as tea messages, in that order, visibility first.
type Popconfirm struct {
	id        string
	props     Props
	ownership Ownership
	visible   bool

	tooltip *Tooltip
	bundle  *locale.Bundle
	sheet   StyleSheet
	keys    KeyMap
	focus   ButtonRole

	// button regions in screen cells from the last Render
	hits *mouse.HitMap

	onConfirm       func(Event)
	onCancel        func(Event)
	onVisibleChange func(bool, *Event)

	pending []tea.Msg
	cmds    []tea.Cmd

	log *slog.Logger
}

// NewPopconfirm creates a popconfirm. Ownership is decided here from
// props.Visible and never changes afterwards.
func NewPopconfirm(id string, props Props, opts ...Option) *Popconfirm {
	p := &Popconfirm{
		id:    id,
		props: props,
		keys:  DefaultKeyMap(),
		log:   logging.ForComponent(logging.CompUI).With("popconfirm", id),
	}
	if props.Visible != nil {
		p.ownership = OwnershipExternal
		p.visible = *props.Visible
	} else {
		p.visible = props.DefaultVisible
	}
	for _, opt := range opts {
		opt(p)
	}

	p.tooltip = NewTooltip(id, p.hostProps())
	p.tooltip.OnVisibleChange(p.onHostVisibilityChange)
	p.syncTooltip()
	p.cmds = nil // an initially open popup skips the open animation
	p.tooltip.frame = transitionFrameCount(p.tooltip.props.TransitionName)
	return p
}

// hostProps is the subset of Props forwarded to the tooltip.
func (p *Popconfirm) hostProps() TooltipProps {
	return p.props.TooltipProps
}

// ID returns the popconfirm id.
func (p *Popconfirm) ID() string { return p.id }

// Ownership returns who owns visibility.
func (p *Popconfirm) Ownership() Ownership { return p.ownership }

// Controlled reports whether the host owns visibility.
func (p *Popconfirm) Controlled() bool { return p.ownership == OwnershipExternal }

// Visible reports the effective visibility.
func (p *Popconfirm) Visible() bool { return p.visible }

// IsVisible implements Dialog.
func (p *Popconfirm) IsVisible() bool { return p.visible }

// FocusedButton returns the button that Enter activates.
func (p *Popconfirm) FocusedButton() ButtonRole { return p.focus }

// Props returns the current props.
func (p *Popconfirm) Props() Props { return p.props }

// SetProps replaces the props. Ownership is unchanged; under external
// ownership a non-nil Visible is applied like SetVisibleProp.
func (p *Popconfirm) SetProps(props Props) tea.Cmd {
	visible := props.Visible
	p.props = props
	p.tooltip.SetProps(p.hostProps())
	if visible != nil && p.ownership == OwnershipExternal {
		return p.SetVisibleProp(*visible)
	}
	return p.Flush()
}

// SetLocale swaps the locale bundle used for default labels.
func (p *Popconfirm) SetLocale(b *locale.Bundle) {
	p.bundle = b
}

// SetAnchor sets the screen rectangle of the trigger element.
func (p *Popconfirm) SetAnchor(r mouse.Rect) {
	p.tooltip.SetAnchor(r)
}

// SetSize implements Dialog.
func (p *Popconfirm) SetSize(width, height int) {
	p.tooltip.SetSize(width, height)
}

// Focus gives the anchor keyboard focus.
func (p *Popconfirm) Focus() tea.Cmd {
	p.tooltip.Focus()
	return p.Flush()
}

// Blur removes keyboard focus from the anchor.
func (p *Popconfirm) Blur() tea.Cmd {
	p.tooltip.Blur()
	return p.Flush()
}

// Focused reports whether the anchor has keyboard focus.
func (p *Popconfirm) Focused() bool { return p.tooltip.Focused() }

// PopupHandle returns the mounted popup, or nil before the first render while
// visible.
func (p *Popconfirm) PopupHandle() *Popup {
	return p.tooltip.PopupHandle()
}

// SetVisibleProp updates the host-owned visibility. It is ignored, with a
// debug log, when the popconfirm owns its visibility.
func (p *Popconfirm) SetVisibleProp(v bool) tea.Cmd {
	if p.ownership != OwnershipExternal {
		p.log.Debug("visible prop ignored", slog.Bool("visible", v), slog.String("ownership", p.ownership.String()))
		return nil
	}
	p.props.Visible = &v
	p.visible = v
	p.syncTooltip()
	return p.Flush()
}

// Show implements Dialog. Resulting messages are returned by the next Flush
// or Update.
func (p *Popconfirm) Show() {
	p.onHostVisibilityChange(true)
}

// Hide implements Dialog. Resulting messages are returned by the next Flush
// or Update.
func (p *Popconfirm) Hide() {
	p.onHostVisibilityChange(false)
}

// Confirm activates the OK button programmatically.
func (p *Popconfirm) Confirm(ev Event) tea.Cmd {
	p.setVisible(false, &ev)
	p.log.Debug("confirm", slog.Int("source", int(ev.Source)))
	p.emit(ConfirmMsg{ID: p.id, Event: ev})
	if p.onConfirm != nil {
		p.onConfirm(ev)
	}
	return p.Flush()
}

// Cancel activates the Cancel button programmatically.
func (p *Popconfirm) Cancel(ev Event) tea.Cmd {
	p.setVisible(false, &ev)
	p.log.Debug("cancel", slog.Int("source", int(ev.Source)))
	p.emit(CancelMsg{ID: p.id, Event: ev})
	if p.onCancel != nil {
		p.onCancel(ev)
	}
	return p.Flush()
}

// onHostVisibilityChange receives the tooltip's visibility requests.
func (p *Popconfirm) onHostVisibilityChange(v bool) {
	p.setVisible(v, nil)
}

// setVisible stores v when visibility is internal and always notifies.
func (p *Popconfirm) setVisible(v bool, ev *Event) {
	if p.ownership == OwnershipInternal {
		p.visible = v
		p.syncTooltip()
	}
	p.log.Debug("visible change", slog.Bool("visible", v), slog.Bool("applied", p.ownership == OwnershipInternal))
	p.emit(VisibleChangeMsg{ID: p.id, Visible: v, Event: ev})
	if p.onVisibleChange != nil {
		p.onVisibleChange(v, ev)
	}
}

// syncTooltip pushes the effective visibility to the tooltip.
func (p *Popconfirm) syncTooltip() {
	opening := p.visible && !p.tooltip.Visible()
	if cmd := p.tooltip.SetVisible(p.visible); cmd != nil {
		p.cmds = append(p.cmds, cmd)
	}
	if opening {
		p.focus = p.initialFocus()
	}
}

func (p *Popconfirm) emit(msg tea.Msg) {
	p.pending = append(p.pending, msg)
}

// Flush returns the queued messages in emission order, batched with any
// animation commands.
func (p *Popconfirm) Flush() tea.Cmd {
	var seq tea.Cmd
	if len(p.pending) > 0 {
		cmds := make([]tea.Cmd, len(p.pending))
		for i, msg := range p.pending {
			cmds[i] = func() tea.Msg { return msg }
		}
		seq = tea.Sequence(cmds...)
	}
	anim := p.cmds
	p.pending = nil
	p.cmds = nil
	return tea.Batch(append([]tea.Cmd{seq}, anim...)...)
}

// overlay builds the overlay tree for the current props and locale.
func (p *Popconfirm) overlay() OverlayTree {
	return BuildOverlay(OverlayParams{
		PrefixCls:         p.tooltip.Props().PrefixCls,
		Title:             p.props.Title,
		Content:           p.props.Content,
		Icon:              p.props.Icon,
		OKType:            p.props.OKType,
		OKText:            p.props.OKText,
		CancelText:        p.props.CancelText,
		OKButtonProps:     p.props.OKButtonProps,
		CancelButtonProps: p.props.CancelButtonProps,
		MaxWidth:          p.props.OverlayWidth,
	}, locale.Popconfirm(p.bundle))
}

// clickable returns the clickable buttons in visual order.
func (p *Popconfirm) clickable() []ButtonRole {
	tree := p.overlay()
	var roles []ButtonRole
	if tree.Buttons.Cancel.Props.Clickable() {
		roles = append(roles, RoleCancel)
	}
	if tree.Buttons.OK.Props.Clickable() {
		roles = append(roles, RoleOK)
	}
	return roles
}

func (p *Popconfirm) isClickable(role ButtonRole) bool {
	for _, r := range p.clickable() {
		if r == role {
			return true
		}
	}
	return false
}

func (p *Popconfirm) initialFocus() ButtonRole {
	roles := p.clickable()
	if len(roles) == 0 {
		return RoleNone
	}
	return roles[len(roles)-1]
}

// moveFocus cycles focus through clickable buttons.
func (p *Popconfirm) moveFocus(delta int) {
	roles := p.clickable()
	if len(roles) == 0 {
		p.focus = RoleNone
		return
	}
	idx := -1
	for i, r := range roles {
		if r == p.focus {
			idx = i
		}
	}
	if idx < 0 {
		p.focus = roles[len(roles)-1]
		return
	}
	p.focus = roles[(idx+delta+len(roles))%len(roles)]
}

func (p *Popconfirm) activate(role ButtonRole, ev *Event) tea.Cmd {
	if !p.isClickable(role) {
		return nil
	}
	switch role {
	case RoleOK:
		return p.Confirm(*ev)
	case RoleCancel:
		return p.Cancel(*ev)
	}
	return nil
}

// Update routes keys, mouse events and animation frames. The returned
// command delivers emitted messages in order.
func (p *Popconfirm) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := p.HandleKey(msg)
		return cmd
	case tea.MouseMsg:
		cmd, _ := p.HandleMouse(msg)
		return cmd
	case TransitionFrameMsg:
		return p.tooltip.HandleFrame(msg)
	}
	return nil
}

// HandleKey implements Dialog. While visible the popup takes its bindings;
// otherwise the key may activate the anchor.
func (p *Popconfirm) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !p.visible {
		consumed := p.tooltip.HandleKey(msg)
		return p.Flush(), consumed
	}

	switch {
	case key.Matches(msg, p.keys.Confirm):
		return p.activate(RoleOK, keyEvent(msg)), true
	case key.Matches(msg, p.keys.Cancel):
		return p.activate(RoleCancel, keyEvent(msg)), true
	case key.Matches(msg, p.keys.Activate):
		return p.activate(p.focus, keyEvent(msg)), true
	case key.Matches(msg, p.keys.Next):
		p.moveFocus(1)
		return nil, true
	case key.Matches(msg, p.keys.Prev):
		p.moveFocus(-1)
		return nil, true
	}
	return nil, false
}

// HandleMouse routes a mouse event to the buttons, then to the trigger.
// Returns whether the event landed on the anchor or the popup.
func (p *Popconfirm) HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	if p.visible && mouse.Classify(msg) == mouse.ActionClick {
		if region := p.hits.Test(msg.X, msg.Y); region != nil {
			if role, ok := region.Data.(ButtonRole); ok {
				return p.activate(role, mouseEvent(msg)), true
			}
		}
	}
	consumed := p.tooltip.HandleMouse(msg)
	return p.Flush(), consumed
}

// View implements Dialog: the popup body alone, empty when hidden.
func (p *Popconfirm) View() string {
	if !p.visible {
		return ""
	}
	box, _ := p.overlay().Render(p.styleSheet(), p.focus)
	return box
}

// Render draws the popup over background at its placement when visible.
func (p *Popconfirm) Render(background string) string {
	if !p.visible {
		return background
	}
	box, hits := p.overlay().Render(p.styleSheet(), p.focus)
	out := p.tooltip.Render(background, box)
	// buttons are not clickable until the open transition has drawn them
	p.hits = nil
	if h := p.tooltip.PopupHandle(); h != nil && !p.tooltip.Animating() {
		p.hits = hits.Offset(h.Rect.X, h.Rect.Y)
	}
	return out
}

func (p *Popconfirm) styleSheet() StyleSheet {
	if p.sheet != nil {
		return p.sheet
	}
	return DefaultStyleSheet(p.tooltip.Props().PrefixCls)
}
