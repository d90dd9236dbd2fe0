package ui

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sjoeboo/popconfirm/internal/locale"
	"github.com/sjoeboo/popconfirm/internal/logging"
	"github.com/sjoeboo/popconfirm/internal/mouse"
)

// Layout constants
const (
	homeMarginLeft = 4
	homeFirstRow   = 8
	homeRowGap     = 2
	anchorColWidth = 18
)

// Demo row ids
const (
	RowClick       = "click"
	RowHover       = "hover"
	RowFocus       = "focus"
	RowContextMenu = "contextmenu"
	RowControlled  = "controlled"
	RowLabels      = "labels"
	RowIcon        = "icon"
	RowDisabled    = "disabled"
	RowDanger      = "danger"
)

// HomeOptions configures the demo screen.
type HomeOptions struct {
	// Defaults applied to rows that do not pin their own trigger
	Trigger        Trigger
	Placement      Placement
	OKType         ButtonType
	TransitionName string

	DisableAutoAdjust bool

	Locale     *locale.Bundle
	LocaleName string

	// Watcher, when set, hot-reloads Locale. Reloaded bundles are merged
	// through Registry when one is given.
	Watcher  *locale.Watcher
	Registry *locale.Registry
}

type homeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
	popup  KeyMap
}

func defaultHomeKeyMap() homeKeyMap {
	return homeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle controlled"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		popup: DefaultKeyMap(),
	}
}

func (k homeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.popup.Activate, k.Toggle, k.Help, k.Quit}
}

func (k homeKeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Up, k.Down, k.Toggle}, {k.Theme, k.Help, k.Quit}}, k.popup.FullHelp()...)
}

// demoRow is an anchor on the demo screen with its popconfirm.
type demoRow struct {
	label string
	desc  string
	pc    *Popconfirm
	y     int
}

// localeReloadMsg carries a reloaded locale bundle.
type localeReloadMsg locale.Reload

// Home is the demo screen: a column of anchors, each with a popconfirm.
type Home struct {
	width  int
	height int

	rows   []*demoRow
	cursor int

	status    string
	statusErr bool
	confirms  int
	cancels   int

	localeName string
	watcher    *locale.Watcher
	registry   *locale.Registry

	keys homeKeyMap
	help help.Model

	log *slog.Logger
}

// NewHome builds the demo screen.
func NewHome(opts HomeOptions) *Home {
	h := &Home{
		localeName: opts.LocaleName,
		watcher:    opts.Watcher,
		registry:   opts.Registry,
		keys:       defaultHomeKeyMap(),
		help:       help.New(),
		status:     "Select an anchor and press enter",
		log:        logging.ForComponent(logging.CompUI),
	}
	h.help.Styles = HelpStyles()
	if h.localeName == "" {
		h.localeName = locale.DefaultLocale
	}

	base := TooltipProps{
		Trigger:           opts.Trigger,
		Placement:         opts.Placement,
		TransitionName:    opts.TransitionName,
		DisableAutoAdjust: opts.DisableAutoAdjust,
	}
	with := func(t Trigger) TooltipProps {
		p := base
		p.Trigger = t
		return p
	}
	narrow := base
	narrow.OverlayWidth = 28
	narrow.ZIndex = 1
	hidden := false

	demos := []struct {
		id, label, desc string
		props           Props
	}{
		{RowClick, "Delete task", "click trigger", Props{
			TooltipProps: base,
			Title:        "Are you sure delete this task?",
			OKType:       opts.OKType,
		}},
		{RowHover, "Hover me", "hover trigger", Props{
			TooltipProps: with(TriggerHover),
			Title:        "Archive this item?",
		}},
		{RowFocus, "Focus me", "opens while focused", Props{
			TooltipProps: with(TriggerFocus),
			Title:        "Publish now?",
		}},
		{RowContextMenu, "Right-click me", "contextmenu trigger", Props{
			TooltipProps: with(TriggerContextMenu),
			Title:        "Reset layout?",
		}},
		{RowControlled, "Controlled", "visibility owned by the screen (v)", Props{
			TooltipProps: base,
			Title:        "Host decides. Close?",
			Visible:      &hidden,
		}},
		{RowLabels, "Custom labels", "overridden button text", Props{
			TooltipProps: base,
			Title:        "Proceed with deployment?",
			OKText:       "Yes, proceed",
			CancelText:   "No",
		}},
		{RowIcon, "Custom icon", "question icon", Props{
			TooltipProps: base,
			Title:        "Need help?",
			Icon:         lipgloss.NewStyle().Foreground(ColorCyan).Render(IconGlyph(IconQuestionCircle, IconOutlined)),
		}},
		{RowDisabled, "Disabled OK", "confirm unavailable", Props{
			TooltipProps:  base,
			Title:         "Delete protected branch?",
			Content:       "Branch protection is enabled.",
			OKButtonProps: &ButtonProps{Disabled: true},
		}},
		{RowDanger, "Danger", "danger type, narrow overlay", Props{
			TooltipProps: narrow,
			Title:        "Permanently remove every archived session and its history?",
			Content:      "This cannot be undone.",
			OKType:       ButtonDanger,
		}},
	}

	for i, s := range demos {
		row := &demoRow{label: s.label, desc: s.desc, y: homeFirstRow + i*homeRowGap}
		row.pc = NewPopconfirm(s.id, s.props,
			WithLocale(opts.Locale),
			WithOnConfirm(func(Event) { h.confirms++ }),
			WithOnCancel(func(Event) { h.cancels++ }),
		)
		h.rows = append(h.rows, row)
	}
	h.layout()
	return h
}

// Init implements tea.Model.
func (h *Home) Init() tea.Cmd {
	cmds := []tea.Cmd{h.rows[h.cursor].pc.Focus()}
	if h.watcher != nil {
		cmds = append(cmds, waitForLocaleReload(h.watcher))
	}
	return tea.Batch(cmds...)
}

// waitForLocaleReload blocks on the watcher and returns the next reload.
func waitForLocaleReload(w *locale.Watcher) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-w.Reloads()
		if !ok {
			return nil
		}
		return localeReloadMsg(r)
	}
}

// Row returns the popconfirm of the demo row with the given id, or nil.
func (h *Home) Row(id string) *Popconfirm {
	for _, r := range h.rows {
		if r.pc.ID() == id {
			return r.pc
		}
	}
	return nil
}

// layout places every anchor on screen.
func (h *Home) layout() {
	for _, r := range h.rows {
		r.pc.SetAnchor(mouse.Rect{X: homeMarginLeft, Y: r.y, W: anchorColWidth + 2, H: 1})
		r.pc.SetSize(h.width, h.height)
	}
}

// openDialogs returns the visible popups from the top of the stack down.
func (h *Home) openDialogs() []Dialog {
	var open []Dialog
	for _, pc := range h.byZ() {
		if !pc.IsVisible() {
			break
		}
		open = append(open, pc)
	}
	return open
}

// byZ returns the popconfirms from the top of the stack down.
func (h *Home) byZ() []*Popconfirm {
	out := make([]*Popconfirm, 0, len(h.rows))
	for _, r := range h.rows {
		out = append(out, r.pc)
	}
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := out[i].Visible(), out[j].Visible()
		if vi != vj {
			return vi
		}
		return out[i].Props().ZIndex > out[j].Props().ZIndex
	})
	return out
}

func (h *Home) setCursor(i int) tea.Cmd {
	if i < 0 || i >= len(h.rows) || i == h.cursor {
		return nil
	}
	blur := h.rows[h.cursor].pc.Blur()
	h.cursor = i
	return tea.Batch(blur, h.rows[i].pc.Focus())
}

// Update implements tea.Model.
func (h *Home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		h.help.Width = msg.Width
		h.layout()
		return h, nil

	case tea.KeyMsg:
		return h, h.handleKey(msg)

	case tea.MouseMsg:
		return h, h.handleMouse(msg)

	case TransitionFrameMsg:
		if pc := h.Row(msg.ID); pc != nil {
			return h, pc.Update(msg)
		}
		return h, nil

	case VisibleChangeMsg:
		if pc := h.Row(msg.ID); pc != nil && pc.Controlled() {
			return h, pc.SetVisibleProp(msg.Visible)
		}
		return h, nil

	case ConfirmMsg:
		h.setStatus(fmt.Sprintf("Confirmed %q (%s)", h.label(msg.ID), describeEvent(msg.Event)), false)
		return h, nil

	case CancelMsg:
		h.setStatus(fmt.Sprintf("Cancelled %q (%s)", h.label(msg.ID), describeEvent(msg.Event)), false)
		return h, nil

	case localeReloadMsg:
		if msg.Err != nil {
			h.log.Warn("locale_reload_failed", slog.String("error", msg.Err.Error()))
			h.setStatus("Locale reload failed: "+msg.Err.Error(), true)
		} else {
			h.SetLocale(h.mergeReload(msg.Bundle))
			h.setStatus("Locale reloaded: "+msg.Bundle.Locale, false)
		}
		if h.watcher == nil {
			return h, nil
		}
		return h, waitForLocaleReload(h.watcher)
	}
	return h, nil
}

func (h *Home) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	for _, d := range h.openDialogs() {
		if cmd, consumed := d.HandleKey(msg); consumed {
			return cmd
		}
	}
	if cmd, consumed := h.rows[h.cursor].pc.HandleKey(msg); consumed {
		return cmd
	}

	switch {
	case key.Matches(msg, h.keys.Quit):
		return tea.Quit
	case key.Matches(msg, h.keys.Up):
		return h.setCursor(h.cursor - 1)
	case key.Matches(msg, h.keys.Down):
		return h.setCursor(h.cursor + 1)
	case key.Matches(msg, h.keys.Toggle):
		pc := h.Row(RowControlled)
		return pc.SetVisibleProp(!pc.Visible())
	case key.Matches(msg, h.keys.Theme):
		next := ThemeLight
		if GetCurrentTheme() == ThemeLight {
			next = ThemeDark
		}
		InitTheme(string(next))
		h.help.Styles = HelpStyles()
		return nil
	case key.Matches(msg, h.keys.Help):
		h.help.ShowAll = !h.help.ShowAll
		return nil
	}
	return nil
}

func (h *Home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	var cmds []tea.Cmd
	consumed := false
	for _, pc := range h.byZ() {
		if consumed && !pc.Visible() {
			continue
		}
		cmd, hit := pc.HandleMouse(msg)
		cmds = append(cmds, cmd)
		consumed = consumed || hit
	}

	action := mouse.Classify(msg)
	if (action == mouse.ActionClick || action == mouse.ActionRightClick) && !h.overPopup(msg.X, msg.Y) {
		for i, r := range h.rows {
			if r.pc.tooltip.Anchor().Contains(msg.X, msg.Y) {
				cmds = append(cmds, h.setCursor(i))
				break
			}
		}
	}
	return tea.Batch(cmds...)
}

// overPopup reports whether (x, y) lies on a visible popup.
func (h *Home) overPopup(x, y int) bool {
	for _, r := range h.rows {
		if !r.pc.Visible() {
			continue
		}
		if p := r.pc.PopupHandle(); p != nil && p.Rect.Contains(x, y) {
			return true
		}
	}
	return false
}

// SetLocale applies a bundle to every popconfirm.
func (h *Home) SetLocale(b *locale.Bundle) {
	if b != nil && b.Locale != "" {
		h.localeName = b.Locale
	}
	for _, r := range h.rows {
		r.pc.SetLocale(b)
	}
}

// mergeReload folds a reloaded bundle into the registry so partial files keep
// the built-in strings they do not override.
func (h *Home) mergeReload(b *locale.Bundle) *locale.Bundle {
	if h.registry == nil {
		return b
	}
	h.registry.Register(b)
	merged, err := h.registry.Lookup(b.Locale)
	if err != nil {
		return b
	}
	return merged
}

func (h *Home) setStatus(s string, isErr bool) {
	h.status = s
	h.statusErr = isErr
}

func (h *Home) label(id string) string {
	for _, r := range h.rows {
		if r.pc.ID() == id {
			return r.label
		}
	}
	return id
}

func describeEvent(ev Event) string {
	if ev.Source == EventMouse {
		return fmt.Sprintf("mouse %d,%d", ev.X, ev.Y)
	}
	return "key " + ev.Key
}

// View implements tea.Model.
func (h *Home) View() string {
	lines := make([]string, max(h.height, homeFirstRow+len(h.rows)*homeRowGap+4))

	lines[1] = strings.Repeat(" ", homeMarginLeft-1) + TitleStyle.Render("Popconfirm") +
		"  " + DimStyle.Render(fmt.Sprintf("locale %s · confirmed %d · cancelled %d", h.localeName, h.confirms, h.cancels))

	status := StatusStyle.Render(h.status)
	if h.statusErr {
		status = ErrorStyle.Render(h.status)
	}
	lines[3] = strings.Repeat(" ", homeMarginLeft) + status

	for i, r := range h.rows {
		label := runewidth.FillRight(runewidth.Truncate(r.label, anchorColWidth, "…"), anchorColWidth)
		style := AnchorStyle
		if i == h.cursor {
			style = AnchorFocusedStyle
		}
		marker := " "
		if r.pc.Visible() {
			marker = "●"
		}
		lines[r.y] = strings.Repeat(" ", homeMarginLeft) + style.Render(" "+label+" ") +
			" " + marker + " " + DimStyle.Render(r.desc)
	}

	helpView := h.help.View(h.keys)
	helpLines := strings.Split(helpView, "\n")
	start := len(lines) - len(helpLines)
	for i, l := range helpLines {
		if start+i >= 0 {
			lines[start+i] = " " + l
		}
	}

	out := strings.Join(lines, "\n")

	// lowest z first so higher popups draw on top
	stack := h.byZ()
	for i := len(stack) - 1; i >= 0; i-- {
		out = stack[i].Render(out)
	}
	return out
}
