package ui

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sjoeboo/popconfirm/internal/mouse"
)

var testAnchor = mouse.Rect{X: 30, Y: 12, W: 10, H: 1}

// recorder collects listener calls in order.
type recorder struct {
	events []string
}

func (r *recorder) options() []Option {
	return []Option{
		WithOnVisibleChange(func(v bool, ev *Event) {
			r.events = append(r.events, fmt.Sprintf("visible:%v:event=%v", v, ev != nil))
		}),
		WithOnConfirm(func(Event) { r.events = append(r.events, "confirm") }),
		WithOnCancel(func(Event) { r.events = append(r.events, "cancel") }),
	}
}

// newTestPopconfirm builds a popconfirm without animation, anchored and sized.
func newTestPopconfirm(props Props, opts ...Option) *Popconfirm {
	if props.TransitionName == "" {
		props.TransitionName = TransitionNone
	}
	p := NewPopconfirm("test", props, opts...)
	p.SetAnchor(testAnchor)
	p.SetSize(80, 24)
	return p
}

func blankScreen(w, h int) string {
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func rightClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// regionClick renders p and returns a click on the named button region.
func regionClick(t *testing.T, p *Popconfirm, id string) tea.MouseMsg {
	t.Helper()
	p.Render(blankScreen(80, 24))
	for _, r := range p.hits.Regions() {
		if r.ID == id {
			return leftClick(r.Rect.X, r.Rect.Y)
		}
	}
	t.Fatalf("region %q not rendered", id)
	return tea.MouseMsg{}
}

// drain runs cmd and flattens batches and sequences into their messages.
// Animation ticks are dropped.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if _, ok := msg.(TransitionFrameMsg); ok {
		return nil
	}
	v := reflect.ValueOf(msg)
	if v.IsValid() && v.Kind() == reflect.Slice && v.Type().Elem() == reflect.TypeOf(tea.Cmd(nil)) {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			out = append(out, drain(v.Index(i).Interface().(tea.Cmd))...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
