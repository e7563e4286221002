// ABOUTME: Bubbletea model wrapping the Text component
// ABOUTME: Keeps the component canonical; the model adapts messages and commands

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/typeset/pkg/tui"
	"github.com/mauromedda/typeset/pkg/tui/component"
)

// TextModel embeds a Text component in a bubbletea program. The component
// holds all typography state; the model translates tea messages into
// component calls and component timers into tea commands.
type TextModel struct {
	text  *component.Text
	sched *cmdScheduler
	width int
	frame lipgloss.Style
}

// NewText wraps content and options in a bubbletea-ready model. The
// scheduler option is owned by the adapter and must be left unset.
func NewText(content any, opts component.TextOptions) TextModel {
	s := newCmdScheduler()
	opts.Scheduler = s
	txt := component.NewText(content, opts)
	txt.Mount()
	return TextModel{
		text:  txt,
		sched: s,
		width: 80,
		frame: lipgloss.NewStyle(),
	}
}

// WithFrame sets a lipgloss style applied around the rendered text.
func (m TextModel) WithFrame(s lipgloss.Style) TextModel {
	m.frame = s
	return m
}

// Text exposes the underlying component for direct state queries.
func (m TextModel) Text() *component.Text {
	return m.text
}

func (m TextModel) Init() tea.Cmd {
	return nil
}

func (m TextModel) Update(msg tea.Msg) (TextModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case timerFiredMsg:
		m.sched.fire(msg.id)
	case tea.KeyMsg:
		if raw := keyToRaw(msg); raw != "" {
			m.text.HandleInput(raw)
		}
	}
	return m, m.sched.drain()
}

func (m TextModel) View() string {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)

	w := m.width - m.frame.GetHorizontalFrameSize()
	if w < 1 {
		w = 1
	}
	m.text.Render(buf, w)

	view := strings.Join(buf.Lines, "\n")
	view = strings.ReplaceAll(view, tui.CursorMarker, "")
	return m.frame.Render(view)
}
