package tui

import (
	"bytes"
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"

	"github.com/mithrel/wpreader/internal/present/format"
	"github.com/mithrel/wpreader/internal/richtext"
	"github.com/mithrel/wpreader/internal/view"
)

// itemModal shows one rendered display inside a scrollable viewport.
// As a modal it takes part of the terminal; full makes it fill the screen.
type itemModal struct {
	d       view.Display
	style   format.Style
	full    bool
	vp      viewport.Model
	width   int
	height  int
	padX    int
	padY    int
	box     lipglossv2.Style
	content string
}

func newItemModal(d view.Display, st format.Style, full bool, termW, termH int) *itemModal {
	m := &itemModal{d: d, style: st, full: full, padX: 2, padY: 1}
	m.resizeForTerm(termW, termH)
	return m
}

func (m *itemModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w, h := termW, termH-1
	if !m.full {
		// 70% width, or nearly full width if terminal is small (<80 cols)
		w = int(float64(termW) * 0.7)
		if termW < 80 {
			w = termW - 4
		}
		if w < 40 {
			w = max(32, termW-2)
		}
		h = int(float64(termH) * 0.8)
		if termH < 20 {
			h = termH - 2
		}
		if h < 10 {
			h = max(8, termH-1)
		}
	}
	m.width, m.height = w, h
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(h).
		Padding(m.padY, m.padX).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))

	innerW := max(10, w-2-m.padX*2)
	innerH := max(5, h-2-m.padY*2)
	if m.vp.Width == 0 {
		m.vp = viewport.New(innerW, innerH)
	} else {
		m.vp.Width = innerW
		m.vp.Height = innerH
	}
	m.render(innerW)
}

// render lays the display out again for the inner width.
func (m *itemModal) render(innerW int) {
	st := m.style
	styleName := ""
	if st.Renderer != nil {
		styleName = st.Renderer.Style()
	}
	st.Renderer = richtext.NewRenderer(styleName, innerW)
	var buf bytes.Buffer
	_ = format.WritePrettyDisplay(&buf, m.d, st)
	m.content = buf.String()
	m.vp.SetContent(m.content)
}

func (m *itemModal) update(msg tea.Msg) (*itemModal, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resizeForTerm(x.Width, x.Height)
		return m, nil
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(x)
		return m, cmd
	default:
		return m, nil
	}
}

func (m *itemModal) footer() string {
	help := "↑/↓ scroll • q/esc=close"
	pct := lipgloss.NewStyle().Faint(true).Render(percent(m.vp.ScrollPercent()))
	return help + "  " + pct
}

func (m *itemModal) View() string { return m.box.Render(m.vp.View()) }

// pagerModel runs an itemModal as a standalone program.
type pagerModel struct {
	modal *itemModal
}

func (p pagerModel) Init() tea.Cmd { return nil }

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	}
	var cmd tea.Cmd
	p.modal, cmd = p.modal.update(msg)
	return p, cmd
}

func (p pagerModel) View() string {
	return p.modal.View() + "\n" + p.modal.footer()
}

// ShowItem opens a full-screen scrollable view of one display.
func ShowItem(ctx context.Context, d view.Display, st format.Style) error {
	m := pagerModel{modal: newItemModal(d, st, true, 0, 0)}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
