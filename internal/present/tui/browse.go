package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/wpreader/internal/present/format"
	"github.com/mithrel/wpreader/internal/util"
	"github.com/mithrel/wpreader/internal/view"
	"github.com/mithrel/wpreader/pkg/wp"
)

type BrowseOptions struct {
	Site        wp.Site
	Style       format.Style
	Headers     bool
	FilterLimit int
}

// Browse opens an interactive table of items. enter shows the selected item
// in a modal, / filters titles.
func Browse(ctx context.Context, items []wp.Item, opts BrowseOptions) error {
	m := newBrowseModel(items, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

type browseModel struct {
	items     []wp.Item
	sums      []view.Summary
	titles    []string
	visible   []int
	opts      BrowseOptions
	table     table.Model
	filter    textinput.Model
	filtering bool
	modal     *itemModal
	width     int
	height    int
}

func newBrowseModel(items []wp.Item, opts BrowseOptions) browseModel {
	m := browseModel{
		items: items,
		sums:  view.SummarizeAll(items),
		opts:  opts,
	}
	m.titles = make([]string, len(m.sums))
	for i, s := range m.sums {
		m.titles[i] = s.Title
	}
	m.filter = textinput.New()
	m.filter.Prompt = "/"
	m.filter.Placeholder = "title"
	m.table = table.New(table.WithColumns(m.columnsFor(8, 40, 16)), table.WithFocused(true))
	m.applyStyles()
	m.applyFilter()
	return m
}

// applyFilter recomputes the visible rows from the filter text.
func (m *browseModel) applyFilter() {
	m.visible = util.RankMatches(strings.TrimSpace(m.filter.Value()), m.titles, m.opts.FilterLimit)
	rows := make([]table.Row, 0, len(m.visible))
	for _, i := range m.visible {
		s := m.sums[i]
		rows = append(rows, table.Row{
			strconv.Itoa(s.ID),
			s.Title,
			s.Kind,
			relTime(s.Modified),
		})
	}
	m.table.SetRows(rows)
	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
}

// selected returns the item under the cursor.
func (m browseModel) selected() (wp.Item, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.visible) {
		return nil, false
	}
	return m.items[m.visible[c]], true
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.applyLayout()
		if m.modal != nil {
			m.modal.resizeForTerm(ws.Width, ws.Height)
		}
		return m, nil
	}

	if m.modal != nil {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "q", "esc":
				m.modal = nil
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		m.modal, cmd = m.modal.update(msg)
		return m, cmd
	}

	if m.filtering {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter":
				m.filtering = false
				m.filter.Blur()
				m.table.Focus()
				return m, nil
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.table.Focus()
				m.applyFilter()
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.table.Blur()
			return m, m.filter.Focus()
		case "enter":
			if it, ok := m.selected(); ok {
				d := view.Build(it, m.opts.Site, nil)
				m.modal = newItemModal(d, m.opts.Style, false, m.width, m.height)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) renderFooter() string {
	if m.filtering {
		return m.filter.View()
	}
	left := "↑/↓ to navigate • enter=show • /=filter • q=exit"
	right := fmt.Sprintf("%d/%d items ", len(m.visible), len(m.items))
	if f := strings.TrimSpace(m.filter.Value()); f != "" {
		right = fmt.Sprintf("filter %q • %s", f, right)
	}
	space := max(1, m.table.Width()-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", space) + right
}

func (m browseModel) View() string {
	base := m.table.View() + "\n" + m.renderFooter() + "\n"
	if len(m.items) == 0 {
		base = "(no items)\n"
	}
	if m.modal == nil {
		return base
	}
	fg := m.modal.View()
	return m.renderOverlay(base, fg, lipgloss.Width(fg), lipgloss.Height(fg))
}

func (m *browseModel) applyLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.table.SetHeight(max(6, m.height-2))
	m.table.SetWidth(m.width)
	avail := m.width - 8
	if avail < 40 {
		return
	}
	idW, kindW, modW := 8, 8, 16
	titleW := max(12, avail-idW-kindW-modW)
	m.table.SetColumns(m.columnsFor(idW, titleW, modW))
}

func (m *browseModel) applyStyles() {
	s := table.DefaultStyles()
	if m.opts.Headers {
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
	} else {
		s.Header = s.Header.
			BorderBottom(false).
			Bold(false)
	}
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table.SetStyles(s)
}

// columnsFor returns columns with or without titles based on the headers option.
func (m *browseModel) columnsFor(idW, titleW, modW int) []table.Column {
	titles := []string{"ID", "Title", "Kind", "Modified"}
	if !m.opts.Headers {
		titles = []string{"", "", "", ""}
	}
	return []table.Column{
		{Title: titles[0], Width: idW},
		{Title: titles[1], Width: titleW},
		{Title: titles[2], Width: 8},
		{Title: titles[3], Width: modW},
	}
}
