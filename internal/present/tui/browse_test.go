package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/wpreader/internal/present/format"
	"github.com/mithrel/wpreader/internal/richtext"
	"github.com/mithrel/wpreader/internal/view"
	"github.com/mithrel/wpreader/pkg/wp"
)

func makeItems() []wp.Item {
	now := time.Now().UTC().Truncate(time.Second)
	post := func(id int, title string) wp.Post {
		return wp.Post{
			Base:    wp.Base{ID: id, Slug: "s" + title, Link: "https://example.com/" + title},
			Content: wp.Content{ModifiedGMT: now.Add(-time.Duration(id) * time.Hour), ContentHTML: "<p>" + title + " body</p>"},
			Title:   title,
		}
	}
	return []wp.Item{post(1, "Hello World"), post(2, "About us"), post(3, "Hello again")}
}

func testOptions() BrowseOptions {
	return BrowseOptions{
		Site:    wp.Wordhord,
		Style:   format.Style{Renderer: richtext.NewRenderer("notty", 60)},
		Headers: true,
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestBrowseFilterAndOpen(t *testing.T) {
	var m tea.Model = newBrowseModel(makeItems(), testOptions())
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Len(t, m.(browseModel).visible, 3)

	m, _ = send(m, key("/"), key("h"), key("e"), key("l"))
	bm := m.(browseModel)
	require.True(t, bm.filtering)
	require.ElementsMatch(t, []int{0, 2}, bm.visible)
	require.Contains(t, bm.View(), "/hel")

	m, _ = send(m, key("enter"))
	bm = m.(browseModel)
	require.False(t, bm.filtering)
	require.Contains(t, bm.View(), "2/3 items")

	m, _ = send(m, key("enter"))
	bm = m.(browseModel)
	require.NotNil(t, bm.modal)
	sel, ok := bm.selected()
	require.True(t, ok)
	require.Equal(t, view.Title(sel), bm.modal.d.Title)
	require.Contains(t, bm.modal.content, bm.modal.d.Title)

	m, _ = send(m, key("esc"))
	require.Nil(t, m.(browseModel).modal)

	_, cmd := send(m, key("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBrowseEscClearsFilter(t *testing.T) {
	var m tea.Model = newBrowseModel(makeItems(), testOptions())
	m, _ = send(m, key("/"), key("z"), key("z"))
	require.Empty(t, m.(browseModel).visible)
	_, ok := m.(browseModel).selected()
	require.False(t, ok)

	m, _ = send(m, key("esc"))
	bm := m.(browseModel)
	require.False(t, bm.filtering)
	require.Len(t, bm.visible, 3)
}

func TestBrowseFilterLimit(t *testing.T) {
	opts := testOptions()
	opts.FilterLimit = 2
	m := newBrowseModel(makeItems(), opts)
	require.Len(t, m.visible, 2)
}

func TestPagerShowsItem(t *testing.T) {
	d := view.Build(makeItems()[0], wp.Wordhord, nil)
	var m tea.Model = pagerModel{modal: newItemModal(d, testOptions().Style, true, 0, 0)}
	m, _ = send(m, tea.WindowSizeMsg{Width: 90, Height: 40})
	out := m.View()
	require.Contains(t, out, "Hello World")
	require.Contains(t, out, "q/esc=close")

	_, cmd := send(m, key("q"))
	require.IsType(t, tea.QuitMsg{}, cmd())
}
