package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamfilter/internal/filter"
	"streamfilter/internal/lines"
	"streamfilter/internal/service"
)

func newModel(t *testing.T, content string) (Model, *service.Session, string) {
	t.Helper()
	path := ""
	if content != "" {
		path = filepath.Join(t.TempDir(), "fruit.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	svc := service.NewSession(lines.NewSplitter(), filter.NewSubstringMatcher(), zerolog.Nop())
	m := New(svc, Options{InitialPath: path, StartDir: t.TempDir()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), svc, path
}

func typeQuery(t *testing.T, m Model, q string) Model {
	t.Helper()
	m.input.SetValue(q)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestInitialLoadShowsOriginal(t *testing.T) {
	m, _, path := newModel(t, "apple pie\nbanana\napple tart\n")
	assert.Contains(t, m.status, "File loaded successfully!")
	assert.Contains(t, m.status, path)
	assert.False(t, m.statusErr)

	view := m.View()
	assert.Contains(t, view, "Original File:")
	assert.Contains(t, view, "Filtered Results:")
	assert.Contains(t, view, "banana")
}

func TestEnterFiltersLines(t *testing.T) {
	m, svc, _ := newModel(t, "apple pie\nbanana\napple tart\n")
	m = typeQuery(t, m, "apple")

	res, ok := svc.Result()
	require.True(t, ok)
	assert.Equal(t, "apple pie\napple tart", res.Text())
	assert.Equal(t, `2 of 3 lines contain "apple"`, m.status)
	assert.False(t, m.statusErr)
}

func TestNoMatchPlaceholder(t *testing.T) {
	m, _, _ := newModel(t, "apple pie\nbanana\napple tart\n")
	m.highlight = false
	m = typeQuery(t, m, "kiwi")
	assert.Equal(t, "No lines found containing: kiwi", m.renderResultForTest())
}

func TestEmptyQueryWarns(t *testing.T) {
	m, svc, _ := newModel(t, "apple\n")
	m = typeQuery(t, m, "   ")
	assert.True(t, m.statusErr)
	assert.Equal(t, "Warning: Please enter a search string!", m.status)
	_, ok := svc.Result()
	assert.False(t, ok)
}

func TestFilterWithoutFileWarns(t *testing.T) {
	m, _, _ := newModel(t, "")
	m = typeQuery(t, m, "apple")
	assert.True(t, m.statusErr)
	assert.Equal(t, "Warning: Please load a file first!", m.status)
	assert.Contains(t, m.View(), "No file loaded.")
}

func TestMissingInitialFileReportsError(t *testing.T) {
	svc := service.NewSession(lines.NewSplitter(), filter.NewSubstringMatcher(), zerolog.Nop())
	m := New(svc, Options{InitialPath: filepath.Join(t.TempDir(), "missing.txt"), StartDir: t.TempDir()})
	assert.True(t, m.statusErr)
	assert.True(t, strings.HasPrefix(m.status, "Error: error loading file:"))
}

func TestReloadClearsFilteredPane(t *testing.T) {
	m, svc, path := newModel(t, "apple\n")
	m = typeQuery(t, m, "apple")
	require.NoError(t, os.WriteFile(path, []byte("banana\n"), 0o644))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)
	_, ok := svc.Result()
	assert.False(t, ok)
	assert.Contains(t, m.status, "File loaded successfully!")
	assert.Contains(t, m.View(), "banana")
}

func TestTabSwitchesFocus(t *testing.T) {
	m, _, _ := newModel(t, "a\n")
	assert.Equal(t, originalPane, m.focus)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, filteredPane, next.(Model).focus)
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, originalPane, next.(Model).focus)
}

func TestPickerOpenAndCancel(t *testing.T) {
	m, _, _ := newModel(t, "a\n")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = next.(Model)
	assert.True(t, m.picking)
	assert.NotNil(t, cmd)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.False(t, m.picking)
	assert.Equal(t, "File selection cancelled.", m.status)
}

func TestCtrlCQuits(t *testing.T) {
	m, _, _ := newModel(t, "a\n")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHighlightMatches(t *testing.T) {
	assert.Equal(t, "abc", highlightMatches("abc", ""))
	got := highlightMatches("a-b-a", "a")
	assert.Equal(t, 2, strings.Count(got, highlightStyle.Render("a")))
}

func (m Model) renderResultForTest() string {
	res, ok := m.service.Result()
	if !ok {
		return ""
	}
	return m.renderResult(res)
}
