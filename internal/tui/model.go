package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"streamfilter/internal/domain"
)

// FilterPort is the TUI-facing subset of the filter session.
type FilterPort interface {
	Load(path string) (domain.Document, error)
	Reload() (domain.Document, error)
	Filter(query string) (domain.Result, error)
	Document() (domain.Document, bool)
	Result() (domain.Result, bool)
}

// Options tweaks the model at construction time.
type Options struct {
	InitialPath string
	Highlight   bool
	StartDir    string
}

type pane int

const (
	originalPane pane = iota
	filteredPane
)

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service   FilterPort
	input     textinput.Model
	original  viewport.Model
	filtered  viewport.Model
	picker    filepicker.Model
	picking   bool
	focus     pane
	status    string
	statusErr bool
	highlight bool
	ready     bool
}

// New creates a new TUI model instance. When opts.InitialPath is set the file
// is loaded before the first frame.
func New(service FilterPort, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "Search String: "
	ti.Placeholder = "type a substring and press Enter"
	ti.Focus()
	ti.CharLimit = 0

	fp := filepicker.New()
	fp.CurrentDirectory = opts.StartDir
	if fp.CurrentDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			fp.CurrentDirectory = wd
		}
	}

	m := Model{
		service:   service,
		input:     ti,
		original:  viewport.New(0, 0),
		filtered:  viewport.New(0, 0),
		picker:    fp,
		highlight: opts.Highlight,
		status:    "Press ctrl+o to choose a file.",
	}
	if opts.InitialPath != "" {
		m.load(opts.InitialPath)
	}
	m.refresh()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.resize(msg.Width, msg.Height)
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if m.picking {
			return m.updatePicker(msg)
		}
		switch msg.Type {
		case tea.KeyEnter:
			m.filter(m.input.Value())
			return m, nil
		case tea.KeyCtrlO:
			m.picking = true
			m.status = "Select a text file (esc to cancel)."
			m.statusErr = false
			return m, m.picker.Init()
		case tea.KeyCtrlR:
			if doc, err := m.service.Reload(); err != nil {
				m.fail(err)
			} else {
				m.loaded(doc)
			}
			m.refresh()
			return m, nil
		case tea.KeyTab:
			m.focus = 1 - m.focus
			return m, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			if m.focus == originalPane {
				m.original, cmd = m.original.Update(msg)
			} else {
				m.filtered, cmd = m.filtered.Update(msg)
			}
			return m, cmd
		}
	default:
		if m.picking {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.picking = false
		m.status = "File selection cancelled."
		m.statusErr = false
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.load(path)
		m.refresh()
	}
	return m, cmd
}

func (m *Model) load(path string) {
	doc, err := m.service.Load(path)
	if err != nil {
		m.fail(err)
		return
	}
	m.loaded(doc)
}

func (m *Model) loaded(doc domain.Document) {
	m.status = fmt.Sprintf("File loaded successfully! %s (%d lines)", doc.Path, len(doc.Lines))
	m.statusErr = false
	m.original.GotoTop()
	m.filtered.GotoTop()
}

func (m *Model) filter(query string) {
	res, err := m.service.Filter(query)
	if err != nil {
		m.fail(err)
		return
	}
	m.status = fmt.Sprintf("%d of %d lines contain %q", len(res.Lines), res.TotalLines, res.Query)
	m.statusErr = false
	m.refresh()
	m.filtered.GotoTop()
}

func (m *Model) fail(err error) {
	switch {
	case domain.IsValidationError(err):
		m.status = "Warning: " + err.Error()
	default:
		m.status = "Error: " + err.Error()
	}
	m.statusErr = true
}

func (m *Model) resize(width, height int) {
	pw, ph := paneStyle.GetFrameSize()
	qw, qh := queryBoxStyle.GetFrameSize()
	totalHeaderLines := 2                                    // header + path
	totalFooterLines := 1                                    // status
	reserved := totalHeaderLines + totalFooterLines + qh + 2 // input line + pane title
	vh := max(3, height-reserved-ph)
	vw := max(10, width/2-pw)
	m.original.Width, m.original.Height = vw, vh
	m.filtered.Width, m.filtered.Height = vw, vh
	m.input.Width = max(10, width-qw-len(m.input.Prompt)-1)
	m.refresh()
}

func (m *Model) refresh() {
	doc, ok := m.service.Document()
	if !ok {
		m.original.SetContent("No file loaded.")
	} else {
		m.original.SetContent(doc.Content)
	}
	res, ok := m.service.Result()
	if !ok {
		m.filtered.SetContent("")
		return
	}
	m.filtered.SetContent(m.renderResult(res))
}

func (m Model) renderResult(res domain.Result) string {
	if res.Empty() || !m.highlight {
		return res.Text()
	}
	out := make([]string, len(res.Lines))
	for i, l := range res.Lines {
		out[i] = highlightMatches(l, res.Query)
	}
	return strings.Join(out, "\n")
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Data Stream File Filter")
	path := "no file"
	if doc, ok := m.service.Document(); ok {
		path = doc.Path
	}
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(path + "  ·  enter filter  ctrl+o open  ctrl+r reload  tab switch pane  ctrl+c quit")
	status := statusStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	}
	input := queryBoxStyle.Render(m.input.View())
	if m.picking {
		return header + "\n" + sub + "\n" + paneStyle.Render(m.picker.View()) + "\n" + input + "\n" + status
	}
	left := m.renderPane("Original File:", m.original, m.focus == originalPane)
	right := m.renderPane("Filtered Results:", m.filtered, m.focus == filteredPane)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return header + "\n" + sub + "\n" + panes + "\n" + input + "\n" + status
}

func (m Model) renderPane(title string, vp viewport.Model, focused bool) string {
	style := paneStyle
	if focused {
		style = focusedPaneStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), style.Render(vp.View()))
}

var (
	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(lipgloss.Color("12"))
	queryBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	highlightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func highlightMatches(line, query string) string {
	if query == "" {
		return line
	}
	return strings.ReplaceAll(line, query, highlightStyle.Render(query))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
