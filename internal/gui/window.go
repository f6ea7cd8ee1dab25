// Package gui is the desktop front end: one window with a search field,
// Load / Search / Quit buttons and the original and filtered text side by
// side.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"streamfilter/internal/domain"
)

const Title = "Data Stream File Filter"

// FilterPort is the GUI-facing subset of the filter session.
type FilterPort interface {
	Load(path string) (domain.Document, error)
	Filter(query string) (domain.Result, error)
}

// Notifier shows modal feedback to the user.
type Notifier interface {
	Info(title, message string)
	Warning(message string)
	Error(err error)
}

// Window wires the session to Fyne widgets. Every method runs on the Fyne
// main thread.
type Window struct {
	app     fyne.App
	win     fyne.Window
	service FilterPort
	notify  Notifier
	log     zerolog.Logger

	original  *widget.Label
	filtered  *widget.Label
	search    *widget.Entry
	loadBtn   *widget.Button
	searchBtn *widget.Button
	quitBtn   *widget.Button
}

// NewWindow builds the main window. Search stays disabled until a file has
// been loaded successfully.
func NewWindow(a fyne.App, service FilterPort, size fyne.Size, log zerolog.Logger) *Window {
	w := &Window{
		app:     a,
		win:     a.NewWindow(Title),
		service: service,
		log:     log,
	}
	w.notify = dialogNotifier{win: w.win}

	w.original = monoLabel()
	w.filtered = monoLabel()
	w.search = widget.NewEntry()
	w.search.SetPlaceHolder("substring")
	w.loadBtn = widget.NewButton("Load File", w.chooseFile)
	w.searchBtn = widget.NewButton("Search File", w.filter)
	w.quitBtn = widget.NewButton("Quit", a.Quit)
	w.searchBtn.Disable()

	w.search.OnSubmitted = func(string) {
		if !w.searchBtn.Disabled() {
			w.filter()
		}
	}

	top := container.NewBorder(nil, nil,
		widget.NewLabel("Search String:"),
		container.NewHBox(w.loadBtn, w.searchBtn, w.quitBtn),
		w.search,
	)
	center := container.NewGridWithColumns(2,
		textPane("Original File:", w.original),
		textPane("Filtered Results:", w.filtered),
	)
	w.win.SetContent(container.NewBorder(top, nil, nil, nil, center))
	w.win.Resize(size)
	w.win.CenterOnScreen()
	return w
}

// ShowAndRun opens the window and blocks until the application quits.
func (w *Window) ShowAndRun() { w.win.ShowAndRun() }

// LoadPath loads path into the session and updates the panes.
func (w *Window) LoadPath(path string) {
	doc, err := w.service.Load(path)
	if err != nil {
		w.log.Warn().Err(err).Str("path", path).Msg("load rejected")
		w.searchBtn.Disable()
		if domain.IsValidationError(err) {
			w.notify.Warning(err.Error())
			return
		}
		w.notify.Error(err)
		return
	}
	w.original.SetText(doc.Content)
	w.filtered.SetText("")
	w.searchBtn.Enable()
	w.notify.Info("Success", "File loaded successfully!")
}

func (w *Window) chooseFile() {
	dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			w.notify.Error(err)
			return
		}
		if r == nil {
			return
		}
		path := r.URI().Path()
		_ = r.Close()
		w.LoadPath(path)
	}, w.win)
}

func (w *Window) filter() {
	res, err := w.service.Filter(w.search.Text)
	if err != nil {
		if domain.IsValidationError(err) {
			w.notify.Warning(err.Error())
			return
		}
		w.notify.Error(err)
		return
	}
	w.filtered.SetText(res.Text())
}

func monoLabel() *widget.Label {
	l := widget.NewLabel("")
	l.TextStyle = fyne.TextStyle{Monospace: true}
	return l
}

func textPane(title string, body *widget.Label) fyne.CanvasObject {
	return container.NewBorder(widget.NewLabel(title), nil, nil, nil, container.NewScroll(body))
}

type dialogNotifier struct {
	win fyne.Window
}

func (d dialogNotifier) Info(title, message string) { dialog.ShowInformation(title, message, d.win) }

func (d dialogNotifier) Warning(message string) { dialog.ShowInformation("Warning", message, d.win) }

func (d dialogNotifier) Error(err error) { dialog.ShowError(err, d.win) }
