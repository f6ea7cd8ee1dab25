package service

import (
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"streamfilter/internal/domain"
	"streamfilter/internal/filter"
)

// Session holds the loaded document and the last filtered result for one
// interactive user. It is not safe for concurrent use; every front end
// drives it from a single goroutine.
type Session struct {
	splitter   domain.Splitter
	matcher    domain.Matcher
	log        zerolog.Logger
	doc        *domain.Document
	filterable bool
	result     *domain.Result
}

var _ domain.FilterService = (*Session)(nil)

func NewSession(splitter domain.Splitter, matcher domain.Matcher, log zerolog.Logger) *Session {
	return &Session{splitter: splitter, matcher: matcher, log: log}
}

// Load reads the whole file at path and makes it the current document.
// On success the previous result is cleared. On failure the previous
// document stays viewable but filtering is disabled until the next
// successful load.
func (s *Session) Load(path string) (domain.Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return domain.Document{}, domain.ErrNoPath
	}
	data, err := readText(path)
	if err != nil {
		s.filterable = false
		s.log.Error().Err(err).Str("path", path).Msg("load failed")
		return domain.Document{}, &domain.ReadError{Path: path, Err: err}
	}
	content := string(data)
	doc := domain.Document{Path: path, Content: content, Lines: s.splitter.Split(content)}
	s.doc = &doc
	s.filterable = true
	s.result = nil
	s.log.Info().
		Str("path", path).
		Int("bytes", len(data)).
		Int("lines", len(doc.Lines)).
		Msg("document loaded")
	return doc, nil
}

// Reload loads the current document's path again.
func (s *Session) Reload() (domain.Document, error) {
	if s.doc == nil {
		return domain.Document{}, domain.ErrNoDocument
	}
	return s.Load(s.doc.Path)
}

// Filter keeps the lines of the current document that match query.
// The query is trimmed first; it is validated before the session state.
// Lines come from the content cached at load time, so the result always
// describes the document that is on screen.
func (s *Session) Filter(query string) (domain.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.log.Warn().Msg("filter rejected: empty query")
		return domain.Result{}, domain.ErrEmptyQuery
	}
	if s.State() != domain.DocumentLoaded {
		s.log.Warn().Str("query", query).Msg("filter rejected: no document")
		return domain.Result{}, domain.ErrNoDocument
	}
	res := filter.Apply(s.matcher, s.doc.Lines, query)
	s.result = &res
	s.log.Debug().
		Str("path", s.doc.Path).
		Str("query", query).
		Str("matcher", s.matcher.Name()).
		Int("matched", len(res.Lines)).
		Int("total", res.TotalLines).
		Msg("filter applied")
	return res, nil
}

// Document returns the last successfully loaded document, if any.
func (s *Session) Document() (domain.Document, bool) {
	if s.doc == nil {
		return domain.Document{}, false
	}
	return *s.doc, true
}

// Result returns the current filtered result, if any.
func (s *Session) Result() (domain.Result, bool) {
	if s.result == nil {
		return domain.Result{}, false
	}
	return *s.result, true
}

// State reports DocumentLoaded only while filtering is permitted.
func (s *Session) State() domain.State {
	if s.doc != nil && s.filterable {
		return domain.DocumentLoaded
	}
	return domain.NoDocument
}

func readText(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return data, nil
	}
	for t := mimetype.Detect(data); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return data, nil
		}
	}
	return nil, domain.ErrNotText
}
