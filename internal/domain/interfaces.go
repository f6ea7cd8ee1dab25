package domain

import "strings"

// NoMatchPrefix starts the placeholder shown when a query matches nothing.
const NoMatchPrefix = "No lines found containing: "

// Document represents the text file currently loaded into a session.
type Document struct {
	Path    string
	Content string
	Lines   []string
}

// Result is the outcome of filtering a document with a query.
type Result struct {
	Query      string
	Lines      []string
	TotalLines int
}

// Empty reports whether no line matched.
func (r Result) Empty() bool { return len(r.Lines) == 0 }

// Text renders the matching lines joined by newlines, or the no-match
// placeholder naming the query.
func (r Result) Text() string {
	if r.Empty() {
		return NoMatchPrefix + r.Query
	}
	return strings.Join(r.Lines, "\n")
}

// State is the lifecycle state of a session.
type State int

const (
	NoDocument State = iota
	DocumentLoaded
)

func (s State) String() string {
	switch s {
	case DocumentLoaded:
		return "document loaded"
	default:
		return "no document"
	}
}

// Splitter breaks document content into lines.
type Splitter interface {
	Split(content string) []string
}

// Matcher decides whether a line is kept for a query.
type Matcher interface {
	Name() string
	Match(line, query string) bool
}

// FilterService defines the operations exposed by the application core.
type FilterService interface {
	Load(path string) (Document, error)
	Reload() (Document, error)
	Filter(query string) (Result, error)
	Document() (Document, bool)
	Result() (Result, bool)
	State() State
}
