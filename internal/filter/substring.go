package filter

import (
	"strings"

	"streamfilter/internal/domain"
)

// SubstringMatcher keeps lines that contain the query as a literal,
// case-sensitive substring.
type SubstringMatcher struct{}

func NewSubstringMatcher() *SubstringMatcher { return &SubstringMatcher{} }

func (m *SubstringMatcher) Name() string { return "substring" }

func (m *SubstringMatcher) Match(line, query string) bool {
	return strings.Contains(line, query)
}

// Apply scans lines in order and keeps those the matcher accepts.
// The input slice is not modified.
func Apply(m domain.Matcher, lines []string, query string) domain.Result {
	var kept []string
	for _, l := range lines {
		if m.Match(l, query) {
			kept = append(kept, l)
		}
	}
	return domain.Result{Query: query, Lines: kept, TotalLines: len(lines)}
}
