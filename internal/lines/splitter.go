package lines

import "strings"

// Splitter splits text into lines on "\n", "\r\n" or a lone "\r".
// A trailing terminator does not produce an extra empty line.
type Splitter struct{}

func NewSplitter() *Splitter { return &Splitter{} }

func (s *Splitter) Split(content string) []string {
	return Split(content)
}

// Split is the package-level form of Splitter.Split.
func Split(content string) []string {
	if content == "" {
		return nil
	}
	out := make([]string, 0, strings.Count(content, "\n")+1)
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			out = append(out, content[start:i])
			start = i + 1
		case '\r':
			out = append(out, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(content) {
		out = append(out, content[start:])
	}
	return out
}
