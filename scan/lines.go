package scan

import (
	"iter"
	"strings"
)

// Lines yields the lines of text in order. A line ends at "\n" or "\r\n" and
// the terminator is not part of the yielded line. A final terminator does not
// start an extra empty line, and empty text yields nothing.
//
// Each yielded line is a substring of text and shares its memory.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(text) > 0 {
			line := text
			i := strings.IndexByte(text, '\n')
			if i >= 0 {
				line, text = text[:i], text[i+1:]
				line = strings.TrimSuffix(line, "\r")
			} else {
				text = ""
			}
			if !yield(line) {
				return
			}
		}
	}
}
