package scan

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchFunc returns the lines of contents that match query.
type SearchFunc func(query, contents string) []string

// SearchFor returns Search when caseSensitive is set and
// SearchCaseInsensitive otherwise.
func SearchFor(caseSensitive bool) SearchFunc {
	if caseSensitive {
		return Search
	}
	return SearchCaseInsensitive
}

// Search returns every line of contents that contains query, in order. An
// empty query matches every line.
//
// The returned lines are substrings of contents, not copies.
func Search(query, contents string) []string {
	var results []string
	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive is like Search but compares the Unicode case folding
// of query and of each line. Lines are returned in their original case.
func SearchCaseInsensitive(query, contents string) []string {
	// A Caser keeps state between calls and must not be shared.
	fold := cases.Fold()
	query = fold.String(query)

	var results []string
	for line := range Lines(contents) {
		if strings.Contains(fold.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}
