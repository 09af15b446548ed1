package history

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// entrySource implements fuzzy.Source over projected history entries.
type entrySource []Entry

func (s entrySource) String(i int) string {
	return strings.ToLower(s[i].Title)
}

func (s entrySource) Len() int {
	return len(s)
}

// Search filters entries by fuzzy-matching script titles, best matches first.
// An empty query returns the input unchanged.
func Search(entries []Entry, query string) []Entry {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return entries
	}

	matches := fuzzy.FindFrom(query, entrySource(entries))
	results := make([]Entry, 0, len(matches))
	for _, m := range matches {
		results = append(results, entries[m.Index])
	}
	return results
}
