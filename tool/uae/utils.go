package uae

import (
	"sort"
	"strings"

	"github.com/thoas/go-funk"
)

// containsAny reports whether any keyword appears as a substring of query.
func containsAny(query string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}

// titleCase uppercases the first letter of every word, like Python's
// str.title(), so "ras al khaimah" becomes "Ras Al Khaimah".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// sortedKeys returns the string keys of a map in sorted order, for
// deterministic rendering.
func sortedKeys(m interface{}) []string {
	keys := funk.Keys(m).([]string)
	sort.Strings(keys)
	return keys
}
