package rules

import (
	"maps"
	"slices"
	"strings"

	"github.com/yaklabco/docstyle/pkg/document"
)

// containsWord reports whether lower contains term as a whole word or
// phrase. Both arguments must already be lowercase. Boundaries are
// non-alphanumeric so "ip" does not match inside "description".
func containsWord(lower, term string) bool {
	return wordIndex(lower, term) >= 0
}

// wordIndex returns the index of the first whole-word occurrence of term
// in lower, or -1.
func wordIndex(lower, term string) int {
	if term == "" {
		return -1
	}
	from := 0
	for {
		i := strings.Index(lower[from:], term)
		if i < 0 {
			return -1
		}
		i += from
		if boundaryBefore(lower, i) && boundaryAfter(lower, i+len(term)) {
			return i
		}
		from = i + 1
	}
}

func boundaryBefore(s string, i int) bool {
	return i == 0 || !isWordByte(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	return i >= len(s) || !isWordByte(s[i])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// countWord counts whole-word occurrences of term in lower.
func countWord(lower, term string) int {
	count := 0
	from := 0
	for {
		i := wordIndex(lower[from:], term)
		if i < 0 {
			return count
		}
		count++
		from += i + len(term)
	}
}

// sortedKeys returns map keys in sorted order so findings are emitted
// deterministically regardless of map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// eachProseLine invokes fn for every line that prose rules should inspect:
// non-blank, outside code regions, not purely markup. fn receives the
// 1-based line number, the raw text, and a lowercased copy.
func eachProseLine(doc *document.Document, fn func(line int, text, lower string)) {
	for line := 1; line <= doc.LineCount(); line++ {
		if !doc.Prose(line) {
			continue
		}
		text := doc.LineText(line)
		fn(line, text, strings.ToLower(text))
	}
}

// lowerContent returns the whole document lowercased, for document-level
// substring checks.
func lowerContent(doc *document.Document) string {
	return strings.ToLower(string(doc.Content))
}
