package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// commands are the REPL commands, each entered with a leading ':'.
var commands = []string{":clear", ":help", ":json", ":list", ":quit", ":yaml"}

// byteOffset converts a cursor counted in runes, as the text input reports
// it, to a byte offset in s.
func byteOffset(s string, cursor int) int {
	off := 0

	for ; cursor > 0 && off < len(s); cursor-- {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}

	return off
}

// runeOffset converts a byte offset in s to a cursor counted in runes.
func runeOffset(s string, off int) int {
	return utf8.RuneCountInString(s[:min(max(off, 0), len(s))])
}

// isWordBoundary reports whether r separates completion words. The dot is
// not a boundary so that qualified names complete as one word.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '(', ')', ',', '=', '+', '-', '*', '/':
		return true
	}

	return false
}

// wordBounds returns the word around cursor and its byte offsets in input.
// The word is empty when the cursor sits between two boundaries.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	for start = cursor; start > 0; {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	for end = cursor; end < len(input); {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// completion is the state of the completion bar for one input.
type completion struct {
	matches    fuzzy.Matches
	start, end int
}

// complete finds the candidates matching the word at cursor. Input starting
// with ':' completes commands; anything else completes names.
func complete(input string, cursor int, names []string) completion {
	if strings.HasPrefix(input, ":") {
		word := strings.TrimSpace(input)
		if strings.ContainsAny(word, " \t") {
			return completion{}
		}

		return completion{
			matches: fuzzy.Find(word, commands),
			start:   0,
			end:     len(input),
		}
	}

	word, start, end := wordBounds(input, cursor)
	if word == "" || len(names) == 0 {
		return completion{start: start, end: end}
	}

	return completion{
		matches: fuzzy.Find(word, names),
		start:   start,
		end:     end,
	}
}

// renderCandidateBar builds the single-line completion bar, cut off with an
// ellipsis to fit width. The selected candidate is highlighted while the user
// cycles with Tab.
func renderCandidateBar(matches fuzzy.Matches, selected, width int) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")
	limit := width - lipgloss.Width(ellipsis) - len(sep)

	var (
		b    strings.Builder
		used int
	)

	for i, match := range matches {
		rendered := renderCandidate(match, i == selected)

		w := lipgloss.Width(rendered)
		if i > 0 {
			w += len(sep)
		}

		if i > 0 && i < len(matches)-1 && used+w > limit {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += w
	}

	return b.String()
}

// renderCandidate renders one candidate with its matched characters
// emphasized.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, emph := suggestionStyle, matchStyle
	if selected {
		base, emph = selectedStyle, selectedMatchStyle
	}

	hit := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		hit[i] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if hit[i] {
			b.WriteString(emph.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}
