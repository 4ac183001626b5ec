package analysis

import (
	"strings"

	"docuai/internal/language"
)

// presenceWindow bounds how far above a definition the heuristic looks.
const presenceWindow = 5

// Tokens that continue a comment block without opening one. A line
// starting with one of these keeps the upward scan going.
var continuationTokens = []string{"//", "#", "/*", "*", "///"}

// IsDocumented reports whether a comment immediately precedes the
// definition starting at offset. It scans up to the last 5 lines before
// the offset, nearest first: a line carrying a comment-opening token of
// the language means documented; blank lines are skipped; any other
// line stops the scan as undocumented.
//
// For Python the scan also accepts a docstring on the line directly
// below the definition header, since that is where Python documentation
// lives once inserted.
//
// The check is adjacency-only. It does not verify that a block comment
// is terminated or that it belongs to this definition, so a comment
// trailing a previous symbol and separated only by blank lines counts
// as documentation for the one below it.
func IsDocumented(content string, offset int, prof language.Profile) bool {
	if offset < 0 || offset > len(content) {
		return false
	}
	lines := strings.Split(content[:offset], "\n")
	start := len(lines) - presenceWindow
	if start < 0 {
		start = 0
	}
	window := lines[start:]

	for i := len(window) - 1; i >= 0; i-- {
		line := strings.TrimSpace(window[i])
		if line == "" {
			continue
		}
		if lineOpensComment(line, prof) {
			return true
		}
		if !isContinuation(line) {
			return hasDocstringBelow(content, offset, prof)
		}
	}
	return hasDocstringBelow(content, offset, prof)
}

// hasDocstringBelow covers Python, where documentation lives inside the
// definition: a docstring on the line after the def/class header counts
// as documented.
func hasDocstringBelow(content string, offset int, prof language.Profile) bool {
	if prof.Name != language.Python {
		return false
	}
	rest := content[offset:]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return false
	}
	next := rest[nl+1:]
	if end := strings.IndexByte(next, '\n'); end >= 0 {
		next = next[:end]
	}
	next = strings.TrimSpace(next)
	return strings.HasPrefix(next, `"""`) || strings.HasPrefix(next, "'''")
}

func lineOpensComment(line string, prof language.Profile) bool {
	if prof.LineComment != "" && strings.HasPrefix(line, prof.LineComment) {
		return true
	}
	if prof.BlockOpen != "" && (strings.Contains(line, prof.BlockOpen) || strings.Contains(line, prof.BlockClose)) {
		return true
	}
	if prof.DocComment != "" && strings.Contains(line, prof.DocComment) {
		return true
	}
	return false
}

func isContinuation(line string) bool {
	for _, tok := range continuationTokens {
		if strings.HasPrefix(line, tok) {
			return true
		}
	}
	return false
}
