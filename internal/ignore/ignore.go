// Package ignore excludes files and directories from analysis using
// glob patterns with ** support.
package ignore

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns covers the directories that virtually never contain
// first-party source worth documenting.
var DefaultPatterns = []string{
	"**/node_modules/**",
	"**/venv/**",
	"**/env/**",
	"**/.git/**",
	"**/__pycache__/**",
	"**/target/**",
	"**/build/**",
	"**/dist/**",
}

// RuleSet holds an ordered list of glob patterns.
type RuleSet struct {
	patterns []string
}

// New creates a rule set from the given patterns. A nil or empty slice
// matches nothing.
func New(patterns []string) *RuleSet {
	return &RuleSet{patterns: patterns}
}

// Match reports whether path matches any pattern. Paths are normalized
// to forward slashes before matching.
func (r *RuleSet) Match(path string) bool {
	p := filepath.ToSlash(path)
	for _, pattern := range r.patterns {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}

// MatchDir reports whether a directory should be pruned from traversal.
// A pattern like **/build/** names the directory's contents, not the
// directory itself, so the check also probes a hypothetical child path:
// if every child would be excluded, the directory can be skipped whole.
func (r *RuleSet) MatchDir(path string) bool {
	if r.Match(path) {
		return true
	}
	p := filepath.ToSlash(path)
	for _, pattern := range r.patterns {
		if ok, err := doublestar.Match(pattern, p+"/x"); err == nil && ok {
			return true
		}
	}
	return false
}
