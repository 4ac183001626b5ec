package analysis

import (
	"context"
	"regexp"
	"strings"

	"docuai/internal/language"
)

// regexRule approximates one definition form of a language.
type regexRule struct {
	pattern *regexp.Regexp
	kind    Kind
}

// Regex rule tables, applied over whole-file text in order. Rules run
// independently of each other: a region matched by an earlier rule is
// not excluded from later ones, so overlapping rules can produce
// duplicate records. Consumers tolerate duplicates.
var regexTables = map[language.Language][]regexRule{
	language.Python: {
		{regexp.MustCompile(`def\s+(\w+)\s*\(`), KindFunction},
		{regexp.MustCompile(`class\s+(\w+)\s*[(:]`), KindClass},
	},
	language.JavaScript: {
		{regexp.MustCompile(`function\s+(\w+)\s*\(`), KindFunction},
		{regexp.MustCompile(`const\s+(\w+)\s*=\s*\(`), KindFunction},
		{regexp.MustCompile(`let\s+(\w+)\s*=\s*\(`), KindFunction},
		{regexp.MustCompile(`var\s+(\w+)\s*=\s*\(`), KindFunction},
		{regexp.MustCompile(`(\w+)\s*:\s*function`), KindFunction},
		{regexp.MustCompile(`class\s+(\w+)\s*[{\s]`), KindClass},
	},
}

func init() {
	// TypeScript shares the JavaScript table.
	regexTables[language.TypeScript] = regexTables[language.JavaScript]
}

// regexRulesFor returns the fallback rule table for a language, or nil
// when the language has none.
func regexRulesFor(lang language.Language) []regexRule {
	return regexTables[lang]
}

// regexEngine approximates definition discovery with pattern matching
// when no grammar is available for the language.
type regexEngine struct {
	rules []regexRule
	prof  language.Profile
}

func (e *regexEngine) analyze(_ context.Context, path string, src []byte) ([]SymbolRecord, error) {
	content := string(src)
	var records []SymbolRecord

	for _, rule := range e.rules {
		for _, m := range rule.pattern.FindAllStringSubmatchIndex(content, -1) {
			name := content[m[2]:m[3]]
			offset := m[0]
			if IsDocumented(content, offset, e.prof) {
				continue
			}
			records = append(records, SymbolRecord{
				Name:     name,
				Kind:     rule.kind,
				File:     path,
				Line:     strings.Count(content[:offset], "\n") + 1,
				Offset:   offset,
				Language: e.prof.Name,
			})
		}
	}
	return records, nil
}
