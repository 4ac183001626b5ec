package synthesis

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"docuai/internal/analysis"
	"docuai/internal/language"
)

// RuleBased generates comments from the symbol name alone. Deterministic
// and dependency-free, it backs the "rule-based" provider and the
// fallback path of the Gemini provider.
type RuleBased struct{}

func (r *RuleBased) Synthesize(_ context.Context, rec analysis.SymbolRecord, lang language.Language) (string, error) {
	name := camelToSentence(rec.Name)
	isClass := rec.Kind == analysis.KindClass

	switch lang {
	case language.Python:
		if isClass {
			return fmt.Sprintf("\"\"\"\n%s class.\n\nTODO: Add class description\n\"\"\"", name), nil
		}
		return fmt.Sprintf("\"\"\"\n%s.\n\nArgs:\n    TODO: Add parameter descriptions\n\nReturns:\n    TODO: Add return description\n\"\"\"", name), nil
	case language.JavaScript, language.TypeScript:
		if isClass {
			return fmt.Sprintf("/**\n * %s class\n *\n * TODO: Add class description\n */", name), nil
		}
		return fmt.Sprintf("/**\n * %s\n *\n * @param {} TODO: Add parameter descriptions\n * @returns {} TODO: Add return description\n */", name), nil
	case language.Java, language.C, language.CPP:
		if isClass {
			return fmt.Sprintf("/**\n * %s class\n *\n * TODO: Add class description\n */", name), nil
		}
		return fmt.Sprintf("/**\n * %s\n *\n * @param TODO: Add parameter descriptions\n * @return TODO: Add return description\n */", name), nil
	case language.Go:
		if isClass {
			return fmt.Sprintf("// %s TODO: Add struct/interface description", name), nil
		}
		return fmt.Sprintf("// %s TODO: Add function description\n// TODO: Add parameter and return descriptions", name), nil
	case language.Rust:
		if isClass {
			return fmt.Sprintf("/// %s TODO: Add struct/trait description", name), nil
		}
		return fmt.Sprintf("/// %s\n/// TODO: Add function description\n/// TODO: Add parameter and return descriptions", name), nil
	default:
		return fmt.Sprintf("// TODO: Add documentation for %s", rec.Name), nil
	}
}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// camelToSentence converts camelCase and snake_case identifiers to a
// sentence: "calculateSum" and "calculate_sum" both become
// "Calculate sum".
func camelToSentence(text string) string {
	spaced := camelBoundary.ReplaceAllString(text, "$1 $2")
	spaced = strings.ReplaceAll(spaced, "_", " ")
	spaced = strings.TrimSpace(strings.ToLower(spaced))
	if spaced == "" {
		return spaced
	}
	return strings.ToUpper(spaced[:1]) + spaced[1:]
}
