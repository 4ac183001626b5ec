package analysis

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"docuai/internal/ignore"
	"docuai/internal/language"
)

// engine is one of the two analysis strategies. Both emit the same
// record shape so callers never care which one ran.
type engine interface {
	analyze(ctx context.Context, path string, src []byte) ([]SymbolRecord, error)
}

// Options configures an Analyzer.
type Options struct {
	// IgnorePatterns overrides ignore.DefaultPatterns when non-nil.
	IgnorePatterns []string
	// Languages restricts analysis to the given tags. Empty means all.
	Languages []language.Language
	// RegexOnly disables the tree engine, forcing the regex fallback
	// for languages that have a rule table.
	RegexOnly bool
}

// Analyzer selects an engine per file and aggregates directory results.
// Engines are resolved once at construction, not re-evaluated per file.
type Analyzer struct {
	rules   *ignore.RuleSet
	engines map[language.Language]engine
}

// NewAnalyzer builds the per-language engine registry. Languages whose
// grammar is unavailable degrade to the regex engine; languages with
// neither are skipped entirely.
func NewAnalyzer(opts Options) *Analyzer {
	patterns := opts.IgnorePatterns
	if patterns == nil {
		patterns = ignore.DefaultPatterns
	}

	enabled := map[language.Language]bool{}
	for _, l := range opts.Languages {
		enabled[l] = true
	}

	engines := map[language.Language]engine{}
	for _, lang := range language.All() {
		if len(enabled) > 0 && !enabled[lang] {
			continue
		}
		prof, ok := language.ProfileFor(lang)
		if !ok {
			continue
		}
		if !opts.RegexOnly {
			if g := grammarFor(lang); g != nil {
				engines[lang] = &treeEngine{grammar: g, prof: prof}
				continue
			}
		}
		if rules := regexRulesFor(lang); rules != nil {
			engines[lang] = &regexEngine{rules: rules, prof: prof}
		} else if opts.RegexOnly {
			log.Printf("docuai: no regex rules for %s, files will be skipped", lang)
		}
	}

	return &Analyzer{
		rules:   ignore.New(patterns),
		engines: engines,
	}
}

// AnalyzeFile returns the undocumented symbols of a single file.
// Ignored, unsupported, and unreadable files all yield an empty result;
// an unreadable file additionally logs a diagnostic. No per-file
// condition is an error to the caller.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) []SymbolRecord {
	if a.rules.Match(path) {
		return nil
	}
	lang, ok := language.FromPath(path)
	if !ok {
		return nil
	}
	eng, ok := a.engines[lang]
	if !ok {
		return nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		log.Printf("docuai: error reading file %s: %v", path, err)
		return nil
	}

	records, err := eng.analyze(ctx, path, src)
	if err != nil {
		log.Printf("docuai: error analyzing file %s: %v", path, err)
		return nil
	}
	return records
}

// AnalyzeDirectory walks root, pruning ignored directories, and returns
// a sparse map: files with zero findings are omitted.
func (a *Analyzer) AnalyzeDirectory(ctx context.Context, root string) (Result, error) {
	results := Result{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("docuai: error walking %s: %v", path, err)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if rel != "." && a.rules.MatchDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if a.rules.Match(rel) {
			return nil
		}
		if records := a.AnalyzeFile(ctx, path); len(records) > 0 {
			results[path] = records
		}
		return nil
	})
	if err != nil {
		return results, err
	}
	return results, nil
}
