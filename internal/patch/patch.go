// Package patch inserts synthesized comments into source files at the
// position recorded during analysis.
package patch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docuai/internal/analysis"
	"docuai/internal/language"
)

const pythonIndent = "    "

// Options configures insertion behavior.
type Options struct {
	// NormalizeClassIndent applies the function-style re-indent to
	// Python class docstrings as well. Off by default: the legacy
	// behavior inserts class docstrings without re-indentation.
	NormalizeClassIndent bool
}

// Applicator places comments into file content and persists the result.
type Applicator struct {
	opts Options
}

func New(opts Options) *Applicator {
	return &Applicator{opts: opts}
}

// FileResult reports the outcome of patching one file.
type FileResult struct {
	Path    string
	Applied []analysis.SymbolRecord
	Failed  []analysis.SymbolRecord
}

// Insert returns content with comment placed for a single symbol.
//
// Placement rules:
//   - Python functions: after the definition line, every comment line
//     indented one level (4 spaces) past the definition.
//   - Python classes: after the definition line, unmodified, unless
//     NormalizeClassIndent is set.
//   - Everything else: before the definition line, each comment line
//     carrying the definition's own indentation.
func (a *Applicator) Insert(content string, rec analysis.SymbolRecord, comment string) (string, error) {
	lines := strings.Split(content, "\n")
	idx := rec.Line - 1
	if idx < 0 || idx >= len(lines) {
		return "", fmt.Errorf("line %d out of range for %s (%d lines)", rec.Line, rec.File, len(lines))
	}

	defLine := lines[idx]
	indent := defLine[:len(defLine)-len(strings.TrimLeft(defLine, " \t"))]
	commentLines := strings.Split(comment, "\n")

	var insertAt int
	switch {
	case rec.Language == language.Python && (rec.Kind == analysis.KindFunction || a.opts.NormalizeClassIndent):
		insertAt = idx + 1
		for i, cl := range commentLines {
			commentLines[i] = indent + pythonIndent + cl
		}
	case rec.Language == language.Python:
		insertAt = idx + 1
	default:
		insertAt = idx
		for i, cl := range commentLines {
			commentLines[i] = indent + cl
		}
	}

	patched := make([]string, 0, len(lines)+len(commentLines))
	patched = append(patched, lines[:insertAt]...)
	patched = append(patched, commentLines...)
	patched = append(patched, lines[insertAt:]...)
	return strings.Join(patched, "\n"), nil
}

// ApplyFile loads a file, applies all comments, and writes the result
// back. Records are applied bottom-up so earlier insertions never shift
// the lines of later ones. A symbol whose comment is missing or whose
// insertion fails lands in Failed; the rest of the batch continues.
func (a *Applicator) ApplyFile(path string, records []analysis.SymbolRecord, comments map[string]string) (FileResult, error) {
	result := FileResult{Path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		result.Failed = append(result.Failed, records...)
		return result, fmt.Errorf("failed to read %s: %w", path, err)
	}
	content := string(raw)

	ordered := make([]analysis.SymbolRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Line > ordered[j].Line
	})

	for _, rec := range ordered {
		comment, ok := comments[rec.Name]
		if !ok {
			result.Failed = append(result.Failed, rec)
			continue
		}
		patched, err := a.Insert(content, rec, comment)
		if err != nil {
			log.Printf("docuai: error applying comment to %s: %v", path, err)
			result.Failed = append(result.Failed, rec)
			continue
		}
		content = patched
		result.Applied = append(result.Applied, rec)
	}

	if len(result.Applied) == 0 {
		return result, nil
	}

	if err := writeAtomic(path, []byte(content)); err != nil {
		result.Failed = append(result.Failed, result.Applied...)
		result.Applied = nil
		return result, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return result, nil
}

// writeAtomic writes through a temp file in the target directory and
// renames it over the original, so a crash mid-write never leaves a
// truncated source file.
func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".docuai-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
