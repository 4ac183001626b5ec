// Package report renders plain-text summaries of an analysis run.
package report

import (
	"fmt"
	"sort"
	"strings"

	"docuai/internal/analysis"
)

const (
	previewMaxFiles          = 3
	previewMaxSymbolsPerFile = 2
)

// DryRunSummary lists, per file, every symbol that would be documented,
// the totals, and a bounded preview of the generated comments.
func DryRunSummary(results analysis.Result, comments map[string]map[string]string) string {
	var sb strings.Builder
	sb.WriteString("DocuAI Dry Run Summary\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	paths := sortedPaths(results)

	totalFiles := 0
	totalSymbols := 0
	for _, path := range paths {
		withComments := recordsWithComments(results[path], comments[path])
		if len(withComments) == 0 {
			continue
		}
		totalFiles++
		totalSymbols += len(withComments)

		fmt.Fprintf(&sb, "📁 %s\n", path)
		for _, rec := range withComments {
			fmt.Fprintf(&sb, "  - %s: %s\n", rec.Kind, rec.Name)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Total files to modify: %d\n", totalFiles)
	fmt.Fprintf(&sb, "Total functions/classes to document: %d\n", totalSymbols)

	sb.WriteString("\nGenerated comments preview:\n")
	sb.WriteString(strings.Repeat("-", 30))

	previewed := 0
	for _, path := range paths {
		if previewed >= previewMaxFiles {
			break
		}
		fileComments := comments[path]
		if fileComments == nil {
			continue
		}
		shown := 0
		for _, rec := range results[path] {
			if shown >= previewMaxSymbolsPerFile {
				break
			}
			comment, ok := fileComments[rec.Name]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "\n\n%s:\n%s", rec.Name, comment)
			shown++
		}
		if shown > 0 {
			previewed++
		}
	}

	return sb.String()
}

// AnalysisSummary is the short form printed after analyze-only runs.
func AnalysisSummary(results analysis.Result) string {
	if len(results) == 0 {
		return "No undocumented functions or classes found."
	}

	var sb strings.Builder
	for _, path := range sortedPaths(results) {
		fmt.Fprintf(&sb, "📁 %s\n", path)
		for _, rec := range results[path] {
			fmt.Fprintf(&sb, "  - %s: %s (line %d)\n", rec.Kind, rec.Name, rec.Line)
		}
	}
	fmt.Fprintf(&sb, "\nTotal files to modify: %d\n", len(results))
	fmt.Fprintf(&sb, "Total functions/classes to document: %d\n", results.TotalSymbols())
	return sb.String()
}

func sortedPaths(results analysis.Result) []string {
	paths := make([]string, 0, len(results))
	for path := range results {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func recordsWithComments(records []analysis.SymbolRecord, fileComments map[string]string) []analysis.SymbolRecord {
	if fileComments == nil {
		return nil
	}
	var out []analysis.SymbolRecord
	for _, rec := range records {
		if _, ok := fileComments[rec.Name]; ok {
			out = append(out, rec)
		}
	}
	return out
}
