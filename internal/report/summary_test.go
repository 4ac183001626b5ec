package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"docuai/internal/analysis"
	"docuai/internal/language"
)

func sampleResults() (analysis.Result, map[string]map[string]string) {
	results := analysis.Result{}
	comments := map[string]map[string]string{}

	files := []string{"a.py", "b.py", "c.py", "d.py"}
	names := []string{"one", "two", "three"}
	for _, f := range files {
		fileComments := map[string]string{}
		for i, n := range names {
			results[f] = append(results[f], analysis.SymbolRecord{
				Name:     n,
				Kind:     analysis.KindFunction,
				File:     f,
				Line:     i + 1,
				Language: language.Python,
			})
			fileComments[n] = `"""Generated."""`
		}
		comments[f] = fileComments
	}
	return results, comments
}

func TestDryRunSummary_Totals(t *testing.T) {
	results, comments := sampleResults()
	summary := DryRunSummary(results, comments)

	assert.Contains(t, summary, "DocuAI Dry Run Summary")
	assert.Contains(t, summary, "Total files to modify: 4")
	assert.Contains(t, summary, "Total functions/classes to document: 12")
	assert.Contains(t, summary, "📁 a.py")
	assert.Contains(t, summary, "  - function: one")
}

func TestDryRunSummary_PreviewIsBounded(t *testing.T) {
	results, comments := sampleResults()
	summary := DryRunSummary(results, comments)

	_, preview, found := strings.Cut(summary, "Generated comments preview:")
	assert.True(t, found)

	// At most 3 files x 2 symbols previewed.
	assert.Equal(t, 6, strings.Count(preview, `"""Generated."""`))
}

func TestDryRunSummary_SymbolsWithoutCommentsExcluded(t *testing.T) {
	results := analysis.Result{
		"a.py": {
			{Name: "covered", Kind: analysis.KindFunction, Line: 1, Language: language.Python},
			{Name: "skipped", Kind: analysis.KindFunction, Line: 5, Language: language.Python},
		},
	}
	comments := map[string]map[string]string{
		"a.py": {"covered": `"""x"""`},
	}

	summary := DryRunSummary(results, comments)
	assert.Contains(t, summary, "  - function: covered")
	assert.NotContains(t, summary, "skipped")
	assert.Contains(t, summary, "Total functions/classes to document: 1")
}

func TestDryRunSummary_FileWithNoCommentsOmitted(t *testing.T) {
	results := analysis.Result{
		"a.py": {{Name: "f", Kind: analysis.KindFunction, Line: 1, Language: language.Python}},
		"b.py": {{Name: "g", Kind: analysis.KindFunction, Line: 1, Language: language.Python}},
	}
	comments := map[string]map[string]string{
		"a.py": {"f": `"""x"""`},
	}

	summary := DryRunSummary(results, comments)
	assert.Contains(t, summary, "📁 a.py")
	assert.NotContains(t, summary, "📁 b.py")
	assert.Contains(t, summary, "Total files to modify: 1")
}

func TestAnalysisSummary(t *testing.T) {
	t.Run("Empty results", func(t *testing.T) {
		assert.Equal(t, "No undocumented functions or classes found.", AnalysisSummary(analysis.Result{}))
	})

	t.Run("Lists symbols with lines", func(t *testing.T) {
		results := analysis.Result{
			"a.py": {{Name: "f", Kind: analysis.KindFunction, Line: 3, Language: language.Python}},
		}
		summary := AnalysisSummary(results)
		assert.Contains(t, summary, "  - function: f (line 3)")
		assert.Contains(t, summary, "Total files to modify: 1")
		assert.Contains(t, summary, "Total functions/classes to document: 1")
	})
}
