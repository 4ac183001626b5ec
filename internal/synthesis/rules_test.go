package synthesis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuai/internal/analysis"
	"docuai/internal/language"
)

func record(name string, kind analysis.Kind) analysis.SymbolRecord {
	return analysis.SymbolRecord{Name: name, Kind: kind, File: "x", Line: 1}
}

func TestRuleBased_PythonFunction(t *testing.T) {
	r := &RuleBased{}
	comment, err := r.Synthesize(context.Background(), record("calculateSum", analysis.KindFunction), language.Python)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(comment, `"""`))
	assert.True(t, strings.HasSuffix(comment, `"""`))
	assert.Contains(t, comment, "Calculate sum")
	assert.Contains(t, comment, "Args:")
	assert.Contains(t, comment, "Returns:")
}

func TestRuleBased_PythonClass(t *testing.T) {
	r := &RuleBased{}
	comment, err := r.Synthesize(context.Background(), record("DataProcessor", analysis.KindClass), language.Python)
	require.NoError(t, err)
	assert.Contains(t, comment, "class.")
}

func TestRuleBased_JavaScript(t *testing.T) {
	r := &RuleBased{}
	comment, err := r.Synthesize(context.Background(), record("fetchUser", analysis.KindFunction), language.JavaScript)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(comment, "/**"))
	assert.True(t, strings.HasSuffix(comment, "*/"))
	assert.Contains(t, comment, "@param")
	assert.Contains(t, comment, "@returns")
}

func TestRuleBased_GoUsesLineComments(t *testing.T) {
	r := &RuleBased{}
	comment, err := r.Synthesize(context.Background(), record("ParseInput", analysis.KindFunction), language.Go)
	require.NoError(t, err)

	for _, line := range strings.Split(comment, "\n") {
		assert.True(t, strings.HasPrefix(line, "//"), line)
	}
}

func TestRuleBased_RustUsesDocComments(t *testing.T) {
	r := &RuleBased{}
	comment, err := r.Synthesize(context.Background(), record("Widget", analysis.KindClass), language.Rust)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(comment, "///"))
}

func TestRuleBased_NeverEmpty(t *testing.T) {
	r := &RuleBased{}
	for _, lang := range language.All() {
		for _, kind := range []analysis.Kind{analysis.KindFunction, analysis.KindClass} {
			comment, err := r.Synthesize(context.Background(), record("x", kind), lang)
			require.NoError(t, err)
			assert.NotEmpty(t, comment, "%s/%s", lang, kind)
		}
	}
}

func TestCamelToSentence(t *testing.T) {
	assert.Equal(t, "Calculate sum", camelToSentence("calculateSum"))
	assert.Equal(t, "Calculate sum", camelToSentence("calculate_sum"))
	assert.Equal(t, "Fetch user by id", camelToSentence("fetchUserById"))
	assert.Equal(t, "X", camelToSentence("x"))
}
