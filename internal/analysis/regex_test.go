package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuai/internal/language"
)

func newRegexEngine(t *testing.T, lang language.Language) *regexEngine {
	t.Helper()
	rules := regexRulesFor(lang)
	require.NotNil(t, rules)
	return &regexEngine{rules: rules, prof: prof(t, lang)}
}

func TestRegexEngine_PythonFunction(t *testing.T) {
	eng := newRegexEngine(t, language.Python)

	src := []byte("def calculate_sum(a, b):\n    return a + b")
	records, err := eng.analyze(context.Background(), "calc.py", src)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "calculate_sum", rec.Name)
	assert.Equal(t, KindFunction, rec.Kind)
	assert.Equal(t, 1, rec.Line)
	assert.Equal(t, 0, rec.Offset)
	assert.Equal(t, language.Python, rec.Language)
}

func TestRegexEngine_PythonClassWithMethod(t *testing.T) {
	eng := newRegexEngine(t, language.Python)

	src := []byte("class DataProcessor:\n    def __init__(self, config):\n        self.config = config\n")
	records, err := eng.analyze(context.Background(), "proc.py", src)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byName := map[string]SymbolRecord{}
	for _, r := range records {
		byName[r.Name] = r
	}

	cls, ok := byName["DataProcessor"]
	require.True(t, ok)
	assert.Equal(t, KindClass, cls.Kind)
	assert.Equal(t, 1, cls.Line)

	init, ok := byName["__init__"]
	require.True(t, ok)
	assert.Equal(t, KindFunction, init.Kind)
	assert.Equal(t, 2, init.Line)
}

func TestRegexEngine_DocumentedSkipped(t *testing.T) {
	eng := newRegexEngine(t, language.Python)

	src := []byte("# adds numbers\ndef add(a, b):\n    return a + b\n")
	records, err := eng.analyze(context.Background(), "add.py", src)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRegexEngine_JavaScriptForms(t *testing.T) {
	eng := newRegexEngine(t, language.JavaScript)

	src := []byte("function add(a, b) { return a + b; }\nconst sub = (a, b) => a - b;\nclass Runner {}\n")
	records, err := eng.analyze(context.Background(), "app.js", src)
	require.NoError(t, err)

	byName := map[string]Kind{}
	for _, r := range records {
		byName[r.Name] = r.Kind
	}
	assert.Equal(t, KindFunction, byName["add"])
	assert.Equal(t, KindFunction, byName["sub"])
	assert.Equal(t, KindClass, byName["Runner"])
}

// Rules run independently over the whole file; a region matched by one
// rule is not excluded from another, and duplicate records are kept.
func TestRegexEngine_DuplicatesKept(t *testing.T) {
	eng := &regexEngine{
		rules: append(regexRulesFor(language.Python), regexRulesFor(language.Python)...),
		prof:  prof(t, language.Python),
	}

	src := []byte("def twice(a):\n    return a\n")
	records, err := eng.analyze(context.Background(), "dup.py", src)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, records[0].Offset, records[1].Offset)
	assert.Equal(t, records[0].Name, records[1].Name)
}

func TestRegexEngine_LineNumbers(t *testing.T) {
	eng := newRegexEngine(t, language.Python)

	src := []byte("x = 1\ny = 2\n\ndef later(a):\n    return a\n")
	records, err := eng.analyze(context.Background(), "later.py", src)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 4, records[0].Line)
}
