package synthesis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docuai/internal/analysis"
	"docuai/internal/language"
)

type failingSynthesizer struct{}

func (f *failingSynthesizer) Synthesize(context.Context, analysis.SymbolRecord, language.Language) (string, error) {
	return "", errors.New("provider down")
}

type emptySynthesizer struct{}

func (e *emptySynthesizer) Synthesize(context.Context, analysis.SymbolRecord, language.Language) (string, error) {
	return "", ErrEmptyComment
}

func TestWithFallback_DegradesToRuleBased(t *testing.T) {
	for _, primary := range []Synthesizer{&failingSynthesizer{}, &emptySynthesizer{}} {
		s := &withFallback{primary: primary, fallback: &RuleBased{}}
		comment, err := s.Synthesize(context.Background(), record("parseConfig", analysis.KindFunction), language.Python)
		require.NoError(t, err)
		assert.NotEmpty(t, comment)
		assert.Contains(t, comment, "Parse config")
	}
}

func TestWithFallback_PrimaryWinsWhenHealthy(t *testing.T) {
	s := &withFallback{primary: &RuleBased{}, fallback: &failingSynthesizer{}}
	comment, err := s.Synthesize(context.Background(), record("f", analysis.KindFunction), language.Go)
	require.NoError(t, err)
	assert.NotEmpty(t, comment)
}

func TestNew_Providers(t *testing.T) {
	t.Run("Default is rule-based", func(t *testing.T) {
		s, err := New(context.Background(), Options{})
		require.NoError(t, err)
		_, ok := s.(*RuleBased)
		assert.True(t, ok)
	})

	t.Run("Gemini requires an API key", func(t *testing.T) {
		_, err := New(context.Background(), Options{Provider: "gemini"})
		assert.Error(t, err)
	})

	t.Run("Unknown provider is an error", func(t *testing.T) {
		_, err := New(context.Background(), Options{Provider: "skynet"})
		assert.Error(t, err)
	})
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `"""Doc."""`, stripCodeFences("```python\n\"\"\"Doc.\"\"\"\n```"))
	assert.Equal(t, "plain text", stripCodeFences("plain text"))
	assert.Equal(t, "x", stripCodeFences("```\nx\n```"))
}

func TestEnsureCommentShape(t *testing.T) {
	t.Run("Python gains triple quotes", func(t *testing.T) {
		got := ensureCommentShape("Does the thing.", language.Python)
		assert.True(t, strings.HasPrefix(got, `"""`))
		assert.True(t, strings.HasSuffix(got, `"""`))
	})

	t.Run("Already shaped output untouched", func(t *testing.T) {
		in := "/** Done. */"
		assert.Equal(t, in, ensureCommentShape(in, language.JavaScript))
	})

	t.Run("Go lines all commented", func(t *testing.T) {
		got := ensureCommentShape("line one\nline two", language.Go)
		for _, line := range strings.Split(got, "\n") {
			assert.True(t, strings.HasPrefix(line, "//"), line)
		}
	})

	t.Run("Empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", ensureCommentShape("", language.Python))
	})
}
