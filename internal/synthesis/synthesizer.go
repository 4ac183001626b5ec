// Package synthesis turns a symbol record into a documentation comment.
// The Gemini-backed synthesizer is the primary provider; a deterministic
// rule-based generator serves both as a standalone provider and as the
// fallback when generation fails.
package synthesis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"docuai/internal/analysis"
	"docuai/internal/language"
)

// ErrEmptyComment is returned when a provider produces no text. A
// synthesizer must return non-empty text or an explicit error, never a
// silent empty string.
var ErrEmptyComment = errors.New("synthesizer returned empty comment")

// Synthesizer produces a language-formatted documentation comment for a
// symbol. The returned text may span multiple lines; it carries no
// indentation, which the patch applicator adds at insertion time.
type Synthesizer interface {
	Synthesize(ctx context.Context, rec analysis.SymbolRecord, lang language.Language) (string, error)
}

// Options selects and configures a provider.
type Options struct {
	Provider string // "gemini" or "rule-based"; empty defaults to rule-based
	APIKey   string
	Model    string
}

// New builds a synthesizer from options. The Gemini provider is wrapped
// so that any generation failure falls back to the rule-based comment
// instead of aborting the run.
func New(ctx context.Context, opts Options) (Synthesizer, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	switch provider {
	case "", "rule-based":
		return &RuleBased{}, nil
	case "gemini":
		g, err := NewGemini(ctx, opts.APIKey, opts.Model)
		if err != nil {
			return nil, err
		}
		return &withFallback{primary: g, fallback: &RuleBased{}}, nil
	default:
		return nil, fmt.Errorf("unsupported synthesis provider: %s", opts.Provider)
	}
}

// withFallback tries the primary provider and degrades to the fallback
// on any error, so a synthesis failure never loses a symbol.
type withFallback struct {
	primary  Synthesizer
	fallback Synthesizer
}

func (w *withFallback) Synthesize(ctx context.Context, rec analysis.SymbolRecord, lang language.Language) (string, error) {
	comment, err := w.primary.Synthesize(ctx, rec, lang)
	if err == nil {
		return comment, nil
	}
	log.Printf("docuai: synthesis failed for %s, falling back to rule-based comment: %v", rec.Name, err)
	return w.fallback.Synthesize(ctx, rec, lang)
}
