package synthesis

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"docuai/internal/analysis"
	"docuai/internal/language"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Gemini generates comments with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) Synthesize(ctx context.Context, rec analysis.SymbolRecord, lang language.Language) (string, error) {
	prompt := buildPrompt(rec, lang)

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}

	comment := ensureCommentShape(stripCodeFences(sb.String()), lang)
	if comment == "" {
		return "", ErrEmptyComment
	}
	return comment, nil
}

func buildPrompt(rec analysis.SymbolRecord, lang language.Language) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a %s %s comment for '%s'.", lang, rec.Kind, rec.Name)

	switch lang {
	case language.Python:
		sb.WriteString(" Use docstring format with triple quotes.")
	case language.JavaScript, language.TypeScript:
		sb.WriteString(" Use JSDoc format with /** */.")
	case language.Java, language.C, language.CPP:
		sb.WriteString(" Use JavaDoc format with /** */.")
	case language.Go:
		sb.WriteString(" Use Go comment format with //.")
	case language.Rust:
		sb.WriteString(" Use Rust documentation format with ///.")
	}
	sb.WriteString(" Respond with the comment only, no surrounding code or explanation.")
	return sb.String()
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx >= 0 {
			text = text[idx+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}

// ensureCommentShape wraps model output that came back without the
// language's comment delimiters.
func ensureCommentShape(comment string, lang language.Language) string {
	if comment == "" {
		return ""
	}
	switch lang {
	case language.Python:
		if !strings.HasPrefix(comment, `"""`) {
			comment = "\"\"\"\n" + comment
		}
		if !strings.HasSuffix(comment, `"""`) {
			comment += "\n\"\"\""
		}
	case language.JavaScript, language.TypeScript, language.Java, language.C, language.CPP:
		if !strings.HasPrefix(comment, "/*") {
			comment = "/**\n * " + strings.ReplaceAll(comment, "\n", "\n * ") + "\n */"
		}
	case language.Go:
		comment = prefixLines(comment, "// ")
	case language.Rust:
		comment = prefixLines(comment, "/// ")
	}
	return comment
}

func prefixLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, strings.TrimSpace(prefix)) {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
