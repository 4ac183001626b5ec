package language

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported source language.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Java       Language = "java"
	C          Language = "c"
	CPP        Language = "cpp"
	Go         Language = "go"
	Rust       Language = "rust"
)

// Profile describes how a language writes comments.
type Profile struct {
	Name        Language
	Extensions  []string
	LineComment string
	BlockOpen   string
	BlockClose  string
	DocComment  string
}

var profiles = map[Language]Profile{
	Python: {
		Name:        Python,
		Extensions:  []string{".py"},
		LineComment: "#",
		BlockOpen:   `"""`,
		BlockClose:  `"""`,
		DocComment:  "'''",
	},
	JavaScript: {
		Name:        JavaScript,
		Extensions:  []string{".js", ".jsx"},
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		DocComment:  "/**",
	},
	TypeScript: {
		Name:        TypeScript,
		Extensions:  []string{".ts", ".tsx"},
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		DocComment:  "/**",
	},
	Java: {
		Name:        Java,
		Extensions:  []string{".java"},
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		DocComment:  "/**",
	},
	C: {
		Name:        C,
		Extensions:  []string{".c", ".h"},
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		DocComment:  "/**",
	},
	CPP: {
		Name:        CPP,
		Extensions:  []string{".cpp", ".cc", ".cxx", ".hpp"},
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		DocComment:  "/**",
	},
	Go: {
		Name:        Go,
		Extensions:  []string{".go"},
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		DocComment:  "//",
	},
	Rust: {
		Name:        Rust,
		Extensions:  []string{".rs"},
		LineComment: "//",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		DocComment:  "///",
	},
}

var extToLang = map[string]Language{}

func init() {
	for lang, p := range profiles {
		for _, ext := range p.Extensions {
			extToLang[ext] = lang
		}
	}
}

// FromPath determines the language of a file from its extension.
// The second return value is false for unsupported extensions.
func FromPath(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := extToLang[ext]
	return lang, ok
}

// ProfileFor returns the comment profile for a language.
func ProfileFor(lang Language) (Profile, bool) {
	p, ok := profiles[lang]
	return p, ok
}

// All returns every supported language tag.
func All() []Language {
	langs := make([]Language, 0, len(profiles))
	for lang := range profiles {
		langs = append(langs, lang)
	}
	return langs
}
