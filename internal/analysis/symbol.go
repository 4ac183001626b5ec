// Package analysis finds undocumented functions, methods, and classes in
// source files. Files with a loaded tree-sitter grammar are analyzed via
// the syntax tree; the rest fall back to per-language regex tables.
package analysis

import "docuai/internal/language"

// Kind classifies a discovered symbol.
type Kind string

const (
	KindFunction Kind = "function"
	KindClass    Kind = "class"
)

// SymbolRecord describes one undocumented definition. It is only valid
// against the file content as analyzed; any mutation of the file makes
// the line and offset stale.
type SymbolRecord struct {
	Name     string            `json:"name"`
	Kind     Kind              `json:"kind"`
	File     string            `json:"file"`
	Line     int               `json:"line"`   // 1-based
	Offset   int               `json:"offset"` // byte offset of the definition start
	Language language.Language `json:"language"`
}

// Result maps a file path to the undocumented symbols found in it, in
// discovery order. Files with zero findings are absent.
type Result map[string][]SymbolRecord

// TotalSymbols returns the number of records across all files.
func (r Result) TotalSymbols() int {
	n := 0
	for _, recs := range r {
		n += len(recs)
	}
	return n
}
