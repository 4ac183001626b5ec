package analysis

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	tsc "github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"docuai/internal/language"
)

// grammar pairs a tree-sitter language with the node kinds that count
// as definitions in that grammar.
type grammar struct {
	lang  *sitter.Language
	kinds map[string]Kind
}

// grammarFor resolves the grammar for a language tag, or nil when no
// grammar is available and the caller must fall back to the regex
// engine. Resolution happens once per run, in NewAnalyzer.
func grammarFor(lang language.Language) *grammar {
	switch lang {
	case language.Python:
		return &grammar{lang: python.GetLanguage(), kinds: map[string]Kind{
			"function_definition": KindFunction,
			"class_definition":    KindClass,
		}}
	case language.JavaScript:
		return &grammar{lang: javascript.GetLanguage(), kinds: map[string]Kind{
			"function_declaration":           KindFunction,
			"generator_function_declaration": KindFunction,
			"method_definition":              KindFunction,
			"class_declaration":              KindClass,
		}}
	case language.TypeScript:
		return &grammar{lang: typescript.GetLanguage(), kinds: map[string]Kind{
			"function_declaration":           KindFunction,
			"generator_function_declaration": KindFunction,
			"method_definition":              KindFunction,
			"class_declaration":              KindClass,
		}}
	case language.Java:
		return &grammar{lang: java.GetLanguage(), kinds: map[string]Kind{
			"method_declaration":      KindFunction,
			"constructor_declaration": KindFunction,
			"class_declaration":       KindClass,
			"interface_declaration":   KindClass,
		}}
	case language.C:
		return &grammar{lang: tsc.GetLanguage(), kinds: map[string]Kind{
			"function_definition": KindFunction,
			"struct_specifier":    KindClass,
		}}
	case language.CPP:
		return &grammar{lang: cpp.GetLanguage(), kinds: map[string]Kind{
			"function_definition": KindFunction,
			"class_specifier":     KindClass,
			"struct_specifier":    KindClass,
		}}
	case language.Go:
		return &grammar{lang: golang.GetLanguage(), kinds: map[string]Kind{
			"function_declaration": KindFunction,
			"method_declaration":   KindFunction,
			"type_spec":            KindClass,
		}}
	case language.Rust:
		return &grammar{lang: rust.GetLanguage(), kinds: map[string]Kind{
			"function_item": KindFunction,
			"struct_item":   KindClass,
			"trait_item":    KindClass,
		}}
	default:
		return nil
	}
}

// treeEngine finds undocumented definitions by walking a parsed syntax
// tree in pre-order, so enclosing definitions precede nested ones.
type treeEngine struct {
	grammar *grammar
	prof    language.Profile
}

func (e *treeEngine) analyze(ctx context.Context, path string, src []byte) ([]SymbolRecord, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(e.grammar.lang)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	content := string(src)
	var records []SymbolRecord

	// Explicit stack instead of recursion; children pushed in reverse
	// to preserve pre-order.
	stack := []*sitter.Node{tree.RootNode()}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if kind, ok := e.grammar.kinds[node.Type()]; ok && e.isDefinition(node) {
			// A definition without a resolvable name is skipped, not an error.
			if name := definitionName(node, src); name != "" {
				offset := int(node.StartByte())
				if !IsDocumented(content, offset, e.prof) {
					records = append(records, SymbolRecord{
						Name:     name,
						Kind:     kind,
						File:     path,
						Line:     int(node.StartPoint().Row) + 1,
						Offset:   offset,
						Language: e.prof.Name,
					})
				}
			}
		}

		for i := int(node.NamedChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, node.NamedChild(i))
		}
	}
	return records, nil
}

// isDefinition filters out bare type references. C and C++ use
// struct_specifier/class_specifier both for definitions and for
// mentions like "struct Foo x;". Only nodes with a body define.
func (e *treeEngine) isDefinition(node *sitter.Node) bool {
	switch node.Type() {
	case "struct_specifier", "class_specifier":
		return node.ChildByFieldName("body") != nil
	}
	return true
}

var identifierKinds = map[string]bool{
	"identifier":          true,
	"type_identifier":     true,
	"field_identifier":    true,
	"property_identifier": true,
}

// definitionName resolves a definition's name from the grammar's name
// field when present, otherwise from the first identifier child.
func definitionName(node *sitter.Node, src []byte) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nameNode.Content(src)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if identifierKinds[child.Type()] {
			return child.Content(src)
		}
		// C-family nests the identifier inside declarator nodes.
		if child.Type() == "function_declarator" || child.Type() == "pointer_declarator" {
			if name := definitionName(child, src); name != "" {
				return name
			}
		}
	}
	return ""
}
