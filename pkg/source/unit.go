package source

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Unit is one checked file: its path, raw content, and a lazily built parse
// tree plus top-level symbol table. A Unit is created fresh per check call
// and never persisted. It is not safe for concurrent use; each invocation
// owns its own Unit.
type Unit struct {
	Path    string
	Content []byte

	parsed bool
	tree   *sitter.Tree
	decls  map[string]*sitter.Node
}

// NewUnit creates a Unit for the given path and raw content.
// No parsing happens until a tree-dependent accessor is called.
func NewUnit(path string, content []byte) *Unit {
	return &Unit{Path: path, Content: content}
}

// Root returns the root node of the parse tree, parsing on first use.
// Returns nil when parsing failed entirely; callers must treat that as
// "no tree", never as an error to surface.
func (u *Unit) Root() *sitter.Node {
	u.ensureParsed()
	if u.tree == nil {
		return nil
	}
	return u.tree.RootNode()
}

// Close releases the parse tree's native memory. Safe to call on an
// unparsed or already closed Unit.
func (u *Unit) Close() {
	if u.tree != nil {
		u.tree.Close()
		u.tree = nil
	}
}

func (u *Unit) ensureParsed() {
	if u.parsed {
		return
	}
	u.parsed = true

	parser := sitter.NewParser()
	if strings.HasSuffix(u.Path, ".tsx") {
		parser.SetLanguage(tsx.GetLanguage())
	} else {
		parser.SetLanguage(typescript.GetLanguage())
	}

	tree, err := parser.ParseCtx(context.Background(), nil, u.Content)
	if err != nil {
		// Best-effort contract: a failed parse leaves the Unit treeless and
		// every extractor reports "not present".
		return
	}
	u.tree = tree
}

// text returns the source text covered by node.
func (u *Unit) text(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return string(u.Content[node.StartByte():node.EndByte()])
}

// Decls returns the top-level symbol table: declared name to declaration
// node. Built once per Unit, on first use. Only top-level declarations are
// indexed; the single-hop resolution the discipline needs never looks
// deeper.
func (u *Unit) Decls() map[string]*sitter.Node {
	if u.decls != nil {
		return u.decls
	}
	u.decls = make(map[string]*sitter.Node)

	root := u.Root()
	if root == nil {
		return u.decls
	}

	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		switch child.Type() {
		case "export_statement":
			// export const x = ..., export function f ... declare names too.
			for j := 0; j < int(child.ChildCount()); j++ {
				u.indexDeclaration(child.Child(j))
			}
		default:
			u.indexDeclaration(child)
		}
	}
	return u.decls
}

// indexDeclaration records the names a top-level declaration node introduces.
func (u *Unit) indexDeclaration(node *sitter.Node) {
	if node == nil {
		return
	}
	switch node.Type() {
	case "function_declaration", "generator_function_declaration":
		if name := u.childText(node, "identifier"); name != "" {
			u.decls[name] = node
		}
	case "class_declaration", "abstract_class_declaration":
		if name := u.childText(node, "type_identifier"); name != "" {
			u.decls[name] = node
		}
	case "type_alias_declaration", "interface_declaration", "enum_declaration":
		name := u.childText(node, "type_identifier")
		if name == "" {
			name = u.childText(node, "identifier")
		}
		if name != "" {
			u.decls[name] = node
		}
	case "lexical_declaration", "variable_declaration":
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(i)
			if child.Type() != "variable_declarator" {
				continue
			}
			if name := u.childText(child, "identifier"); name != "" {
				u.decls[name] = child
			}
		}
	}
}

// childText returns the text of the first direct child with the given node
// type, or "".
func (u *Unit) childText(node *sitter.Node, nodeType string) string {
	if node == nil {
		return ""
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == nodeType {
			return u.text(child)
		}
	}
	return ""
}

// firstChildOfType returns the first direct child with the given node type.
func firstChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// hasChildOfType reports whether node has a direct child of the given type.
func hasChildOfType(node *sitter.Node, nodeType string) bool {
	return firstChildOfType(node, nodeType) != nil
}
