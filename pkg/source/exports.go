package source

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"
)

// ExportKind tags what the resolved default export of a file is.
type ExportKind int

// Normalized default-export variants.
const (
	// ExportNone means the file has no default export.
	ExportNone ExportKind = iota
	// ExportFunction is a named or anonymous function literal.
	ExportFunction
	// ExportArrow is an arrow function.
	ExportArrow
	// ExportClass is a class declaration or expression.
	ExportClass
	// ExportExpression is any other expression (object, call, new, ...).
	ExportExpression
)

// DefaultExport is the normalized default export of a Unit. Node is the
// resolved value node: for the aliased spelling and for identifier exports
// it points at the declaration's value after a single top-level hop.
type DefaultExport struct {
	Kind ExportKind
	Node *sitter.Node
}

// IsFunction reports whether the resolved export is callable: a function
// literal, a lambda, or an identifier that resolved to one.
func (d DefaultExport) IsFunction() bool {
	return d.Kind == ExportFunction || d.Kind == ExportArrow
}

// aliasedDefaultRe is a cheap textual gate for the `export { X as default }`
// spelling: scanning export clauses is only worthwhile when the text can
// contain one at all.
var aliasedDefaultRe = regexp.MustCompile(`\bas\s+default\b`)

// HasDefaultExport reports whether the unit has a default export in either
// supported spelling.
func (u *Unit) HasDefaultExport() bool {
	return u.DefaultExport().Kind != ExportNone
}

// DefaultExportCount counts default exports across both spellings. A valid
// module has at most one; the rule catalog reports anything else.
func (u *Unit) DefaultExportCount() int {
	root := u.Root()
	if root == nil {
		return 0
	}
	count := 0
	scanAliased := aliasedDefaultRe.Match(u.Content)
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child.Type() != "export_statement" {
			continue
		}
		if hasChildOfType(child, "default") {
			count++
			continue
		}
		if scanAliased && exportClauseAliasesDefault(u, child) {
			count++
		}
	}
	return count
}

// DefaultExport finds and normalizes the unit's default export. When both
// spellings appear (invalid, but possible in malformed input) the default
// keyword form wins; the count rule flags the duplication separately.
func (u *Unit) DefaultExport() DefaultExport {
	root := u.Root()
	if root == nil {
		return DefaultExport{Kind: ExportNone}
	}

	scanAliased := aliasedDefaultRe.Match(u.Content)
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child.Type() != "export_statement" {
			continue
		}
		if hasChildOfType(child, "default") {
			return u.normalizeDefaultValue(defaultKeywordValue(child))
		}
		if scanAliased {
			if name := aliasedDefaultName(u, child); name != "" {
				return u.resolveIdentifier(name)
			}
		}
	}
	return DefaultExport{Kind: ExportNone}
}

// defaultKeywordValue returns the exported value node of an
// `export default ...` statement: the first named child after the default
// keyword that is not punctuation.
func defaultKeywordValue(stmt *sitter.Node) *sitter.Node {
	seenDefault := false
	for i := 0; i < int(stmt.ChildCount()); i++ {
		child := stmt.Child(i)
		if child.Type() == "default" {
			seenDefault = true
			continue
		}
		if !seenDefault {
			continue
		}
		switch child.Type() {
		case ";", "comment":
			continue
		}
		return child
	}
	return nil
}

// exportClauseAliasesDefault reports whether an export statement's clause
// contains a specifier aliased to `default`.
func exportClauseAliasesDefault(u *Unit, stmt *sitter.Node) bool {
	return aliasedDefaultName(u, stmt) != ""
}

// aliasedDefaultName extracts X from `export { X as default }`, or "".
func aliasedDefaultName(u *Unit, stmt *sitter.Node) string {
	clause := firstChildOfType(stmt, "export_clause")
	if clause == nil {
		return ""
	}
	for i := 0; i < int(clause.ChildCount()); i++ {
		spec := clause.Child(i)
		if spec.Type() != "export_specifier" {
			continue
		}
		var name, alias string
		for j := 0; j < int(spec.ChildCount()); j++ {
			part := spec.Child(j)
			if part.Type() != "identifier" {
				continue
			}
			if name == "" {
				name = u.text(part)
			} else {
				alias = u.text(part)
			}
		}
		if alias == "default" {
			return name
		}
	}
	return ""
}

// normalizeDefaultValue classifies an exported value node, chasing a bare
// identifier through the top-level symbol table (single hop only).
func (u *Unit) normalizeDefaultValue(node *sitter.Node) DefaultExport {
	if node == nil {
		return DefaultExport{Kind: ExportNone}
	}
	switch node.Type() {
	case "function_declaration", "generator_function_declaration",
		"function", "function_expression":
		return DefaultExport{Kind: ExportFunction, Node: node}
	case "arrow_function":
		return DefaultExport{Kind: ExportArrow, Node: node}
	case "class_declaration", "class", "abstract_class_declaration":
		return DefaultExport{Kind: ExportClass, Node: node}
	case "identifier":
		return u.resolveIdentifier(u.text(node))
	case "parenthesized_expression":
		if inner := namedValueChild(node); inner != nil {
			return u.normalizeDefaultValue(inner)
		}
	}
	return DefaultExport{Kind: ExportExpression, Node: node}
}

// resolveIdentifier looks a name up in the top-level symbol table and
// classifies its declared value. Unknown names normalize to an opaque
// expression so rules can still report "not a function" with the node text.
func (u *Unit) resolveIdentifier(name string) DefaultExport {
	decl, ok := u.Decls()[name]
	if !ok {
		return DefaultExport{Kind: ExportNone}
	}
	switch decl.Type() {
	case "function_declaration", "generator_function_declaration":
		return DefaultExport{Kind: ExportFunction, Node: decl}
	case "class_declaration", "abstract_class_declaration":
		return DefaultExport{Kind: ExportClass, Node: decl}
	case "variable_declarator":
		if value := declaratorValue(decl); value != nil {
			switch value.Type() {
			case "arrow_function":
				return DefaultExport{Kind: ExportArrow, Node: value}
			case "function", "function_expression":
				return DefaultExport{Kind: ExportFunction, Node: value}
			case "class":
				return DefaultExport{Kind: ExportClass, Node: value}
			}
			return DefaultExport{Kind: ExportExpression, Node: value}
		}
	}
	return DefaultExport{Kind: ExportExpression, Node: decl}
}

// declaratorValue returns the initializer of a variable_declarator: the
// named child after the `=`.
func declaratorValue(decl *sitter.Node) *sitter.Node {
	seenEq := false
	for i := 0; i < int(decl.ChildCount()); i++ {
		child := decl.Child(i)
		if child.Type() == "=" {
			seenEq = true
			continue
		}
		if seenEq && child.IsNamed() {
			return child
		}
	}
	return nil
}

// namedValueChild returns the first named child of node.
func namedValueChild(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		return node.NamedChild(i)
	}
	return nil
}
