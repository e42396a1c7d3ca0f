package source

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ImportRecord is one import statement of a checked file.
type ImportRecord struct {
	Module    string
	Default   string   // default binding local name, "" if none
	Namespace string   // namespace alias for `import * as ns`, "" if none
	Names     []string // named bindings without an inline type modifier
	TypeNames []string // named bindings with an inline type modifier

	// StatementTypeOnly is true for `import type { ... } from ...`.
	StatementTypeOnly bool
}

// TypeOnly reports whether the record is type-only under the scaffold
// discipline: either the whole statement is, or every named binding is
// individually and no value binding exists.
func (r ImportRecord) TypeOnly() bool {
	if r.StatementTypeOnly {
		return true
	}
	if r.Default != "" || r.Namespace != "" {
		return false
	}
	return len(r.Names) == 0 && len(r.TypeNames) > 0
}

// Bindings returns the local names the record introduces as runtime values.
func (r ImportRecord) Bindings() []string {
	var out []string
	if r.StatementTypeOnly {
		return out
	}
	if r.Default != "" {
		out = append(out, r.Default)
	}
	if r.Namespace != "" {
		out = append(out, r.Namespace)
	}
	out = append(out, r.Names...)
	return out
}

// Imports returns every ES import statement of the unit in source order.
func (u *Unit) Imports() []ImportRecord {
	root := u.Root()
	if root == nil {
		return nil
	}
	var out []ImportRecord
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child.Type() != "import_statement" {
			continue
		}
		if rec, ok := u.importRecord(child); ok {
			out = append(out, rec)
		}
	}
	return out
}

// importRecord decodes one import_statement node.
func (u *Unit) importRecord(stmt *sitter.Node) (ImportRecord, bool) {
	var rec ImportRecord
	for i := 0; i < int(stmt.ChildCount()); i++ {
		child := stmt.Child(i)
		switch child.Type() {
		case "type":
			rec.StatementTypeOnly = true
		case "import_clause":
			u.decodeImportClause(child, &rec)
		case "string":
			rec.Module = u.stringContent(child)
		}
	}
	if rec.Module == "" {
		return rec, false
	}
	return rec, true
}

// decodeImportClause fills default, namespace and named bindings.
func (u *Unit) decodeImportClause(clause *sitter.Node, rec *ImportRecord) {
	for i := 0; i < int(clause.ChildCount()); i++ {
		child := clause.Child(i)
		switch child.Type() {
		case "identifier":
			rec.Default = u.text(child)
		case "namespace_import":
			if ident := firstChildOfType(child, "identifier"); ident != nil {
				rec.Namespace = u.text(ident)
			}
		case "named_imports":
			for j := 0; j < int(child.ChildCount()); j++ {
				spec := child.Child(j)
				if spec.Type() != "import_specifier" {
					continue
				}
				name, typeOnly := u.importSpecifier(spec)
				if name == "" {
					continue
				}
				if typeOnly {
					rec.TypeNames = append(rec.TypeNames, name)
				} else {
					rec.Names = append(rec.Names, name)
				}
			}
		}
	}
}

// importSpecifier returns the local name of a named binding and whether it
// carries an inline `type` modifier. `{ foo as bar }` yields "bar".
func (u *Unit) importSpecifier(spec *sitter.Node) (string, bool) {
	var name string
	typeOnly := false
	for i := 0; i < int(spec.ChildCount()); i++ {
		child := spec.Child(i)
		switch child.Type() {
		case "type":
			typeOnly = true
		case "identifier":
			// Last identifier wins: that is the local alias when present.
			name = u.text(child)
		}
	}
	return name, typeOnly
}

// stringContent returns a string literal's value without quotes.
func (u *Unit) stringContent(node *sitter.Node) string {
	if fragment := firstChildOfType(node, "string_fragment"); fragment != nil {
		return u.text(fragment)
	}
	return strings.Trim(u.text(node), `"'`+"`")
}

// ImportedFunctionNames returns the local names of non-type-only bindings
// imported from any module whose path contains marker.
func (u *Unit) ImportedFunctionNames(marker string) []string {
	var out []string
	for _, rec := range u.Imports() {
		if !strings.Contains(rec.Module, marker) {
			continue
		}
		out = append(out, rec.Bindings()...)
	}
	return out
}

// connModuleRe matches module specifiers that resolve to a database
// connection file, e.g. "../databases/orders/conn.orders" (with or without
// the explicit extension).
var connModuleRe = regexp.MustCompile(`(^|/)conn\.[\w.-]+?(\.tsx?)?$`)

// DatabaseConnectionImports returns import records whose module path follows
// the connection-file naming convention.
func (u *Unit) DatabaseConnectionImports() []ImportRecord {
	var out []ImportRecord
	for _, rec := range u.Imports() {
		if connModuleRe.MatchString(rec.Module) {
			out = append(out, rec)
		}
	}
	return out
}
