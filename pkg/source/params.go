package source

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Param is one parameter of the resolved default export.
// Type is the annotation text, defaulting to "any" when unannotated.
type Param struct {
	Name     string
	Type     string
	Optional bool
}

// DefaultExportParameters returns the ordered parameter list of the resolved
// default export function, or nil when the export is absent or not a
// function.
func (u *Unit) DefaultExportParameters() []Param {
	fn := u.DefaultExport()
	if !fn.IsFunction() {
		return nil
	}
	params := firstChildOfType(fn.Node, "formal_parameters")
	if params == nil {
		// Arrow shorthand: `x => ...` has a bare identifier parameter.
		if fn.Kind == ExportArrow {
			if ident := firstChildOfType(fn.Node, "identifier"); ident != nil {
				return []Param{{Name: u.text(ident), Type: "any"}}
			}
		}
		return nil
	}

	var out []Param
	for i := 0; i < int(params.ChildCount()); i++ {
		child := params.Child(i)
		switch child.Type() {
		case "required_parameter":
			out = append(out, u.extractParam(child, false))
		case "optional_parameter":
			out = append(out, u.extractParam(child, true))
		case "identifier":
			// Untyped JS-style parameter.
			out = append(out, Param{Name: u.text(child), Type: "any"})
		}
	}
	return out
}

// extractParam reads name and annotation from a parameter node. Destructured
// patterns keep their raw pattern text as the name.
func (u *Unit) extractParam(node *sitter.Node, optional bool) Param {
	p := Param{Type: "any", Optional: optional}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier", "object_pattern", "array_pattern", "rest_pattern":
			if p.Name == "" {
				p.Name = u.text(child)
			}
		case "type_annotation":
			p.Type = u.annotationText(child)
		case "?":
			p.Optional = true
		}
	}
	return p
}

// DefaultExportReturnType returns the raw return-type annotation text of the
// resolved default export function. The second result is false when there is
// no annotation (or no function); the type is never inferred.
func (u *Unit) DefaultExportReturnType() (string, bool) {
	fn := u.DefaultExport()
	if !fn.IsFunction() {
		return "", false
	}
	// The return annotation is the type_annotation that directly follows the
	// parameter list; parameter annotations live inside formal_parameters.
	seenParams := false
	for i := 0; i < int(fn.Node.ChildCount()); i++ {
		child := fn.Node.Child(i)
		switch child.Type() {
		case "formal_parameters", "identifier":
			seenParams = true
		case "type_annotation":
			if seenParams {
				return u.annotationText(child), true
			}
		}
	}
	return "", false
}

// annotationText returns the type text of a type_annotation node, without
// the leading colon.
func (u *Unit) annotationText(annotation *sitter.Node) string {
	for i := 0; i < int(annotation.ChildCount()); i++ {
		child := annotation.Child(i)
		if child.Type() != ":" {
			return strings.TrimSpace(u.text(child))
		}
	}
	return ""
}
