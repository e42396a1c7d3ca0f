package source

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Instantiation describes a default-exported `new X({...})` expression.
// Options is the first object-literal argument, nil when the constructor
// was called without one.
type Instantiation struct {
	Constructor string
	Options     *sitter.Node
}

// DefaultExportInstantiation resolves the default export to a constructor
// call. Method chaining on the instance (`new X({...}).use(y)`) is unwrapped
// to the underlying new-expression. The second result is false when the
// default export is absent or not an instantiation.
func (u *Unit) DefaultExportInstantiation() (Instantiation, bool) {
	export := u.DefaultExport()
	if export.Kind != ExportExpression || export.Node == nil {
		return Instantiation{}, false
	}

	node := unwrapToNewExpression(export.Node)
	if node == nil {
		return Instantiation{}, false
	}

	inst := Instantiation{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			if inst.Constructor == "" {
				inst.Constructor = u.text(child)
			}
		case "arguments":
			inst.Options = firstChildOfType(child, "object")
		}
	}
	if inst.Constructor == "" {
		return Instantiation{}, false
	}
	return inst, true
}

// unwrapToNewExpression chases a call/member chain down to its base
// new-expression, e.g. `new X({}).use(a).use(b)`.
func unwrapToNewExpression(node *sitter.Node) *sitter.Node {
	for node != nil {
		switch node.Type() {
		case "new_expression":
			return node
		case "call_expression", "member_expression", "parenthesized_expression":
			node = node.NamedChild(0)
		default:
			return nil
		}
	}
	return nil
}

// ObjectStringProperty returns the string value of a named property in an
// object literal, e.g. the "prefix" option. The second result is false when
// the property is missing or not a string literal.
func (u *Unit) ObjectStringProperty(obj *sitter.Node, key string) (string, bool) {
	if obj == nil {
		return "", false
	}
	for i := 0; i < int(obj.ChildCount()); i++ {
		pair := obj.Child(i)
		if pair.Type() != "pair" {
			continue
		}
		name := ""
		var value *sitter.Node
		for j := 0; j < int(pair.ChildCount()); j++ {
			child := pair.Child(j)
			switch child.Type() {
			case "property_identifier", "string":
				if name == "" {
					name = u.stringContent(child)
				} else if value == nil {
					value = child
				}
			case ":":
			default:
				if name != "" && value == nil {
					value = child
				}
			}
		}
		if name != key {
			continue
		}
		if value == nil || value.Type() != "string" {
			return "", false
		}
		return u.stringContent(value), true
	}
	return "", false
}
