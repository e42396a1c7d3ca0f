package source

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// PropertySignature is one property of an object-shape type literal.
type PropertySignature struct {
	Name     string
	Type     string // annotation text, "" when unannotated
	Optional bool
}

// FindTypeAlias returns the value node of a top-level `type Name = ...`
// declaration, or nil when the alias does not exist in this file.
func (u *Unit) FindTypeAlias(name string) *sitter.Node {
	decl, ok := u.Decls()[name]
	if !ok || decl.Type() != "type_alias_declaration" {
		return nil
	}
	// The alias value is the named child after the `=`.
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

// TypeLiteralProperties returns the property signatures of a named type
// alias whose value is an object-shape literal. The second result is false
// when the alias is missing or not an object shape.
func (u *Unit) TypeLiteralProperties(aliasName string) ([]PropertySignature, bool) {
	value := u.FindTypeAlias(aliasName)
	if value == nil || value.Type() != "object_type" {
		return nil, false
	}

	var props []PropertySignature
	for i := 0; i < int(value.ChildCount()); i++ {
		child := value.Child(i)
		if child.Type() != "property_signature" {
			continue
		}
		if prop, ok := u.propertySignature(child); ok {
			props = append(props, prop)
		}
	}
	return props, true
}

// TypeLiteralPropertyNames returns just the property names of a named
// object-shape alias.
func (u *Unit) TypeLiteralPropertyNames(aliasName string) ([]string, bool) {
	props, ok := u.TypeLiteralProperties(aliasName)
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Name)
	}
	return names, true
}

// propertySignature decodes one property_signature node.
func (u *Unit) propertySignature(node *sitter.Node) (PropertySignature, bool) {
	var prop PropertySignature
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "property_identifier", "string":
			if prop.Name == "" {
				prop.Name = u.stringContent(child)
			}
		case "?":
			prop.Optional = true
		case "type_annotation":
			prop.Type = u.annotationText(child)
		}
	}
	if prop.Name == "" {
		return prop, false
	}
	return prop, true
}
