package core

import "strings"

// =============================================================================
// FileCategory
// =============================================================================

// FileCategory is the closed classification a checked file is assigned from
// its path. Every file maps to exactly one category.
type FileCategory int

// File categories, in dispatch order.
const (
	// CategoryUnclassified is the zero value for paths outside the project.
	CategoryUnclassified FileCategory = iota
	// CategoryAPI covers route handler modules under the apis root.
	CategoryAPI
	// CategoryController covers controller modules under the controllers root.
	CategoryController
	// CategoryFunction covers pure/effectful/transactional function modules.
	CategoryFunction
	// CategoryDatabase covers connection/schema/auth modules.
	CategoryDatabase
	// CategoryComponent covers UI component modules.
	CategoryComponent
	// CategoryGeneral covers everything else inside the project root.
	CategoryGeneral
)

// String returns the string representation of the category.
func (c FileCategory) String() string {
	switch c {
	case CategoryAPI:
		return "api"
	case CategoryController:
		return "controller"
	case CategoryFunction:
		return "function"
	case CategoryDatabase:
		return "database"
	case CategoryComponent:
		return "component"
	case CategoryGeneral:
		return "general"
	default:
		return "unclassified"
	}
}

// ParseCategory converts a string to a FileCategory.
// Returns the category and true if valid, or CategoryUnclassified and false.
func ParseCategory(s string) (FileCategory, bool) {
	switch strings.ToLower(s) {
	case "api":
		return CategoryAPI, true
	case "controller":
		return CategoryController, true
	case "function":
		return CategoryFunction, true
	case "database":
		return CategoryDatabase, true
	case "component":
		return CategoryComponent, true
	case "general":
		return CategoryGeneral, true
	default:
		return CategoryUnclassified, false
	}
}

// =============================================================================
// FunctionKind
// =============================================================================

// FunctionKind is the subtype of a function-category file, derived from its
// filename prefix. A function file belongs to exactly one subtype.
type FunctionKind int

// Function subtypes.
const (
	// FunctionNone means the file is not a function file.
	FunctionNone FunctionKind = iota
	// FunctionPure is an "fn." file: one parameter, two-element result tuple.
	FunctionPure
	// FunctionEffectful is an "fx." file: portal + args, two-element tuple.
	FunctionEffectful
	// FunctionTransactional is a "tx." file: portal + args, three-element tuple.
	FunctionTransactional
)

// String returns the filename prefix associated with the kind.
func (k FunctionKind) String() string {
	switch k {
	case FunctionPure:
		return "fn"
	case FunctionEffectful:
		return "fx"
	case FunctionTransactional:
		return "tx"
	default:
		return "none"
	}
}
