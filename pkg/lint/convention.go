package lint

import (
	"strings"

	"github.com/leapstack-labs/scafflint/pkg/core"
)

// Directory layout of a scaffolded project, relative to the project root.
// All paths are slash-separated.
const (
	SourceRoot    = "src"
	APIDir        = "src/apis"
	ControllerDir = "src/controllers"
	FunctionDir   = "src/functions"
	DatabaseDir   = "src/databases"
	ComponentDir  = "src/components"
	DocsDir       = "docs"

	// RouterFile is the only module allowed to import route handlers.
	RouterFile = "src/apis/router.ts"
)

// Type markers the discipline builds on. Result tuples are detected by
// marker name inside the annotation text, which tolerates wrapping such as
// Promise<TErrTuple<T>>.
const (
	PortalTypeName = "TPortal"
	ErrTupleMarker = "TErrTuple"
	TxTupleMarker  = "TTxTuple"

	// APIRoutePrefix is the mandatory first segment of every route.
	APIRoutePrefix = "/api/"
)

// TestSuffixes mark a file as a test module.
var TestSuffixes = []string{".test.ts", ".test.tsx"}

// IsModelFile reports whether base names a model module, which the naming
// and export rules exempt.
func IsModelFile(base string) bool {
	return strings.Contains(base, ".model.")
}

// IsTestFile reports whether base names a test module.
func IsTestFile(base string) bool {
	for _, suffix := range TestSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// FunctionPrefix returns the mandatory file-name prefix for a function kind,
// including the trailing dot.
func FunctionPrefix(kind core.FunctionKind) string {
	return kind.String() + "."
}

// FunctionKindOf derives the function kind from a file base name, or
// FunctionNone when no known prefix matches.
func FunctionKindOf(base string) core.FunctionKind {
	switch {
	case strings.HasPrefix(base, "fn."):
		return core.FunctionPure
	case strings.HasPrefix(base, "fx."):
		return core.FunctionEffectful
	case strings.HasPrefix(base, "tx."):
		return core.FunctionTransactional
	default:
		return core.FunctionNone
	}
}

// MockFactoryName derives the required mock factory name from a database
// constant name: ordersDb becomes createMockOrdersDb.
func MockFactoryName(dbName string) string {
	stem := strings.TrimSuffix(dbName, "Db")
	if stem == "" {
		return ""
	}
	return "createMock" + strings.ToUpper(stem[:1]) + stem[1:] + "Db"
}

// DatabaseTypeRef returns the `typeof X` expression rules expect for a
// discovered database name.
func DatabaseTypeRef(dbName string) string {
	return "typeof " + dbName
}
