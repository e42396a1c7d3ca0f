package lint

import "github.com/leapstack-labs/scafflint/pkg/core"

// Severity is re-exported so rule packages can write lint.SeverityError
// without importing core.
type Severity = core.Severity

// Severity levels for diagnostics.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)
