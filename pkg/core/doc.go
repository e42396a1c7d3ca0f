// Package core defines the shared language of the scafflint system.
//
// This package contains:
//   - File classification types (FileCategory, FunctionKind)
//   - Check lifecycle types (Phase, Severity)
//   - Rule metadata DTOs (RuleInfo)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
