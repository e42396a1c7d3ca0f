// Package rules provides the convention rule catalog for scaffolded
// TypeScript backends.
//
// Rules are organized by file category:
//   - api: route handler module rules (AP01-AP05)
//   - controller: controller module rules (CT01-CT05)
//   - function: pure/effectful/transactional function rules (FN01-FN09)
//   - database: connection and schema module rules (DB01-DB03)
//   - component: UI component module rules (CM01)
//   - general: project-wide hygiene rules (GN01-GN05)
//
// To register all rules with the global registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/scafflint/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/scafflint/pkg/lint/rules/api"
//	import _ "github.com/leapstack-labs/scafflint/pkg/lint/rules/function"
package rules
