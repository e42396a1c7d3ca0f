// Package lint is the convention-enforcement engine for scaffolded
// TypeScript backends.
//
// # Architecture
//
// The lint package follows a modular architecture with two layers:
//
//  1. Root package (pkg/lint/): shared contracts, the rule registry, the
//     file classifier and the Runner that aggregates results per check call
//  2. Rule catalog (pkg/lint/rules/...): one subpackage per file category,
//     each registering its rules via init()
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their
// packages are imported:
//
//	import _ "github.com/leapstack-labs/scafflint/pkg/lint/rules"
//
// # Rule Categories
//
//   - AP (api): route handler modules under src/apis
//   - CT (controller): controller modules under src/controllers
//   - FN (function): pure, effectful and transactional modules under src/functions
//   - DB (database): connection and schema modules under src/databases
//   - CM (component): UI component modules under src/components
//   - GN (general): project-wide hygiene, applied to every file
//
// # Running Checks
//
// Use a Runner to evaluate one file against the catalog:
//
//	runner := lint.NewRunner(lint.NewConfig()).WithScanner(scanner)
//	result, err := runner.Check(lint.Request{
//		ProjectRoot: root,
//		FilePath:    path,
//		Content:     content,
//		Phase:       core.PhaseAfterWrite,
//	})
//
// Every applicable rule runs on every call; the Runner never stops at the
// first violation. Error-severity findings block the triggering operation,
// everything else is advisory.
//
// # Configuration
//
// Use Config to control which rules are enabled and their severity:
//
//	config := lint.NewConfig()
//	config.Disable("GN04")
//	config.SetSeverity("FN09", core.SeverityError)
//	config.SetRuleOptions("AP04", map[string]any{"prefix": "/api/"})
package lint
