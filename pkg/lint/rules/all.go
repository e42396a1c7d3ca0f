package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule categories - each registers its rules via init()
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules/api"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules/component"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules/controller"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules/database"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules/function"
	_ "github.com/leapstack-labs/scafflint/pkg/lint/rules/general"
)
